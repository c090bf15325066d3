package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-yaml"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormats = []string{formatText, formatJSON, formatYAML}

func validOutput(format string) bool {
	return slices.Contains(outputFormats, format)
}

// write encodes v in the selected output format. Text output is produced
// by text, which may be nil when v has no text form.
func (a *app) write(v any, text func(io.Writer) error) error {
	var err error

	switch a.output {
	case formatJSON:
		var out []byte

		out, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			out = append(out, '\n')
			_, err = a.out.Write(out)
		}

	case formatYAML:
		var out []byte

		out, err = yaml.Marshal(v)
		if err == nil {
			_, err = a.out.Write(out)
		}

	default:
		if text == nil {
			return fmt.Errorf("%w: text output is not supported here", ErrInvalidArgument)
		}

		err = text(a.out)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
