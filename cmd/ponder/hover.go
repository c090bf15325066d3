package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/ponder/render"
)

func (a *app) newHoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hover [flags] <file> <line>",
		Short: "Print the hover preview for the annotation at a line",
		Long: `hover prints the markdown an editor shows when the pointer rests on the
given 1-based line. Lines inside an annotation block are hoverable as long
as they carry an annotation keyword. Nothing is printed when the line is
not hoverable.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLine(args[1])
			if err != nil {
				return err
			}

			doc, err := a.readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			m, ok := a.lookup(doc, line)
			if !ok {
				slog.Debug("no hover", slog.String("uri", doc.URI()), slog.Int("line", line))

				return nil
			}

			h := render.HoverFor(doc, m, a.renderCfg.Options())

			return a.write(h, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, h.Markdown)

				return err
			})
		},
	}
}

// parseLine parses a 1-based line number argument.
func parseLine(s string) (int, error) {
	line, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: line %q: %w", ErrInvalidArgument, s, err)
	}

	if line < 1 {
		return 0, fmt.Errorf("%w: line %d: lines start at 1", ErrInvalidArgument, line)
	}

	return line, nil
}
