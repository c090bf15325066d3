package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/ponder/render"
)

const schemaDraft = "https://json-schema.org/draft/2020-12/schema"

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the lens report",
		Long: `schema prints the JSON Schema describing the output of
"ponder lens --output json".`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := reportSchema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			_, err = fmt.Fprintln(a.out, string(out))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func reportSchema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[render.Report](nil)
	if err != nil {
		return nil, fmt.Errorf("infer schema: %w", err)
	}

	s.Schema = schemaDraft
	s.Title = "ponder lens report"

	return s, nil
}
