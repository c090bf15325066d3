package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/ponder/opener"
)

const flagEditor = "editor"

// openResult is the structured output of the open command.
type openResult struct {
	Kind   string `json:"kind"   yaml:"kind"`
	Target string `json:"target" yaml:"target"`
}

func (a *app) newOpenCmd() *cobra.Command {
	var (
		editor string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "open [flags] <reference>",
		Short: "Open a detailed demo reference",
		Long: `open runs the command a lens triggers. A file:// reference or a plain
path opens in the editor (--editor, then $VISUAL, then $EDITOR). Relative
paths are taken against the working directory. Any other reference, such
as an https:// URL, is handed to the platform opener.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				action opener.Action
				err    error
			)

			if dryRun {
				action, err = opener.Classify(args[0])
			} else {
				action, err = opener.New(editor).Open(cmd.Context(), args[0])
			}

			if err != nil {
				return err
			}

			if !dryRun && a.output == formatText {
				return nil
			}

			res := openResult{Kind: action.Kind.String(), Target: action.Target}

			return a.write(res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s\t%s\n", res.Kind, res.Target)

				return err
			})
		},
	}

	cmd.Flags().StringVar(&editor, flagEditor, "", "editor command for file references")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the action instead of running it")

	return cmd
}
