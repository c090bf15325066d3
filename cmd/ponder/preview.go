package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/ponder/preview"
	"go.jacobcolvin.com/ponder/render"
)

func (a *app) newPreviewCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview [flags] <file> <line>",
		Short: "Draw the preview image of the annotation at a line",
		Long: `preview loads the preview asset of the annotation at the given 1-based
line and draws it in the terminal with 24-bit colour half blocks.

The image is --preview-size pixels wide, mapped to terminal columns and
clamped to the terminal width. Use --width to set the column count
directly.`,
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
				return fmt.Errorf("%w: no annotation at %s:%d", ErrInvalidArgument, args[0], line)
			}

			img, err := preview.Loader{}.Load(cmd.Context(), m.Preview)
			if err != nil {
				return err
			}

			cols := width
			if cols <= 0 {
				cols = a.previewColumns()
			}

			slog.Debug("rendering preview",
				slog.String("preview", m.Preview.String()),
				slog.Int("columns", cols),
			)

			_, err = io.WriteString(a.out, preview.Render(img, cols))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "render width in columns (0 = from --preview-size)")

	return cmd
}

// previewColumns maps the configured preview size to terminal columns,
// clamped to the terminal width when writing to a terminal.
func (a *app) previewColumns() int {
	size := a.renderCfg.Options().PreviewSize
	if size < 1 {
		size = render.DefaultPreviewSize
	}

	cols := preview.Columns(size)

	f, ok := a.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return cols
	}

	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return cols
	}

	return min(cols, w)
}
