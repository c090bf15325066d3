package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/ponder/annotation"
	"go.jacobcolvin.com/ponder/render"
	"go.jacobcolvin.com/ponder/watch"
	"go.jacobcolvin.com/ponder/workspace"
)

func (a *app) newLensCmd() *cobra.Command {
	var watchFiles bool

	cmd := &cobra.Command{
		Use:   "lens [flags] <file> [file ...]",
		Short: "List the lenses for every annotation in the given files",
		Long: `lens scans each file for ponder annotations and prints one lens per
annotation: its line range, the resolved preview and detailed references,
and the command an editor would run when the lens is clicked.

Use "-" to read a single document from stdin. With --watch, files are
rescanned and reprinted whenever they change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := render.Report{}

			for _, path := range args {
				fr, err := a.scanFile(cmd, path)
				if err != nil {
					return err
				}

				report.Files = append(report.Files, fr)
			}

			err := a.write(report, func(w io.Writer) error {
				return writeReportText(w, report)
			})
			if err != nil {
				return err
			}

			if !watchFiles {
				return nil
			}

			return a.watch(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "rescan files when they change")

	return cmd
}

func (a *app) scanFile(cmd *cobra.Command, path string) (render.FileReport, error) {
	doc, err := a.readDocument(cmd, path)
	if err != nil {
		return render.FileReport{}, err
	}

	records := a.parser.Scan(doc)

	slog.Debug("scanned document",
		slog.String("uri", doc.URI()),
		slog.Int("lines", doc.LineCount()),
		slog.Int("annotations", len(records)),
	)

	return render.NewFileReport(doc, records), nil
}

func (a *app) watch(cmd *cobra.Command, paths []string) error {
	for _, p := range paths {
		if p == "-" {
			return fmt.Errorf("%w: cannot watch stdin", ErrInvalidArgument)
		}
	}

	w, err := watch.New(paths...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	slog.Info("watching files", slog.Int("count", len(paths)))

	var writeErr error

	err = w.Run(ctx, func(path string) {
		fr, err := a.scanFile(cmd, path)
		if err != nil {
			slog.Warn("rescan failed", slog.String("path", path), slog.Any("error", err))

			return
		}

		report := render.Report{Files: []render.FileReport{fr}}

		err = a.write(report, func(w io.Writer) error {
			return writeReportText(w, report)
		})
		if err != nil && writeErr == nil {
			writeErr = err
			stop()
		}
	})
	if err != nil {
		return err
	}

	return writeErr
}

func writeReportText(w io.Writer, report render.Report) error {
	for _, fr := range report.Files {
		name := displayName(fr.URI)

		for _, ann := range fr.Annotations {
			r := ann.Lens.Range

			_, err := fmt.Fprintf(w, "%s:%d-%d: %s %s\n", name, r.Start.Line+1, r.End.Line+1,
				ann.Lens.Title, ann.Detailed)
			if err != nil {
				return err
			}

			if ann.Preview != ann.Detailed {
				_, err = fmt.Fprintf(w, "\tpreview: %s\n", ann.Preview)
				if err != nil {
					return err
				}
			}

			if ann.Description != "" {
				_, err = fmt.Fprintf(w, "\t%s\n", ann.Description)
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// displayName shortens a document URI to a path relative to the working
// directory where possible.
func displayName(uri string) string {
	path, err := workspace.PathFromURI(uri)
	if err != nil {
		return uri
	}

	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(wd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}

// lookup finds the annotation at a 1-based line number.
func (a *app) lookup(doc annotation.Document, line int) (*annotation.Match, bool) {
	return a.parser.Lookup(doc, line-1)
}
