package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/ponder/annotation"
	"go.jacobcolvin.com/ponder/log"
	"go.jacobcolvin.com/ponder/render"
	"go.jacobcolvin.com/ponder/settings"
	"go.jacobcolvin.com/ponder/version"
	"go.jacobcolvin.com/ponder/workspace"
)

var (
	// ErrReadInput indicates an input file could not be read.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates output could not be written.
	ErrWriteOutput = errors.New("write output")
	// ErrInvalidArgument indicates a malformed positional argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// app holds the state shared by all subcommands.
type app struct {
	out        io.Writer
	errOut     io.Writer
	logCfg     *log.Config
	renderCfg  *render.Config
	wsCfg      *workspace.Config
	parser     annotation.Parser
	configPath string
	output     string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		out:       out,
		errOut:    errOut,
		logCfg:    log.NewConfig(),
		renderCfg: render.NewConfig(),
		wsCfg:     workspace.NewConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "ponder",
		Short: "Find and preview ponder demo annotations",
		Long: `ponder finds "/// @ponder" demo annotations in source files, resolves the
media they reference, and renders them as editor lenses, hover previews, or
terminal images.`,
		Version:           version.Get().String(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&a.configPath, "config", "",
		"settings file (default: nearest "+settings.FileName+")")
	pflags.StringVarP(&a.output, "output", "o", formatText,
		"output format, one of: text, json, yaml")

	a.logCfg.RegisterFlags(pflags)
	a.renderCfg.RegisterFlags(pflags)
	a.wsCfg.RegisterFlags(pflags)

	completionErrs := []error{
		a.logCfg.RegisterCompletions(rootCmd),
		a.renderCfg.RegisterCompletions(rootCmd),
		a.wsCfg.RegisterCompletions(rootCmd),
		rootCmd.RegisterFlagCompletionFunc("output",
			cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp)),
	}

	err := errors.Join(completionErrs...)
	if err != nil {
		fmt.Fprintf(errOut, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(
		a.newLensCmd(),
		a.newHoverCmd(),
		a.newOpenCmd(),
		a.newPreviewCmd(),
		a.newViewCmd(),
		a.newSchemaCmd(),
		a.newVersionCmd(),
	)

	return rootCmd
}

// setup applies the settings file, installs the logger and builds the
// parser. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := a.loadSettings()
	if err != nil {
		return err
	}

	if s != nil {
		err = s.Apply(cmd.Flags(), settings.Names{
			PreviewSize:      a.renderCfg.Flags.PreviewSize,
			WorkspaceFolders: a.wsCfg.Flags.Folders,
			ProjectMarkers:   a.wsCfg.Flags.Markers,
			LogLevel:         a.logCfg.Flags.Level,
			LogFormat:        a.logCfg.Flags.Format,
			Editor:           flagEditor,
		})
		if err != nil {
			return err
		}
	}

	err = a.logCfg.Install(a.errOut)
	if err != nil {
		return err
	}

	if s != nil {
		slog.Debug("loaded settings", slog.String("path", s.Path))
	}

	if !validOutput(a.output) {
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidArgument, a.output)
	}

	ws, err := a.wsCfg.NewWorkspace()
	if err != nil {
		return err
	}

	a.parser = annotation.New(ws)

	return nil
}

func (a *app) loadSettings() (*settings.Settings, error) {
	if a.configPath != "" {
		return settings.Load(a.configPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, nil //nolint:nilerr // No working directory means no settings file.
	}

	path, ok := settings.Find(wd)
	if !ok {
		return nil, nil
	}

	return settings.Load(path)
}

// readDocument loads a document from path, or from stdin when path is "-".
// Stdin documents are named after the working directory so relative paths
// still resolve against the current project.
func (a *app) readDocument(cmd *cobra.Command, path string) (*annotation.Text, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}

		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}

		return annotation.NewText(workspace.URIFromPath(filepath.Join(wd, "stdin")), data), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return annotation.NewText(workspace.URIFromPath(abs), data), nil
}
