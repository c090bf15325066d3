package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration.
type Flags struct {
	Level   string
	Format  string
	Verbose string
}

// Config holds CLI flag values for log configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewHandler] to create a handler, or
// [Config.Install] to also make it the [slog] default.
type Config struct {
	Flags   Flags
	Level   string
	Format  string
	Verbose bool
}

// NewConfig returns a new [Config] with the default flag names.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Level:   "log-level",
			Format:  "log-format",
			Verbose: "verbose",
		},
	}
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet]. Logs
// default to warnings and errors in [FormatText].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, string(LevelWarn),
		"log level, one of: "+strings.Join(GetAllLevelStrings(), ", "))
	flags.StringVar(&c.Format, c.Flags.Format, string(FormatText),
		"log format, one of: "+strings.Join(GetAllFormatStrings(), ", "))
	flags.BoolVarP(&c.Verbose, c.Flags.Verbose, "v", false,
		"log at debug level, overriding --"+c.Flags.Level)
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	}

	for name, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Levels returns the parsed level and format. Errors name the offending
// flag.
func (c *Config) Levels() (Level, Format, error) {
	lvl := LevelDebug

	if !c.Verbose {
		var err error

		lvl, err = ParseLevel(c.Level)
		if err != nil {
			return "", "", fmt.Errorf("%w: --%s: %w", ErrInvalidArgument, c.Flags.Level, err)
		}
	}

	f, err := ParseFormat(c.Format)
	if err != nil {
		return "", "", fmt.Errorf("%w: --%s: %w", ErrInvalidArgument, c.Flags.Format, err)
	}

	return lvl, f, nil
}

// NewHandler creates a handler writing to w.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	lvl, f, err := c.Levels()
	if err != nil {
		return nil, err
	}

	return NewHandler(w, lvl, f), nil
}

// Install creates a handler writing to w and sets it as the default
// [slog] logger.
func (c *Config) Install(w io.Writer) error {
	h, err := c.NewHandler(w)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(h))

	return nil
}
