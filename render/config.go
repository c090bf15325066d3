package render

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for render configuration.
type Flags struct {
	PreviewSize string
}

// Config holds CLI flag values for render configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Options] to snapshot the values.
type Config struct {
	Flags       Flags
	PreviewSize int
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			PreviewSize: "preview-size",
		},
	}
}

// RegisterFlags adds render flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.PreviewSize, c.Flags.PreviewSize, DefaultPreviewSize,
		"hover preview image width in pixels")
}

// RegisterCompletions registers shell completions for render flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	sizes := []string{
		strconv.Itoa(DefaultPreviewSize / 2),
		strconv.Itoa(DefaultPreviewSize),
		strconv.Itoa(DefaultPreviewSize * 2),
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.PreviewSize,
		cobra.FixedCompletions(sizes, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.PreviewSize, err)
	}

	return nil
}

// Options returns a snapshot of the configured render options.
func (c *Config) Options() Options {
	return Options{PreviewSize: c.PreviewSize}
}
