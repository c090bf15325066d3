package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for workspace configuration.
type Flags struct {
	Folders string
	Markers string
}

// Config holds CLI flag values for workspace configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewWorkspace] to create a [Workspace].
type Config struct {
	Flags   Flags
	Folders []string
	Markers []string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Folders: "workspace-folder",
			Markers: "project-marker",
		},
	}
}

// RegisterFlags adds workspace flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&c.Folders, c.Flags.Folders, "W", nil,
		"workspace folder used to resolve relative annotation paths (repeatable)")
	flags.StringSliceVar(&c.Markers, c.Flags.Markers, DefaultMarkers,
		"file marking a project root when no workspace folder applies (empty to disable)")
}

// RegisterCompletions registers shell completions for workspace flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Folders,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Folders, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Markers,
		cobra.FixedCompletions(DefaultMarkers, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Markers, err)
	}

	return nil
}

// NewWorkspace creates a [Workspace] from the configured values.
func (c *Config) NewWorkspace() (*Workspace, error) {
	var markers []string

	for _, m := range c.Markers {
		if m != "" {
			markers = append(markers, m)
		}
	}

	return New(c.Folders, markers)
}
