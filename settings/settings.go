// Package settings loads the optional .ponder.yaml settings file.
//
// Settings supply defaults for command line flags. A flag set explicitly on
// the command line always wins over the file:
//
//	hoverPreviewSize: 320
//	workspaceFolders:
//	  - ~/src/app
//	projectMarkers: [pubspec.yaml]
//	logLevel: debug
//	editor: code --reuse-window
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

// FileName is the settings file name searched for by [Find].
const FileName = ".ponder.yaml"

var (
	// ErrInvalidSettings indicates a settings file that cannot be decoded
	// or holds an invalid value.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrReadSettings indicates a settings file that cannot be read.
	ErrReadSettings = errors.New("read settings")
)

// Settings mirrors the settings file.
type Settings struct {
	HoverPreviewSize *int     `yaml:"hoverPreviewSize"`
	LogLevel         string   `yaml:"logLevel"`
	LogFormat        string   `yaml:"logFormat"`
	Editor           string   `yaml:"editor"`
	WorkspaceFolders []string `yaml:"workspaceFolders"`
	ProjectMarkers   []string `yaml:"projectMarkers"`

	// Path is the file the settings were loaded from. Relative workspace
	// folders are resolved against its directory.
	Path string `yaml:"-"`
}

// Parse decodes settings from YAML. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Parse(data []byte) (*Settings, error) {
	s := &Settings{}

	err := yaml.UnmarshalWithOptions(data, s, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	if s.HoverPreviewSize != nil && *s.HoverPreviewSize < 1 {
		return nil, fmt.Errorf("%w: hoverPreviewSize must be positive, got %d",
			ErrInvalidSettings, *s.HoverPreviewSize)
	}

	return s, nil
}

// Load reads and parses the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSettings, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.Path = path

	return s, nil
}

// Find walks up from dir looking for [FileName]. It returns the path of the
// first file found, or false.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, FileName)

		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// Names maps settings to the flag names they provide defaults for. Empty
// names are skipped.
type Names struct {
	PreviewSize      string
	WorkspaceFolders string
	ProjectMarkers   string
	LogLevel         string
	LogFormat        string
	Editor           string
}

// Apply sets every flag in names that the user did not change on the
// command line and that the settings provide a value for. Flags missing
// from the set are ignored.
func (s *Settings) Apply(flags *pflag.FlagSet, names Names) error {
	values := map[string][]string{}

	if s.HoverPreviewSize != nil {
		values[names.PreviewSize] = []string{strconv.Itoa(*s.HoverPreviewSize)}
	}

	if len(s.WorkspaceFolders) > 0 {
		values[names.WorkspaceFolders] = s.folders()
	}

	if s.ProjectMarkers != nil {
		values[names.ProjectMarkers] = []string{strings.Join(s.ProjectMarkers, ",")}
	}

	if s.LogLevel != "" {
		values[names.LogLevel] = []string{s.LogLevel}
	}

	if s.LogFormat != "" {
		values[names.LogFormat] = []string{s.LogFormat}
	}

	if s.Editor != "" {
		values[names.Editor] = []string{s.Editor}
	}

	for name, vals := range values {
		if name == "" {
			continue
		}

		flag := flags.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}

		for _, v := range vals {
			err := flags.Set(name, v)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidSettings, name, err)
			}
		}

		// Settings are defaults, not explicit choices.
		flag.Changed = false

		slog.Debug("applied setting", slog.String("flag", name), slog.Any("value", vals))
	}

	return nil
}

// folders returns the workspace folders with "~" expanded and relative
// paths anchored at the settings file's directory.
func (s *Settings) folders() []string {
	home, _ := os.UserHomeDir()
	base := filepath.Dir(s.Path)

	out := make([]string, 0, len(s.WorkspaceFolders))

	for _, f := range s.WorkspaceFolders {
		switch {
		case f == "~" && home != "":
			f = home
		case strings.HasPrefix(f, "~/") && home != "":
			f = filepath.Join(home, f[2:])
		case !filepath.IsAbs(f) && s.Path != "":
			f = filepath.Join(base, f)
		}

		out = append(out, f)
	}

	return out
}
