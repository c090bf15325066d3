package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ponder/settings"
	"go.jacobcolvin.com/ponder/stringtest"
)

var names = settings.Names{
	PreviewSize:      "preview-size",
	WorkspaceFolders: "workspace-folder",
	ProjectMarkers:   "project-marker",
	LogLevel:         "log-level",
	LogFormat:        "log-format",
	Editor:           "editor",
}

func ptr[T any](v T) *T {
	return &v
}

type flagValues struct {
	editor      string
	logLevel    string
	logFormat   string
	folders     []string
	markers     []string
	previewSize int
}

func newFlags(v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntVar(&v.previewSize, "preview-size", 200, "")
	fs.StringSliceVar(&v.folders, "workspace-folder", nil, "")
	fs.StringSliceVar(&v.markers, "project-marker", []string{"go.mod"}, "")
	fs.StringVar(&v.logLevel, "log-level", "warn", "")
	fs.StringVar(&v.logFormat, "log-format", "text", "")
	fs.StringVar(&v.editor, "editor", "", "")

	return fs
}

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want    *settings.Settings
		input   string
		wantErr bool
	}{
		"empty": {
			input: "",
			want:  &settings.Settings{},
		},
		"all keys": {
			input: stringtest.Input(`
				hoverPreviewSize: 320
				workspaceFolders:
				  - /src/app
				projectMarkers: [pubspec.yaml]
				logLevel: debug
				logFormat: json
				editor: code --reuse-window
			`),
			want: &settings.Settings{
				HoverPreviewSize: ptr(320),
				WorkspaceFolders: []string{"/src/app"},
				ProjectMarkers:   []string{"pubspec.yaml"},
				LogLevel:         "debug",
				LogFormat:        "json",
				Editor:           "code --reuse-window",
			},
		},
		"unknown key": {
			input:   "hoverPreviewSise: 320",
			wantErr: true,
		},
		"non-positive preview size": {
			input:   "hoverPreviewSize: 0",
			wantErr: true,
		},
		"wrong type": {
			input:   "hoverPreviewSize: big",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := settings.Parse([]byte(tc.input))
			if tc.wantErr {
				require.ErrorIs(t, err, settings.ErrInvalidSettings)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	s := &settings.Settings{
		HoverPreviewSize: ptr(320),
		WorkspaceFolders: []string{"app", "/abs/lib"},
		ProjectMarkers:   []string{},
		LogLevel:         "debug",
		Editor:           "nano",
		Path:             filepath.FromSlash("/home/me/proj/.ponder.yaml"),
	}

	var v flagValues

	fs := newFlags(&v)
	require.NoError(t, fs.Parse([]string{"--log-level", "error"}))

	require.NoError(t, s.Apply(fs, names))

	assert.Equal(t, 320, v.previewSize)
	assert.Equal(t, []string{
		filepath.FromSlash("/home/me/proj/app"),
		filepath.FromSlash("/abs/lib"),
	}, v.folders)
	assert.Empty(t, v.markers)
	assert.Equal(t, "error", v.logLevel, "explicit flags win")
	assert.Equal(t, "text", v.logFormat, "unset settings keep flag defaults")
	assert.Equal(t, "nano", v.editor)
	assert.False(t, fs.Lookup("preview-size").Changed)
}

func TestApplyInvalidValue(t *testing.T) {
	t.Parallel()

	var v flagValues

	fs := newFlags(&v)
	require.NoError(t, fs.Parse(nil))

	s := &settings.Settings{HoverPreviewSize: ptr(10)}

	err := s.Apply(fs, settings.Names{PreviewSize: "log-level"})
	require.NoError(t, err, "string flags accept any value")

	fs2 := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs2.Bool("preview-size", false, "")

	err = s.Apply(fs2, names)
	require.ErrorIs(t, err, settings.ErrInvalidSettings)
}

func TestFindAndLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "lib", "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, ok := settings.Find(nested)
	assert.False(t, ok)

	path := filepath.Join(root, settings.FileName)
	require.NoError(t, os.WriteFile(path, []byte("hoverPreviewSize: 96\n"), 0o644))

	found, ok := settings.Find(nested)
	require.True(t, ok)
	assert.Equal(t, path, found)

	s, err := settings.Load(found)
	require.NoError(t, err)
	assert.Equal(t, 96, *s.HoverPreviewSize)
	assert.Equal(t, path, s.Path)

	_, err = settings.Load(filepath.Join(root, "missing.yaml"))
	require.ErrorIs(t, err, settings.ErrReadSettings)
}
