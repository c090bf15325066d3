package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ponder/annotation"
	"go.jacobcolvin.com/ponder/workspace"
)

func TestProjectRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	app := filepath.Join(dir, "app")
	pkg := filepath.Join(app, "packages", "ui")
	other := filepath.Join(dir, "other", "lib")
	loose := filepath.Join(dir, "loose")

	for _, d := range []string{pkg, other, loose} {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other", "pubspec.yaml"), nil, 0o644))

	tcs := map[string]struct {
		folders []string
		markers []string
		doc     string
		want    string
		wantOK  bool
	}{
		"folder contains document": {
			folders: []string{app},
			doc:     filepath.Join(app, "main.dart"),
			want:    app,
			wantOK:  true,
		},
		"innermost folder wins": {
			folders: []string{app, pkg},
			doc:     filepath.Join(pkg, "button.dart"),
			want:    pkg,
			wantOK:  true,
		},
		"sibling prefix is not containment": {
			folders: []string{filepath.Join(dir, "ap")},
			doc:     filepath.Join(app, "main.dart"),
		},
		"marker fallback": {
			folders: []string{app},
			markers: []string{"pubspec.yaml"},
			doc:     filepath.Join(other, "card.dart"),
			want:    filepath.Join(dir, "other"),
			wantOK:  true,
		},
		"no markers configured": {
			doc: filepath.Join(other, "card.dart"),
		},
		"marker not found": {
			markers: []string{"does-not-exist.marker"},
			doc:     filepath.Join(loose, "x.dart"),
		},
		"file uri document": {
			folders: []string{app},
			doc:     workspace.URIFromPath(filepath.Join(app, "lib", "a.dart")),
			want:    app,
			wantOK:  true,
		},
		"remote document": {
			folders: []string{app},
			doc:     "https://example.com/a.dart",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w, err := workspace.New(tc.folders, tc.markers)
			require.NoError(t, err)

			root, ok := w.ProjectRoot(tc.doc)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, root)
		})
	}
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	w := &workspace.Workspace{}

	got := w.JoinPath("/proj", "assets/demo one.png")
	assert.Equal(t, "file:///proj/assets/demo%20one.png", got)

	path, err := workspace.PathFromURI(got)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/proj/assets/demo one.png"), path)
}

func TestPathFromURI(t *testing.T) {
	t.Parallel()

	_, err := workspace.PathFromURI("https://example.com/x.png")
	require.ErrorIs(t, err, workspace.ErrNotFileURI)

	abs, err := workspace.PathFromURI("relative/x.png")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}

func TestWorkspaceResolvesAnnotations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	w, err := workspace.New([]string{dir}, nil)
	require.NoError(t, err)

	doc := annotation.NewText(
		workspace.URIFromPath(filepath.Join(dir, "lib", "main.dart")),
		[]byte("/// @ponder demos/a.gif\n/// @ponder http://example.com/b.gif"),
	)

	records := annotation.New(w).Scan(doc)
	require.Len(t, records, 2)

	assert.Equal(t,
		annotation.Reference(workspace.URIFromPath(filepath.Join(dir, "demos", "a.gif"))),
		records[0].Preview,
	)
	assert.True(t, records[0].Preview.IsLocalFile())
	assert.Equal(t, annotation.Reference("http://example.com/b.gif"), records[1].Preview)
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := workspace.NewConfig()
	cmd := &cobra.Command{Use: "test"}

	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	require.NoError(t, cmd.Flags().Parse([]string{"-W", "/a", "--workspace-folder", "/b", "--project-marker", ""}))

	w, err := cfg.NewWorkspace()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Clean("/a"), filepath.Clean("/b")}, w.Folders)
	assert.Empty(t, w.Markers)
}
