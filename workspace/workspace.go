// Package workspace resolves project roots for documents on the local file
// system. [Workspace] implements [annotation.Resolver].
package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.jacobcolvin.com/ponder/annotation"
)

// ErrNotFileURI indicates a URI that does not use the file scheme.
var ErrNotFileURI = errors.New("not a file uri")

// DefaultMarkers are the files whose presence marks a project root when
// no workspace folder contains a document.
var DefaultMarkers = []string{"pubspec.yaml", "go.mod", "package.json", ".git"}

var _ annotation.Resolver = (*Workspace)(nil)

// Workspace locates the project root of a document.
//
// A document belongs to the innermost of Folders that contains it, the same
// way an editor assigns files to workspace folders. Documents outside every
// folder fall back to the nearest ancestor directory holding one of Markers.
// With neither configured, no root is ever found.
type Workspace struct {
	Folders []string
	Markers []string
}

// New creates a [Workspace] with absolute, cleaned folder paths.
func New(folders, markers []string) (*Workspace, error) {
	w := &Workspace{Markers: markers}

	for _, f := range folders {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("workspace folder %q: %w", f, err)
		}

		w.Folders = append(w.Folders, abs)
	}

	return w, nil
}

// ProjectRoot returns the root directory for the document at uri.
func (w *Workspace) ProjectRoot(uri string) (string, bool) {
	path, err := PathFromURI(uri)
	if err != nil {
		slog.Debug("no project root", slog.String("uri", uri), slog.Any("error", err))

		return "", false
	}

	if root, ok := w.folderFor(path); ok {
		return root, true
	}

	if root, ok := w.markerRoot(filepath.Dir(path)); ok {
		return root, true
	}

	slog.Debug("no project root", slog.String("path", path))

	return "", false
}

// JoinPath returns the file URI of rel inside root.
func (w *Workspace) JoinPath(root, rel string) string {
	return URIFromPath(filepath.Join(root, filepath.FromSlash(rel)))
}

func (w *Workspace) folderFor(path string) (string, bool) {
	var best string

	for _, folder := range w.Folders {
		if !within(folder, path) {
			continue
		}

		if len(folder) > len(best) {
			best = folder
		}
	}

	return best, best != ""
}

func (w *Workspace) markerRoot(dir string) (string, bool) {
	if len(w.Markers) == 0 {
		return "", false
	}

	for {
		for _, marker := range w.Markers {
			_, err := os.Stat(filepath.Join(dir, marker))
			if err == nil {
				slog.Debug("found project marker",
					slog.String("dir", dir),
					slog.String("marker", marker),
				)

				return dir, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// within reports whether path is folder or lies beneath it.
func within(folder, path string) bool {
	rel, err := filepath.Rel(folder, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// URIFromPath converts an absolute file system path to a file URI.
func URIFromPath(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths ("C:/x") need a leading slash.
		p = "/" + p
	}

	u := url.URL{Scheme: "file", Path: p}

	return u.String()
}

// PathFromURI converts a file URI to a file system path. Plain paths are
// accepted too and made absolute.
func PathFromURI(uri string) (string, error) {
	if !strings.Contains(uri, "://") {
		abs, err := filepath.Abs(uri)
		if err != nil {
			return "", fmt.Errorf("%q: %w", uri, err)
		}

		return abs, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFileURI, err)
	}

	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %q", ErrNotFileURI, uri)
	}

	p := u.Path
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}

	return filepath.FromSlash(p), nil
}
