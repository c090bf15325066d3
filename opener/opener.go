// Package opener dispatches the open-demo command: local file references
// open in an editor, everything else is handed to the platform's external
// opener.
package opener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.jacobcolvin.com/ponder/workspace"
)

// ErrInvalidReference indicates a reference that cannot be parsed as a URI.
var ErrInvalidReference = errors.New("invalid reference")

// Kind says where an [Action] opens its target.
type Kind int

const (
	// InEditor opens a local file in the editor.
	InEditor Kind = iota
	// External hands the target to the platform opener (browser, viewer).
	External
)

// String returns the kind name.
func (k Kind) String() string {
	if k == InEditor {
		return "editor"
	}

	return "external"
}

// Action is a classified open request.
type Action struct {
	// Target is a file system path for [InEditor] and the URI otherwise.
	Target string
	Kind   Kind
}

// Classify decides how to open ref. A file:// URI or a plain path opens in
// the editor; any other URI with a scheme opens externally. Relative paths,
// such as unresolved @detailed tokens, are taken against the working
// directory.
func Classify(ref string) (Action, error) {
	if !strings.Contains(ref, ":") {
		return localAction(ref)
	}

	u, err := url.Parse(ref)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	if u.Scheme == "" || strings.EqualFold(u.Scheme, "file") {
		return localAction(ref)
	}

	return Action{Kind: External, Target: u.String()}, nil
}

func localAction(ref string) (Action, error) {
	path, err := workspace.PathFromURI(ref)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	return Action{Kind: InEditor, Target: path}, nil
}

// RunFunc executes a command. It is swapped out in tests.
type RunFunc func(ctx context.Context, name string, args ...string) error

// Opener executes classified actions.
//
// Create instances with [New].
type Opener struct {
	Run RunFunc
	// Editor is the command line used for [InEditor] actions; the target
	// path is appended.
	Editor []string
	// Browser is the command line used for [External] actions; the target
	// URI is appended.
	Browser []string
}

// New creates an [Opener] with the given editor command. An empty editor
// falls back to $VISUAL, $EDITOR, then the platform opener.
func New(editor string) *Opener {
	o := &Opener{
		Browser: platformOpener(),
		Run:     runCommand,
	}

	for _, e := range []string{editor, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if fields := strings.Fields(e); len(fields) > 0 {
			o.Editor = fields

			break
		}
	}

	if o.Editor == nil {
		o.Editor = o.Browser
	}

	return o
}

// Open classifies ref and runs the matching command.
func (o *Opener) Open(ctx context.Context, ref string) (Action, error) {
	action, err := Classify(ref)
	if err != nil {
		return Action{}, err
	}

	argv := o.Browser
	if action.Kind == InEditor {
		argv = o.Editor
	}

	if len(argv) == 0 {
		return action, fmt.Errorf("no command configured to open %s target", action.Kind)
	}

	slog.Debug("opening reference",
		slog.String("kind", action.Kind.String()),
		slog.String("target", action.Target),
		slog.String("command", argv[0]),
	)

	args := append(append([]string{}, argv[1:]...), action.Target)

	err = o.Run(ctx, argv[0], args...)
	if err != nil {
		return action, fmt.Errorf("open %s: %w", action.Target, err)
	}

	return action, nil
}

func platformOpener() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	}

	return []string{"xdg-open"}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	//nolint:gosec // The command comes from user configuration.
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
