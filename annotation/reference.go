package annotation

import (
	"regexp"
	"strings"
)

var schemeExpr = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// Reference locates a preview or detailed asset. It is either a remote URL,
// a resolved file:// URI, or (when no project root was available) the raw
// relative path from the annotation.
type Reference string

// String returns the reference as written or resolved.
func (r Reference) String() string {
	return string(r)
}

// IsRemote reports whether r begins with a web scheme.
func (r Reference) IsRemote() bool {
	lower := strings.ToLower(string(r))

	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// IsAbsolute reports whether r is a scheme:// locator. Absolute references
// are never passed to a [Resolver].
func (r Reference) IsAbsolute() bool {
	return schemeExpr.MatchString(string(r))
}

// IsLocalFile reports whether r is a file:// URI.
func (r Reference) IsLocalFile() bool {
	return strings.HasPrefix(strings.ToLower(string(r)), "file://")
}

// Resolver supplies project roots for documents. It is implemented by the
// host; see go.jacobcolvin.com/ponder/workspace for a file system backed
// implementation.
type Resolver interface {
	// ProjectRoot returns the root location enclosing the document with
	// the given URI, or false if there is none.
	ProjectRoot(uri string) (string, bool)
	// JoinPath joins a relative path onto root and returns an absolute
	// location.
	JoinPath(root, rel string) string
}

// Resolve turns an annotation token into a [Reference]. Absolute tokens are
// returned as-is; relative tokens are joined onto the project root of doc.
// Without a resolver or a project root, the token is returned unresolved.
func (p Parser) Resolve(doc Document, token string) Reference {
	ref := Reference(token)
	if ref.IsAbsolute() || p.Resolver == nil {
		return ref
	}

	root, ok := p.Resolver.ProjectRoot(doc.URI())
	if !ok {
		return ref
	}

	return Reference(p.Resolver.JoinPath(root, token))
}
