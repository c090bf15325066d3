package annotation

import "strings"

// Document is a read-only, line-addressed view of a text file.
//
// Line returns the text of line i (0-based) without its line terminator.
// Leading and trailing whitespace is preserved.
type Document interface {
	URI() string
	LineCount() int
	Line(i int) string
}

// Text is an in-memory [Document].
//
// Create instances with [NewText].
type Text struct {
	uri   string
	lines []string
}

// NewText splits content into lines. Both LF and CRLF line endings are
// accepted. Content ending with a line terminator has a final empty line,
// the same as an editor buffer.
func NewText(uri string, content []byte) *Text {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &Text{uri: uri, lines: lines}
}

// URI returns the document URI given to [NewText].
func (t *Text) URI() string {
	return t.uri
}

// LineCount returns the number of lines in the document.
func (t *Text) LineCount() int {
	return len(t.lines)
}

// Line returns line i, or an empty string when i is out of range.
func (t *Text) Line(i int) string {
	if i < 0 || i >= len(t.lines) {
		return ""
	}

	return t.lines[i]
}
