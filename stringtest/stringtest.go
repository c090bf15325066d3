// Package stringtest provides helpers for writing multi-line text fixtures
// in tests.
package stringtest

import "strings"

// Input dedents a raw string literal for use as test input.
//
// One leading newline and one trailing newline (with any indentation after
// it) are removed, the longest common
// indentation of the non-blank lines is stripped, and whitespace-only lines
// become empty. This lets fixtures be indented along with the test code:
//
//	doc := stringtest.Input(`
//		/// @ponder
//		/// @preview demo.png
//		void main() {}
//	`)
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(strings.TrimRight(s, " \t"), "\n")

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = line[indent:]
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins lines with LF line endings.
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with CRLF line endings, for fixtures that exercise
// Windows-style documents.
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}
