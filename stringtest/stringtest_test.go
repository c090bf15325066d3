package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/ponder/stringtest"
)

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single line with both newlines": {
			input: "\nhello\n",
			want:  "hello",
		},
		"common indent tabs": {
			input: "\n\t\t/// @ponder\n\t\t/// @preview a.png\n\t\tvoid f() {}\n\t",
			want:  "/// @ponder\n/// @preview a.png\nvoid f() {}",
		},
		"varying indent": {
			input: `
    class Foo {
      /// @ponder demo.gif
    }`,
			want: "class Foo {\n  /// @ponder demo.gif\n}",
		},
		"whitespace-only lines": {
			input: "\n    line1\n    \n    line3",
			want:  "line1\n\nline3",
		},
		"preserves multiple leading newlines minus one": {
			input: "\n\nline1\nline2",
			want:  "\nline1\nline2",
		},
		"preserves multiple trailing newlines minus one": {
			input: "line1\nline2\n\n",
			want:  "line1\nline2\n",
		},
		"already dedented": {
			input: "/// @ponder\n  /// @detailed x",
			want:  "/// @ponder\n  /// @detailed x",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.Input(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantLF   string
		wantCRLF string
		input    []string
	}{
		"empty input": {
			input:    nil,
			wantLF:   "",
			wantCRLF: "",
		},
		"single string": {
			input:    []string{"hello"},
			wantLF:   "hello",
			wantCRLF: "hello",
		},
		"three strings": {
			input:    []string{"a", "", "c"},
			wantLF:   "a\n\nc",
			wantCRLF: "a\r\n\r\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantLF, stringtest.JoinLF(tc.input...))
			assert.Equal(t, tc.wantCRLF, stringtest.JoinCRLF(tc.input...))
		})
	}
}
