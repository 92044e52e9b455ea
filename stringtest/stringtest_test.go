package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/asciiart/stringtest"
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
		"single row": {
			input: "%%",
			want:  "%%",
		},
		"framing newlines trimmed once": {
			input: "\n%%\n",
			want:  "%%",
		},
		"extra leading newline kept": {
			input: "\n\n%\n%%",
			want:  "\n%\n%%",
		},
		"extra trailing newline kept": {
			input: "%\n%%\n\n",
			want:  "%\n%%\n",
		},
		"common indent spaces": {
			input: `
    :;|
    %$#`,
			want: ":;|\n%$#",
		},
		"common indent tabs": {
			input: "\n\t@@\n\t##",
			want:  "@@\n##",
		},
		"varying indent": {
			input: `
    %
      %%
    %`,
			want: "%\n  %%\n%",
		},
		"whitespace-only lines emptied": {
			input: "\n    %\n      \n    %",
			want:  "%\n\n%",
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

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"empty input": {
			input: nil,
			want:  "",
		},
		"single string": {
			input: []string{"%"},
			want:  "%",
		},
		"framed grid": {
			input: []string{"", "%", "%%", "%", ""},
			want:  "\n%\n%%\n%\n",
		},
		"already contains newlines": {
			input: []string{"a\nb", "c"},
			want:  "a\nb\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.JoinLF(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}
