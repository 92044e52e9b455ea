// Package stringtest builds expected multi-line strings for tests.
package stringtest

import "strings"

// Input dedents a raw string literal so expected output can be indented with
// the surrounding test code.
//
// One leading and one trailing newline are removed, the longest common
// whitespace prefix of all non-blank lines is stripped, and whitespace-only
// lines become empty.
//
// Example:
//
//	want := stringtest.Input(`
//	    %
//	    %%
//	`) // -> "%\n%%"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	prefix := ""
	found := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		if !found {
			prefix = indent
			found = true

			continue
		}

		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected rendered output line by line, where an
// empty string stands for a blank line.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"",
//		"%",
//		"%%",
//		"%",
//		"",
//	) // -> "\n%\n%%\n%\n"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}
