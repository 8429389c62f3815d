// Package snapshot provides helpers for asserting on rendered TUI output
// without coupling tests to ANSI styling.
package snapshot

import (
	"regexp"
	"strings"
	"testing"
)

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// StripANSI removes all ANSI escape codes from a string, including OSC 8
// hyperlink sequences.
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// AssertContains checks that the stripped output contains the substring.
func AssertContains(t *testing.T, actual, substr string) {
	t.Helper()
	stripped := StripANSI(actual)
	if !strings.Contains(stripped, substr) {
		t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, stripped)
	}
}

// AssertNotContains checks that the stripped output does NOT contain the
// substring.
func AssertNotContains(t *testing.T, actual, substr string) {
	t.Helper()
	stripped := StripANSI(actual)
	if strings.Contains(stripped, substr) {
		t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, stripped)
	}
}

// Lines returns the line count of the rendered output.
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the maximum line width of the rendered output in bytes of
// stripped text. Sufficient for ASCII-only assertions.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}
	return maxWidth
}
