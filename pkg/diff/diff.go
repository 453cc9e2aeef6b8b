// Package diff compares rendered output against golden snapshots.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified returns a line-based unified diff from expected to actual, or the
// empty string when they are identical. Output over 10,000 lines is truncated.
func Unified(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()
	expectedChars, actualChars, lines := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(expectedChars, actualChars, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", lineCount(expected), lineCount(actual))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitKeepingLast(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String()
}

// Changed reports whether actual differs from expected.
func Changed(expected, actual []byte) bool {
	return !bytes.Equal(expected, actual)
}

func lineCount(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	return len(splitKeepingLast(string(b)))
}

// splitKeepingLast splits on newlines, dropping the empty element after a
// trailing newline.
func splitKeepingLast(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
