package analysis

import "strings"

// lastLine extracts the window the reverse scanner operates on: the
// substring after the last newline, or the whole input if there is none
// (spec §4.1).
func lastLine(fragment string) string {
	if idx := strings.LastIndexByte(fragment, '\n'); idx >= 0 {
		return fragment[idx+1:]
	}

	return fragment
}

// selectLine returns the zero-based lineIdx-th line of fragment after
// splitting on newlines, or "" if lineIdx is out of range (spec §4.1,
// surround mode).
func selectLine(fragment string, lineIdx int) (string, bool) {
	if lineIdx < 0 {
		return "", false
	}

	lines := strings.Split(fragment, "\n")
	if lineIdx >= len(lines) {
		return "", false
	}

	return lines[lineIdx], true
}
