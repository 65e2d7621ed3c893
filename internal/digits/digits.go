// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digits applies display formatting to digit strings: zero padding
// and separator grouping counted from the least significant digit.
package digits

import "strings"

// Group inserts sep every interval characters of s, counting from the
// right. No separator is placed at the start of the result. Group returns s
// unchanged when interval <= 0 or len(s) <= interval.
//
// s must be ASCII; digit strings produced by radix.Format always are.
func Group(s string, interval int, sep rune) string {
	if interval <= 0 {
		return s
	}
	// Insertion points are measured in the original string. Inserting from
	// the right leaves every point to the left of it where it was.
	for at := len(s) - interval; at > 0; at -= interval {
		s = s[:at] + string(sep) + s[at:]
	}
	return s
}

// Pad left-pads s with '0' to width characters. Strings already at least
// width long are returned unchanged.
func Pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Strip removes every occurrence of sep from s.
func Strip(s string, sep rune) string {
	return strings.ReplaceAll(s, string(sep), "")
}
