// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

import "strings"

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// Tabs returns a string of n tabs.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}

// Spaces returns a string of n*width spaces.
func Spaces(n, width int) string {
	return strings.Repeat(" ", n*width)
}

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return Tabs(n)
	}
	return Spaces(n, width)
}

// Lines prefixes each of the given lines with n levels of indentation,
// returning a new slice. Empty lines are left empty.
func Lines(lines []string, ich Character, n, width int) []string {
	prefix := String(ich, n, width)
	res := make([]string, len(lines))
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		res[i] = prefix + ln
	}
	return res
}
