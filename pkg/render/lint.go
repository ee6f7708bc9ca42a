// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import "strings"

// LintCode is the cleanup pass applied to generated executable cells.
// Template expansion tends to leave trailing blank lines behind; strip them
// so every code cell ends cleanly. Interior blank lines are intentional and
// kept.
func LintCode(code string) string {
	code = strings.TrimRight(code, " \t\n")
	// Drop trailing whitespace on each line as well.
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
