// Package width measures how many terminal columns text occupies.
package width

import (
	dw "github.com/mattn/go-runewidth"
)

// East Asian ambiguous characters are measured as narrow so results do not
// depend on the locale of the running process.
var condition = &dw.Condition{EastAsianWidth: false}

// Rune returns the display width of r: 0, 1 or 2. Control characters,
// combining marks and runes outside the Unicode range measure 0.
func Rune(r rune) int {
	return condition.RuneWidth(r)
}

// String returns the total display width of s, the sum of the width of
// each of its runes.
func String(s string) int {
	total := 0
	for _, r := range s {
		total += Rune(r)
	}
	return total
}
