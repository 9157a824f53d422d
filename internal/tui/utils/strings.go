package utils

import "github.com/mattn/go-runewidth"

// TruncateString cuts s to at most width terminal cells, marking the cut
// with an ellipsis. s must not contain escape sequences.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight fills s with spaces up to width cells, truncating when longer.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
