package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// TabWidth is the column stop used when a name contains tab characters.
const TabWidth = 4

// SanitizeName makes a filesystem name safe to draw on a single terminal row.
// Control characters become '?', line breaks become spaces, tabs expand to
// the next tab stop and bidi/zero-width formatting runes are replaced by
// U+FFFD so they cannot reorder or hide neighbouring text.
func SanitizeName(name string) string {
	if !needsSanitizing(name) {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	column := 0
	for _, r := range name {
		switch {
		case r == '\t':
			spaces := TabWidth - column%TabWidth
			b.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		case r == '\n' || r == '\r':
			r = ' '
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0):
			r = '?'
		case isFormattingRune(r):
			r = '�'
		}
		b.WriteRune(r)
		column += max(runewidth.RuneWidth(r), 1)
	}
	return b.String()
}

func needsSanitizing(text string) bool {
	for _, r := range text {
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) || isFormattingRune(r) {
			return true
		}
	}
	return false
}

func isFormattingRune(r rune) bool {
	switch {
	case r == 0x00AD, r == 0x061C, r == 0x180E, r == 0xFEFF:
		return true
	case r >= 0x200B && r <= 0x200F:
		return true
	case r >= 0x2028 && r <= 0x202E:
		return true
	case r >= 0x2060 && r <= 0x206F:
		return true
	}
	return false
}

// DisplayWidth reports how many terminal columns text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, marking the cut with an
// ellipsis. Wide runes are never split.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(ellipsis) {
		return ellipsis
	}
	return runewidth.Truncate(text, width, ellipsis)
}

// TruncateLeft keeps the end of text, which is the useful part of a path.
func TruncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(ellipsis) {
		return ellipsis
	}
	return runewidth.TruncateLeft(text, runewidth.StringWidth(text)-width+runewidth.StringWidth(ellipsis), ellipsis)
}

// PadRight fills text with spaces up to width columns.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}
