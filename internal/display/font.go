package display

import "strings"

// glyphHeight is the number of rows in every block glyph.
const glyphHeight = 5

var glyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// renderBlock draws text in the block font, one space between glyphs.
// Unknown runes render as blanks of glyph width.
func renderBlock(text string) string {
	var rows [glyphHeight]strings.Builder
	first := true
	for _, r := range text {
		g, ok := glyphs[r]
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			if ok {
				rows[i].WriteString(g[i])
			} else {
				rows[i].WriteString("   ")
			}
		}
		first = false
	}
	lines := make([]string, glyphHeight)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
