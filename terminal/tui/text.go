package tui

import "github.com/mattn/go-runewidth"

// Text draws a string at (x, y), clipping at the region edge.
// Wide runes occupy two cells; the continuation cell is left blank.
func (r Region) Text(x, y int, s string, st Style) {
	if y < 0 || y >= r.H {
		return
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.W {
			break
		}
		r.Cell(x, y, ch, st)
		if w == 2 {
			r.Cell(x+1, y, ' ', st)
		}
		x += w
	}
}

// Truncate shortens a string to the given display width with an
// ellipsis suffix
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}
