package tui

// Visibility controls when a scrollbar track reserves space and draws
type Visibility uint8

const (
	// VisibilityShow always reserves the track, drawing a no-scroll
	// shade when the content fits
	VisibilityShow Visibility = iota
	// VisibilityMinimal reserves the track only while the content
	// overflows the page
	VisibilityMinimal
	// VisibilityNoRender never reserves the track
	VisibilityNoRender
)

// Scrollbar glyphs, one cell each
const (
	glyphTrack     = '░'
	glyphThumb     = '█'
	glyphNoScrollV = '┊'
	glyphNoScrollH = '┈'
)

// Thumb computes the thumb position within a scrollbar track.
// Both results are floored and clamped so start+length <= track
func Thumb(track int, a *Axis) (start, length int) {
	if track <= 0 {
		return 0, 0
	}
	content := a.ContentLength()
	if content < 1 {
		content = 1
	}

	length = track * a.PageLength() / content
	if length < 1 {
		length = 1
	}
	if length > track {
		length = track
	}

	start = track * a.Offset() / content
	if start < 0 {
		start = 0
	}
	if start+length > track {
		start = track - length
	}
	return start, length
}

// DrawScrollbarV renders a vertical track with thumb into bar,
// which must be one column wide
func DrawScrollbarV(r Region, bar Rect, a *Axis, th Theme) {
	rg := r.At(bar)
	if rg.Empty() {
		return
	}

	if a.MaxOffset() == 0 {
		for y := 0; y < rg.H; y++ {
			rg.Cell(0, y, glyphNoScrollV, DefaultStyle(th.NoScroll))
		}
		return
	}

	start, length := Thumb(rg.H, a)
	for y := 0; y < rg.H; y++ {
		if y >= start && y < start+length {
			rg.Cell(0, y, glyphThumb, DefaultStyle(th.Thumb))
		} else {
			rg.Cell(0, y, glyphTrack, DefaultStyle(th.Track))
		}
	}
}

// DrawScrollbarH renders a horizontal track with thumb into bar,
// which must be one row tall
func DrawScrollbarH(r Region, bar Rect, a *Axis, th Theme) {
	rg := r.At(bar)
	if rg.Empty() {
		return
	}

	if a.MaxOffset() == 0 {
		for x := 0; x < rg.W; x++ {
			rg.Cell(x, 0, glyphNoScrollH, DefaultStyle(th.NoScroll))
		}
		return
	}

	start, length := Thumb(rg.W, a)
	for x := 0; x < rg.W; x++ {
		if x >= start && x < start+length {
			rg.Cell(x, 0, glyphThumb, DefaultStyle(th.Thumb))
		} else {
			rg.Cell(x, 0, glyphTrack, DefaultStyle(th.Track))
		}
	}
}

// TrackTarget maps a click position within a track to an offset:
// the start of the track is offset 0, the end is MaxOffset
func TrackTarget(pos, trackStart, trackLen int, a *Axis) int {
	rel := pos - trackStart
	if rel < 0 {
		rel = 0
	}
	span := trackLen - 1
	if span < 1 {
		span = 1
	}
	if rel > span {
		rel = span
	}
	return a.MaxOffset() * rel / span
}
