package tui

// ScrollLayout is the per-frame geometry of a scroll region. It is
// derived data: recomputed by Arrange every frame, never persisted.
type ScrollLayout struct {
	// Outer is the full rect the region was arranged into
	Outer Rect
	// Content is what remains after border and track reservations;
	// the wrapped widget draws here
	Content Rect

	HBar    Rect
	VBar    Rect
	HasHBar bool
	HasVBar bool
}

// Arrange computes the region's geometry for this frame and feeds the
// resulting content size back into the axes as the new page lengths.
//
// Reservation order: border first, then the vertical track column from
// the right edge, then the horizontal track row from the bottom of the
// remainder, so the two tracks never overlap and the corner cell goes
// to the horizontal track.
//
// Track visibility under VisibilityMinimal depends on MaxOffset, which
// uses the page length written by the previous Arrange call. This
// one-frame lag is intentional; no fixed-point iteration is attempted.
func Arrange(outer Rect, sr *ScrollRegion) ScrollLayout {
	l := ScrollLayout{Outer: outer}

	inner := outer.Inset(sr.Border)

	if !inner.Empty() {
		if barNeeded(sr.VBar, &sr.V) {
			inner, l.VBar = inner.CutRight(1)
			l.HasVBar = !l.VBar.Empty()
		}
		if barNeeded(sr.HBar, &sr.H) {
			inner, l.HBar = inner.CutBottom(1)
			l.HasHBar = !l.HBar.Empty()
		}
		if l.HasVBar && l.HasHBar {
			// The corner cell goes to the horizontal track's end
			l.VBar.H--
			l.HBar.W++
			l.HasVBar = !l.VBar.Empty()
		}
	}
	l.Content = inner

	sr.H.SetPageLength(l.Content.W)
	sr.V.SetPageLength(l.Content.H)

	sr.layout = l
	return l
}

// barNeeded decides track reservation from the visibility policy and
// the axis state of the previous frame
func barNeeded(vis Visibility, a *Axis) bool {
	if a.ContentLength() == 0 {
		// Nothing to scroll, regardless of policy
		return false
	}
	switch vis {
	case VisibilityShow:
		return true
	case VisibilityMinimal:
		return a.MaxOffset() > 0
	default:
		return false
	}
}

// DrawDecorations renders the border and any scrollbars of the
// current layout
func (sr *ScrollRegion) DrawDecorations(r Region, th Theme) {
	l := sr.layout
	if sr.Border > 0 {
		r.At(l.Outer).Box(DefaultStyle(th.Border))
	}
	if l.HasVBar {
		DrawScrollbarV(r, l.VBar, &sr.V, th)
	}
	if l.HasHBar {
		DrawScrollbarH(r, l.HBar, &sr.H, th)
	}
}
