package tui

import "github.com/lixenwraith/scrollview/terminal"

// Router routes scroll input across nested scroll regions.
//
// Route walks the path innermost-first and stops at the first region
// that returns other than OutcomeBubble. An inner region therefore
// captures wheel events until it cannot move any further, after which
// the motion scrolls the enclosing region.
type Router struct {
	// ForwardKeys are keys always offered to the wrapped content
	// widget instead of being routed as scroll input
	ForwardKeys map[terminal.Key]bool
}

// Route resolves one event against a nesting path of scroll regions,
// ordered innermost first. Returns OutcomeUnchanged when no region
// claims the event; the caller then offers it to the innermost
// wrapped widget.
func (rt *Router) Route(ev terminal.Event, path []*ScrollRegion) Outcome {
	switch ev.Type {
	case terminal.EventKey:
		return rt.routeKey(ev, path)
	case terminal.EventMouse:
		return rt.routeMouse(ev, path)
	}
	return OutcomeUnchanged
}

func (rt *Router) routeKey(ev terminal.Event, path []*ScrollRegion) Outcome {
	if rt != nil && rt.ForwardKeys[ev.Key] {
		return OutcomeContinue
	}
	// Keyboard scrolling applies only while the innermost region
	// holds focus
	if len(path) == 0 || !path[0].Focused {
		return OutcomeUnchanged
	}
	for _, sr := range path {
		if o := sr.handleKey(ev); o != OutcomeBubble {
			return o
		}
	}
	return OutcomeUnchanged
}

func (rt *Router) routeMouse(ev terminal.Event, path []*ScrollRegion) Outcome {
	// An active scrollbar drag captures all mouse input for its
	// region, even when the pointer has left the track
	for _, sr := range path {
		if sr.Dragging() {
			return sr.handleDrag(ev)
		}
	}
	for _, sr := range path {
		if o := sr.handleMouse(ev); o != OutcomeBubble {
			return o
		}
	}
	return OutcomeUnchanged
}

func (sr *ScrollRegion) handleKey(ev terminal.Event) Outcome {
	switch ev.Key {
	case terminal.KeyPageUp:
		return scrollOutcome(&sr.V, sr.V.PageDelta(-1))
	case terminal.KeyPageDown:
		return scrollOutcome(&sr.V, sr.V.PageDelta(+1))
	case terminal.KeyHome:
		if !sr.V.CanScroll() {
			return OutcomeBubble
		}
		if sr.V.Home() {
			return OutcomeChanged
		}
		return OutcomeBubble
	case terminal.KeyEnd:
		if !sr.V.CanScroll() {
			return OutcomeBubble
		}
		if sr.V.End() {
			return OutcomeChanged
		}
		return OutcomeBubble
	}
	return OutcomeBubble
}

func (sr *ScrollRegion) handleMouse(ev terminal.Event) Outcome {
	if ev.MouseBtn.IsWheel() {
		a, delta := sr.wheelTarget(ev)
		return scrollOutcome(a, delta)
	}

	// Scrollbar hit-testing is positional and unambiguous: a press on
	// a track belonging to this region is handled here and never
	// bubbles
	if ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionPress {
		l := sr.layout
		if l.HasVBar && l.VBar.Contains(ev.MouseX, ev.MouseY) {
			sr.dragV = true
			if sr.V.ScrollTo(TrackTarget(ev.MouseY, l.VBar.Y, l.VBar.H, &sr.V)) {
				return OutcomeChanged
			}
			return OutcomeUnchanged
		}
		if l.HasHBar && l.HBar.Contains(ev.MouseX, ev.MouseY) {
			sr.dragH = true
			if sr.H.ScrollTo(TrackTarget(ev.MouseX, l.HBar.X, l.HBar.W, &sr.H)) {
				return OutcomeChanged
			}
			return OutcomeUnchanged
		}
	}

	return OutcomeBubble
}

// handleDrag continues or ends a captured scrollbar drag
func (sr *ScrollRegion) handleDrag(ev terminal.Event) Outcome {
	switch ev.MouseAction {
	case terminal.MouseActionDrag:
		l := sr.layout
		if sr.dragV {
			if sr.V.ScrollTo(TrackTarget(ev.MouseY, l.VBar.Y, l.VBar.H, &sr.V)) {
				return OutcomeChanged
			}
			return OutcomeUnchanged
		}
		if sr.H.ScrollTo(TrackTarget(ev.MouseX, l.HBar.X, l.HBar.W, &sr.H)) {
			return OutcomeChanged
		}
		return OutcomeUnchanged
	case terminal.MouseActionRelease, terminal.MouseActionMove:
		sr.dragH = false
		sr.dragV = false
		return OutcomeUnchanged
	}
	return OutcomeUnchanged
}

// wheelTarget selects axis and signed step for a wheel tick.
// Alt turns a vertical tick into horizontal motion
func (sr *ScrollRegion) wheelTarget(ev terminal.Event) (*Axis, int) {
	alt := ev.Modifiers&terminal.ModAlt != 0
	switch ev.MouseBtn {
	case terminal.MouseBtnWheelUp:
		if alt {
			return &sr.H, -sr.H.Step()
		}
		return &sr.V, -sr.V.Step()
	case terminal.MouseBtnWheelDown:
		if alt {
			return &sr.H, sr.H.Step()
		}
		return &sr.V, sr.V.Step()
	case terminal.MouseBtnWheelLeft:
		return &sr.H, -sr.H.Step()
	case terminal.MouseBtnWheelRight:
		return &sr.H, sr.H.Step()
	}
	return &sr.V, 0
}

// scrollOutcome applies a delta to an axis and maps the result to a
// routing outcome: regions that cannot move pass the event outward
func scrollOutcome(a *Axis, delta int) Outcome {
	if !a.CanScroll() {
		return OutcomeBubble
	}
	if a.ScrollBy(delta) {
		return OutcomeChanged
	}
	return OutcomeBubble
}
