package tui

import (
	"testing"

	"github.com/lixenwraith/scrollview/terminal"
)

func wheelEvent(btn terminal.MouseButton, mod terminal.Modifier, x, y int) terminal.Event {
	return terminal.Event{
		Type:        terminal.EventMouse,
		MouseBtn:    btn,
		MouseAction: terminal.MouseActionPress,
		Modifiers:   mod,
		MouseX:      x,
		MouseY:      y,
	}
}

func keyEvent(key terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: key}
}

func vertRegion(content, page int) *ScrollRegion {
	return NewScrollRegion(Config{
		Vertical: AxisConfig{ContentLength: content, PageLength: page},
	})
}

func TestRouteWheelNestedBubble(t *testing.T) {
	inner := vertRegion(5, 10) // nothing to scroll
	outer := vertRegion(100, 10)
	rt := &Router{}

	got := rt.Route(wheelEvent(terminal.MouseBtnWheelDown, terminal.ModNone, 3, 3),
		[]*ScrollRegion{inner, outer})

	if got != OutcomeChanged {
		t.Fatalf("Route() = %v, want Changed", got)
	}
	if inner.V.Offset() != 0 {
		t.Errorf("inner offset = %d, want 0", inner.V.Offset())
	}
	if outer.V.Offset() != 1 {
		t.Errorf("outer offset = %d, want 1", outer.V.Offset())
	}
}

func TestRouteWheelExhaustedInnerBubbles(t *testing.T) {
	inner := vertRegion(20, 10)
	outer := vertRegion(100, 10)
	inner.V.End()
	rt := &Router{}

	got := rt.Route(wheelEvent(terminal.MouseBtnWheelDown, terminal.ModNone, 3, 3),
		[]*ScrollRegion{inner, outer})

	if got != OutcomeChanged {
		t.Fatalf("Route() = %v, want Changed", got)
	}
	if inner.V.Offset() != 10 {
		t.Errorf("inner offset = %d, want 10 (unmoved)", inner.V.Offset())
	}
	if outer.V.Offset() != 1 {
		t.Errorf("outer offset = %d, want 1", outer.V.Offset())
	}
}

func TestRouteWheelChainExhaustedUnchanged(t *testing.T) {
	inner := vertRegion(5, 10)
	outer := vertRegion(5, 10)
	rt := &Router{}

	got := rt.Route(wheelEvent(terminal.MouseBtnWheelDown, terminal.ModNone, 3, 3),
		[]*ScrollRegion{inner, outer})

	if got != OutcomeUnchanged {
		t.Errorf("Route() = %v, want Unchanged", got)
	}
}

func TestRouteWheelStep(t *testing.T) {
	sr := vertRegion(200, 40)
	rt := &Router{}

	rt.Route(wheelEvent(terminal.MouseBtnWheelDown, terminal.ModNone, 0, 0),
		[]*ScrollRegion{sr})
	if sr.V.Offset() != 4 {
		t.Errorf("offset = %d, want one step of page/10 = 4", sr.V.Offset())
	}

	rt.Route(wheelEvent(terminal.MouseBtnWheelUp, terminal.ModNone, 0, 0),
		[]*ScrollRegion{sr})
	if sr.V.Offset() != 0 {
		t.Errorf("offset = %d, want 0 after wheel up", sr.V.Offset())
	}
}

func TestRouteAltWheelScrollsHorizontal(t *testing.T) {
	sr := NewScrollRegion(Config{
		Horizontal: AxisConfig{ContentLength: 100, PageLength: 10},
		Vertical:   AxisConfig{ContentLength: 100, PageLength: 10},
	})
	rt := &Router{}

	got := rt.Route(wheelEvent(terminal.MouseBtnWheelDown, terminal.ModAlt, 0, 0),
		[]*ScrollRegion{sr})

	if got != OutcomeChanged {
		t.Fatalf("Route() = %v, want Changed", got)
	}
	if sr.H.Offset() != 1 {
		t.Errorf("horizontal offset = %d, want 1", sr.H.Offset())
	}
	if sr.V.Offset() != 0 {
		t.Errorf("vertical offset = %d, want 0", sr.V.Offset())
	}
}

func TestRouteWheelLeftRight(t *testing.T) {
	sr := NewScrollRegion(Config{
		Horizontal: AxisConfig{ContentLength: 100, PageLength: 10},
	})
	rt := &Router{}

	rt.Route(wheelEvent(terminal.MouseBtnWheelRight, terminal.ModNone, 0, 0),
		[]*ScrollRegion{sr})
	if sr.H.Offset() != 1 {
		t.Errorf("offset = %d, want 1 after wheel right", sr.H.Offset())
	}

	rt.Route(wheelEvent(terminal.MouseBtnWheelLeft, terminal.ModNone, 0, 0),
		[]*ScrollRegion{sr})
	if sr.H.Offset() != 0 {
		t.Errorf("offset = %d, want 0 after wheel left", sr.H.Offset())
	}
}

func TestRouteKeysRequireFocus(t *testing.T) {
	sr := vertRegion(100, 10)
	rt := &Router{}

	got := rt.Route(keyEvent(terminal.KeyPageDown), []*ScrollRegion{sr})
	if got != OutcomeUnchanged {
		t.Fatalf("unfocused Route() = %v, want Unchanged", got)
	}
	if sr.V.Offset() != 0 {
		t.Errorf("offset = %d, want 0 without focus", sr.V.Offset())
	}

	sr.Focused = true
	got = rt.Route(keyEvent(terminal.KeyPageDown), []*ScrollRegion{sr})
	if got != OutcomeChanged {
		t.Fatalf("focused Route() = %v, want Changed", got)
	}
	if sr.V.Offset() != 10 {
		t.Errorf("offset = %d, want 10 after page down", sr.V.Offset())
	}
}

func TestRouteHomeEndKeys(t *testing.T) {
	sr := vertRegion(100, 10)
	sr.Focused = true
	rt := &Router{}

	rt.Route(keyEvent(terminal.KeyEnd), []*ScrollRegion{sr})
	if sr.V.Offset() != 90 {
		t.Errorf("offset = %d, want 90 after End", sr.V.Offset())
	}

	rt.Route(keyEvent(terminal.KeyHome), []*ScrollRegion{sr})
	if sr.V.Offset() != 0 {
		t.Errorf("offset = %d, want 0 after Home", sr.V.Offset())
	}
}

func TestRoutePageKeyBubblesToOuter(t *testing.T) {
	inner := vertRegion(5, 10)
	outer := vertRegion(100, 10)
	inner.Focused = true
	rt := &Router{}

	got := rt.Route(keyEvent(terminal.KeyPageDown), []*ScrollRegion{inner, outer})
	if got != OutcomeChanged {
		t.Fatalf("Route() = %v, want Changed", got)
	}
	if outer.V.Offset() != 10 {
		t.Errorf("outer offset = %d, want 10", outer.V.Offset())
	}
}

func TestRouteForwardKeysContinue(t *testing.T) {
	sr := vertRegion(100, 10)
	sr.Focused = true
	rt := &Router{ForwardKeys: map[terminal.Key]bool{terminal.KeyTab: true}}

	got := rt.Route(keyEvent(terminal.KeyTab), []*ScrollRegion{sr})
	if got != OutcomeContinue {
		t.Errorf("Route() = %v, want Continue", got)
	}
	if sr.V.Offset() != 0 {
		t.Errorf("offset = %d, want 0", sr.V.Offset())
	}
}

func TestRouteScrollbarClickNeverBubbles(t *testing.T) {
	// Inner region has nothing to scroll but shows its track; a click
	// on that track stays at the inner region
	inner := NewScrollRegion(Config{
		Vertical: AxisConfig{ContentLength: 5, Visibility: VisibilityShow},
	})
	outer := vertRegion(100, 10)
	Arrange(NewRect(0, 0, 40, 20), inner)

	bar := inner.Layout().VBar
	if !inner.Layout().HasVBar {
		t.Fatal("expected a vertical track for VisibilityShow")
	}

	rt := &Router{}
	ev := terminal.Event{
		Type:        terminal.EventMouse,
		MouseBtn:    terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionPress,
		MouseX:      bar.X,
		MouseY:      bar.Y + 3,
	}

	got := rt.Route(ev, []*ScrollRegion{inner, outer})
	if got != OutcomeUnchanged {
		t.Errorf("Route() = %v, want Unchanged", got)
	}
	if outer.V.Offset() != 0 {
		t.Errorf("outer offset = %d, want 0 (click must not bubble)", outer.V.Offset())
	}
}

func TestRouteScrollbarClickMovesOffset(t *testing.T) {
	sr := NewScrollRegion(Config{
		Vertical: AxisConfig{ContentLength: 100, Visibility: VisibilityShow},
	})
	Arrange(NewRect(0, 0, 40, 20), sr)
	// Second frame so max offset reflects the real page length
	Arrange(NewRect(0, 0, 40, 20), sr)

	bar := sr.Layout().VBar
	rt := &Router{}
	ev := terminal.Event{
		Type:        terminal.EventMouse,
		MouseBtn:    terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionPress,
		MouseX:      bar.X,
		MouseY:      bar.Y + bar.H - 1,
	}

	got := rt.Route(ev, []*ScrollRegion{sr})
	if got != OutcomeChanged {
		t.Fatalf("Route() = %v, want Changed", got)
	}
	if sr.V.Offset() != sr.V.MaxOffset() {
		t.Errorf("offset = %d, want max %d for a click at track end",
			sr.V.Offset(), sr.V.MaxOffset())
	}
}

func TestRouteScrollbarDragCapture(t *testing.T) {
	sr := NewScrollRegion(Config{
		Vertical: AxisConfig{ContentLength: 100, Visibility: VisibilityShow},
	})
	Arrange(NewRect(0, 0, 40, 20), sr)
	Arrange(NewRect(0, 0, 40, 20), sr)

	bar := sr.Layout().VBar
	rt := &Router{}

	press := terminal.Event{
		Type:        terminal.EventMouse,
		MouseBtn:    terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionPress,
		MouseX:      bar.X,
		MouseY:      bar.Y,
	}
	rt.Route(press, []*ScrollRegion{sr})
	if !sr.Dragging() {
		t.Fatal("expected drag captured after press on track")
	}

	// Drag outside the track keeps targeting this region's offset
	drag := terminal.Event{
		Type:        terminal.EventMouse,
		MouseBtn:    terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionDrag,
		MouseX:      0,
		MouseY:      bar.Y + bar.H - 1,
	}
	got := rt.Route(drag, []*ScrollRegion{sr})
	if got != OutcomeChanged {
		t.Fatalf("drag Route() = %v, want Changed", got)
	}
	if sr.V.Offset() != sr.V.MaxOffset() {
		t.Errorf("offset = %d, want max %d", sr.V.Offset(), sr.V.MaxOffset())
	}

	release := terminal.Event{
		Type:        terminal.EventMouse,
		MouseBtn:    terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionRelease,
		MouseX:      0,
		MouseY:      0,
	}
	rt.Route(release, []*ScrollRegion{sr})
	if sr.Dragging() {
		t.Error("expected drag released")
	}
}

func TestRouteUnclaimedMouseUnchanged(t *testing.T) {
	sr := vertRegion(100, 10)
	rt := &Router{}

	ev := terminal.Event{
		Type:        terminal.EventMouse,
		MouseBtn:    terminal.MouseBtnNone,
		MouseAction: terminal.MouseActionMove,
		MouseX:      3,
		MouseY:      3,
	}
	if got := rt.Route(ev, []*ScrollRegion{sr}); got != OutcomeUnchanged {
		t.Errorf("Route() = %v, want Unchanged", got)
	}
}
