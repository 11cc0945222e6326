package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell.Screen behind the cell-buffer interface used by
// the tui package. Flush writes a row-major cell slice, PollEvent
// translates tcell events into Event values.
type Screen struct {
	tc      tcell.Screen
	lastBtn tcell.ButtonMask
}

// NewScreen creates a Screen on the default terminal
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{tc: tc}, nil
}

// NewScreenFrom wraps an existing tcell.Screen, e.g. a simulation
// screen in tests
func NewScreenFrom(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Init enters the alternate screen and enables mouse reporting
func (s *Screen) Init() error {
	if err := s.tc.Init(); err != nil {
		return err
	}
	s.tc.EnableMouse()
	s.tc.HideCursor()
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns current terminal dimensions
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// Flush writes a cell buffer to the terminal
// Cells are row-major: cells[y*width + x]
func (s *Screen) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx >= len(cells) {
				return
			}
			c := cells[idx]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			s.tc.SetContent(x, y, ch, nil, styleToTcell(c.Fg, c.Bg, c.Attrs))
		}
	}
	s.tc.Show()
}

// PollEvent blocks for the next input event
// Returns EventNone when the screen is finalized
func (s *Screen) PollEvent() Event {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		if out, ok := s.translate(ev); ok {
			return out
		}
	}
}

func (s *Screen) translate(ev tcell.Event) (Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventKey:
		return translateKey(tev), true
	case *tcell.EventMouse:
		out, ok := translateMouse(tev, &s.lastBtn)
		return out, ok
	}
	return Event{}, false
}

func translateKey(tev *tcell.EventKey) Event {
	out := Event{Type: EventKey}
	mod := tev.Modifiers()
	if mod&tcell.ModShift != 0 {
		out.Modifiers |= ModShift
	}
	if mod&tcell.ModAlt != 0 {
		out.Modifiers |= ModAlt
	}
	if mod&tcell.ModCtrl != 0 {
		out.Modifiers |= ModCtrl
	}

	switch tev.Key() {
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyHome:
		out.Key = KeyHome
	case tcell.KeyEnd:
		out.Key = KeyEnd
	case tcell.KeyPgUp:
		out.Key = KeyPageUp
	case tcell.KeyPgDn:
		out.Key = KeyPageDown
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyDelete:
		out.Key = KeyDelete
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = tev.Rune()
	default:
		out.Key = KeyNone
	}
	return out
}

// translateMouse derives press/release/drag from the previous button
// mask, which tcell does not track for us
func translateMouse(tev *tcell.EventMouse, lastBtn *tcell.ButtonMask) (Event, bool) {
	x, y := tev.Position()
	out := Event{Type: EventMouse, MouseX: x, MouseY: y}

	mod := tev.Modifiers()
	if mod&tcell.ModShift != 0 {
		out.Modifiers |= ModShift
	}
	if mod&tcell.ModAlt != 0 {
		out.Modifiers |= ModAlt
	}
	if mod&tcell.ModCtrl != 0 {
		out.Modifiers |= ModCtrl
	}

	btn := tev.Buttons()

	// Wheel ticks are momentary and not part of the held-button state
	switch {
	case btn&tcell.WheelUp != 0:
		out.MouseBtn = MouseBtnWheelUp
		out.MouseAction = MouseActionPress
		return out, true
	case btn&tcell.WheelDown != 0:
		out.MouseBtn = MouseBtnWheelDown
		out.MouseAction = MouseActionPress
		return out, true
	case btn&tcell.WheelLeft != 0:
		out.MouseBtn = MouseBtnWheelLeft
		out.MouseAction = MouseActionPress
		return out, true
	case btn&tcell.WheelRight != 0:
		out.MouseBtn = MouseBtnWheelRight
		out.MouseAction = MouseActionPress
		return out, true
	}

	held := btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := *lastBtn
	*lastBtn = held

	switch {
	case held != 0 && prev == 0:
		out.MouseBtn = buttonFromMask(held)
		out.MouseAction = MouseActionPress
	case held == 0 && prev != 0:
		out.MouseBtn = buttonFromMask(prev)
		out.MouseAction = MouseActionRelease
	case held != 0:
		out.MouseBtn = buttonFromMask(held)
		out.MouseAction = MouseActionDrag
	default:
		out.MouseBtn = MouseBtnNone
		out.MouseAction = MouseActionMove
	}
	return out, true
}

func buttonFromMask(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button2 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button3 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}

// styleToTcell converts cell colors and attributes to a tcell.Style
// Zero RGB values map to the terminal default color
func styleToTcell(fg, bg RGB, attr Attr) tcell.Style {
	st := tcell.StyleDefault
	if !fg.IsDefault() {
		st = st.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	if !bg.IsDefault() {
		st = st.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	if attr&AttrBold != 0 {
		st = st.Bold(true)
	}
	if attr&AttrDim != 0 {
		st = st.Dim(true)
	}
	if attr&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if attr&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if attr&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
