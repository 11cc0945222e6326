package tui

import "github.com/lixenwraith/scrollview/terminal"

// ViewPort lets a widget without scrolling support of its own be
// rendered at full logical size into a virtual canvas; only the
// window selected by the region's offsets is copied into the screen
// buffer.
//
// ViewPorts nest: wrap an inner ViewPort with AsWidget and render it
// inside an outer one. Each level keeps its own independent offsets
// and the levels communicate only through rectangle passing.
type ViewPort struct {
	Scroll ScrollRegion

	virtW  int
	virtH  int
	canvas []terminal.Cell
}

// NewViewPort creates a viewport with the given virtual canvas size
func NewViewPort(virtW, virtH int, cfg Config) *ViewPort {
	v := &ViewPort{Scroll: *NewScrollRegion(cfg)}
	v.SetVirtualSize(virtW, virtH)
	return v
}

// SetVirtualSize resizes the virtual canvas and updates the axis
// content lengths to match. Negative input clamps to zero
func (v *ViewPort) SetVirtualSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	v.virtW = w
	v.virtH = h
	if need := w * h; cap(v.canvas) < need {
		v.canvas = make([]terminal.Cell, need)
	} else {
		v.canvas = v.canvas[:need]
	}
	v.Scroll.H.SetContentLength(w)
	v.Scroll.V.SetContentLength(h)
}

// VirtualSize returns the virtual canvas dimensions
func (v *ViewPort) VirtualSize() (w, h int) {
	return v.virtW, v.virtH
}

// Render arranges the region inside outer, renders w at full virtual
// size, copies the visible window into r, and draws the decorations.
// Returns the layout for this frame
func (v *ViewPort) Render(r Region, outer Rect, w Widget, th Theme) ScrollLayout {
	l := Arrange(outer, &v.Scroll)

	for i := range v.canvas {
		v.canvas[i] = terminal.Cell{Rune: ' '}
	}
	if w != nil && v.virtW > 0 && v.virtH > 0 {
		w.Render(NewRegion(v.canvas, v.virtW, NewRect(0, 0, v.virtW, v.virtH)))
	}

	v.copyWindow(r, l.Content)
	v.Scroll.DrawDecorations(r, th)
	return l
}

// copyWindow maps screen cell (x, y) in content to virtual cell
// (x+hOffset, y+vOffset). Cells past the canvas bounds render blank.
// Offsets past content bounds cannot occur: the axis clamp keeps
// offset <= max(0, content-page) + overscroll
func (v *ViewPort) copyWindow(r Region, content Rect) {
	dst := r.At(content)
	hOff, vOff := v.Scroll.Offsets()
	for y := 0; y < dst.H; y++ {
		srcY := y + vOff
		for x := 0; x < dst.W; x++ {
			srcX := x + hOff
			if srcX >= v.virtW || srcY >= v.virtH {
				dst.Cell(x, y, ' ', Style{})
				continue
			}
			c := v.canvas[srcY*v.virtW+srcX]
			dst.Cell(x, y, c.Rune, Style{Fg: c.Fg, Bg: c.Bg, Attr: c.Attrs})
		}
	}
}

// ScreenToVirtual maps a screen coordinate inside the content rect to
// virtual canvas coordinates. ok is false outside the content rect
func (v *ViewPort) ScreenToVirtual(x, y int) (vx, vy int, ok bool) {
	content := v.Scroll.Layout().Content
	if !content.Contains(x, y) {
		return 0, 0, false
	}
	hOff, vOff := v.Scroll.Offsets()
	return x - content.X + hOff, y - content.Y + vOff, true
}

// AsWidget adapts this viewport, wrapping inner, into a Widget so it
// can be placed inside another scroll region
func (v *ViewPort) AsWidget(inner Widget, th Theme) Widget {
	return WidgetFunc(func(r Region) {
		v.Render(r, r.Rect, inner, th)
	})
}
