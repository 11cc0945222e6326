package tui

import "github.com/lixenwraith/scrollview/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	Stride int // Row width of the underlying cell buffer
	Rect       // Absolute position and dimensions in the buffer
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, stride int, bounds Rect) Region {
	return Region{Cells: cells, Stride: stride, Rect: bounds}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}

	return Region{
		Cells:  r.Cells,
		Stride: r.Stride,
		Rect:   NewRect(r.X+x, r.Y+y, w, h),
	}
}

// At returns the sub-region covering the given absolute rect,
// clipped to this region's bounds
func (r Region) At(rc Rect) Region {
	return r.Sub(rc.X-r.X, rc.Y-r.Y, rc.W, rc.H)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, st Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.Stride) {
		return
	}

	idx := absY*r.Stride + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attr}
	}
}

// Get reads a cell back, returning a blank cell out of bounds
func (r Region) Get(x, y int) terminal.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return terminal.Cell{Rune: ' '}
	}
	absX := r.X + x
	absY := r.Y + y
	if uint(absX) >= uint(r.Stride) {
		return terminal.Cell{Rune: ' '}
	}
	idx := absY*r.Stride + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return terminal.Cell{Rune: ' '}
	}
	return r.Cells[idx]
}

// Fill fills the entire region with the style's background
func (r Region) Fill(st Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', st)
		}
	}
}

// Clear fills the region with blank default-colored cells
func (r Region) Clear() {
	r.Fill(Style{})
}

// Box draws a single-line border around the region edge
func (r Region) Box(st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	r.Cell(0, 0, '┌', st)
	r.Cell(r.W-1, 0, '┐', st)
	r.Cell(0, r.H-1, '└', st)
	r.Cell(r.W-1, r.H-1, '┘', st)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, '─', st)
		r.Cell(x, r.H-1, '─', st)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, '│', st)
		r.Cell(r.W-1, y, '│', st)
	}
}
