package tui

// Rect is a rectangle in cell coordinates: origin plus size.
// All operations saturate; a Rect never has negative dimensions.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rect, clamping negative dimensions to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty returns true if the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset returns the rect shrunk by n cells on all sides
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, r.W-2*n, r.H-2*n)
}

// CutRight splits off the rightmost n columns
func (r Rect) CutRight(n int) (rest, cut Rect) {
	if n > r.W {
		n = r.W
	}
	if n < 0 {
		n = 0
	}
	rest = NewRect(r.X, r.Y, r.W-n, r.H)
	cut = NewRect(r.X+r.W-n, r.Y, n, r.H)
	return
}

// CutBottom splits off the bottommost n rows
func (r Rect) CutBottom(n int) (rest, cut Rect) {
	if n > r.H {
		n = r.H
	}
	if n < 0 {
		n = 0
	}
	rest = NewRect(r.X, r.Y, r.W, r.H-n)
	cut = NewRect(r.X, r.Y+r.H-n, r.W, n)
	return
}

// Intersect returns the overlap of two rects, empty if disjoint
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// Area returns the cell count
func (r Rect) Area() int {
	return r.W * r.H
}
