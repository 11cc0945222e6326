package tui

// AxisConfig carries the recognized per-axis options
type AxisConfig struct {
	ContentLength int
	PageLength    int
	ScrollBy      int // Wheel step, 0 selects the page/10 default
	OverscrollBy  int
	Visibility    Visibility
}

// Config carries the recognized per-region options
type Config struct {
	Horizontal AxisConfig
	Vertical   AxisConfig
	Border     int // Decorative border thickness reserved on each side
}

// ScrollRegion is one nesting level of "content bigger than its
// window": two scroll axes, a scrollbar visibility policy per axis,
// and the geometry computed for the current frame.
//
// A ScrollRegion is created once per scrollable widget instance and
// lives in caller-held state across frames. Layout mutates the page
// lengths every frame; the router mutates the offsets on events.
// Not safe for concurrent use.
type ScrollRegion struct {
	H Axis
	V Axis

	HBar Visibility
	VBar Visibility

	Border int

	// Focused is the single focus signal handed in by the caller;
	// it gates keyboard scrolling only
	Focused bool

	layout ScrollLayout
	dragH  bool
	dragV  bool
}

// NewScrollRegion creates a region from configuration
func NewScrollRegion(cfg Config) *ScrollRegion {
	sr := &ScrollRegion{
		HBar:   cfg.Horizontal.Visibility,
		VBar:   cfg.Vertical.Visibility,
		Border: cfg.Border,
	}
	applyAxis(&sr.H, cfg.Horizontal)
	applyAxis(&sr.V, cfg.Vertical)
	return sr
}

func applyAxis(a *Axis, cfg AxisConfig) {
	a.SetOverscroll(cfg.OverscrollBy)
	a.SetStep(cfg.ScrollBy)
	a.SetContentLength(cfg.ContentLength)
	a.SetPageLength(cfg.PageLength)
}

// Layout returns the geometry computed by the most recent Arrange call
func (sr *ScrollRegion) Layout() ScrollLayout {
	return sr.layout
}

// Offsets returns the current horizontal and vertical offsets
func (sr *ScrollRegion) Offsets() (h, v int) {
	return sr.H.Offset(), sr.V.Offset()
}

// Dragging returns true while a scrollbar drag is captured here
func (sr *ScrollRegion) Dragging() bool {
	return sr.dragH || sr.dragV
}
