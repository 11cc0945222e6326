package tui

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/scrollview/terminal"
)

// Theme defines the colors used by scrollbar and border rendering
type Theme struct {
	Border   terminal.RGB
	Track    terminal.RGB
	Thumb    terminal.RGB
	NoScroll terminal.RGB
}

// DefaultTheme provides reasonable defaults: the track and the
// no-scroll shade are blends of the thumb color toward the background
func DefaultTheme() Theme {
	return NewTheme(
		terminal.RGB{R: 200, G: 200, B: 200},
		terminal.RGB{R: 20, G: 20, B: 30},
	)
}

// NewTheme derives a theme from a foreground and background color
func NewTheme(fg, bg terminal.RGB) Theme {
	return Theme{
		Border:   Blend(fg, bg, 0.5),
		Track:    Blend(fg, bg, 0.7),
		Thumb:    fg,
		NoScroll: Blend(fg, bg, 0.85),
	}
}

// Blend mixes a toward b by t in [0, 1]
func Blend(a, b terminal.RGB, t float64) terminal.RGB {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendRgb(cb, t).Clamped()
	return terminal.RGB{
		R: uint8(m.R*255 + 0.5),
		G: uint8(m.G*255 + 0.5),
		B: uint8(m.B*255 + 0.5),
	}
}
