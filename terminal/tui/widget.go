package tui

import "github.com/lixenwraith/scrollview/terminal"

// Widget is anything that can render itself into a region
type Widget interface {
	Render(r Region)
}

// EventHandler is implemented by widgets that consume input events.
// HandleEvent returns true if the event was consumed
type EventHandler interface {
	HandleEvent(ev terminal.Event) bool
}

// WidgetFunc adapts a plain function to the Widget interface
type WidgetFunc func(r Region)

// Render calls f
func (f WidgetFunc) Render(r Region) {
	f(r)
}
