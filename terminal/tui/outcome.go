package tui

// Outcome reports how a scroll event was resolved. It is a four-way
// tag, not a consumed/not-consumed boolean: Continue and Bubble drive
// different downstream routing.
type Outcome uint8

const (
	// OutcomeUnchanged means the event was not applicable and no
	// state changed
	OutcomeUnchanged Outcome = iota
	// OutcomeChanged means an offset moved and the region should
	// re-render
	OutcomeChanged
	// OutcomeContinue means the event must be offered to the wrapped
	// content widget, bypassing further scroll routing
	OutcomeContinue
	// OutcomeBubble means the event was not handled here and should
	// be offered to the enclosing region
	OutcomeBubble
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "Unchanged"
	case OutcomeChanged:
		return "Changed"
	case OutcomeContinue:
		return "Continue"
	case OutcomeBubble:
		return "Bubble"
	default:
		return "Unknown"
	}
}
