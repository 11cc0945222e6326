// Package tui is the scrolling engine behind scrollview.
//
// Core abstractions:
//   - Axis: clamped single-axis scroll state with overscroll
//   - ScrollRegion: two axes plus per-axis scrollbar visibility
//   - Arrange: per-frame geometry (content rect, track rects)
//   - ViewPort: virtual canvas with a movable visible window
//   - Router: innermost-first event routing across nested regions
//
// Design principles:
//   - Immediate mode: geometry is recomputed every frame, scroll
//     state lives in caller-held ScrollRegion values
//   - Saturating math: no length or offset computation can underflow
//   - Composable: nested regions communicate only through rectangles
//     downward and Outcome values upward
package tui
