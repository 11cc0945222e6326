// Package terminal provides the cell-buffer backend for scrollview.
//
// The tui package draws into []Cell buffers; Screen flushes those
// buffers through tcell and turns tcell input into Event values. The
// scroll engine itself never touches tcell directly.
package terminal
