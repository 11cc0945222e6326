package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/scrollview/terminal"
	"github.com/lixenwraith/scrollview/terminal/tui"
)

// Colors
var (
	fgColor     = terminal.RGB{R: 200, G: 200, B: 200}
	dimColor    = terminal.RGB{R: 100, G: 100, B: 100}
	accentColor = terminal.RGB{R: 100, G: 200, B: 220}
	headerBg    = terminal.RGB{R: 40, G: 50, B: 70}
)

const (
	docLines  = 300
	docWidth  = 150
	logLines  = 120
	logWidth  = 100
	panelW    = 44
	panelH    = 14
	statusBar = 1
)

func main() {
	scr, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer scr.Fini()

	doc := tui.NewViewPort(docWidth, docLines, tui.Config{
		Horizontal: tui.AxisConfig{Visibility: tui.VisibilityMinimal},
		Vertical:   tui.AxisConfig{Visibility: tui.VisibilityShow},
		Border:     1,
	})
	panel := tui.NewViewPort(logWidth, logLines, tui.Config{
		Horizontal: tui.AxisConfig{Visibility: tui.VisibilityNoRender},
		Vertical:   tui.AxisConfig{Visibility: tui.VisibilityMinimal},
		Border:     1,
	})
	doc.Scroll.Focused = true

	router := &tui.Router{
		ForwardKeys: map[terminal.Key]bool{terminal.KeyTab: true},
	}

	for {
		w, h := scr.Size()
		render(scr, w, h, doc, panel)

		ev := scr.PollEvent()
		switch ev.Type {
		case terminal.EventNone:
			return
		case terminal.EventResize:
			continue
		case terminal.EventKey:
			if ev.Key == terminal.KeyEscape ||
				(ev.Key == terminal.KeyRune && ev.Rune == 'q') {
				return
			}
			out := router.Route(ev, keyPath(doc, panel))
			if out == tui.OutcomeContinue && ev.Key == terminal.KeyTab {
				doc.Scroll.Focused, panel.Scroll.Focused =
					panel.Scroll.Focused, doc.Scroll.Focused
			}
		case terminal.EventMouse:
			router.Route(ev, mousePath(ev, doc, panel))
		}
	}
}

// keyPath orders the chain so the focused region sees the key first
func keyPath(doc, panel *tui.ViewPort) []*tui.ScrollRegion {
	if panel.Scroll.Focused {
		return []*tui.ScrollRegion{&panel.Scroll, &doc.Scroll}
	}
	return []*tui.ScrollRegion{&doc.Scroll, &panel.Scroll}
}

// mousePath builds the innermost-first chain at the pointer position.
// The panel floats above the document, so a pointer inside it targets
// the panel first and overflow bubbles out to the document
func mousePath(ev terminal.Event, doc, panel *tui.ViewPort) []*tui.ScrollRegion {
	if panel.Scroll.Layout().Outer.Contains(ev.MouseX, ev.MouseY) || panel.Scroll.Dragging() {
		return []*tui.ScrollRegion{&panel.Scroll, &doc.Scroll}
	}
	return []*tui.ScrollRegion{&doc.Scroll}
}

func render(scr *terminal.Screen, w, h int, doc, panel *tui.ViewPort) {
	cells := make([]terminal.Cell, w*h)
	root := tui.NewRegion(cells, w, tui.NewRect(0, 0, w, h))

	docRect := tui.NewRect(0, 0, w, h-statusBar)
	doc.Render(root, docRect, tui.WidgetFunc(renderDocument), themeFor(doc))

	panelRect := panelRect(w, h)
	if !panelRect.Empty() {
		panel.Render(root, panelRect, tui.WidgetFunc(renderLog), themeFor(panel))
	}

	renderStatus(root.Sub(0, h-statusBar, w, statusBar), doc, panel)
	scr.Flush(cells, w, h)
}

// panelRect pins the floating panel to the lower right corner of the
// document area, shrinking away on small windows
func panelRect(w, h int) tui.Rect {
	pw, ph := panelW, panelH
	if pw > w-4 {
		pw = w - 4
	}
	if ph > h-4-statusBar {
		ph = h - 4 - statusBar
	}
	return tui.NewRect(w-pw-2, h-ph-statusBar-1, pw, ph)
}

func themeFor(v *tui.ViewPort) tui.Theme {
	th := tui.DefaultTheme()
	if v.Scroll.Focused {
		th.Border = accentColor
	}
	return th
}

func renderDocument(r tui.Region) {
	st := tui.DefaultStyle(fgColor)
	num := tui.DefaultStyle(dimColor)
	for y := 0; y < r.H; y++ {
		r.Text(0, y, pad(y+1, 4), num)
		r.Text(6, y, documentLine(y), st)
	}
}

func renderLog(r tui.Region) {
	st := tui.DefaultStyle(fgColor)
	tag := tui.DefaultStyle(accentColor)
	for y := 0; y < r.H; y++ {
		r.Text(0, y, logTag(y), tag)
		r.Text(6, y, "event "+strconv.Itoa(y)+" "+logDetail(y), st)
	}
}

func renderStatus(r tui.Region, doc, panel *tui.ViewPort) {
	r.Fill(tui.Style{Bg: headerBg})
	st := tui.Style{Fg: dimColor, Bg: headerBg}

	dh, dv := doc.Scroll.Offsets()
	ph, pv := panel.Scroll.Offsets()
	line := "q quit | Tab focus | wheel scroll | Alt+wheel horizontal" +
		" | doc " + strconv.Itoa(dh) + "," + strconv.Itoa(dv) +
		" | panel " + strconv.Itoa(ph) + "," + strconv.Itoa(pv)
	r.Text(1, 0, tui.Truncate(line, r.W-2), st)
}

func documentLine(n int) string {
	samples := []string{
		"the quick brown fox jumps over the lazy dog",
		"pack my box with five dozen liquor jugs",
		"sphinx of black quartz, judge my vow",
		"how vexingly quick daft zebras jump",
		"the five boxing wizards jump quickly",
	}
	s := samples[n%len(samples)]
	out := s
	for len(out) < docWidth-10 {
		out += " · " + s
	}
	return out
}

func logTag(n int) string {
	tags := []string{"INFO ", "WARN ", "DEBUG", "TRACE"}
	return tags[n%len(tags)]
}

func logDetail(n int) string {
	details := []string{
		"connection accepted",
		"frame arranged",
		"offset clamped",
		"track pressed",
		"window resized",
		"content appended",
	}
	return details[n%len(details)]
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = " " + s
	}
	return s
}
