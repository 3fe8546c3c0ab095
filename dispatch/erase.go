package dispatch

import (
	"github.com/cliofy/vtadapter/console"
	"github.com/cliofy/vtadapter/coord"
)

// LineEraseMode selects which part of a line EL/the ED per-line helper
// erases.
type LineEraseMode int

const (
	EraseToEnd LineEraseMode = iota
	EraseFromBeginning
	EraseLineAll
)

// DisplayEraseMode selects which part of the display ED erases.
type DisplayEraseMode int

const (
	EraseDisplayToEnd DisplayEraseMode = iota
	EraseDisplayFromBeginning
	EraseAll
	EraseScrollback
)

// eraseLine is the per-line helper used by both EL and ED: given a row
// and mode, computes start/length and fills with space+current attr.
func (d *Dispatcher) eraseLine(v console.Viewport, row int16, cursorX int16, mode LineEraseMode) bool {
	var start, length int16
	switch mode {
	case EraseFromBeginning:
		start = v.Left
		length = cursorX - v.Left + 1
	case EraseToEnd:
		start = cursorX
		length = v.Right - cursorX
	case EraseLineAll:
		start = v.Left
		length = v.Right - v.Left
	}
	if length <= 0 {
		return true
	}
	if _, ok := d.api.FillChar(' ', int(length), console.Position{X: start, Y: row}); !ok {
		return d.fail(failFacade, "eraseLine", "fill_char")
	}
	if _, ok := d.api.FillAttr(d.current, int(length), console.Position{X: start, Y: row}); !ok {
		return d.fail(failFacade, "eraseLine", "fill_attr")
	}
	return true
}

// EraseInLine implements EL.
func (d *Dispatcher) EraseInLine(mode LineEraseMode) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	return d.eraseLine(info.Viewport, info.Cursor.Y, info.Cursor.X, mode)
}

// EraseInDisplay implements ED, including the scrollback-erase (mode
// EraseScrollback) and erase-all (mode EraseAll) variants.
func (d *Dispatcher) EraseInDisplay(mode DisplayEraseMode) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}

	switch mode {
	case EraseDisplayFromBeginning:
		for y := info.Viewport.Top; y < info.Cursor.Y; y++ {
			if !d.eraseLine(info.Viewport, y, info.Cursor.X, EraseLineAll) {
				return false
			}
		}
		return d.eraseLine(info.Viewport, info.Cursor.Y, info.Cursor.X, EraseFromBeginning)

	case EraseDisplayToEnd:
		if !d.eraseLine(info.Viewport, info.Cursor.Y, info.Cursor.X, EraseToEnd) {
			return false
		}
		for y := info.Cursor.Y + 1; y < info.Viewport.Bottom; y++ {
			if !d.eraseLine(info.Viewport, y, info.Cursor.X, EraseLineAll) {
				return false
			}
		}
		return true

	case EraseAll:
		if !d.api.EraseAll() {
			return d.fail(failFacade, "EraseInDisplay", "erase_all")
		}
		return true

	case EraseScrollback:
		return d.eraseScrollback(info)
	}
	return d.fail(failParameter, "EraseInDisplay", "unknown mode")
}

// eraseScrollback implements the §4.1.13 algorithm: copy the viewport
// to the buffer origin, fill what's left below and to the right of it,
// reposition the window to the full buffer, recompute the cursor.
func (d *Dispatcher) eraseScrollback(info console.ScreenInfo) bool {
	v := info.Viewport
	width := v.Right - v.Left
	height := v.Bottom - v.Top

	shifted := console.Viewport{Left: 0, Top: 0, Right: width, Bottom: height}
	if !d.api.Scroll(console.ScrollRect{
		Source: v,
		Dest:   console.Position{X: 0, Y: 0},
		Fill:   console.FillCell{Rune: ' ', Attr: d.current},
	}) {
		return d.fail(failFacade, "eraseScrollback", "scroll")
	}

	if shifted.Bottom < info.BufferHeight {
		belowWidth := int(info.BufferWidth)
		for y := shifted.Bottom; y < info.BufferHeight; y++ {
			if _, ok := d.api.FillChar(' ', belowWidth, console.Position{X: 0, Y: y}); !ok {
				return d.fail(failFacade, "eraseScrollback", "fill_char below")
			}
			if _, ok := d.api.FillAttr(d.current, belowWidth, console.Position{X: 0, Y: y}); !ok {
				return d.fail(failFacade, "eraseScrollback", "fill_attr below")
			}
		}
	}
	if shifted.Right < info.BufferWidth {
		rightWidth := int(info.BufferWidth - shifted.Right)
		for y := shifted.Top; y < shifted.Bottom; y++ {
			if _, ok := d.api.FillChar(' ', rightWidth, console.Position{X: shifted.Right, Y: y}); !ok {
				return d.fail(failFacade, "eraseScrollback", "fill_char right")
			}
			if _, ok := d.api.FillAttr(d.current, rightWidth, console.Position{X: shifted.Right, Y: y}); !ok {
				return d.fail(failFacade, "eraseScrollback", "fill_attr right")
			}
		}
	}

	newWindow := coord.ToInclusive(console.Viewport{Left: 0, Top: 0, Right: info.BufferWidth, Bottom: info.BufferHeight})
	if !d.api.SetWindowInfo(true, newWindow) {
		return d.fail(failFacade, "eraseScrollback", "set_window_info")
	}

	newCursor := console.Position{
		X: info.Cursor.X - v.Left,
		Y: info.Cursor.Y - v.Top,
	}
	if !d.api.SetCursorPosition(newCursor) {
		return d.fail(failFacade, "eraseScrollback", "set_cursor_position")
	}
	return true
}
