package dispatch

import (
	"github.com/cliofy/vtadapter/console"
	"github.com/cliofy/vtadapter/coord"
)

// Direction selects the axis and sign for cursor motion.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirForward
	DirBackward
	DirNextLine
	DirPrevLine
)

// MoveCursor implements CUU/CUD/CUF/CUB/CNL/CPL via one unified
// algorithm: snapshot, optionally snap column to the left margin,
// convert the unsigned distance to signed, apply it with checked
// arithmetic, clamp to viewport, write back.
func (d *Dispatcher) MoveCursor(dir Direction, distance uint) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}

	delta, ok := coord.CheckedUintToInt16(distance)
	if !ok {
		return d.fail(failParameter, "MoveCursor", "distance overflows int16")
	}

	pos := info.Cursor
	switch dir {
	case DirNextLine, DirPrevLine:
		pos.X = info.Viewport.Left
	}

	var moved console.Position
	switch dir {
	case DirUp, DirPrevLine:
		moved, ok = coord.CheckedAddY(pos, -int32(delta))
	case DirDown, DirNextLine:
		moved, ok = coord.CheckedAddY(pos, int32(delta))
	case DirForward:
		moved, ok = coord.CheckedAddX(pos, int32(delta))
	case DirBackward:
		moved, ok = coord.CheckedAddX(pos, -int32(delta))
	default:
		return d.fail(failParameter, "MoveCursor", "unknown direction")
	}
	if !ok {
		return d.fail(failParameter, "MoveCursor", "position overflows int16")
	}

	moved = clampToInterior(moved, info.Viewport)
	if !d.api.SetCursorPosition(moved) {
		return d.fail(failFacade, "MoveCursor", "set_cursor_position")
	}
	return true
}

// clampToInterior clamps p into v using v.Bottom-1/v.Right-1 as the
// inclusive lower/right edges, per the Dispatcher's clamp convention.
func clampToInterior(p console.Position, v console.Viewport) console.Position {
	return coord.Clamp(p, v)
}

// GotoAbsolute implements CHA/VPA/CUP: 1-based parameters, a zero
// parameter is illegal, omitted axes preserve the current position.
func (d *Dispatcher) GotoAbsolute(row, col *uint) bool {
	if (row != nil && *row == 0) || (col != nil && *col == 0) {
		return d.fail(failParameter, "GotoAbsolute", "zero parameter")
	}

	info, ok := d.snapshot()
	if !ok {
		return false
	}

	target := info.Cursor
	if row != nil {
		r, ok := coord.CheckedUintToInt16(*row - 1)
		if !ok {
			return d.fail(failParameter, "GotoAbsolute", "row overflows int16")
		}
		target.Y = info.Viewport.Top + r
	}
	if col != nil {
		c, ok := coord.CheckedUintToInt16(*col - 1)
		if !ok {
			return d.fail(failParameter, "GotoAbsolute", "col overflows int16")
		}
		target.X = info.Viewport.Left + c
	}

	target = clampToInterior(target, info.Viewport)
	if !d.api.SetCursorPosition(target) {
		return d.fail(failFacade, "GotoAbsolute", "set_cursor_position")
	}
	return true
}

// SaveCursor implements DECSC: store the cursor in VT 1-based
// viewport-relative form.
func (d *Dispatcher) SaveCursor() bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	d.saved = savedCursor{
		col: info.Cursor.X - info.Viewport.Left + 1,
		row: info.Cursor.Y - info.Viewport.Top + 1,
	}
	return true
}

// RestoreCursor implements DECRC: pass the saved 1-based pair to the
// absolute positioner. Default is (1,1) if no DECSC preceded it.
func (d *Dispatcher) RestoreCursor() bool {
	row := uint(d.saved.row)
	col := uint(d.saved.col)
	return d.GotoAbsolute(&row, &col)
}

// SetCursorVisible implements DECTCEM: toggles visibility without
// altering cursor height.
func (d *Dispatcher) SetCursorVisible(visible bool) bool {
	ci, ok := d.api.GetCursorInfo()
	if !ok {
		return d.fail(failFacade, "SetCursorVisible", "get_cursor_info")
	}
	ci.Visible = visible
	if !d.api.SetCursorInfo(ci) {
		return d.fail(failFacade, "SetCursorVisible", "set_cursor_info")
	}
	d.modes.cursorVisible = visible
	return true
}

// CursorStyleCode is the 7-value DECSCUSR enum: blinking/steady block,
// underline, bar, plus the default.
type CursorStyleCode int

const (
	CursorStyleDefault CursorStyleCode = iota
	CursorStyleBlinkingBlock
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// SetCursorStyle implements DECSCUSR: maps the enum to (shape, blink)
// and applies both through the façade.
func (d *Dispatcher) SetCursorStyle(code CursorStyleCode) bool {
	var shape console.CursorShape
	var blink bool
	switch code {
	case CursorStyleDefault, CursorStyleBlinkingBlock:
		shape, blink = console.CursorShapeBlock, true
	case CursorStyleSteadyBlock:
		shape, blink = console.CursorShapeBlock, false
	case CursorStyleBlinkingUnderline:
		shape, blink = console.CursorShapeUnderline, true
	case CursorStyleSteadyUnderline:
		shape, blink = console.CursorShapeUnderline, false
	case CursorStyleBlinkingBar:
		shape, blink = console.CursorShapeBar, true
	case CursorStyleSteadyBar:
		shape, blink = console.CursorShapeBar, false
	default:
		return d.fail(failParameter, "SetCursorStyle", "unknown style code")
	}
	if !d.api.SetCursorStyle(console.CursorStyle{Shape: shape, Blinking: blink}) {
		return d.fail(failFacade, "SetCursorStyle", "set_cursor_style")
	}
	return true
}
