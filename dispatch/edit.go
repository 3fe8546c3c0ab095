package dispatch

import (
	"github.com/cliofy/vtadapter/console"
	"github.com/cliofy/vtadapter/coord"
)

// fillCell returns a space cell painted with the current attribute.
func (d *Dispatcher) fillCell() console.FillCell {
	return console.FillCell{Rune: ' ', Attr: d.current}
}

// InsertBlank implements ICH: operates on the cursor's row only,
// shifting [cursor.x, viewport.right) right by count; cells that would
// fall at or past viewport.right are simply filled, not scrolled.
func (d *Dispatcher) InsertBlank(count uint) bool {
	return d.shiftRow(count, true)
}

// DeleteChars implements DCH: shifts [cursor.x, viewport.right) left
// by count.
func (d *Dispatcher) DeleteChars(count uint) bool {
	return d.shiftRow(count, false)
}

func (d *Dispatcher) shiftRow(count uint, insert bool) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	n, ok := coord.CheckedUintToInt16(count)
	if !ok {
		return d.fail(failParameter, "shiftRow", "count overflows int16")
	}

	var rect coord.ScrollRect
	if insert {
		rect = coord.ShiftRight(info.Cursor.X, info.Viewport.Right, n)
	} else {
		rect = coord.ShiftLeft(info.Cursor.X, info.Viewport.Right, n)
	}

	row := info.Cursor.Y
	if rect.SrcEnd <= rect.SrcStart {
		// Entire remainder of the line vacated: pure fill, no scroll.
		_, okFill := d.api.FillChar(' ', int(rect.FillEnd-rect.FillStart), console.Position{X: rect.FillStart, Y: row})
		_, okAttr := d.api.FillAttr(d.current, int(rect.FillEnd-rect.FillStart), console.Position{X: rect.FillStart, Y: row})
		if !okFill || !okAttr {
			return d.fail(failFacade, "shiftRow", "fill_char/fill_attr")
		}
		return true
	}

	ok = d.api.Scroll(console.ScrollRect{
		Source: console.Viewport{Left: rect.SrcStart, Right: rect.SrcEnd, Top: row, Bottom: row + 1},
		Dest:   console.Position{X: rect.Dst, Y: row},
		Fill:   d.fillCell(),
	})
	if !ok {
		return d.fail(failFacade, "shiftRow", "scroll")
	}
	return true
}

// EraseChars implements ECH: erases min(count, viewport.right-cursor.x)
// cells starting at the cursor with space+current attribute; no cursor
// movement.
func (d *Dispatcher) EraseChars(count uint) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	n, ok := coord.CheckedUintToInt16(count)
	if !ok {
		return d.fail(failParameter, "EraseChars", "count overflows int16")
	}
	available := info.Viewport.Right - info.Cursor.X
	if n > available {
		n = available
	}
	if n <= 0 {
		return true
	}
	_, okChar := d.api.FillChar(' ', int(n), info.Cursor)
	_, okAttr := d.api.FillAttr(d.current, int(n), info.Cursor)
	if !okChar || !okAttr {
		return d.fail(failFacade, "EraseChars", "fill_char/fill_attr")
	}
	return true
}
