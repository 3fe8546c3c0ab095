package dispatch

import (
	"github.com/cliofy/vtadapter/console"
	"github.com/cliofy/vtadapter/coord"
)

// InsertLines implements IL: the source rectangle spans the full
// viewport width from the cursor row to the bottom of the scroll region,
// shifted down, with the clip rectangle's top pinned to the cursor row;
// has no effect when the cursor is outside the scroll margins.
func (d *Dispatcher) InsertLines(count uint) bool {
	return d.shiftLines(count, true)
}

// DeleteLines implements DL: as InsertLines but shifted up.
func (d *Dispatcher) DeleteLines(count uint) bool {
	return d.shiftLines(count, false)
}

func (d *Dispatcher) shiftLines(count uint, insert bool) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	n, ok := coord.CheckedUintToInt16(count)
	if !ok {
		return d.fail(failParameter, "shiftLines", "count overflows int16")
	}

	bottom := info.Viewport.Bottom
	if d.margins.enabled {
		bottom = info.Viewport.Top + d.margins.bottom + 1
	}
	if info.Cursor.Y >= bottom {
		return true
	}
	if d.margins.enabled && info.Cursor.Y < info.Viewport.Top+d.margins.top {
		return true
	}

	var rect coord.ScrollRect
	if insert {
		rect = coord.ShiftDown(info.Cursor.Y, bottom, n)
	} else {
		rect = coord.ShiftUp(info.Cursor.Y, bottom, n)
	}

	clip := console.Viewport{Left: info.Viewport.Left, Right: info.Viewport.Right, Top: info.Cursor.Y, Bottom: bottom}

	srcTop, srcBottom := rect.SrcStart, rect.SrcEnd
	dst := rect.Dst
	if srcBottom <= srcTop {
		// Entire span vacated: pure fill across the clip rows.
		for y := rect.FillStart; y < rect.FillEnd; y++ {
			width := int(info.Viewport.Right - info.Viewport.Left)
			if _, ok := d.api.FillChar(' ', width, console.Position{X: info.Viewport.Left, Y: y}); !ok {
				return d.fail(failFacade, "shiftLines", "fill_char")
			}
			if _, ok := d.api.FillAttr(d.current, width, console.Position{X: info.Viewport.Left, Y: y}); !ok {
				return d.fail(failFacade, "shiftLines", "fill_attr")
			}
		}
		return true
	}

	if !d.api.Scroll(console.ScrollRect{
		Source: console.Viewport{Left: info.Viewport.Left, Right: info.Viewport.Right, Top: srcTop, Bottom: srcBottom},
		Clip:   &clip,
		Dest:   console.Position{X: info.Viewport.Left, Y: dst},
		Fill:   d.fillCell(),
	}) {
		return d.fail(failFacade, "shiftLines", "scroll")
	}
	return true
}
