package dispatch

import (
	"github.com/cliofy/vtadapter/console"
	"github.com/cliofy/vtadapter/coord"
)

// marginBounds returns the scroll region in viewport-absolute
// coordinates, honoring current margins or defaulting to the full
// viewport when margins are disabled.
func (d *Dispatcher) marginBounds(v console.Viewport) (top, bottom int16) {
	if !d.margins.enabled {
		return v.Top, v.Bottom
	}
	return v.Top + d.margins.top, v.Top + d.margins.bottom + 1
}

// ScrollViewport implements SU/SD (pan): positive n scrolls content up
// (new blank lines appear at the bottom); negative scrolls down.
func (d *Dispatcher) ScrollViewport(n int) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	top, bottom := d.marginBounds(info.Viewport)
	clip := console.Viewport{Left: info.Viewport.Left, Right: info.Viewport.Right, Top: top, Bottom: bottom}

	if n == 0 {
		return true
	}
	if n > 0 {
		dist, ok := coord.CheckedUintToInt16(uint(n))
		if !ok {
			return d.fail(failParameter, "ScrollViewport", "distance overflows int16")
		}
		rect := coord.ShiftUp(top, bottom, dist)
		return d.applyLineShift(info.Viewport, clip, rect)
	}
	dist, ok := coord.CheckedUintToInt16(uint(-n))
	if !ok {
		return d.fail(failParameter, "ScrollViewport", "distance overflows int16")
	}
	rect := coord.ShiftDown(top, bottom, dist)
	return d.applyLineShift(info.Viewport, clip, rect)
}

func (d *Dispatcher) applyLineShift(v, clip console.Viewport, rect coord.ScrollRect) bool {
	if rect.SrcEnd <= rect.SrcStart {
		width := int(v.Right - v.Left)
		for y := rect.FillStart; y < rect.FillEnd; y++ {
			if _, ok := d.api.FillChar(' ', width, console.Position{X: v.Left, Y: y}); !ok {
				return d.fail(failFacade, "applyLineShift", "fill_char")
			}
			if _, ok := d.api.FillAttr(d.current, width, console.Position{X: v.Left, Y: y}); !ok {
				return d.fail(failFacade, "applyLineShift", "fill_attr")
			}
		}
		return true
	}
	if !d.api.Scroll(console.ScrollRect{
		Source: console.Viewport{Left: v.Left, Right: v.Right, Top: rect.SrcStart, Bottom: rect.SrcEnd},
		Clip:   &clip,
		Dest:   console.Position{X: v.Left, Y: rect.Dst},
		Fill:   console.FillCell{Rune: ' ', Attr: d.current},
	}) {
		return d.fail(failFacade, "applyLineShift", "scroll")
	}
	return true
}

// SetScrollingRegion implements DECSTBM. Rewrite rules, in order:
// (0,0) disables; bottom==0 becomes viewport height; bottom<top is
// invalid; (top in {0,1} and bottom==height) disables; otherwise store
// 0-based and push to the engine. On success the cursor moves home.
func (d *Dispatcher) SetScrollingRegion(top, bottom uint) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	height := uint(info.Viewport.Bottom - info.Viewport.Top)

	if top == 0 && bottom == 0 {
		d.margins = scrollMargins{}
		return d.clearMarginsAndHome(info)
	}
	if bottom == 0 {
		bottom = height
	}
	if bottom < top {
		return d.fail(failParameter, "SetScrollingRegion", "bottom before top")
	}
	if (top == 0 || top == 1) && bottom == height {
		d.margins = scrollMargins{}
		return d.clearMarginsAndHome(info)
	}

	if top > 0 {
		top--
	}
	t, ok1 := coord.CheckedUintToInt16(top)
	b, ok2 := coord.CheckedUintToInt16(bottom - 1)
	if !ok1 || !ok2 {
		return d.fail(failParameter, "SetScrollingRegion", "margin overflows int16")
	}
	d.margins = scrollMargins{top: t, bottom: b, enabled: true}

	region := console.Viewport{
		Left: info.Viewport.Left, Right: info.Viewport.Right,
		Top: info.Viewport.Top + t, Bottom: info.Viewport.Top + b + 1,
	}
	if !d.api.SetScrollingRegion(region) {
		return d.fail(failFacade, "SetScrollingRegion", "set_scrolling_region")
	}
	return d.homeCursor(info.Viewport)
}

func (d *Dispatcher) clearMarginsAndHome(info console.ScreenInfo) bool {
	if !d.api.SetScrollingRegion(info.Viewport) {
		return d.fail(failFacade, "SetScrollingRegion", "set_scrolling_region")
	}
	return d.homeCursor(info.Viewport)
}

func (d *Dispatcher) homeCursor(v console.Viewport) bool {
	if !d.api.SetCursorPosition(console.Position{X: v.Left, Y: v.Top}) {
		return d.fail(failFacade, "homeCursor", "set_cursor_position")
	}
	return true
}

// SetColumns implements DECCOLM/DECSCPP. Gated by allowSetColumns
// (default off, in which case it is a silent handled=true no-op).
// When enabled: resize the buffer width, home the cursor, erase the
// display, clear margins.
func (d *Dispatcher) SetColumns(width int16) bool {
	if !d.allowSetColumns {
		return true
	}
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	info.BufferWidth = width
	info.Viewport.Right = info.Viewport.Left + width
	if !d.api.SetScreenInfoEx(info) {
		return d.fail(failFacade, "SetColumns", "set_screen_info_ex")
	}
	d.modes.decColumnMode = true
	if !d.homeCursor(info.Viewport) {
		return false
	}
	if !d.EraseInDisplay(EraseAll) {
		return false
	}
	d.margins = scrollMargins{}
	return d.api.SetScrollingRegion(info.Viewport)
}
