package dispatch

import "github.com/cliofy/vtadapter/coord"

// ResizeWindow implements the XTWINOPS subcode for "resize in
// characters (rows, cols)" (CSI 8 ; rows ; cols t). This is the only
// XTWINOPS operation this contract implements; Bridge ignores every
// other subcode without calling here.
func (d *Dispatcher) ResizeWindow(rows, cols uint) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	width, ok := clampDimension(cols)
	if !ok {
		return d.fail(failParameter, "ResizeWindow", "cols out of range")
	}
	height, ok := clampDimension(rows)
	if !ok {
		return d.fail(failParameter, "ResizeWindow", "rows out of range")
	}
	info.BufferWidth = width
	info.BufferHeight = height
	if !d.api.SetScreenInfoEx(info) {
		return d.fail(failFacade, "ResizeWindow", "set_screen_info_ex")
	}
	return true
}

func clampDimension(v uint) (int16, bool) {
	if v == 0 {
		return 0, false
	}
	return coord.CheckedUintToInt16(v)
}
