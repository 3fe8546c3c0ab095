package dispatch

import "github.com/cliofy/vtadapter/charset"

// SoftReset implements DECSTR: cursor visible, cursor-keys normal,
// keypad numeric, scroll margins cleared, designated charset reset to
// ASCII, SGR off, cursor saved to home.
func (d *Dispatcher) SoftReset() bool {
	if !d.SetCursorVisible(true) {
		return false
	}
	d.modes.cursorKeysApplication = false
	if !d.api.SetCursorKeysMode(false) {
		return d.fail(failFacade, "SoftReset", "set_cursor_keys_mode")
	}
	d.modes.keypadApplication = false
	if !d.api.SetKeypadMode(false) {
		return d.fail(failFacade, "SoftReset", "set_keypad_mode")
	}
	d.margins = scrollMargins{}
	d.cs.Reset()
	d.resetAttribute()
	d.saved = savedCursor{col: 1, row: 1}
	return true
}

// HardReset implements RIS: erase scrollback, erase display (All),
// cursor to (1,1), SGR off, designated charset reset to ASCII.
func (d *Dispatcher) HardReset() bool {
	if !d.EraseInDisplay(EraseScrollback) {
		return false
	}
	if !d.EraseInDisplay(EraseAll) {
		return false
	}
	one := uint(1)
	if !d.GotoAbsolute(&one, &one) {
		return false
	}
	d.resetAttribute()
	d.cs = charset.NewTranslator()
	d.margins = scrollMargins{}
	d.saved = savedCursor{col: 1, row: 1}
	return true
}
