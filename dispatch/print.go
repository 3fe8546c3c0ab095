package dispatch

import "github.com/cliofy/vtadapter/charset"

// Print implements the printable-glyph path: translate through the
// designated charset, forward to the engine. The façade has no direct
// "print a glyph" primitive in this contract (it owns cell storage
// through fill/scroll only), so printing is expressed as a one-cell
// fill at the cursor followed by advancing the cursor, mirroring how
// the per-character path composes everywhere else in this design.
func (d *Dispatcher) Print(c rune) bool {
	if d.cs.NeedsTranslation() {
		c = d.cs.Translate(c)
	}
	return d.printAt(c)
}

// PrintString implements the batched printable-run path: translate in
// place if the translator is active, forward as one pass.
func (d *Dispatcher) PrintString(s []rune) bool {
	translate := d.cs.NeedsTranslation()
	for _, c := range s {
		if translate {
			c = d.cs.Translate(c)
		}
		if !d.printAt(c) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) printAt(c rune) bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	pos := info.Cursor
	if _, ok := d.api.FillChar(c, 1, pos); !ok {
		return d.fail(failFacade, "Print", "fill_char")
	}
	if _, ok := d.api.FillAttr(d.current, 1, pos); !ok {
		return d.fail(failFacade, "Print", "fill_attr")
	}
	next := pos
	next.X++
	if next.X >= info.Viewport.Right {
		next.X = info.Viewport.Left
		next.Y++
		if next.Y >= info.Viewport.Bottom {
			next.Y = info.Viewport.Bottom - 1
		}
	}
	if !d.api.SetCursorPosition(next) {
		return d.fail(failFacade, "Print", "set_cursor_position")
	}
	return true
}

// ConfigureCharset implements SCS: designates a standard charset into
// a G-set slot. Unsupported designators are ignored (current set
// remains) but still report handled=true, per §4.1.23.
func (d *Dispatcher) ConfigureCharset(slot charset.Index, cs charset.Standard) bool {
	d.cs.Designate(slot, cs)
	return true
}

// SetActiveCharset implements the locking-shift operations (SI/SO and
// friends): selects which designated slot is active.
func (d *Dispatcher) SetActiveCharset(slot charset.Index) bool {
	d.cs.SetActive(slot)
	return true
}
