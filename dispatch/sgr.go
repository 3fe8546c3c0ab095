package dispatch

import "github.com/cliofy/vtadapter/console"

// SGRParam is one parameter group from an SGR sequence: the main value
// plus any colon-separated sub-values (used by the extended 38/48
// color forms).
type SGRParam struct {
	Values []uint16
}

// SGR implements Select Graphic Rendition. An empty params slice (bare
// ESC [ m) resets to the default attribute, matching SGR 0.
func (d *Dispatcher) SGR(params []SGRParam) bool {
	if len(params) == 0 {
		d.resetAttribute()
		return true
	}

	ok := true
	for _, p := range params {
		if len(p.Values) == 0 {
			continue
		}
		switch p.Values[0] {
		case 0:
			d.resetAttribute()
		case 1:
			d.bright.bold = true
			d.current.Style |= console.StyleBold
			d.reapplyBrightness()
		case 2:
			d.bright.dim = true
			d.current.Style |= console.StyleDim
			d.reapplyBrightness()
		case 3:
			d.current.Style |= console.StyleItalic
		case 4:
			d.current.Style |= console.StyleUnderline
		case 5:
			d.current.Style |= console.StyleBlink
		case 7:
			d.current.Style |= console.StyleReverse
		case 8:
			d.current.Style |= console.StyleHidden
		case 9:
			d.current.Style |= console.StyleStrikethrough
		case 21:
			// Double underline aliases to underline in this style set.
			d.current.Style |= console.StyleUnderline
		case 22:
			d.bright.bold = false
			d.bright.dim = false
			d.current.Style &^= console.StyleBold | console.StyleDim
		case 23:
			d.current.Style &^= console.StyleItalic
		case 24:
			d.current.Style &^= console.StyleUnderline
		case 25:
			d.current.Style &^= console.StyleBlink
		case 27:
			d.current.Style &^= console.StyleReverse
		case 28:
			d.current.Style &^= console.StyleHidden
		case 29:
			d.current.Style &^= console.StyleStrikethrough

		case 30, 31, 32, 33, 34, 35, 36, 37:
			d.current.Foreground = console.NamedColorValue(console.NamedColor(p.Values[0] - 30))
			d.reapplyBrightness()
		case 38:
			if c, handled := parseExtendedColor(p.Values); handled {
				d.current.Foreground = c
				d.reapplyBrightness()
			} else {
				ok = d.fail(failParameter, "SGR", "malformed extended foreground color") && ok
			}
		case 39:
			d.current.Foreground = console.DefaultColor
			d.reapplyBrightness()

		case 40, 41, 42, 43, 44, 45, 46, 47:
			d.current.Background = console.NamedColorValue(console.NamedColor(p.Values[0] - 40))
		case 48:
			if c, handled := parseExtendedColor(p.Values); handled {
				d.current.Background = c
			} else {
				ok = d.fail(failParameter, "SGR", "malformed extended background color") && ok
			}
		case 49:
			d.current.Background = console.DefaultColor

		case 90, 91, 92, 93, 94, 95, 96, 97:
			d.current.Foreground = console.NamedColorValue(console.NamedColor(p.Values[0] - 90 + 8))
			d.reapplyBrightness()
		case 100, 101, 102, 103, 104, 105, 106, 107:
			d.current.Background = console.NamedColorValue(console.NamedColor(p.Values[0] - 100 + 8))
		}
	}
	return ok
}

// parseExtendedColor parses the colon/semicolon-expanded 38/48 forms
// already grouped into one SGRParam.Values slice: [38, 5, idx] or
// [38, 2, r, g, b]. Truncates out-of-range channel values rather than
// failing, per the "truncate gracefully where the surface can't
// express it" requirement; returns handled=false only when the form
// itself is malformed.
func parseExtendedColor(values []uint16) (console.Color, bool) {
	if len(values) < 2 {
		return console.Color{}, false
	}
	switch values[1] {
	case 5:
		if len(values) < 3 {
			return console.Color{}, false
		}
		return console.IndexedColor(clampByte(values[2])), true
	case 2:
		if len(values) < 5 {
			return console.Color{}, false
		}
		return console.RGBColor(clampByte(values[2]), clampByte(values[3]), clampByte(values[4])), true
	default:
		return console.Color{}, false
	}
}

func clampByte(v uint16) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// reapplyBrightness is invoked whenever the foreground color changes,
// so a separately-tracked bold/dim intensity is re-expressed over the
// new color rather than being lost.
func (d *Dispatcher) reapplyBrightness() {
	if d.bright.bold {
		d.current.Style |= console.StyleBold
	}
	if d.bright.dim {
		d.current.Style |= console.StyleDim
	}
}

// resetAttribute implements SGR Off: restores the default attribute
// captured at construction (or by WithDefaultAttributes).
func (d *Dispatcher) resetAttribute() {
	d.current = d.defaultAtt
	d.bright = brightness{}
}

// CurrentAttribute returns the attribute the Dispatcher currently
// applies to new text, for callers that need to inspect it (e.g. a
// Print implementation that isn't routed through the façade).
func (d *Dispatcher) CurrentAttribute() console.Attribute {
	return d.current
}
