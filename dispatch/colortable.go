package dispatch

import "github.com/cliofy/vtadapter/console"

// xtermToEngineIndex permutes the 16-color palette from xterm's RGB bit
// order (bit0=red, bit1=green, bit2=blue, bit3=bright) to the engine's
// BGR bit order (bit0=blue, bit1=green, bit2=red, bit3=bright): red and
// blue swap position, green and the bright bit stay put. The permutation
// is its own inverse.
var xtermToEngineIndex = [16]uint8{
	0, 4, 2, 6, 1, 5, 3, 7,
	8, 12, 10, 14, 9, 13, 11, 15,
}

// SetColorTableEntry implements xterm OSC 4: accepts a 0..15 index and
// a 0x00BBGGRR-packed color. Indices above 15 are out of range for
// this contract.
func (d *Dispatcher) SetColorTableEntry(index uint8, bbggrr uint32) bool {
	if index > 15 {
		return d.fail(failParameter, "SetColorTableEntry", "index out of range")
	}
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	b := uint8((bbggrr >> 16) & 0xFF)
	g := uint8((bbggrr >> 8) & 0xFF)
	r := uint8(bbggrr & 0xFF)

	engineIndex := xtermToEngineIndex[index]
	info.ColorTable[engineIndex] = console.Rgb{R: r, G: g, B: b}
	if !d.api.SetScreenInfoEx(info) {
		return d.fail(failFacade, "SetColorTableEntry", "set_screen_info_ex")
	}
	return true
}
