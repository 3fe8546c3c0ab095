package dispatch

import (
	"github.com/cliofy/vtadapter/charset"
	"github.com/cliofy/vtadapter/console"
	"github.com/cliofy/vtadapter/vtparse"
)

// Bridge adapts the real parser's Performer callbacks to a Dispatcher,
// translating parsed parameter groups into the concrete types each
// Dispatcher method expects: merging semicolon-split SGR extended-
// color triplets into one SGRParam, mapping CSI/ESC final bytes to the
// matching operation, and routing C0 controls.
type Bridge struct {
	d *Dispatcher
}

// NewBridge returns a Performer that drives d.
func NewBridge(d *Dispatcher) *Bridge {
	return &Bridge{d: d}
}

var _ vtparse.Performer = (*Bridge)(nil)

// Print forwards a printable rune.
func (b *Bridge) Print(c rune) {
	b.d.Print(c)
}

// Execute handles a C0 control byte.
func (b *Bridge) Execute(c byte) {
	switch c {
	case 0x07: // BEL
		// no bell primitive in this contract; ignored.
	case 0x08: // BS
		one := uint(1)
		b.d.MoveCursor(DirBackward, one)
	case 0x09: // HT
		b.d.TabForward(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		b.d.MoveCursor(DirDown, 1)
	case 0x0D: // CR
		col := uint(1)
		b.d.GotoAbsolute(nil, &col)
	case 0x0E: // SO
		b.d.SetActiveCharset(charset.G1)
	case 0x0F: // SI
		b.d.SetActiveCharset(charset.G0)
	}
}

// OscDispatch routes OSC 0/2 (title) and OSC 4 (color table).
func (b *Bridge) OscDispatch(params [][]byte, bellTerminated bool) {
	if len(params) == 0 {
		return
	}
	num := 0
	for _, c := range params[0] {
		if c < '0' || c > '9' {
			return
		}
		num = num*10 + int(c-'0')
	}

	switch num {
	case 0, 2:
		if len(params) > 1 {
			b.d.SetTitle(string(params[1]))
		}
	case 4:
		// OSC 4 ; index ; #rrggbb or rgb:rrrr/gggg/bbbb, repeated for each
		// index/color pair in the message.
		for i := 1; i+1 < len(params); i += 2 {
			index, ok := parseDecimal(params[i])
			if !ok || index > 255 {
				continue
			}
			bbggrr, ok := parseOscColor(params[i+1])
			if !ok {
				continue
			}
			b.d.SetColorTableEntry(uint8(index), bbggrr)
		}
	}
}

// CsiDispatch routes a finished CSI sequence to the matching Dispatcher
// operation.
func (b *Bridge) CsiDispatch(params *vtparse.Params, intermediates []byte, ignore bool, action rune) {
	if ignore {
		return
	}
	groups := params.Iter()
	private := len(intermediates) > 0 && intermediates[0] == '?'

	switch action {
	case 'A':
		b.d.MoveCursor(DirUp, uintParam(groups, 0, 1))
	case 'B':
		b.d.MoveCursor(DirDown, uintParam(groups, 0, 1))
	case 'C':
		b.d.MoveCursor(DirForward, uintParam(groups, 0, 1))
	case 'D':
		b.d.MoveCursor(DirBackward, uintParam(groups, 0, 1))
	case 'E':
		b.d.MoveCursor(DirNextLine, uintParam(groups, 0, 1))
	case 'F':
		b.d.MoveCursor(DirPrevLine, uintParam(groups, 0, 1))

	case 'G', '`':
		col := uintParam(groups, 0, 1)
		b.d.GotoAbsolute(nil, &col)
	case 'd':
		row := uintParam(groups, 0, 1)
		b.d.GotoAbsolute(&row, nil)
	case 'H', 'f':
		row := uintParam(groups, 0, 1)
		col := uintParam(groups, 1, 1)
		b.d.GotoAbsolute(&row, &col)

	case 'J':
		b.d.EraseInDisplay(displayEraseMode(intParam(groups, 0, 0)))
	case 'K':
		b.d.EraseInLine(lineEraseMode(intParam(groups, 0, 0)))

	case 'L':
		b.d.InsertLines(uintParam(groups, 0, 1))
	case 'M':
		b.d.DeleteLines(uintParam(groups, 0, 1))
	case 'P':
		b.d.DeleteChars(uintParam(groups, 0, 1))
	case '@':
		b.d.InsertBlank(uintParam(groups, 0, 1))
	case 'X':
		b.d.EraseChars(uintParam(groups, 0, 1))

	case 'S':
		b.d.ScrollViewport(int(uintParam(groups, 0, 1)))
	case 'T':
		b.d.ScrollViewport(-int(uintParam(groups, 0, 1)))

	case 'r':
		top := uintParam(groups, 0, 0)
		bottom := uintParam(groups, 1, 0)
		b.d.SetScrollingRegion(top, bottom)

	case 's':
		b.d.SaveCursor()
	case 'u':
		b.d.RestoreCursor()

	case 'I':
		b.d.TabForward(uintParam(groups, 0, 1))
	case 'Z':
		b.d.TabBackward(uintParam(groups, 0, 1))
	case 'g':
		switch intParam(groups, 0, 0) {
		case 0:
			b.d.ClearTabStop(console.ClearCurrentColumn)
		case 3:
			b.d.ClearTabStop(console.ClearAllColumns)
		}

	case 'm':
		b.d.SGR(mergeSGRGroups(groups))

	case 'n':
		if intParam(groups, 0, 0) == 6 {
			b.d.ReportCursorPosition()
		}
	case 'c':
		b.d.IdentifyTerminal()

	case 'q':
		if len(intermediates) > 0 && intermediates[0] == ' ' {
			b.d.SetCursorStyle(CursorStyleCode(intParam(groups, 0, 0)))
		}

	case 'p':
		if len(intermediates) > 0 && intermediates[0] == '!' {
			b.d.SoftReset()
		}

	case 'h':
		b.dispatchModeToggle(groups, private, true)
	case 'l':
		b.dispatchModeToggle(groups, private, false)

	case 't':
		if intParam(groups, 0, 0) == 8 {
			rows := uintParam(groups, 1, 0)
			cols := uintParam(groups, 2, 0)
			b.d.ResizeWindow(rows, cols)
		}
	}
}

func (b *Bridge) dispatchModeToggle(groups [][]uint16, private, enable bool) {
	if !private {
		return
	}
	var codes []PrivateMode
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if pm, ok := privateModeFromCode(group[0]); ok {
			codes = append(codes, pm)
		}
	}
	if len(codes) > 0 {
		b.d.SetPrivateModes(codes, enable)
	}
}

// EscDispatch routes a finished escape sequence.
func (b *Bridge) EscDispatch(intermediates []byte, ignore bool, final byte) {
	if ignore {
		return
	}
	switch final {
	case '7':
		b.d.SaveCursor()
	case '8':
		b.d.RestoreCursor()
	case 'c':
		b.d.HardReset()
	case 'D':
		b.d.MoveCursor(DirDown, 1)
	case 'E':
		b.d.MoveCursor(DirNextLine, 1)
	case 'M':
		b.d.ReverseIndex()
	case 'H':
		b.d.SetTabStop()
	case 'B':
		b.configureCharset(intermediates, charset.ASCII)
	case '0':
		b.configureCharset(intermediates, charset.SpecialLineDrawing)
	}
}

func (b *Bridge) configureCharset(intermediates []byte, cs charset.Standard) {
	if len(intermediates) != 1 {
		return
	}
	var slot charset.Index
	switch intermediates[0] {
	case '(':
		slot = charset.G0
	case ')':
		slot = charset.G1
	case '*':
		slot = charset.G2
	case '+':
		slot = charset.G3
	default:
		return
	}
	b.d.ConfigureCharset(slot, cs)
}

// privateModeFromCode maps a DECSET/DECRST numeric code to the
// Dispatcher's PrivateMode enum. Unknown codes report not-ok so the
// caller can skip them rather than mapping to a wrong mode.
func privateModeFromCode(code uint16) (PrivateMode, bool) {
	switch code {
	case 1:
		return ModeDECCKM, true
	case 3:
		return ModeDECCOLM, true
	case 12:
		return ModeATT610, true
	case 25:
		return ModeDECTCEM, true
	case 1000:
		return ModeMouseVT200, true
	case 1002:
		return ModeMouseButtonEvent, true
	case 1003:
		return ModeMouseAnyEvent, true
	case 1005, 1006:
		return ModeMouseUTF8Ext, true
	case 1016:
		return ModeMouseSGRExt, true
	case 1007:
		return ModeAlternateScroll, true
	case 1049, 47, 1047:
		return ModeAlternateScreenBuffer, true
	default:
		return 0, false
	}
}

func lineEraseMode(code int) LineEraseMode {
	switch code {
	case 1:
		return EraseFromBeginning
	case 2:
		return EraseLineAll
	default:
		return EraseToEnd
	}
}

func displayEraseMode(code int) DisplayEraseMode {
	switch code {
	case 1:
		return EraseDisplayFromBeginning
	case 2:
		return EraseAll
	case 3:
		return EraseScrollback
	default:
		return EraseDisplayToEnd
	}
}

// mergeSGRGroups folds semicolon-separated extended-color triplets
// (38;5;N, 38;2;r;g;b, 48;5;N, 48;2;r;g;b) into a single SGRParam,
// since only colon-delimited sub-parameters arrive pre-grouped from
// Params.Iter(). Any other group passes through unchanged.
func mergeSGRGroups(groups [][]uint16) []SGRParam {
	out := make([]SGRParam, 0, len(groups))
	for i := 0; i < len(groups); i++ {
		group := groups[i]
		if len(group) == 0 {
			continue
		}
		if (group[0] != 38 && group[0] != 48) || len(group) > 1 {
			out = append(out, SGRParam{Values: group})
			continue
		}
		// Bare 38/48: look ahead across semicolon-separated groups.
		if i+1 >= len(groups) || len(groups[i+1]) == 0 {
			out = append(out, SGRParam{Values: group})
			continue
		}
		switch groups[i+1][0] {
		case 5:
			if i+2 < len(groups) && len(groups[i+2]) > 0 {
				out = append(out, SGRParam{Values: []uint16{group[0], 5, groups[i+2][0]}})
				i += 2
				continue
			}
		case 2:
			if i+4 < len(groups) {
				merged := []uint16{group[0], 2}
				ok := true
				for j := 2; j <= 4; j++ {
					if len(groups[i+j]) == 0 {
						ok = false
						break
					}
					merged = append(merged, groups[i+j][0])
				}
				if ok {
					out = append(out, SGRParam{Values: merged})
					i += 4
					continue
				}
			}
		}
		out = append(out, SGRParam{Values: group})
	}
	return out
}

func uintParam(groups [][]uint16, idx int, def uint) uint {
	if idx >= len(groups) || len(groups[idx]) == 0 {
		return def
	}
	v := groups[idx][0]
	if v == 0 && def != 0 {
		return def
	}
	return uint(v)
}

func intParam(groups [][]uint16, idx int, def int) int {
	return int(uintParam(groups, idx, uint(def)))
}

func parseDecimal(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// parseOscColor parses an OSC 4 color spec of the form "#rrggbb" or
// "rgb:rrrr/gggg/bbbb" into a packed 0x00BBGGRR value. In the rgb: form
// only the high byte of each four-digit channel is kept; the shorter
// "rgb:rr/gg/bb" spelling is not accepted.
func parseOscColor(b []byte) (uint32, bool) {
	s := string(b)
	var r, g, bch uint8
	var ok bool
	if len(s) == 7 && s[0] == '#' {
		r, ok = parseHexByte(s[1:3])
		if !ok {
			return 0, false
		}
		g, ok = parseHexByte(s[3:5])
		if !ok {
			return 0, false
		}
		bch, ok = parseHexByte(s[5:7])
		if !ok {
			return 0, false
		}
	} else if len(s) == 18 && s[:4] == "rgb:" {
		r, ok = parseHexByte(s[4:6])
		if !ok {
			return 0, false
		}
		g, ok = parseHexByte(s[9:11])
		if !ok {
			return 0, false
		}
		bch, ok = parseHexByte(s[14:16])
		if !ok {
			return 0, false
		}
	} else {
		return 0, false
	}
	return uint32(bch)<<16 | uint32(g)<<8 | uint32(r), true
}

func parseHexByte(s string) (uint8, bool) {
	if len(s) != 2 {
		return 0, false
	}
	var v uint8
	for _, c := range []byte(s) {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		default:
			return 0, false
		}
	}
	return v, true
}
