package dispatch

import "github.com/cliofy/vtadapter/console"

// PrivateMode identifies a DECSET/DECRST private-mode code.
type PrivateMode int

const (
	ModeDECCKM PrivateMode = iota // cursor-keys application/normal
	ModeDECCOLM
	ModeATT610 // cursor blink
	ModeDECTCEM
	ModeMouseVT200
	ModeMouseButtonEvent
	ModeMouseAnyEvent
	ModeMouseUTF8Ext
	ModeMouseSGRExt
	ModeAlternateScroll
	ModeAlternateScreenBuffer
)

// SetPrivateModes implements DECSET/DECRST over a batch of codes: all
// are attempted, the overall result is true iff every one succeeded;
// an unknown code fails only its own slot.
func (d *Dispatcher) SetPrivateModes(codes []PrivateMode, enable bool) bool {
	allOK := true
	for _, code := range codes {
		if !d.setPrivateMode(code, enable) {
			allOK = false
		}
	}
	return allOK
}

func (d *Dispatcher) setPrivateMode(code PrivateMode, enable bool) bool {
	switch code {
	case ModeDECCKM:
		d.modes.cursorKeysApplication = enable
		if !d.api.SetCursorKeysMode(enable) {
			return d.fail(failFacade, "setPrivateMode", "set_cursor_keys_mode")
		}
		return true

	case ModeDECCOLM:
		width := int16(80)
		if enable {
			width = 132
		}
		return d.SetColumns(width)

	case ModeATT610:
		d.modes.cursorBlink = enable
		if !d.api.SetAllowBlink(enable) {
			return d.fail(failFacade, "setPrivateMode", "set_allow_blink")
		}
		return true

	case ModeDECTCEM:
		return d.SetCursorVisible(enable)

	case ModeMouseVT200:
		d.modes.mouseDefault = enable
		if !d.api.SetMouseMode(console.MouseModeDefault, enable) {
			return d.fail(failFacade, "setPrivateMode", "set_mouse_mode")
		}
		return true

	case ModeMouseButtonEvent:
		d.modes.mouseButtonEvent = enable
		if !d.api.SetMouseMode(console.MouseModeButtonEvent, enable) {
			return d.fail(failFacade, "setPrivateMode", "set_mouse_mode")
		}
		return true

	case ModeMouseAnyEvent:
		d.modes.mouseAnyEvent = enable
		if !d.api.SetMouseMode(console.MouseModeAnyEvent, enable) {
			return d.fail(failFacade, "setPrivateMode", "set_mouse_mode")
		}
		return true

	case ModeMouseUTF8Ext:
		d.modes.mouseUTF8 = enable
		if !d.api.SetMouseMode(console.MouseModeUTF8Ext, enable) {
			return d.fail(failFacade, "setPrivateMode", "set_mouse_mode")
		}
		return true

	case ModeMouseSGRExt:
		d.modes.mouseSGR = enable
		if !d.api.SetMouseMode(console.MouseModeSGRExt, enable) {
			return d.fail(failFacade, "setPrivateMode", "set_mouse_mode")
		}
		return true

	case ModeAlternateScroll:
		d.modes.alternateScroll = enable
		if !d.api.SetAlternateScroll(enable) {
			return d.fail(failFacade, "setPrivateMode", "set_alternate_scroll")
		}
		return true

	case ModeAlternateScreenBuffer:
		d.modes.alternateScreen = enable
		var ok bool
		if enable {
			ok = d.api.UseAlternateScreenBuffer()
		} else {
			ok = d.api.UseMainScreenBuffer()
		}
		if !ok {
			return d.fail(failFacade, "setPrivateMode", "use_alternate/main_screen_buffer")
		}
		return true

	default:
		return d.fail(failUnsupported, "setPrivateMode", "unknown private mode code")
	}
}
