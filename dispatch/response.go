package dispatch

import (
	"fmt"

	"github.com/cliofy/vtadapter/console"
)

// ReportCursorPosition implements DSR's ANSI CPR form: builds
// `ESC [ row ; col R` with 1-based viewport-relative coordinates and
// submits it through the response channel.
func (d *Dispatcher) ReportCursorPosition() bool {
	info, ok := d.snapshot()
	if !ok {
		return false
	}
	row := info.Cursor.Y - info.Viewport.Top + 1
	col := info.Cursor.X - info.Viewport.Left + 1
	return d.respond(fmt.Sprintf("\x1b[%d;%dR", row, col))
}

// IdentifyTerminal implements DA: replies with the fixed VT device
// attributes string.
func (d *Dispatcher) IdentifyTerminal() bool {
	return d.respond("\x1b[?1;0c")
}

// respond synthesizes a paired key-down/key-up input event for each
// ASCII code unit of s, in order, and prepends them to the engine's
// input queue.
func (d *Dispatcher) respond(s string) bool {
	events := make([]console.InputEvent, 0, len(s)*2)
	for _, r := range s {
		if r > 0x7F {
			return d.fail(failTransient, "respond", "reply contains a non-ASCII code unit")
		}
		events = append(events, console.InputEvent{Action: console.KeyDown, Char: r})
		events = append(events, console.InputEvent{Action: console.KeyUp, Char: r})
	}
	written, ok := d.api.PrependInput(events)
	if !ok || written != len(events) {
		return d.fail(failFacade, "respond", "prepend_input")
	}
	return true
}

// SetTitle implements OSC 0/2: set the window title.
func (d *Dispatcher) SetTitle(title string) bool {
	units := utf16Encode(title)
	if !d.api.SetTitle(console.TitleString{UTF16: units, Len: len(units)}) {
		return d.fail(failFacade, "SetTitle", "set_title")
	}
	return true
}
