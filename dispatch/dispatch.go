// Package dispatch implements the Dispatcher: the subsystem that turns
// parsed VT/ANSI/DEC control actions into calls against a console.API
// façade. It carries all VT semantic knowledge — coordinate systems,
// margins, erasure rules, private modes, saved state, and the soft/
// hard reset matrices — behind one method per operation, each
// returning whether it was handled.
package dispatch

import (
	"log"

	"github.com/cliofy/vtadapter/charset"
	"github.com/cliofy/vtadapter/console"
)

// scrollMargins is the Dispatcher's own top/bottom scroll region,
// 0-based inclusive-inclusive; (0,0) is the disabled sentinel.
type scrollMargins struct {
	top, bottom int16
	enabled     bool
}

// savedCursor holds the DECSC-saved cursor in VT 1-based viewport-
// relative coordinates. New initializes it to (1,1), the default for a
// DECRC issued before any DECSC.
type savedCursor struct {
	col, row int16
}

// modeFlags is the adapter's private-mode state, mutated by
// DECSET/DECRST and read by the operations that depend on it.
type modeFlags struct {
	cursorKeysApplication bool
	keypadApplication     bool
	cursorBlink           bool
	cursorVisible         bool
	decColumnMode         bool
	mouseDefault          bool
	mouseButtonEvent      bool
	mouseAnyEvent         bool
	mouseUTF8             bool
	mouseSGR              bool
	alternateScroll       bool
	alternateScreen       bool
}

// brightness tracks SGR bold/dim independently of the color index, so
// a later foreground color change can reapply the current intensity.
type brightness struct {
	bold, dim bool
}

// Dispatcher is a single-threaded, stateful adapter between a parsed
// VT action stream and a console.API façade. Construct one per
// terminal session; it is not safe for concurrent use — callers must
// serialize VT-action delivery themselves.
type Dispatcher struct {
	api console.API

	margins    scrollMargins
	saved      savedCursor
	modes      modeFlags
	bright     brightness
	defaultAtt console.Attribute
	current    console.Attribute
	cs         *charset.Translator

	allowSetColumns bool
}

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithAllowSetColumns enables DECSCPP/DECCOLM side effects. Default
// off, matching the console host's conservative default.
func WithAllowSetColumns(allow bool) Option {
	return func(d *Dispatcher) { d.allowSetColumns = allow }
}

// WithDefaultAttributes sets the attribute SGR Off and soft reset
// restore. Default is the zero console.Attribute (surface default
// colors, no style bits).
func WithDefaultAttributes(attr console.Attribute) Option {
	return func(d *Dispatcher) {
		d.defaultAtt = attr
		d.current = attr
	}
}

// New constructs a Dispatcher bound to api, which must be non-nil;
// constructing with a nil façade is a programmer error, not a runtime
// one, and is not defensively checked.
func New(api console.API, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		api:    api,
		saved:  savedCursor{col: 1, row: 1},
		cs:     charset.NewTranslator(),
		modes:  modeFlags{cursorVisible: true},
		bright: brightness{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type failureKind int

const (
	failParameter failureKind = iota
	failFacade
	failTransient
	failUnsupported
)

func (d *Dispatcher) fail(kind failureKind, op string, detail string) bool {
	switch kind {
	case failParameter:
		log.Printf("dispatch: %s: invalid parameter: %s", op, detail)
	case failFacade:
		log.Printf("dispatch: %s: facade call failed: %s", op, detail)
	case failTransient:
		log.Printf("dispatch: %s: transient allocation failure: %s", op, detail)
	case failUnsupported:
		log.Printf("dispatch: %s: unsupported: %s", op, detail)
	}
	return false
}

// snapshot fetches a fresh screen-info snapshot; no Dispatcher
// operation caches one across calls.
func (d *Dispatcher) snapshot() (console.ScreenInfo, bool) {
	info, ok := d.api.GetScreenInfoEx()
	if !ok {
		d.fail(failFacade, "snapshot", "get_screen_info_ex")
	}
	return info, ok
}
