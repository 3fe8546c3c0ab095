package console

// ScrollRect describes a move-and-fill: cells in Source are moved so
// that Source's top-left lands on Dest; Clip, when non-nil, confines
// both the read and the write to its bounds (used to implement margin-
// respecting scrolls); Fill paints every cell vacated by the move.
type ScrollRect struct {
	Source Viewport
	Clip   *Viewport
	Dest   Position
	Fill   FillCell
}

// API is the abstract façade the Dispatcher calls to read and write
// the underlying screen buffer. It is purely abstract: every method
// reports success directly, never through a panic or error value that
// could unwind across the dispatch boundary.
type API interface {
	// GetScreenInfoEx returns a fresh snapshot. The Dispatcher calls
	// this at the start of nearly every operation; it never caches a
	// previous snapshot across calls.
	GetScreenInfoEx() (ScreenInfo, bool)
	// SetScreenInfoEx writes back a modified snapshot (used by
	// DECCOLM-triggered buffer resizes, for example).
	SetScreenInfoEx(ScreenInfo) bool

	// SetCursorPosition moves the cursor. The engine clamps internally;
	// the Dispatcher is expected to have already clamped to viewport.
	SetCursorPosition(Position) bool

	GetCursorInfo() (CursorInfo, bool)
	SetCursorInfo(CursorInfo) bool
	SetCursorStyle(CursorStyle) bool

	// FillChar writes count copies of r starting at pos, and returns
	// how many cells were actually written (may be less at a buffer
	// edge).
	FillChar(r rune, count int, pos Position) (int, bool)
	// FillAttr writes count copies of attr starting at pos.
	FillAttr(attr Attribute, count int, pos Position) (int, bool)

	// Scroll performs an atomic move-and-fill per ScrollRect.
	Scroll(ScrollRect) bool

	// SetWindowInfo repositions/resizes the viewport. If absolute,
	// rect is in buffer-absolute coordinates; otherwise it is a delta.
	// rect is inclusive-inclusive, matching the console-host SMALL_RECT
	// convention at this edge of the façade; use ToInclusive/FromInclusive
	// to convert to/from the half-open Viewport used everywhere else.
	SetWindowInfo(absolute bool, rect InclusiveRect) bool

	SetTitle(TitleString) bool

	// PrependInput inserts events at the front of the engine's input
	// queue, preserving their order, and returns how many were written.
	PrependInput(events []InputEvent) (int, bool)

	// Private one-shots.
	SetKeypadMode(application bool) bool
	SetCursorKeysMode(application bool) bool
	SetAllowBlink(allow bool) bool
	SetScrollingRegion(v Viewport) bool
	ReverseLineFeed() bool
	TabSet() bool
	TabClear(mode TabulationClearMode) bool
	TabForward(count int) bool
	TabBackward(count int) bool
	SetMouseMode(mode MouseMode, enabled bool) bool
	SetAlternateScroll(enabled bool) bool
	UseAlternateScreenBuffer() bool
	UseMainScreenBuffer() bool
	EraseAll() bool
}
