// Package console defines the façade the Dispatcher calls to read and
// write an underlying screen buffer, plus the value types that cross
// that boundary. The façade is purely abstract: console.Buffer is a
// minimal concrete engine used for integration tests, and console.Mock
// records calls for unit tests. Production binding is the caller's job.
package console

import "github.com/cliofy/vtadapter/coord"

// Position is an engine-absolute, zero-based cell coordinate.
type Position = coord.Position

// Viewport is a half-open rectangle (Right/Bottom exclusive) over the
// engine's buffer.
type Viewport = coord.Viewport

// InclusiveRect is a four-i16 rectangle (Right/Bottom inclusive), used
// only at the SetWindowInfo edge of the façade; see coord.ToInclusive
// and coord.FromInclusive.
type InclusiveRect = coord.InclusiveRect

func fromInclusive(r InclusiveRect) Viewport { return coord.FromInclusive(r) }

// NamedColor is one of the 16 standard terminal colors.
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Rgb is a 24-bit color value.
type Rgb struct {
	R, G, B uint8
}

// ColorType discriminates which field of Color is populated.
type ColorType uint8

const (
	// ColorDefault means "no color set", i.e. the surface's default.
	ColorDefault ColorType = iota
	ColorNamed
	ColorIndexed
	ColorRGB
)

// Color is a terminal color: default, one of the 16 named colors, a
// 256-color palette index, or a 24-bit RGB triple.
type Color struct {
	Type  ColorType
	Named NamedColor
	Index uint8
	RGB   Rgb
}

// DefaultColor is the unset/default color value.
var DefaultColor = Color{Type: ColorDefault}

// NamedColorValue constructs a Color from one of the 16 standard colors.
func NamedColorValue(c NamedColor) Color { return Color{Type: ColorNamed, Named: c} }

// IndexedColor constructs a Color from a 256-color palette index.
func IndexedColor(i uint8) Color { return Color{Type: ColorIndexed, Index: i} }

// RGBColor constructs a Color from 24-bit components.
func RGBColor(r, g, b uint8) Color { return Color{Type: ColorRGB, RGB: Rgb{r, g, b}} }

// StyleBits is a bitmask of SGR text-rendition attributes other than
// color. Bold and Dim are tracked here as requested display intent;
// the Dispatcher additionally tracks brightness separately so a later
// color change can reapply it (see dispatch.brightness).
type StyleBits uint16

const (
	StyleBold StyleBits = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleBlink
	StyleReverse
	StyleHidden
	StyleStrikethrough
)

// Has reports whether all bits in other are set.
func (s StyleBits) Has(other StyleBits) bool { return s&other == other }

// Attribute is the full text-rendition word the façade trades in:
// foreground, background, and style bits.
type Attribute struct {
	Foreground Color
	Background Color
	Style      StyleBits
}

// FillCell is a codepoint plus the attribute to paint it with, used by
// fill and scroll operations.
type FillCell struct {
	Rune rune
	Attr Attribute
}

// ColorTable is the 16-entry color table (xterm OSC 4 targets indices
// 0-15 only, per this contract).
type ColorTable [16]Rgb

// ScreenInfo is a read-only snapshot of engine state, refetched by the
// Dispatcher before every command that depends on it — nothing is
// cached across calls.
type ScreenInfo struct {
	BufferWidth  int16
	BufferHeight int16
	Viewport     Viewport
	Cursor       Position
	Attributes   Attribute
	ColorTable   ColorTable
}

// CursorShape is the cursor's rendered shape.
type CursorShape uint8

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeUnderline
	CursorShapeBar
)

// CursorStyle is shape plus blink, the pair DECSCUSR applies together.
type CursorStyle struct {
	Shape    CursorShape
	Blinking bool
}

// CursorInfo is visibility plus the rendered cell height percentage,
// as returned/consumed by get_cursor_info / set_cursor_info.
type CursorInfo struct {
	Visible   bool
	HeightPct uint8
}

// KeyAction distinguishes a key-down from a key-up input event.
type KeyAction uint8

const (
	KeyDown KeyAction = iota
	KeyUp
)

// InputEvent is a synthesized keyboard event, the unit the response
// channel prepends to the engine's input queue (one down/up pair per
// reply code unit).
type InputEvent struct {
	Action KeyAction
	Char   rune
}

// TitleString is a window title encoded the way SetConsoleTitle wants
// it: UTF-16 code units plus an explicit length.
type TitleString struct {
	UTF16 []uint16
	Len   int
}

// TabulationClearMode selects which tab stops TBC clears.
type TabulationClearMode uint8

const (
	ClearCurrentColumn TabulationClearMode = iota
	ClearAllColumns
)

// MouseMode is one of the private mouse-reporting modes DECSET/DECRST
// can toggle.
type MouseMode uint8

const (
	MouseModeDefault MouseMode = iota
	MouseModeButtonEvent
	MouseModeAnyEvent
	MouseModeUTF8Ext
	MouseModeSGRExt
)
