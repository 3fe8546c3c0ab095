package console

// Buffer is a minimal concrete façade implementation: a flat grid of
// cells backing a single screen buffer, used to drive the Dispatcher
// end-to-end in integration tests instead of only against Mock. It
// does not render, does not retain a separate scrollback store, and
// does not touch any window system — exactly the surface the façade
// contract requires and nothing more.
type Buffer struct {
	width, height int16
	cells         []bufferCell
	viewport      Viewport
	cursor        Position
	cursorInfo    CursorInfo
	cursorStyle   CursorStyle
	attributes    Attribute
	colorTable    ColorTable
	title         TitleString
	inputQueue    []InputEvent

	keypadApplication     bool
	cursorKeysApplication bool
	allowBlink            bool
	scrollingRegion       Viewport
	mouseModes            map[MouseMode]bool
	alternateScroll       bool
	onAlternateScreen     bool
	mainCells             []bufferCell
	mainCursor            Position
	tabStops              map[int16]bool
}

type bufferCell struct {
	Rune rune
	Attr Attribute
}

var _ API = (*Buffer)(nil)

// NewBuffer returns a Buffer sized width x height, viewport covering
// the whole grid, cursor at the origin, every cell a space with attr.
func NewBuffer(width, height int16, attr Attribute) *Buffer {
	b := &Buffer{
		width:      width,
		height:     height,
		viewport:   Viewport{Left: 0, Top: 0, Right: width, Bottom: height},
		attributes: attr,
		cursorInfo: CursorInfo{Visible: true, HeightPct: 100},
		mouseModes: make(map[MouseMode]bool),
		tabStops:   defaultTabStops(width),
	}
	b.cells = newCellGrid(width, height, attr)
	return b
}

func defaultTabStops(width int16) map[int16]bool {
	stops := make(map[int16]bool)
	for col := int16(8); col < width; col += 8 {
		stops[col] = true
	}
	return stops
}

func newCellGrid(width, height int16, attr Attribute) []bufferCell {
	cells := make([]bufferCell, int(width)*int(height))
	for i := range cells {
		cells[i] = bufferCell{Rune: ' ', Attr: attr}
	}
	return cells
}

func (b *Buffer) index(p Position) (int, bool) {
	if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
		return 0, false
	}
	return int(p.Y)*int(b.width) + int(p.X), true
}

// Cell returns the rune and attribute at p, for test assertions.
func (b *Buffer) Cell(p Position) (rune, Attribute, bool) {
	i, ok := b.index(p)
	if !ok {
		return 0, Attribute{}, false
	}
	return b.cells[i].Rune, b.cells[i].Attr, true
}

// Row returns the runes of row y across [left, right), for test
// assertions that want to check a whole line at once.
func (b *Buffer) Row(y, left, right int16) []rune {
	out := make([]rune, 0, right-left)
	for x := left; x < right; x++ {
		r, _, ok := b.Cell(Position{X: x, Y: y})
		if !ok {
			break
		}
		out = append(out, r)
	}
	return out
}

func (b *Buffer) GetScreenInfoEx() (ScreenInfo, bool) {
	return ScreenInfo{
		BufferWidth:  b.width,
		BufferHeight: b.height,
		Viewport:     b.viewport,
		Cursor:       b.cursor,
		Attributes:   b.attributes,
		ColorTable:   b.colorTable,
	}, true
}

func (b *Buffer) SetScreenInfoEx(info ScreenInfo) bool {
	b.viewport = info.Viewport
	b.cursor = info.Cursor
	b.attributes = info.Attributes
	b.colorTable = info.ColorTable
	return true
}

func (b *Buffer) SetCursorPosition(p Position) bool {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X >= b.width {
		p.X = b.width - 1
	}
	if p.Y >= b.height {
		p.Y = b.height - 1
	}
	b.cursor = p
	return true
}

func (b *Buffer) GetCursorInfo() (CursorInfo, bool) { return b.cursorInfo, true }

func (b *Buffer) SetCursorInfo(ci CursorInfo) bool {
	b.cursorInfo = ci
	return true
}

func (b *Buffer) SetCursorStyle(cs CursorStyle) bool {
	b.cursorStyle = cs
	return true
}

func (b *Buffer) FillChar(r rune, count int, pos Position) (int, bool) {
	written := 0
	p := pos
	for written < count {
		i, ok := b.index(p)
		if !ok {
			break
		}
		b.cells[i].Rune = r
		written++
		p.X++
		if p.X >= b.width {
			p.X = 0
			p.Y++
		}
	}
	return written, true
}

func (b *Buffer) FillAttr(attr Attribute, count int, pos Position) (int, bool) {
	written := 0
	p := pos
	for written < count {
		i, ok := b.index(p)
		if !ok {
			break
		}
		b.cells[i].Attr = attr
		written++
		p.X++
		if p.X >= b.width {
			p.X = 0
			p.Y++
		}
	}
	return written, true
}

// Scroll moves r.Source so its top-left lands at r.Dest, clipped to
// r.Clip when set, and paints every vacated cell with r.Fill.
func (b *Buffer) Scroll(r ScrollRect) bool {
	clip := b.viewport
	if r.Clip != nil {
		clip = *r.Clip
	}
	if r.Source.Empty() {
		return true
	}

	dy := r.Dest.Y - r.Source.Top
	dx := r.Dest.X - r.Source.Left

	snapshot := make([]bufferCell, len(b.cells))
	copy(snapshot, b.cells)

	// Paint the whole source span with fill first, then copy surviving
	// content back on top, so vacated cells end up filled exactly once.
	for y := r.Source.Top; y < r.Source.Bottom; y++ {
		for x := r.Source.Left; x < r.Source.Right; x++ {
			if i, ok := b.index(Position{X: x, Y: y}); ok {
				b.cells[i] = bufferCell{Rune: r.Fill.Rune, Attr: r.Fill.Attr}
			}
		}
	}

	for y := r.Source.Top; y < r.Source.Bottom; y++ {
		dstY := y + dy
		if dstY < clip.Top || dstY >= clip.Bottom {
			continue
		}
		for x := r.Source.Left; x < r.Source.Right; x++ {
			dstX := x + dx
			if dstX < clip.Left || dstX >= clip.Right {
				continue
			}
			si, ok := b.index(Position{X: x, Y: y})
			if !ok {
				continue
			}
			di, ok := b.index(Position{X: dstX, Y: dstY})
			if !ok {
				continue
			}
			b.cells[di] = snapshot[si]
		}
	}
	return true
}

func (b *Buffer) SetWindowInfo(absolute bool, rect InclusiveRect) bool {
	if absolute {
		b.viewport = fromInclusive(rect)
		return true
	}
	b.viewport = Viewport{
		Left:   b.viewport.Left + rect.Left,
		Top:    b.viewport.Top + rect.Top,
		Right:  b.viewport.Right + rect.Right,
		Bottom: b.viewport.Bottom + rect.Bottom,
	}
	return true
}

func (b *Buffer) SetTitle(t TitleString) bool {
	b.title = t
	return true
}

// Title returns the last title set, for test assertions.
func (b *Buffer) Title() TitleString { return b.title }

func (b *Buffer) PrependInput(events []InputEvent) (int, bool) {
	b.inputQueue = append(append([]InputEvent{}, events...), b.inputQueue...)
	return len(events), true
}

// TakeInput drains and returns the input queue, for test assertions.
func (b *Buffer) TakeInput() []InputEvent {
	out := b.inputQueue
	b.inputQueue = nil
	return out
}

func (b *Buffer) SetKeypadMode(application bool) bool {
	b.keypadApplication = application
	return true
}

func (b *Buffer) SetCursorKeysMode(application bool) bool {
	b.cursorKeysApplication = application
	return true
}

func (b *Buffer) SetAllowBlink(allow bool) bool {
	b.allowBlink = allow
	return true
}

func (b *Buffer) SetScrollingRegion(v Viewport) bool {
	b.scrollingRegion = v
	return true
}

func (b *Buffer) ReverseLineFeed() bool {
	top := b.viewport.Top
	if !b.scrollingRegion.Empty() {
		top = b.scrollingRegion.Top
	}
	if b.cursor.Y > top {
		b.cursor.Y--
		return true
	}
	bottom := b.viewport.Bottom
	if !b.scrollingRegion.Empty() {
		bottom = b.scrollingRegion.Bottom
	}
	region := Viewport{Left: b.viewport.Left, Right: b.viewport.Right, Top: top, Bottom: bottom}
	return b.Scroll(ScrollRect{
		Source: region,
		Clip:   &region,
		Dest:   Position{X: b.viewport.Left, Y: top + 1},
		Fill:   FillCell{Rune: ' ', Attr: b.attributes},
	})
}

func (b *Buffer) TabSet() bool {
	b.tabStops[b.cursor.X] = true
	return true
}

func (b *Buffer) TabClear(mode TabulationClearMode) bool {
	switch mode {
	case ClearCurrentColumn:
		delete(b.tabStops, b.cursor.X)
	case ClearAllColumns:
		b.tabStops = make(map[int16]bool)
	}
	return true
}

func (b *Buffer) TabForward(count int) bool {
	for i := 0; i < count; i++ {
		moved := false
		for x := b.cursor.X + 1; x < b.width; x++ {
			if b.tabStops[x] {
				b.cursor.X = x
				moved = true
				break
			}
		}
		if !moved {
			b.cursor.X = b.width - 1
			break
		}
	}
	return true
}

func (b *Buffer) TabBackward(count int) bool {
	for i := 0; i < count; i++ {
		moved := false
		for x := b.cursor.X - 1; x >= 0; x-- {
			if b.tabStops[x] {
				b.cursor.X = x
				moved = true
				break
			}
		}
		if !moved {
			b.cursor.X = 0
			break
		}
	}
	return true
}

func (b *Buffer) SetMouseMode(mode MouseMode, enabled bool) bool {
	b.mouseModes[mode] = enabled
	return true
}

func (b *Buffer) SetAlternateScroll(enabled bool) bool {
	b.alternateScroll = enabled
	return true
}

func (b *Buffer) UseAlternateScreenBuffer() bool {
	if b.onAlternateScreen {
		return true
	}
	b.mainCells = b.cells
	b.mainCursor = b.cursor
	b.cells = newCellGrid(b.width, b.height, b.attributes)
	b.cursor = Position{}
	b.onAlternateScreen = true
	return true
}

func (b *Buffer) UseMainScreenBuffer() bool {
	if !b.onAlternateScreen {
		return true
	}
	b.cells = b.mainCells
	b.cursor = b.mainCursor
	b.mainCells = nil
	b.onAlternateScreen = false
	return true
}

func (b *Buffer) EraseAll() bool {
	for y := b.viewport.Top; y < b.viewport.Bottom; y++ {
		for x := b.viewport.Left; x < b.viewport.Right; x++ {
			if i, ok := b.index(Position{X: x, Y: y}); ok {
				b.cells[i] = bufferCell{Rune: ' ', Attr: b.attributes}
			}
		}
	}
	return true
}
