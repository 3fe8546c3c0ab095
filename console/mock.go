package console

// Mock is a façade implementation that records every call instead of
// touching real screen memory, in the embed-and-record style used
// throughout this codebase's other test doubles. Tests construct one,
// seed Info with the scenario's starting snapshot, and assert against
// the recorded call slices afterward.
type Mock struct {
	Info ScreenInfo

	// Fails, when a field is true, makes the matching method return
	// false without recording a mutation, for exercising FaçadeError
	// handling.
	Fails MockFailures

	CursorPositions  []Position
	CursorInfos      []CursorInfo
	CursorStyles     []CursorStyle
	FillCharCalls    []FillCharCall
	FillAttrCalls    []FillAttrCall
	Scrolls          []ScrollRect
	WindowInfos      []WindowInfoCall
	Titles           []TitleString
	PrependedInputs  [][]InputEvent
	KeypadModes      []bool
	CursorKeysModes  []bool
	AllowBlinks      []bool
	ScrollingRegions []Viewport
	ReverseLineFeeds int
	TabSets          int
	TabClears        []TabulationClearMode
	TabForwards      []int
	TabBackwards     []int
	MouseModes       []MouseModeCall
	AlternateScrolls []bool
	UseAltScreens    int
	UseMainScreens   int
	EraseAlls        int
	ScreenInfoWrites []ScreenInfo
}

// MockFailures selects which Mock methods report façade failure.
type MockFailures struct {
	GetScreenInfoEx   bool
	SetScreenInfoEx   bool
	SetCursorPosition bool
	Scroll            bool
	FillChar          bool
	FillAttr          bool
	PrependInput      bool
	SetWindowInfo     bool
}

// FillCharCall records one FillChar invocation.
type FillCharCall struct {
	Rune  rune
	Count int
	Pos   Position
}

// FillAttrCall records one FillAttr invocation.
type FillAttrCall struct {
	Attr  Attribute
	Count int
	Pos   Position
}

// WindowInfoCall records one SetWindowInfo invocation.
type WindowInfoCall struct {
	Absolute bool
	Rect     InclusiveRect
}

// MouseModeCall records one SetMouseMode invocation.
type MouseModeCall struct {
	Mode    MouseMode
	Enabled bool
}

// NewMock returns a Mock seeded with the given starting snapshot.
func NewMock(info ScreenInfo) *Mock {
	return &Mock{Info: info}
}

var _ API = (*Mock)(nil)

func (m *Mock) GetScreenInfoEx() (ScreenInfo, bool) {
	if m.Fails.GetScreenInfoEx {
		return ScreenInfo{}, false
	}
	return m.Info, true
}

func (m *Mock) SetScreenInfoEx(info ScreenInfo) bool {
	if m.Fails.SetScreenInfoEx {
		return false
	}
	m.Info = info
	m.ScreenInfoWrites = append(m.ScreenInfoWrites, info)
	return true
}

func (m *Mock) SetCursorPosition(p Position) bool {
	if m.Fails.SetCursorPosition {
		return false
	}
	m.Info.Cursor = p
	m.CursorPositions = append(m.CursorPositions, p)
	return true
}

func (m *Mock) GetCursorInfo() (CursorInfo, bool) {
	if len(m.CursorInfos) == 0 {
		return CursorInfo{Visible: true, HeightPct: 100}, true
	}
	return m.CursorInfos[len(m.CursorInfos)-1], true
}

func (m *Mock) SetCursorInfo(ci CursorInfo) bool {
	m.CursorInfos = append(m.CursorInfos, ci)
	return true
}

func (m *Mock) SetCursorStyle(cs CursorStyle) bool {
	m.CursorStyles = append(m.CursorStyles, cs)
	return true
}

func (m *Mock) FillChar(r rune, count int, pos Position) (int, bool) {
	if m.Fails.FillChar {
		return 0, false
	}
	m.FillCharCalls = append(m.FillCharCalls, FillCharCall{Rune: r, Count: count, Pos: pos})
	return count, true
}

func (m *Mock) FillAttr(attr Attribute, count int, pos Position) (int, bool) {
	if m.Fails.FillAttr {
		return 0, false
	}
	m.FillAttrCalls = append(m.FillAttrCalls, FillAttrCall{Attr: attr, Count: count, Pos: pos})
	return count, true
}

func (m *Mock) Scroll(r ScrollRect) bool {
	if m.Fails.Scroll {
		return false
	}
	m.Scrolls = append(m.Scrolls, r)
	return true
}

func (m *Mock) SetWindowInfo(absolute bool, rect InclusiveRect) bool {
	if m.Fails.SetWindowInfo {
		return false
	}
	m.WindowInfos = append(m.WindowInfos, WindowInfoCall{Absolute: absolute, Rect: rect})
	return true
}

func (m *Mock) SetTitle(t TitleString) bool {
	m.Titles = append(m.Titles, t)
	return true
}

func (m *Mock) PrependInput(events []InputEvent) (int, bool) {
	if m.Fails.PrependInput {
		return 0, false
	}
	m.PrependedInputs = append(m.PrependedInputs, events)
	return len(events), true
}

func (m *Mock) SetKeypadMode(application bool) bool {
	m.KeypadModes = append(m.KeypadModes, application)
	return true
}

func (m *Mock) SetCursorKeysMode(application bool) bool {
	m.CursorKeysModes = append(m.CursorKeysModes, application)
	return true
}

func (m *Mock) SetAllowBlink(allow bool) bool {
	m.AllowBlinks = append(m.AllowBlinks, allow)
	return true
}

func (m *Mock) SetScrollingRegion(v Viewport) bool {
	m.ScrollingRegions = append(m.ScrollingRegions, v)
	return true
}

func (m *Mock) ReverseLineFeed() bool {
	m.ReverseLineFeeds++
	return true
}

func (m *Mock) TabSet() bool {
	m.TabSets++
	return true
}

func (m *Mock) TabClear(mode TabulationClearMode) bool {
	m.TabClears = append(m.TabClears, mode)
	return true
}

func (m *Mock) TabForward(count int) bool {
	m.TabForwards = append(m.TabForwards, count)
	return true
}

func (m *Mock) TabBackward(count int) bool {
	m.TabBackwards = append(m.TabBackwards, count)
	return true
}

func (m *Mock) SetMouseMode(mode MouseMode, enabled bool) bool {
	m.MouseModes = append(m.MouseModes, MouseModeCall{Mode: mode, Enabled: enabled})
	return true
}

func (m *Mock) SetAlternateScroll(enabled bool) bool {
	m.AlternateScrolls = append(m.AlternateScrolls, enabled)
	return true
}

func (m *Mock) UseAlternateScreenBuffer() bool {
	m.UseAltScreens++
	return true
}

func (m *Mock) UseMainScreenBuffer() bool {
	m.UseMainScreens++
	return true
}

func (m *Mock) EraseAll() bool {
	m.EraseAlls++
	return true
}
