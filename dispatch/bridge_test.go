package dispatch

import (
	"testing"

	"github.com/cliofy/vtadapter/console"
	"github.com/cliofy/vtadapter/vtparse"
	"github.com/stretchr/testify/assert"
)

func runBridge(d *Dispatcher, s string) {
	bridge := NewBridge(d)
	parser := vtparse.NewParser()
	parser.Advance(bridge, []byte(s))
}

func TestBridgeMovesCursorOnCUU(t *testing.T) {
	d, mock := newMockDispatcher()
	mock.Info.Cursor = console.Position{X: 5, Y: 5}
	runBridge(d, "\x1b[3A")
	assert.Equal(t, console.Position{X: 5, Y: 2}, mock.CursorPositions[len(mock.CursorPositions)-1])
}

func TestBridgeSGRSemicolonExtendedColor(t *testing.T) {
	d, _ := newMockDispatcher()
	runBridge(d, "\x1b[38;5;201m")
	assert.Equal(t, console.IndexedColor(201), d.current.Foreground)
}

func TestBridgeSGRSemicolonRGBColor(t *testing.T) {
	d, _ := newMockDispatcher()
	runBridge(d, "\x1b[48;2;10;20;30m")
	assert.Equal(t, console.RGBColor(10, 20, 30), d.current.Background)
}

func TestBridgeDECSETAlternateScreen(t *testing.T) {
	d, mock := newMockDispatcher()
	runBridge(d, "\x1b[?1049h")
	assert.Equal(t, 1, mock.UseAltScreens)
}

func TestBridgeOSCTitleDispatch(t *testing.T) {
	d, mock := newMockDispatcher()
	runBridge(d, "\x1b]2;my title\x07")
	assert.Equal(t, "my title", string(utf16ToRunes(mock.Titles[len(mock.Titles)-1].UTF16)))
}

func TestBridgeC0BackspaceAndTab(t *testing.T) {
	d, mock := newMockDispatcher()
	mock.Info.Cursor = console.Position{X: 5, Y: 0}
	runBridge(d, "\b")
	assert.Equal(t, console.Position{X: 4, Y: 0}, mock.CursorPositions[len(mock.CursorPositions)-1])
	runBridge(d, "\t")
	assert.Equal(t, []int{1}, mock.TabForwards)
}

func TestBridgePrintRunsThroughFillAndAdvance(t *testing.T) {
	d, mock := newMockDispatcher()
	runBridge(d, "AB")
	assert.Len(t, mock.FillCharCalls, 2)
	assert.Equal(t, 'A', mock.FillCharCalls[0].Rune)
	assert.Equal(t, 'B', mock.FillCharCalls[1].Rune)
}

func TestBridgeHardResetOnRIS(t *testing.T) {
	d, mock := newMockDispatcher()
	runBridge(d, "\x1bc")
	assert.Equal(t, 1, mock.EraseAlls)
}

func utf16ToRunes(units []uint16) []rune {
	var out []rune
	for _, u := range units {
		out = append(out, rune(u))
	}
	return out
}
