package dispatch

import (
	"testing"

	"github.com/cliofy/vtadapter/console"
	"github.com/stretchr/testify/assert"
)

func TestSetColorTableEntryWithinRange(t *testing.T) {
	d, mock := newMockDispatcher()
	assert.True(t, d.SetColorTableEntry(4, 0x00FF8800))
	// xterm index 4 (blue) lands on engine index 1 under the RGB->BGR swap.
	got := mock.Info.ColorTable[1]
	assert.Equal(t, console.Rgb{R: 0x00, G: 0x88, B: 0xFF}, got)
}

func TestSetColorTableEntryOutOfRangeFails(t *testing.T) {
	d, _ := newMockDispatcher()
	assert.False(t, d.SetColorTableEntry(16, 0))
}

func TestSetColorTableEntryBrightHalfPermuted(t *testing.T) {
	d, mock := newMockDispatcher()
	// xterm index 9 (bright red) must land on engine index 12, not 9:
	// the bright-half indices are not identity-mapped.
	assert.True(t, d.SetColorTableEntry(9, 0x00FF8800))
	assert.Equal(t, console.Rgb{R: 0x00, G: 0x88, B: 0xFF}, mock.Info.ColorTable[12])
	assert.Equal(t, console.Rgb{}, mock.Info.ColorTable[9])
}
