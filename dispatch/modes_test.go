package dispatch

import (
	"testing"

	"github.com/cliofy/vtadapter/console"
	"github.com/stretchr/testify/assert"
)

func TestSetPrivateModesAllSucceed(t *testing.T) {
	d, mock := newMockDispatcher()
	ok := d.SetPrivateModes([]PrivateMode{ModeDECTCEM, ModeATT610}, true)
	assert.True(t, ok)
	assert.True(t, mock.CursorInfos[len(mock.CursorInfos)-1].Visible)
	assert.True(t, mock.AllowBlinks[len(mock.AllowBlinks)-1])
}

func TestSetPrivateModesUnknownCodeFailsOnlyThatSlot(t *testing.T) {
	d, _ := newMockDispatcher()
	ok := d.SetPrivateModes([]PrivateMode{ModeDECTCEM, PrivateMode(999)}, true)
	assert.False(t, ok)
}

func TestAlternateScreenBufferToggle(t *testing.T) {
	d, mock := newMockDispatcher()
	assert.True(t, d.SetPrivateModes([]PrivateMode{ModeAlternateScreenBuffer}, true))
	assert.Equal(t, 1, mock.UseAltScreens)
	assert.True(t, d.SetPrivateModes([]PrivateMode{ModeAlternateScreenBuffer}, false))
	assert.Equal(t, 1, mock.UseMainScreens)
}

func TestMouseModePrivateModes(t *testing.T) {
	d, mock := newMockDispatcher()
	assert.True(t, d.SetPrivateModes([]PrivateMode{ModeMouseSGRExt}, true))
	last := mock.MouseModes[len(mock.MouseModes)-1]
	assert.Equal(t, console.MouseModeSGRExt, last.Mode)
	assert.True(t, last.Enabled)
}
