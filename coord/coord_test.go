package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportDimensions(t *testing.T) {
	v := Viewport{Left: 2, Top: 1, Right: 10, Bottom: 5}
	assert.Equal(t, int16(8), v.Width())
	assert.Equal(t, int16(4), v.Height())
	assert.False(t, v.Empty())
}

func TestViewportEmpty(t *testing.T) {
	assert.True(t, Viewport{Left: 5, Right: 5, Top: 0, Bottom: 5}.Empty())
	assert.True(t, Viewport{Left: 0, Right: 5, Top: 5, Bottom: 5}.Empty())
	assert.True(t, Viewport{Left: 5, Right: 2, Top: 0, Bottom: 5}.Empty())
}

func TestViewportContains(t *testing.T) {
	v := Viewport{Left: 0, Top: 0, Right: 80, Bottom: 24}
	assert.True(t, v.Contains(Position{X: 0, Y: 0}))
	assert.True(t, v.Contains(Position{X: 79, Y: 23}))
	assert.False(t, v.Contains(Position{X: 80, Y: 0}))
	assert.False(t, v.Contains(Position{X: 0, Y: 24}))
	assert.False(t, v.Contains(Position{X: -1, Y: 0}))
}

func TestClamp(t *testing.T) {
	v := Viewport{Left: 0, Top: 0, Right: 80, Bottom: 24}
	assert.Equal(t, Position{X: 0, Y: 0}, Clamp(Position{X: -5, Y: -5}, v))
	assert.Equal(t, Position{X: 79, Y: 23}, Clamp(Position{X: 100, Y: 100}, v))
	assert.Equal(t, Position{X: 10, Y: 10}, Clamp(Position{X: 10, Y: 10}, v))
}

func TestClampEmptyViewportIsNoop(t *testing.T) {
	v := Viewport{Left: 5, Right: 5, Top: 0, Bottom: 5}
	p := Position{X: 99, Y: 1}
	assert.Equal(t, p, Clamp(p, v))
}

func TestCheckedAddXOverflow(t *testing.T) {
	_, ok := CheckedAddX(Position{X: maxInt16}, 1)
	assert.False(t, ok)

	p, ok := CheckedAddX(Position{X: 10}, 5)
	assert.True(t, ok)
	assert.Equal(t, int16(15), p.X)
}

func TestCheckedAddYOverflow(t *testing.T) {
	_, ok := CheckedAddY(Position{Y: minInt16}, -1)
	assert.False(t, ok)
}

func TestCheckedUintToInt16(t *testing.T) {
	v, ok := CheckedUintToInt16(42)
	assert.True(t, ok)
	assert.Equal(t, int16(42), v)

	_, ok = CheckedUintToInt16(1 << 20)
	assert.False(t, ok)
}
