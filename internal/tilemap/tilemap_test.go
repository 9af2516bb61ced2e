package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardDimensions(t *testing.T) {
	b := NewBoard(20, 20)
	assert.Equal(t, 400, b.Pixels())

	x, y := b.CellOrigin(3, 4)
	assert.Equal(t, float32(60), x)
	assert.Equal(t, float32(80), y)
}

func TestContainsBounds(t *testing.T) {
	b := NewBoard(20, 16)
	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(19, 19))
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {20, 0}, {0, 20}} {
		assert.False(t, b.Contains(p[0], p[1]), "%v should be outside", p)
	}
}
