package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Point
	}{
		{name: "up", dir: DirUp, want: Point{X: 5, Y: 4}},
		{name: "down", dir: DirDown, want: Point{X: 5, Y: 6}},
		{name: "left", dir: DirLeft, want: Point{X: 4, Y: 5}},
		{name: "right", dir: DirRight, want: Point{X: 6, Y: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Point{X: 5, Y: 5}.Add(tc.dir))
		})
	}
}

func TestIsOpposite(t *testing.T) {
	assert.True(t, DirUp.IsOpposite(DirDown))
	assert.True(t, DirLeft.IsOpposite(DirRight))
	assert.False(t, DirUp.IsOpposite(DirLeft))
	assert.False(t, DirRight.IsOpposite(DirRight))
}
