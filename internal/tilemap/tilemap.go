package tilemap

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Board is the square play field: TileCount cells per side, TileSize pixels each.
type Board struct {
	TileCount int
	TileSize  int
}

func NewBoard(tileCount, tileSize int) *Board {
	return &Board{TileCount: tileCount, TileSize: tileSize}
}

// Pixels is the side length of the board in pixels.
func (b *Board) Pixels() int {
	return b.TileCount * b.TileSize
}

func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.TileCount && y >= 0 && y < b.TileCount
}

// CellOrigin is the top-left pixel of cell (x, y).
func (b *Board) CellOrigin(x, y int) (float32, float32) {
	return float32(x * b.TileSize), float32(y * b.TileSize)
}

// DrawGrid strokes the TileCount+1 lines in each axis.
func (b *Board) DrawGrid(dst *ebiten.Image, clr color.Color) {
	side := float32(b.Pixels())
	for i := 0; i <= b.TileCount; i++ {
		p := float32(i * b.TileSize)
		vector.StrokeLine(dst, p, 0, p, side, 1, clr, false)
		vector.StrokeLine(dst, 0, p, side, p, 1, clr, false)
	}
}

// FillCell draws a rounded square inset by one pixel inside cell (x, y).
func (b *Board) FillCell(dst *ebiten.Image, x, y int, radius float32, clr color.Color) {
	if !b.Contains(x, y) {
		return
	}
	px, py := b.CellOrigin(x, y)
	size := float32(b.TileSize - 2)
	fillRoundedRect(dst, px+1, py+1, size, size, radius, clr)
}

func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, clr, true)
		return
	}
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, w, h-2*r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, clr, true)
}
