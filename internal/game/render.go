package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"snake/internal/engine"
	"snake/internal/tilemap"
)

var (
	fieldColor = color.RGBA{R: 0x16, G: 0x1b, B: 0x2e, A: 0xff}
	gridColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14}
	foodColor  = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	headColor  = color.RGBA{R: 0x7d, G: 0xf9, B: 0xff, A: 0xff}
	bodyColor  = color.RGBA{R: 0x2e, G: 0xc4, B: 0xb6, A: 0xff}
)

const (
	foodRadius = 6
	headRadius = 6
	bodyRadius = 4
)

// Render draws the play field for snap onto dst, replacing its contents.
func Render(dst *ebiten.Image, snap engine.Snapshot, board *tilemap.Board) {
	dst.Fill(fieldColor)
	board.DrawGrid(dst, gridColor)
	board.FillCell(dst, snap.Food.X, snap.Food.Y, foodRadius, foodColor)
	for i, seg := range snap.Body {
		clr, radius := segmentStyle(i)
		board.FillCell(dst, seg.X, seg.Y, radius, clr)
	}
}

func segmentStyle(index int) (color.Color, float32) {
	if index == 0 {
		return headColor, headRadius
	}
	return bodyColor, bodyRadius
}
