package game

import "github.com/hajimehoshi/ebiten/v2"

// keyNames translates physical keys to the identifiers the engine understands.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeySpace:      " ",
}
