package engine

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"snake/internal/entities"
)

// PlaceFood picks a cell uniformly among those the snake does not cover.
// It returns false when the board is full.
func PlaceFood(snake *entities.Snake, tileCount int, rng *rand.Rand) (entities.Point, bool) {
	free := freeCells(snake, tileCount)
	if len(free) == 0 {
		return entities.Point{}, false
	}
	return free[rng.IntN(len(free))], true
}

func freeCells(snake *entities.Snake, tileCount int) []entities.Point {
	occupied := lo.Associate(snake.Segments(), func(p entities.Point) (entities.Point, struct{}) {
		return p, struct{}{}
	})
	cells := make([]entities.Point, 0, tileCount*tileCount)
	for y := 0; y < tileCount; y++ {
		for x := 0; x < tileCount; x++ {
			cells = append(cells, entities.Point{X: x, Y: y})
		}
	}
	return lo.Reject(cells, func(p entities.Point, _ int) bool {
		_, taken := occupied[p]
		return taken
	})
}
