package engine

import (
	"math/rand/v2"
)

// Outcome describes what a single tick did.
type Outcome struct {
	Ticked       bool
	Ate          bool
	Crashed      bool
	Cleared      bool
	NewBest      bool
	SpeedChanged bool
}

// Step advances s by one tick. It does nothing unless the game is running.
// Collisions are checked against the body before it moves, tail included.
func Step(s *State, cfg Settings, rng *rand.Rand) Outcome {
	if s.Phase != Running {
		return Outcome{}
	}
	out := Outcome{Ticked: true}

	s.Direction = s.NextDirection
	head := s.Snake.Head().Add(s.Direction)
	if !inBounds(head, cfg.TileCount) || s.Snake.Occupies(head) {
		s.Phase = GameOver
		out.Crashed = true
		return out
	}

	ate := head == s.Food
	s.Snake.Advance(head, ate)
	if !ate {
		return out
	}

	out.Ate = true
	s.Score++
	if s.Score > s.Best {
		s.Best = s.Score
		out.NewBest = true
	}

	food, ok := PlaceFood(s.Snake, cfg.TileCount, rng)
	if !ok {
		s.Phase = GameOver
		s.Cleared = true
		out.Cleared = true
		return out
	}
	s.Food = food

	if s.Interval > cfg.MinInterval() {
		s.Interval = max(cfg.MinInterval(), s.Interval-cfg.SpeedStep())
		out.SpeedChanged = true
	}
	return out
}
