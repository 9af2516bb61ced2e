package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"snake/internal/entities"
)

// Phase is the lifecycle position of a game.
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is everything a tick reads and writes. Best is the only field
// that survives Reset.
type State struct {
	Phase         Phase
	Snake         *entities.Snake
	Direction     entities.Direction
	NextDirection entities.Direction
	Food          entities.Point
	Score         int
	Best          int
	Interval      time.Duration
	// Cleared is set when the snake filled every cell.
	Cleared bool
}

func NewState(cfg Settings, best int, rng *rand.Rand) *State {
	s := &State{Best: best}
	s.Reset(cfg, rng)
	return s
}

// Reset reinitializes every transient field.
func (s *State) Reset(cfg Settings, rng *rand.Rand) {
	s.Phase = NotStarted
	s.Snake = entities.NewSnake(cfg.StartBody()...)
	s.Direction = entities.DirRight
	s.NextDirection = s.Direction
	s.Score = 0
	s.Interval = cfg.InitialInterval()
	s.Cleared = false
	// Validate guarantees the start body leaves a free cell.
	s.Food, _ = PlaceFood(s.Snake, cfg.TileCount, rng)
}

// Started reports whether a game is in progress, paused or not.
func (s *State) Started() bool {
	return s.Phase == Running || s.Phase == Paused
}

// SetDirection queues d for the next tick unless it reverses the committed
// direction.
func (s *State) SetDirection(d entities.Direction) bool {
	if d.IsOpposite(s.Direction) {
		return false
	}
	s.NextDirection = d
	return true
}

// TogglePause flips between Running and Paused. It is a no-op before a game starts.
func (s *State) TogglePause() bool {
	switch s.Phase {
	case Running:
		s.Phase = Paused
	case Paused:
		s.Phase = Running
	default:
		return false
	}
	return true
}

// Status is the one-line message shown under the score.
func (s *State) Status() string {
	switch s.Phase {
	case Running:
		return "Playing"
	case Paused:
		return "Paused (press Space to resume)"
	case GameOver:
		if s.Cleared {
			return fmt.Sprintf("Board cleared! Final score: %d", s.Score)
		}
		return fmt.Sprintf("Game over! Final score: %d. Arrow key restarts", s.Score)
	default:
		return "Press an arrow key to start"
	}
}

func inBounds(p entities.Point, tileCount int) bool {
	return p.X >= 0 && p.X < tileCount && p.Y >= 0 && p.Y < tileCount
}
