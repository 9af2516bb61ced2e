package engine

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"snake/internal/entities"
)

// ScoreStore persists the best score.
type ScoreStore interface {
	Load() int
	Save(best int) error
}

// Engine drives a State from key presses and the tick loop.
type Engine struct {
	cfg    Settings
	state  *State
	loop   Loop
	clock  Clock
	rng    *rand.Rand
	scores ScoreStore
	logger *slog.Logger
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New loads the best score from scores and prepares a game that waits for
// the first movement key.
func New(cfg Settings, scores ScoreStore, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		clock:  SystemClock{},
		scores: scores,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.state = NewState(cfg, scores.Load(), e.rng)
	return e
}

// Reset stops the loop and returns to NotStarted. The best score is kept.
func (e *Engine) Reset() {
	e.loop.Stop()
	e.state.Reset(e.cfg, e.rng)
}

// HandleKey applies a key press and reports whether the key belongs to the game.
func (e *Engine) HandleKey(key string) bool {
	if !IsGameKey(key) {
		return false
	}
	dir, ok := DirectionForKey(key)
	if !ok {
		e.state.TogglePause()
		return true
	}
	if !e.state.Started() {
		e.start(dir)
		return true
	}
	if e.state.Phase == Running {
		e.state.SetDirection(dir)
	}
	return true
}

func (e *Engine) start(dir entities.Direction) {
	e.Reset()
	e.state.Phase = Running
	e.state.SetDirection(dir)
	e.loop.Start(e.state.Interval, e.clock.Now())
}

// Advance fires a tick if one is due. Call it once per frame.
func (e *Engine) Advance() Outcome {
	if !e.loop.Due(e.clock.Now()) {
		return Outcome{}
	}
	return e.Tick()
}

// Tick runs one step immediately and applies its side effects: persisting a
// new best score and retiming or stopping the loop.
func (e *Engine) Tick() Outcome {
	out := Step(e.state, e.cfg, e.rng)
	if out.NewBest {
		if err := e.scores.Save(e.state.Best); err != nil {
			e.logger.Warn("persist best score", slog.Int("best", e.state.Best), slog.String("error", err.Error()))
		}
	}
	switch {
	case out.Crashed, out.Cleared:
		e.loop.Stop()
	case out.SpeedChanged:
		e.loop.Restart(e.state.Interval, e.clock.Now())
	}
	return out
}

// Snapshot is a read-only copy of the state for drawing.
type Snapshot struct {
	Phase     Phase
	Body      []entities.Point
	Direction entities.Direction
	Food      entities.Point
	Score     int
	Best      int
	Interval  time.Duration
	Status    string
	TileCount int
}

func (e *Engine) Snapshot() Snapshot {
	s := e.state
	return Snapshot{
		Phase:     s.Phase,
		Body:      s.Snake.Segments(),
		Direction: s.Direction,
		Food:      s.Food,
		Score:     s.Score,
		Best:      s.Best,
		Interval:  s.Interval,
		Status:    s.Status(),
		TileCount: e.cfg.TileCount,
	}
}

func (e *Engine) Settings() Settings {
	return e.cfg
}

// Ticking reports whether the tick loop is armed.
func (e *Engine) Ticking() bool {
	return e.loop.Running()
}
