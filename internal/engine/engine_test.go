package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake/internal/entities"
)

func TestNewLoadsBest(t *testing.T) {
	e, _ := newTestEngine(&memScores{best: 42})
	snap := e.Snapshot()
	assert.Equal(t, 42, snap.Best)
	assert.Equal(t, NotStarted, snap.Phase)
	assert.False(t, e.Ticking())
}

func TestFirstMoveKeyStartsGame(t *testing.T) {
	e, clock := newTestEngine(&memScores{})

	assert.True(t, e.HandleKey("ArrowUp"))
	assert.Equal(t, Running, e.state.Phase)
	assert.True(t, e.Ticking())

	e.state.Food = entities.Point{X: 0, Y: 0}
	assert.Equal(t, Outcome{}, e.Advance(), "nothing fires before the interval")
	clock.Advance(140 * time.Millisecond)
	out := e.Advance()
	assert.True(t, out.Ticked)
	assert.Equal(t, entities.Point{X: 9, Y: 9}, e.state.Snake.Head())
}

func TestReverseStartKeyKeepsInitialDirection(t *testing.T) {
	e, _ := newTestEngine(&memScores{})
	e.HandleKey("a")
	assert.Equal(t, Running, e.state.Phase)
	assert.Equal(t, entities.DirRight, e.state.NextDirection)
}

func TestPauseStopsMovement(t *testing.T) {
	e, clock := newTestEngine(&memScores{})
	assert.True(t, e.HandleKey(" "))
	assert.Equal(t, NotStarted, e.state.Phase, "pause before start is ignored")

	e.HandleKey("d")
	e.state.Food = entities.Point{X: 0, Y: 0}
	e.HandleKey(" ")
	require.Equal(t, Paused, e.state.Phase)

	before := e.state.Snake.Segments()
	e.HandleKey("w")
	for i := 0; i < 5; i++ {
		clock.Advance(140 * time.Millisecond)
		e.Advance()
	}
	assert.Equal(t, before, e.state.Snake.Segments())
	assert.Equal(t, entities.DirRight, e.state.NextDirection, "turns are ignored while paused")

	e.HandleKey(" ")
	clock.Advance(140 * time.Millisecond)
	assert.True(t, e.Advance().Ticked)
}

func TestUnknownKeyIgnored(t *testing.T) {
	e, _ := newTestEngine(&memScores{})
	assert.False(t, e.HandleKey("x"))
	assert.Equal(t, NotStarted, e.state.Phase)
}

func TestHandleKeyFoldsCase(t *testing.T) {
	e, _ := newTestEngine(&memScores{})
	assert.True(t, e.HandleKey("S"))
	assert.Equal(t, Running, e.state.Phase)
	assert.Equal(t, entities.DirDown, e.state.NextDirection)

	assert.False(t, e.HandleKey("Enter"))
	assert.Equal(t, Running, e.state.Phase)
}

func TestEatingPersistsBestAndRetimesLoop(t *testing.T) {
	scores := &memScores{}
	e, clock := newTestEngine(scores)
	e.HandleKey("ArrowRight")
	e.state.Food = entities.Point{X: 10, Y: 10}

	clock.Advance(140 * time.Millisecond)
	out := e.Advance()

	require.True(t, out.Ate)
	assert.Equal(t, []int{1}, scores.saves)
	assert.Equal(t, 136*time.Millisecond, e.loop.Interval())

	clock.Advance(135 * time.Millisecond)
	assert.False(t, e.Advance().Ticked, "loop restarted at the eat tick")
	clock.Advance(time.Millisecond)
	assert.True(t, e.Advance().Ticked)
}

func TestSaveFailureKeepsPlaying(t *testing.T) {
	scores := &memScores{err: errDiskFull}
	e, _ := newTestEngine(scores)
	e.HandleKey("ArrowRight")
	e.state.Food = entities.Point{X: 10, Y: 10}

	out := e.Tick()

	assert.True(t, out.NewBest)
	assert.Equal(t, Running, e.state.Phase)
	assert.Equal(t, 1, e.state.Best)
}

func TestCrashStopsLoopAndMoveKeyRestarts(t *testing.T) {
	e, _ := newTestEngine(&memScores{})
	e.HandleKey("ArrowUp")
	e.state.Food = entities.Point{X: 0, Y: 0}

	var out Outcome
	for i := 0; i < 20 && !out.Crashed; i++ {
		out = e.Tick()
	}
	require.True(t, out.Crashed)
	assert.Equal(t, GameOver, e.state.Phase)
	assert.False(t, e.Ticking())
	assert.True(t, e.HandleKey(" "))
	assert.Equal(t, GameOver, e.state.Phase, "pause is ignored after game over")

	e.HandleKey("ArrowDown")
	assert.Equal(t, Running, e.state.Phase)
	assert.Equal(t, DefaultSettings().StartBody(), e.state.Snake.Segments())
	assert.Equal(t, entities.DirDown, e.state.NextDirection)
}

func TestResetKeepsBestAcrossGames(t *testing.T) {
	scores := &memScores{}
	e, _ := newTestEngine(scores)
	e.HandleKey("ArrowRight")
	e.state.Food = entities.Point{X: 10, Y: 10}
	e.Tick()
	require.Equal(t, 1, e.Snapshot().Best)

	e.Reset()

	snap := e.Snapshot()
	assert.Equal(t, NotStarted, snap.Phase)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Best)
	assert.False(t, e.Ticking())

	reloaded, _ := newTestEngine(scores)
	assert.Equal(t, 1, reloaded.Snapshot().Best)
}

func TestSnapshotIsDetached(t *testing.T) {
	e, _ := newTestEngine(&memScores{})
	snap := e.Snapshot()
	snap.Body[0] = entities.Point{X: 0, Y: 0}
	assert.Equal(t, entities.Point{X: 9, Y: 10}, e.state.Snake.Head())
	assert.Equal(t, 20, snap.TileCount)
	assert.Equal(t, "Press an arrow key to start", snap.Status)
}
