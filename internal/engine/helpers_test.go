package engine

import (
	"errors"
	"math/rand/v2"
	"time"
)

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memScores struct {
	best  int
	saves []int
	err   error
}

func (m *memScores) Load() int { return m.best }

func (m *memScores) Save(best int) error {
	if m.err != nil {
		return m.err
	}
	m.best = best
	m.saves = append(m.saves, best)
	return nil
}

var errDiskFull = errors.New("disk full")

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newTestEngine(scores *memScores) (*Engine, *manualClock) {
	clock := newManualClock()
	e := New(DefaultSettings(), scores, WithClock(clock), WithRand(testRand()))
	return e, clock
}
