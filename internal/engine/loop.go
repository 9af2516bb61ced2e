package engine

import "time"

// Clock supplies the current time to the tick loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Loop is a polled fixed-interval timer. A running loop is never started
// twice; changing the interval goes through Restart.
type Loop struct {
	interval time.Duration
	next     time.Time
	running  bool
}

// Start arms the loop. It does nothing if the loop is already running.
func (l *Loop) Start(interval time.Duration, now time.Time) {
	if l.running {
		return
	}
	l.running = true
	l.interval = interval
	l.next = now.Add(interval)
}

func (l *Loop) Stop() {
	l.running = false
}

// Restart stops the loop and starts it again at interval.
func (l *Loop) Restart(interval time.Duration, now time.Time) {
	l.Stop()
	l.Start(interval, now)
}

func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Due reports whether a tick should fire at now and schedules the next one.
// At most one tick is reported per call; missed ticks are dropped.
func (l *Loop) Due(now time.Time) bool {
	if !l.running || now.Before(l.next) {
		return false
	}
	l.next = l.next.Add(l.interval)
	if !l.next.After(now) {
		l.next = now.Add(l.interval)
	}
	return true
}
