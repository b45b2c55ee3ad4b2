// timer.go - Frame pacing timer

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package pixeltoaster

import (
	"math"
	"runtime"
	"time"
)

// Clock is the time source behind a Timer.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Sleeping is only accurate to a millisecond or two on most platforms, so
// the tail of a Wait is spent spinning.
const waitSpinThreshold = 2 * time.Millisecond

// Timer reports elapsed and per-call delta time for pacing an update loop.
// Time and Delta keep independent reference points. Like Display, a Timer
// is meant for a single goroutine.
type Timer struct {
	clock Clock

	elapsed   time.Duration
	timeLast  time.Time
	deltaLast time.Time
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithClock replaces the system clock.
func WithClock(c Clock) TimerOption {
	return func(t *Timer) { t.clock = c }
}

// NewTimer creates a timer reset to now.
func NewTimer(opts ...TimerOption) (*Timer, error) {
	t := &Timer{clock: systemClock{}}
	for _, opt := range opts {
		opt(t)
	}
	if t.clock == nil {
		return nil, resourceError("create timer", CodeTimerCreate, nil, "failed to create timer: no clock source")
	}
	t.Reset()
	return t, nil
}

// Reset zeroes the elapsed time and rebases both Time and Delta on now.
func (t *Timer) Reset() {
	now := t.clock.Now()
	t.elapsed = 0
	t.timeLast = now
	t.deltaLast = now
}

// Time returns the seconds elapsed since the last Reset. Each call adds the
// time since the previous call, so the result never decreases.
func (t *Timer) Time() float64 {
	now := t.clock.Now()
	if d := now.Sub(t.timeLast); d > 0 {
		t.elapsed += d
	}
	t.timeLast = now
	return t.elapsed.Seconds()
}

// Delta returns the seconds since the previous Delta or Reset.
func (t *Timer) Delta() float64 {
	now := t.clock.Now()
	d := now.Sub(t.deltaLast)
	t.deltaLast = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Resolution returns the smallest time step the timer can report, in seconds.
func (t *Timer) Resolution() float64 {
	return time.Duration(1).Seconds()
}

// Wait blocks for at least seconds. It sleeps for most of the interval and
// spins for the rest.
func (t *Timer) Wait(seconds float64) {
	d := waitDuration(seconds)
	if d <= 0 {
		return
	}
	deadline := t.clock.Now().Add(d)
	if d := deadline.Sub(t.clock.Now()) - waitSpinThreshold; d > 0 {
		t.clock.Sleep(d)
	}
	for t.clock.Now().Before(deadline) {
		runtime.Gosched()
	}
}

// waitDuration converts seconds to a Duration. NaN and non-positive values
// are zero; anything past the longest Duration, +Inf included, saturates.
func waitDuration(seconds float64) time.Duration {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}
	ns := seconds * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}
