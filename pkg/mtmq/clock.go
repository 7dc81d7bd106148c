package mtmq

import (
	"time"
	_ "unsafe" // for go:linkname
)

// Clock supplies the time base used to compute absolute wait deadlines.
// Nanotime should be monotonic; a clock derived from wall time keeps the
// queue correct but lets timeout accuracy degrade when the host clock steps.
type Clock interface {
	// Nanotime returns the current time in nanoseconds.
	Nanotime() int64
}

//go:linkname nanotime runtime.nanotime
func nanotime() int64

// MonotonicClock reads the runtime monotonic clock. It is the default clock
// and is immune to wall-clock adjustments.
type MonotonicClock struct{}

// Nanotime implements Clock.
func (MonotonicClock) Nanotime() int64 { return nanotime() }

// WallClock derives deadlines from the system wall clock. It exists as a
// portability fallback for environments without a usable monotonic source;
// a blocked wait may return late (or early) if the wall clock is adjusted
// while it sleeps.
type WallClock struct{}

// Nanotime implements Clock.
func (WallClock) Nanotime() int64 { return time.Now().UnixNano() }
