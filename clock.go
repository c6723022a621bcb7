package polestock

import (
	"time"

	"github.com/etnz/polestock/date"
)

// Clock gives the current time to the engine.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// today returns the calendar day of c.
func today(c Clock) date.Date { return date.Of(c.Now()) }
