package calendar

import "time"

// Clock supplies the current instant. Pickers never read the wall clock
// directly so tests can pin "today".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Fixed returns a clock that always reports noon on d.
func Fixed(d Date) Clock {
	t := time.Date(d.Year(), time.Month(d.Month()), d.Day(), 12, 0, 0, 0, time.Local)
	return ClockFunc(func() time.Time { return t })
}

// Today returns the current local date. A nil clock means SystemClock.
func Today(clock Clock) Date {
	if clock == nil {
		clock = SystemClock
	}
	return FromTime(clock.Now())
}
