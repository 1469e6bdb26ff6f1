package utils

import "time"

// Clock supplies the current instant and the zone that decides which calendar day it is.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Now: time.Now, Location: loc}
}

// Today returns the current instant and its calendar day in the clock's zone.
func (c Clock) Today() (now time.Time, date time.Time) {
	now = c.Now()
	return now, DateOf(now, c.Location)
}

// DateOf truncates t to its calendar day in loc, returned as midnight UTC
// so it round-trips through a DATE column unchanged.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
