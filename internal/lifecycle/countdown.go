package lifecycle

import (
	"fmt"
	"time"
)

// Remaining is a countdown split into whole units.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Decompose floors d into days, hours, minutes and seconds. Negative
// durations decompose to zero.
func Decompose(d time.Duration) Remaining {
	if d < 0 {
		return Remaining{}
	}
	day := 24 * time.Hour
	return Remaining{
		Days:    int(d / day),
		Hours:   int(d % day / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}
}

// String formats as "1d 2h : 3m : 4s"; the day part only appears when
// there is at least one day left.
func (r Remaining) String() string {
	s := fmt.Sprintf("%dh : %dm : %ds", r.Hours, r.Minutes, r.Seconds)
	if r.Days > 0 {
		s = fmt.Sprintf("%dd %s", r.Days, s)
	}
	return s
}
