package clock

import "time"

// Clock supplies the timestamp stamped onto analytics events
type Clock interface {
	Now() time.Time
}

// System reads the wall clock, normalised to UTC so stored and logged
// event times compare equal across machines
type System struct{}

// New returns the wall clock
func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}
