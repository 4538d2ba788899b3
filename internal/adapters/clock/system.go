package clock

import "time"

// System reads the wall clock. Every deadline and epoch check re-reads
// it at invocation time; nothing in the engine caches the current time.
type System struct{}

// NewSystem creates a new system clock
func NewSystem() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now()
}
