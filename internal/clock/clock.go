package clock

import "time"

// Clock supplies the current time to code that must stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
