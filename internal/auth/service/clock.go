package service

import "time"

// realClock implements Clock using the system time.
type realClock struct{}

// Now returns the current system time.
func (realClock) Now() time.Time {
	return time.Now()
}

// NewClock creates a Clock backed by the system time.
func NewClock() Clock {
	return realClock{}
}
