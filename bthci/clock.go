package bthci

import "time"

// RealClock implements btdevice.Scheduler over the wall clock, the
// implementation cmd/bluepad32 wires in outside of tests (test code
// uses its own fake so timeouts can be driven deterministically).
type RealClock struct{}

// AfterFunc schedules f to run after d and returns a canceler, same
// shape as time.AfterFunc's Stop.
func (RealClock) AfterFunc(d time.Duration, f func()) func() bool {
	t := time.AfterFunc(d, f)
	return t.Stop
}
