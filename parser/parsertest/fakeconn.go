// Package parsertest provides a minimal parser.Conn fake shared by the
// per-family parser package tests, so each family test doesn't need to
// hand-roll a Connection double.
package parsertest

import (
	"time"

	"github.com/alia5/bluepad32go/gamepad"
)

// FakeConn is an in-memory parser.Conn: it records every control/output
// report sent and lets tests fire scheduled AfterFunc callbacks manually
// instead of sleeping.
type FakeConn struct {
	GP       gamepad.VirtualGamepad
	Scratch_ [64]byte
	SeatNum  int

	ControlReports [][]byte
	OutputReports  [][]byte
	Timers         []func()
}

func (c *FakeConn) Gamepad() *gamepad.VirtualGamepad { return &c.GP }
func (c *FakeConn) Scratch() *[64]byte               { return &c.Scratch_ }
func (c *FakeConn) Seat() int                        { return c.SeatNum }

func (c *FakeConn) SendControl(report []byte) error {
	cp := append([]byte(nil), report...)
	c.ControlReports = append(c.ControlReports, cp)
	return nil
}

func (c *FakeConn) SendOutput(report []byte) error {
	cp := append([]byte(nil), report...)
	c.OutputReports = append(c.OutputReports, cp)
	return nil
}

func (c *FakeConn) AfterFunc(d time.Duration, f func()) func() bool {
	c.Timers = append(c.Timers, f)
	return func() bool { return true }
}

// FireTimers runs and clears every AfterFunc callback scheduled so far.
func (c *FakeConn) FireTimers() {
	timers := c.Timers
	c.Timers = nil
	for _, f := range timers {
		f()
	}
}
