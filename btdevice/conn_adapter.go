package btdevice

import (
	"time"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
)

// Transport is the slice of the Bluetooth link bthci provides: writing a
// report to a Connection's control or interrupt channel. btdevice stays
// ignorant of HCI/L2CAP plumbing; it only needs somewhere to hand bytes.
type Transport interface {
	SendControl(c *Connection, report []byte) error
	SendOutput(c *Connection, report []byte) error
}

// Scheduler scheduls a one-shot callback on the caller's event loop, the
// same shape parser.Conn.AfterFunc exposes to per-vendor parsers.
// bthci.RealClock implements it over time.AfterFunc; the dispatcher
// takes one as its Scheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) func() bool
}

// connAdapter lets a *Connection satisfy parser.Conn without the
// Connection record itself needing to know about transport or
// scheduling, keeping Connection a plain data record as spec.md §3
// describes it.
type connAdapter struct {
	c   *Connection
	tr  Transport
	clk Scheduler
}

// NewParserConn builds the parser.Conn view of c that the dispatcher
// hands to whichever hook interfaces c.Parser implements.
func NewParserConn(c *Connection, tr Transport, clk Scheduler) parser.Conn {
	return &connAdapter{c: c, tr: tr, clk: clk}
}

func (a *connAdapter) Gamepad() *gamepad.VirtualGamepad { return &a.c.Gamepad }
func (a *connAdapter) Scratch() *[64]byte               { return &a.c.Scratch }
func (a *connAdapter) Seat() int                        { return a.c.Seat }

func (a *connAdapter) SendControl(report []byte) error { return a.tr.SendControl(a.c, report) }
func (a *connAdapter) SendOutput(report []byte) error  { return a.tr.SendOutput(a.c, report) }

func (a *connAdapter) AfterFunc(d time.Duration, f func()) func() bool {
	return a.clk.AfterFunc(d, f)
}
