package bthci

import (
	"errors"
	"fmt"

	"github.com/alia5/bluepad32go/btdevice"
	"github.com/alia5/bluepad32go/internal/log"
)

// Transport implements btdevice.Transport over a per-connection Link,
// handling the busy/queue/can-send-now dance spec.md §4.6 describes: a
// send that comes back busy is queued and a can-send-now callback is
// requested; DrainCanSendNow is the other half, called when that
// callback fires.
type Transport struct {
	links map[*btdevice.Connection]Link

	// RawLogger, if set, receives every outbound L2CAP report as it
	// leaves send/DrainCanSendNow, traced with in=false (server->client).
	RawLogger log.RawLogger
}

// NewTransport returns an empty Transport. A connection can be sent on
// only after Bind has associated it with its Link; reaching
// L2capControlConnected/L2capInterruptConnected does not bind it.
func NewTransport() *Transport {
	return &Transport{links: make(map[*btdevice.Connection]Link)}
}

func (t *Transport) trace(data []byte) {
	if t.RawLogger != nil {
		t.RawLogger.Log(false, data)
	}
}

// Bind associates c with the Link its L2CAP channels were opened on.
func (t *Transport) Bind(c *btdevice.Connection, l Link) {
	t.links[c] = l
}

// Unbind drops c's Link, called once its channels close.
func (t *Transport) Unbind(c *btdevice.Connection) {
	delete(t.links, c)
}

func (t *Transport) SendControl(c *btdevice.Connection, report []byte) error {
	return t.send(c, c.ControlCID, report)
}

func (t *Transport) SendOutput(c *btdevice.Connection, report []byte) error {
	return t.send(c, c.InterruptCID, report)
}

func (t *Transport) send(c *btdevice.Connection, cid uint16, report []byte) error {
	l, ok := t.links[c]
	if !ok {
		return fmt.Errorf("bthci: no link bound for connection")
	}
	if c.PendingOutgoing(cid) {
		// Something is already queued ahead of this packet; queuing
		// behind it preserves the FIFO-per-CID ordering spec.md §5
		// guarantees.
		c.EnqueueOutgoing(cid, report)
		return nil
	}
	if err := l.Send(cid, report); err != nil {
		if errors.Is(err, ErrBusy) {
			c.EnqueueOutgoing(cid, report)
			l.RequestCanSendNow(cid)
			return nil
		}
		return err
	}
	t.trace(report)
	return nil
}

// DrainCanSendNow handles an L2CAPCanSendNow event: it sends the oldest
// queued packet for cid and, if more remain, re-requests the callback,
// per spec.md §4.6 ("drains one queued entry per callback per CID and
// re-requests if more remain").
func (t *Transport) DrainCanSendNow(c *btdevice.Connection, cid uint16) error {
	l, ok := t.links[c]
	if !ok {
		return fmt.Errorf("bthci: no link bound for connection")
	}
	payload, ok := c.DrainOutgoing(cid)
	if !ok {
		return nil
	}
	if err := l.Send(cid, payload); err != nil {
		return err
	}
	t.trace(payload)
	if c.PendingOutgoing(cid) {
		l.RequestCanSendNow(cid)
	}
	return nil
}
