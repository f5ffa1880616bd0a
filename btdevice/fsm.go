package btdevice

import (
	"fmt"
	"strings"
	"time"

	"github.com/alia5/bluepad32go/parser"
)

// sdpTimeoutMargin is subtracted from the connection timeout to compute
// the SDP-query timer duration, per spec.md §4.7 ("connection-timeout -
// 4500 ms").
const sdpTimeoutMargin = 4500 * time.Millisecond

// wirelessControllerName triggers the "SDP before connect" branch
// spec.md §4.7 describes (DualShock 4 v1): without fetching the HID
// descriptor before the control channel opens, the pad never sends
// reports.
const wirelessControllerName = "Wireless Controller"

// ps3NamePrefix lets an incoming connection synthesize a PS3 identity
// and skip SDP entirely, per spec.md §4.7.
const ps3NamePrefix = "PLAYSTATION(R)3"

const (
	ps3VID uint16 = 0x054C
	ps3PID uint16 = 0x0268
)

// BeginOutgoing starts the host-initiated flow for a freshly discovered
// device.
func BeginOutgoing(c *Connection) {
	c.Flags &^= FlagIncoming
	c.State = StateDeviceDiscovered
}

// ApplySDPBeforeConnect checks the DualShock-4-v1 branch once the
// remote name is known and flags it on c.
func ApplySDPBeforeConnect(c *Connection) {
	if c.Name == wirelessControllerName {
		c.SDPQueryBeforeConnect = true
	}
}

// BeginIncoming starts the peripheral-initiated flow: spec.md §4.7 has
// it enter partway through, skipping the L2CAP-request states.
func BeginIncoming(c *Connection) error {
	c.Flags |= FlagIncoming
	return c.AdvanceTo(StateL2capControlConnected)
}

// ApplyPS3NameShortcut synthesizes the PS3 identity and reports whether
// the incoming flow should skip straight to SdpVendorFetched, per
// spec.md §4.7's incoming-flow special case.
func ApplyPS3NameShortcut(c *Connection) bool {
	if !strings.HasPrefix(c.Name, ps3NamePrefix) {
		return false
	}
	c.SetVIDPID(ps3VID, ps3PID)
	return true
}

// AdvanceTo moves c forward in the ConnectionState order. Moving
// backward or sideways is refused, enforcing spec.md §8 invariant 4
// (FSM monotonicity); skipping states forward is allowed, matching both
// flows' shortcuts.
func (c *Connection) AdvanceTo(s ConnectionState) error {
	if stateOrder[s] <= stateOrder[c.State] {
		return fmt.Errorf("btdevice: illegal transition %s -> %s", c.State, s)
	}
	c.State = s
	return nil
}

// BeginSDPTimeout arms the SDP-query timeout spec.md §4.7 describes: if
// it fires before the query completes, TryHeuristics is set so the next
// inbound interrupt report is handed to vendortable.ClassifyByPacket,
// and the singleton SDP target is released for the next waiter.
func BeginSDPTimeout(t *Table, c *Connection, clk Scheduler, connectionTimeout time.Duration) func() bool {
	d := connectionTimeout - sdpTimeoutMargin
	if d < 0 {
		d = 0
	}
	return clk.AfterFunc(d, func() {
		c.TryHeuristics = true
		t.EndSDPQuery(c)
	})
}

// EnterReady applies spec.md §4.7's "Ready-entry side effects": a seat
// is allocated, the parser's Setup hook runs, the initial LED pattern is
// emitted, and onReady (the platform's on_device_ready hook, spec.md
// §6) is invoked with the finalized Connection.
func EnterReady(t *Table, c *Connection, pc parser.Conn, onReady func(*Connection)) error {
	if err := c.AdvanceTo(StateDeviceReady); err != nil {
		return err
	}
	c.Flags |= FlagConnected

	t.mu.Lock()
	c.Seat = t.allocateSeat()
	t.mu.Unlock()

	if setup, ok := c.Parser.(parser.Setupper); ok {
		if err := setup.Setup(pc); err != nil {
			return err
		}
	}
	if led, ok := c.Parser.(parser.PlayerLEDSetter); ok && c.Seat != NoSeat {
		_ = led.SetPlayerLEDs(pc, 1<<uint(c.Seat))
	}
	if onReady != nil {
		onReady(c)
	}
	return nil
}
