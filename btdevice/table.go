package btdevice

import (
	"errors"
	"sync"
)

// DefaultSlots is the table size spec.md §3 defaults to ("a fixed-size
// array, default 8 slots").
const DefaultSlots = 8

// MaxSeats is the number of player slots (A/B/C/D) a Table can hand out.
const MaxSeats = 4

// ErrTableFull is returned by Acquire when every slot already holds a
// Connection, matching spec.md §7's "device table full on incoming
// connection (decline L2CAP)" fatal-per-connection case.
var ErrTableFull = errors.New("btdevice: no free connection slot")

// Table is the device table spec.md §3 names as the sole mutable shared
// structure, plus the three other pieces of "Global state" §3 groups
// alongside it: the singleton current-SDP-query target, the
// accept-incoming-connections flag, and the inquiry/re-scan gate
// (claimed and released via BeginInquiry/EndInquiry in gap.go).
// All mutation happens on the caller's single event-loop goroutine;
// the mutex exists only to let the host's off-loop bridge (spec.md §5)
// read a consistent snapshot via Connections/Find.
type Table struct {
	mu    sync.Mutex
	slots []Connection

	sdpTarget      *Connection
	acceptIncoming bool
	inquiryRunning bool
}

// NewTable allocates a Table with size slots. size <= 0 uses
// DefaultSlots.
func NewTable(size int) *Table {
	if size <= 0 {
		size = DefaultSlots
	}
	t := &Table{slots: make([]Connection, size), acceptIncoming: true}
	for i := range t.slots {
		t.slots[i] = *newConnection()
	}
	return t
}

// Acquire claims a free slot for remoteAddr and sets its state to
// DeviceDiscovered, per spec.md §3 ("Creation is on first HCI
// connection-request or GAP inquiry result"). If remoteAddr already
// occupies a slot, that slot is returned unchanged.
func (t *Table) Acquire(remoteAddr [6]byte) (*Connection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if remoteAddr == ([6]byte{}) {
		return nil, errors.New("btdevice: cannot acquire the all-zero address")
	}
	for i := range t.slots {
		if t.slots[i].RemoteAddr == remoteAddr {
			return &t.slots[i], nil
		}
	}
	for i := range t.slots {
		if t.slots[i].free() {
			t.slots[i].reset()
			t.slots[i].RemoteAddr = remoteAddr
			t.slots[i].State = StateDeviceDiscovered
			return &t.slots[i], nil
		}
	}
	return nil, ErrTableFull
}

// Find looks up an already-acquired slot by remote address.
func (t *Table) Find(remoteAddr [6]byte) (*Connection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.slots {
		if !t.slots[i].free() && t.slots[i].RemoteAddr == remoteAddr {
			return &t.slots[i], true
		}
	}
	return nil, false
}

// FindByCID looks up a slot owning either the control or interrupt CID,
// used by the dispatcher to route an inbound Data-Packet event.
func (t *Table) FindByCID(cid uint16) (*Connection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.slots {
		c := &t.slots[i]
		if c.free() {
			continue
		}
		if c.ControlCID == cid || c.InterruptCID == cid {
			return c, true
		}
	}
	return nil, false
}

// Release frees c's slot, per spec.md §3 ("destruction is when the last
// L2CAP channel closes and no pending state depends on the slot"). It
// is idempotent: releasing an already-free slot is a no-op, matching
// spec.md §5's "device disconnect is idempotent".
func (t *Table) Release(c *Connection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c.free() {
		return
	}
	if t.sdpTarget == c {
		t.sdpTarget = nil
	}
	c.reset()
}

// Connections returns a snapshot of every occupied slot.
func (t *Table) Connections() []*Connection {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []*Connection
	for i := range t.slots {
		if !t.slots[i].free() {
			out = append(out, &t.slots[i])
		}
	}
	return out
}

// AcceptIncoming reports whether the platform currently allows incoming
// connections (spec.md §3's "accept incoming connections" boolean).
func (t *Table) AcceptIncoming() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.acceptIncoming
}

// SetAcceptIncoming sets the platform-controlled accept-incoming flag.
func (t *Table) SetAcceptIncoming(accept bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.acceptIncoming = accept
}

// BeginSDPQuery claims the singleton SDP-query target for c, per spec.md
// §4.7's "SDP serialization": the BT stack permits one SDP query at a
// time. It returns false if another Connection already holds the
// target; the caller must wait and retry.
func (t *Table) BeginSDPQuery(c *Connection) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sdpTarget != nil && t.sdpTarget != c {
		return false
	}
	t.sdpTarget = c
	return true
}

// EndSDPQuery releases the SDP-query target if c currently holds it.
func (t *Table) EndSDPQuery(c *Connection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sdpTarget == c {
		t.sdpTarget = nil
	}
}

// allocateSeat returns the lowest unused seat (0-3) across all occupied
// slots, or NoSeat if all four are taken.
func (t *Table) allocateSeat() int {
	var used [MaxSeats]bool
	for i := range t.slots {
		if t.slots[i].free() {
			continue
		}
		if s := t.slots[i].Seat; s >= 0 && s < MaxSeats {
			used[s] = true
		}
	}
	for s := 0; s < MaxSeats; s++ {
		if !used[s] {
			return s
		}
	}
	return NoSeat
}
