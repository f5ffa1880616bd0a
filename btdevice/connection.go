// Package btdevice owns the Connection record and its device table: the
// single mutable shared structure spec.md §5 describes ("the device
// table (≤8 slots) is the sole mutable shared structure; all mutations
// happen on the event loop"). It is grounded on virtualbus/virtualbus.go's
// fixed-size device table (free-slot allocation, package-level id
// bookkeeping) generalized from USB-IP device export to Bluetooth link
// records, and on device/steamdeck/device.go's mutex-guarded multi-stage
// setup handshake for the ConnectionState machinery in fsm.go.
package btdevice

import (
	"github.com/alia5/bluepad32go/gamepad"
)

// ConnectionState is the total, mostly-linear order spec.md §3 defines.
// StateFree is not part of that order; it marks a table slot with no
// Connection assigned (RemoteAddr is the all-zero address).
type ConnectionState int

const (
	StateFree ConnectionState = iota
	StateDeviceDiscovered
	StateRemoteNameRequest
	StateRemoteNameInquired
	StateRemoteNameFetched
	StateL2capControlConnectionRequested
	StateL2capControlConnected
	StateL2capInterruptConnectionRequested
	StateL2capInterruptConnected
	StateSdpHidDescriptorRequested
	StateSdpHidDescriptorFetched
	StateSdpVendorRequested
	StateSdpVendorFetched
	StateDeviceReady
)

func (s ConnectionState) String() string {
	switch s {
	case StateFree:
		return "Free"
	case StateDeviceDiscovered:
		return "DeviceDiscovered"
	case StateRemoteNameRequest:
		return "RemoteNameRequest"
	case StateRemoteNameInquired:
		return "RemoteNameInquired"
	case StateRemoteNameFetched:
		return "RemoteNameFetched"
	case StateL2capControlConnectionRequested:
		return "L2capControlConnectionRequested"
	case StateL2capControlConnected:
		return "L2capControlConnected"
	case StateL2capInterruptConnectionRequested:
		return "L2capInterruptConnectionRequested"
	case StateL2capInterruptConnected:
		return "L2capInterruptConnected"
	case StateSdpHidDescriptorRequested:
		return "SdpHidDescriptorRequested"
	case StateSdpHidDescriptorFetched:
		return "SdpHidDescriptorFetched"
	case StateSdpVendorRequested:
		return "SdpVendorRequested"
	case StateSdpVendorFetched:
		return "SdpVendorFetched"
	case StateDeviceReady:
		return "DeviceReady"
	default:
		return "Unknown"
	}
}

// stateOrder maps each state to its position in the linear order, used to
// enforce spec.md §8 invariant 4 (FSM monotonicity): a Connection's state
// may only move forward, skipping states is fine, moving backward is not.
var stateOrder = map[ConnectionState]int{
	StateFree:                              0,
	StateDeviceDiscovered:                  1,
	StateRemoteNameRequest:                 2,
	StateRemoteNameInquired:                3,
	StateRemoteNameFetched:                 4,
	StateL2capControlConnectionRequested:   5,
	StateL2capControlConnected:             6,
	StateL2capInterruptConnectionRequested: 7,
	StateL2capInterruptConnected:           8,
	StateSdpHidDescriptorRequested:         9,
	StateSdpHidDescriptorFetched:           10,
	StateSdpVendorRequested:                11,
	StateSdpVendorFetched:                  12,
	StateDeviceReady:                       13,
}

// Flags mirrors spec.md §3's Connection.flags bitmask.
type Flags uint16

const (
	FlagIncoming Flags = 1 << iota
	FlagConnected
	FlagHasCoD
	FlagHasName
	FlagHasDescriptor
	FlagHasVID
	FlagHasPID
	FlagHasType
)

// InvalidConnectionHandle is the sentinel spec.md §3 assigns to a
// Connection with no HCI handle yet.
const InvalidConnectionHandle uint16 = 0xFFFF

// NoSeat marks a Connection that has not reached DeviceReady and so has
// no assigned player slot.
const NoSeat = -1

// Connection is the per-link record spec.md §3 describes. Exactly one
// Connection occupies each slot of a Table; RemoteAddr is all-zero iff
// the slot is free.
type Connection struct {
	RemoteAddr       [6]byte
	ConnectionHandle uint16
	ClassOfDevice    uint32 // 24-bit
	VID, PID         uint16
	Name             string // truncated to 240 bytes
	HIDDescriptor    []byte // truncated to 512 bytes

	ControlCID, InterruptCID uint16

	State ConnectionState
	Flags Flags

	SDPQueryBeforeConnect bool
	TryHeuristics         bool

	ControllerType gamepad.ControllerType
	// Parser holds whatever Factory the assigned controller family
	// returned at classification time (see parser.Register/Lookup). The
	// dispatcher type-asserts it against parser.Setupper and friends;
	// btdevice never calls into it directly.
	Parser any
	// Scratch is opaque storage owned by Parser once assigned;
	// reassigning Parser over a live Connection is illegal.
	Scratch [64]byte

	Gamepad gamepad.VirtualGamepad

	outgoing *outgoingQueue

	// Seat is the player slot (0-3) assigned on entry to DeviceReady, or
	// NoSeat before that.
	Seat int

	PlatformData [16]byte
}

func newConnection() *Connection {
	return &Connection{
		ConnectionHandle: InvalidConnectionHandle,
		Seat:             NoSeat,
		outgoing:         newOutgoingQueue(defaultQueueDepth),
	}
}

func (c *Connection) reset() {
	*c = Connection{
		ConnectionHandle: InvalidConnectionHandle,
		Seat:             NoSeat,
		outgoing:         newOutgoingQueue(defaultQueueDepth),
	}
}

func (c *Connection) free() bool {
	return c.RemoteAddr == [6]byte{}
}

// SetName truncates to spec.md's 240-byte cap and flags HasName.
func (c *Connection) SetName(name string) {
	if len(name) > 240 {
		name = name[:240]
	}
	c.Name = name
	c.Flags |= FlagHasName
}

// SetHIDDescriptor truncates to spec.md's 512-byte cap and flags
// HasDescriptor.
func (c *Connection) SetHIDDescriptor(desc []byte) {
	if len(desc) > 512 {
		desc = desc[:512]
	}
	c.HIDDescriptor = append([]byte(nil), desc...)
	c.Flags |= FlagHasDescriptor
}

// SetVIDPID records the classifying identity and flags HasVID/HasPID.
func (c *Connection) SetVIDPID(vid, pid uint16) {
	c.VID, c.PID = vid, pid
	c.Flags |= FlagHasVID | FlagHasPID
}

// SetControllerType records the classified family and flags HasType.
func (c *Connection) SetControllerType(t gamepad.ControllerType) {
	c.ControllerType = t
	c.Flags |= FlagHasType
}

// EnqueueOutgoing queues a report that failed to send busy, per spec.md
// §4.6: the caller requests a can-send-now callback and drains this
// queue from there.
func (c *Connection) EnqueueOutgoing(cid uint16, payload []byte) {
	c.outgoing.Enqueue(cid, payload)
}

// DrainOutgoing pops the oldest queued report for cid, for use from a
// can-send-now callback.
func (c *Connection) DrainOutgoing(cid uint16) ([]byte, bool) {
	return c.outgoing.DrainOne(cid)
}

// PendingOutgoing reports whether cid still has queued reports, so the
// caller knows whether to re-request a can-send-now callback.
func (c *Connection) PendingOutgoing(cid uint16) bool {
	return c.outgoing.Pending(cid)
}
