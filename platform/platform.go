// Package platform defines the upward hook surface spec.md §6 exposes
// to whatever host program embeds this core ("on_init",
// "on_device_ready", "on_gamepad_data", ...). Grounded on
// usb/device.go's minimal-required-interface-plus-optional-type-assertion
// style: rather than one fat interface a host must implement in full,
// each lifecycle hook is its own single-method interface and the
// dispatcher type-asserts whichever ones a given host cares about,
// exactly the pattern parser.Setupper/parser.RawParser/etc. use on the
// controller side.
package platform

import "github.com/alia5/bluepad32go/gamepad"

// OOBEvent enumerates the out-of-band events OnOOBEvent reports.
type OOBEvent int

const (
	OOBEventGamepadSystemButton OOBEvent = iota
)

// PropertyKey enumerates the keys GetProperty accepts.
type PropertyKey int

const (
	// PropertyDeleteStoredKeys: if the host returns 1, all stored link
	// keys are dropped before any outgoing connect attempt, per
	// spec.md §7.
	PropertyDeleteStoredKeys PropertyKey = iota
)

// DeviceInfo is the read-only view of a Connection the dispatcher hands
// to lifecycle hooks. It deliberately exposes far less than
// btdevice.Connection: a host only needs identity and seat, never the
// FSM's internal state.
type DeviceInfo struct {
	RemoteAddr     [6]byte
	VID, PID       uint16
	Name           string
	ControllerType gamepad.ControllerType
	Seat           int
}

// OnInitHandler fires once, before the event loop starts processing HCI
// events.
type OnInitHandler interface {
	OnInit()
}

// OnInitCompleteHandler fires once the core has finished its own setup
// (vendor table loaded, GAP inquiry armed).
type OnInitCompleteHandler interface {
	OnInitComplete()
}

// OnDeviceConnectedHandler fires when a Connection's L2CAP channels are
// both open, before SDP/classification completes.
type OnDeviceConnectedHandler interface {
	OnDeviceConnected(dev DeviceInfo)
}

// OnDeviceDisconnectedHandler fires when a Connection's slot is freed.
type OnDeviceDisconnectedHandler interface {
	OnDeviceDisconnected(dev DeviceInfo)
}

// OnDeviceReadyHandler fires on entry to DeviceReady, per spec.md
// §4.7's ready-entry side effects.
type OnDeviceReadyHandler interface {
	OnDeviceReady(dev DeviceInfo)
}

// OnGamepadDataHandler fires once per decoded input report. This is the
// hot path; hosts that only care about final reduced state (Joystick,
// via gamepad.ToSingleJoystick and friends) apply the reducer here.
type OnGamepadDataHandler interface {
	OnGamepadData(dev DeviceInfo, gp gamepad.VirtualGamepad)
}

// OnOOBEventHandler fires for out-of-band device events that aren't
// part of the normal report stream (e.g. a PS button long-press).
type OnOOBEventHandler interface {
	OnOOBEvent(dev DeviceInfo, event OOBEvent)
}

// PairingConfirmHandler lets a host gate a "Just Works" pairing behind
// an interactive confirmation (e.g. a terminal prompt) instead of
// accepting every request automatically. A hooks value that doesn't
// implement it is treated as always confirming.
type PairingConfirmHandler interface {
	ConfirmPairing(dev DeviceInfo) bool
}

// ConfirmPairing queries hooks for pairing confirmation, defaulting to
// true when hooks doesn't implement PairingConfirmHandler.
func ConfirmPairing(hooks any, dev DeviceInfo) bool {
	h, ok := hooks.(PairingConfirmHandler)
	if !ok {
		return true
	}
	return h.ConfirmPairing(dev)
}

// PropertyProvider answers the core's property queries. A host that
// doesn't implement it is treated as returning the zero value for
// every key (PropertyDeleteStoredKeys => false).
type PropertyProvider interface {
	GetProperty(key PropertyKey) int
}

// ShouldDeleteStoredKeys queries hooks for PropertyDeleteStoredKeys,
// defaulting to false when hooks doesn't implement PropertyProvider.
func ShouldDeleteStoredKeys(hooks any) bool {
	p, ok := hooks.(PropertyProvider)
	if !ok {
		return false
	}
	return p.GetProperty(PropertyDeleteStoredKeys) != 0
}
