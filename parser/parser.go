// Package parser defines the per-vendor parser contract: a set of
// optional hooks a controller family implements, and the minimal view
// of a connection each hook needs. Concrete families live in
// subpackages (parser/ds4, parser/switchpro, ...); the dispatcher picks
// one Factory per Connection at classification time and type-asserts
// the result against whichever hook interfaces it actually cares about
// on each event, the same "implement only what you need" shape VIIPER
// uses for its own usb.Device/usb.ControlDevice split.
package parser

import (
	"time"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/usb/hid"
)

// Conn is the slice of a Connection a parser is allowed to touch: the
// virtual gamepad it fills in, its per-parser scratch storage, and the
// control/interrupt channels it writes output reports to. It is
// implemented by the adapter btdevice.NewParserConn builds around a
// btdevice.Connection; parsers never see the rest of the
// connection's bookkeeping (BD address, state machine, seat table).
type Conn interface {
	// Gamepad returns the virtual gamepad this connection is filling in.
	Gamepad() *gamepad.VirtualGamepad
	// Scratch returns this connection's opaque per-parser storage. Its
	// layout is owned entirely by the assigned parser family.
	Scratch() *[64]byte
	// SendControl writes a feature/control-channel report (e.g. a PS3
	// enable-reports packet, a Switch subcommand).
	SendControl(report []byte) error
	// SendOutput writes an interrupt/output-channel report (e.g. a DS4
	// rumble+LED report).
	SendOutput(report []byte) error
	// Seat is this connection's assigned player slot (0-3), used for
	// LED-pattern selection.
	Seat() int
	// AfterFunc schedules f to run once after d elapses, used by the
	// DS4/DS5 one-shot rumble-stop timer. Returned func cancels it.
	AfterFunc(d time.Duration, f func()) func() bool
}

// Setupper is called once, right after classification.
type Setupper interface {
	Setup(c Conn) error
}

// ReportInitializer is called before each inbound input report,
// typically to clear VirtualGamepad.UpdatedStates.
type ReportInitializer interface {
	InitReport(c Conn)
}

// UsageParser is called once per HID field, for devices with a usable,
// walkable report descriptor.
type UsageParser interface {
	ParseUsage(c Conn, g hid.Globals, usagePage, usage uint16, value int32)
}

// RawParser is called with a full inbound report, for devices without a
// usable descriptor (Wii, DS3, DS4 report 0x11, DualSense report 0x31,
// Switch Pro).
type RawParser interface {
	ParseRaw(c Conn, report []byte)
}

// PlayerLEDSetter sets the player-indicator LED pattern.
type PlayerLEDSetter interface {
	SetPlayerLEDs(c Conn, bitmask uint8) error
}

// LightbarSetter sets an RGB lightbar/status LED (DS4/DS5).
type LightbarSetter interface {
	SetLightbarColor(c Conn, r, g, b uint8) error
}

// RumbleSetter drives a rumble motor for a bounded duration.
type RumbleSetter interface {
	SetRumble(c Conn, force uint8, duration time.Duration) error
}

// DescriptorLengthObserver lets a family branch its parse-usage mapping
// on the connected device's report-descriptor length, the Xbox One
// firmware-revision quirk spec.md §4.5 describes (longer than 330 bytes
// implies the Android-style 4.8 mapping).
type DescriptorLengthObserver interface {
	DetectFirmware(c Conn, descriptorLen int)
}

// Factory constructs the stateless hook-set for a controller family.
// Families with no per-instance state return the same value every call;
// all mutable state lives in Conn.Scratch(), not in the Factory result.
type Factory func() any

var registry = map[gamepad.ControllerType]Factory{}

// Register associates a controller family's parser Factory with its
// ControllerType. Called from each parser subpackage's init().
func Register(t gamepad.ControllerType, f Factory) {
	registry[t] = f
}

// Lookup returns the registered Factory for t, or nil if the family has
// no parser (e.g. ControllerTypeUnknown).
func Lookup(t gamepad.ControllerType) Factory {
	return registry[t]
}
