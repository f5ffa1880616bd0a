// Package vendortable classifies a Bluetooth device by (VID, PID) or, when
// that fails, by Class-of-Device and report-packet shape. It is grounded
// on original_source/src/main/uni_hid_device_vendors.h: a static,
// append-only, linear-scan table where the first matching row wins.
package vendortable

import "github.com/alia5/bluepad32go/gamepad"

// Entry is one row of the vendor table: a (VID, PID) pair mapped to a
// ControllerType, plus an optional display name and whether this entry is
// currently considered supported (the original keeps Joy-Con Left/Right
// rows present but commented out — disabled pending combo-controller
// support; this repo keeps the same row with Supported=false instead of
// deleting it).
type Entry struct {
	VID, PID  uint16
	Type      gamepad.ControllerType
	Supported bool
	Name      string
}

// ClassOfDevice bitfield masks used by ClassifyFallback, per the
// Bluetooth assigned-numbers Class-of-Device layout.
const (
	CoDMajorPeripheral uint32 = 0x000500 // Major Device Class: Peripheral
	CoDMinorPointDevice uint32 = 0x000080
	CoDMinorKeyboard    uint32 = 0x000040
)

// ClassifyByVIDPID performs the first-match-wins linear scan spec.md
// §4.1 requires: the first row with a matching (vid, pid) decides the
// type, even if later rows disagree.
func ClassifyByVIDPID(table []Entry, vid, pid uint16) gamepad.ControllerType {
	for _, e := range table {
		if e.VID == vid && e.PID == pid {
			return e.Type
		}
	}
	return gamepad.ControllerTypeUnknown
}

// ClassifyFallback inspects a Class-of-Device bitfield when the vendor
// table misses. Widest-compatible default is Android, matching the
// original's empirical choice.
func ClassifyFallback(cod uint32) gamepad.ControllerType {
	if cod&CoDMajorPeripheral == CoDMajorPeripheral {
		if cod&CoDMinorPointDevice != 0 {
			return gamepad.ControllerTypeGeneric // GenericMouse bucket
		}
		if cod&CoDMinorKeyboard != 0 {
			return gamepad.ControllerTypeGeneric // GenericKeyboard bucket
		}
	}
	return gamepad.ControllerTypeAndroid
}

// SwitchProVIDPID is the canonical VID/PID classify_by_packet forces onto
// a device once its packet shape is recognized as Switch Pro.
const (
	SwitchProVID uint16 = 0x057E
	SwitchProPID uint16 = 0x2009
)

// ClassifyByPacket implements the Nintendo Switch Pro heuristic: a
// 13-byte packet beginning 0xA1 0x3F with the expected button/stick
// layout identifies a Switch Pro controller even before SDP completes.
func ClassifyByPacket(packet []byte) bool {
	if len(packet) != 13 {
		return false
	}
	if packet[0] != 0xA1 || packet[1] != 0x3F {
		return false
	}
	// Bytes 2-3 carry the button/hat state and 4-12 the two analog
	// sticks as signed bytes; the shape check only validates header and
	// length, matching the original's lightweight heuristic.
	return true
}
