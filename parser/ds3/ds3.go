// Package ds3 implements the PlayStation DualShock 3 parser family,
// grounded on spec.md §4.5's DS3 contract and
// original_source/src/main/uni_hid_parser_ds3.c.
package ds3

import (
	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
)

func init() {
	parser.Register(gamepad.ControllerTypePS3, func() any { return &Parser{} })
}

// enableReports is the fixed 6-byte feature report that switches a DS3
// from silent to streaming input reports; cloned controllers ignore
// input entirely until this is sent once.
var enableReports = []byte{0x53, 0xF4, 0x42, 0x03, 0x00, 0x00}

// ledState tracks the deferred first-LED-write quirk: the real firmware
// drops an LED write issued before the enable-reports packet has taken
// effect, so the parser waits for one ParseRaw call before sending it.
type ledState uint8

const (
	ledPending ledState = iota
	ledRequiresUpdate
	ledUpdated
)

// scratch layout within Conn.Scratch(): byte 0 is the ledState.
const ledStateOffset = 0

// Button bit positions within the 3-byte packed mask at report offset 2.
const (
	bitSelect uint32 = 1 << 0
	bitL3     uint32 = 1 << 1
	bitR3     uint32 = 1 << 2
	bitStart  uint32 = 1 << 3
	bitUp     uint32 = 1 << 4
	bitRight  uint32 = 1 << 5
	bitDown   uint32 = 1 << 6
	bitLeft   uint32 = 1 << 7
	bitL2     uint32 = 1 << 8
	bitR2     uint32 = 1 << 9
	bitL1     uint32 = 1 << 10
	bitR1     uint32 = 1 << 11
	bitTri    uint32 = 1 << 12
	bitCircle uint32 = 1 << 13
	bitCross  uint32 = 1 << 14
	bitSquare uint32 = 1 << 15
	bitPS     uint32 = 1 << 16
)

// Report offsets (byte index within the "transaction-type|0x01" report).
const (
	offButtons  = 2 // 3 bytes, bit-packed per the table above
	offStickLX  = 6
	offStickLY  = 7
	offStickRX  = 8
	offStickRY  = 9
	offPressL2  = 18
	offPressR2  = 19
	analogCenter = 0x80
)

// Parser holds no per-instance state; everything mutable lives in the
// Connection's scratch bytes so multiple DS3 pads can share one Parser.
type Parser struct{}

// Setup sends the "enable reports" feature report once after classification.
func (p *Parser) Setup(c parser.Conn) error {
	return c.SendControl(enableReports)
}

// InitReport clears the virtual gamepad's dirty bitmask before each report.
func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

// ParseRaw decodes one DS3 input report and applies the deferred-LED quirk.
func (p *Parser) ParseRaw(c parser.Conn, report []byte) {
	if len(report) <= offPressR2 {
		return
	}

	scratch := c.Scratch()
	switch ledState(scratch[ledStateOffset]) {
	case ledPending:
		scratch[ledStateOffset] = byte(ledRequiresUpdate)
	case ledRequiresUpdate:
		scratch[ledStateOffset] = byte(ledUpdated)
		_ = p.SetPlayerLEDs(c, seatToLEDMask(c.Seat()))
	}

	buttons := uint32(report[offButtons]) | uint32(report[offButtons+1])<<8 | uint32(report[offButtons+2])<<16

	gp := c.Gamepad()
	gp.MarkFullReport()

	var dpad uint8
	if buttons&bitUp != 0 {
		dpad |= gamepad.DPadUp
	}
	if buttons&bitDown != 0 {
		dpad |= gamepad.DPadDown
	}
	if buttons&bitLeft != 0 {
		dpad |= gamepad.DPadLeft
	}
	if buttons&bitRight != 0 {
		dpad |= gamepad.DPadRight
	}
	gp.SetDPad(dpad)

	gp.SetButton(gamepad.ButtonA, buttons&bitCross != 0)
	gp.SetButton(gamepad.ButtonB, buttons&bitCircle != 0)
	gp.SetButton(gamepad.ButtonX, buttons&bitSquare != 0)
	gp.SetButton(gamepad.ButtonY, buttons&bitTri != 0)
	gp.SetButton(gamepad.ButtonShoulderL, buttons&bitL1 != 0)
	gp.SetButton(gamepad.ButtonShoulderR, buttons&bitR1 != 0)
	gp.SetButton(gamepad.ButtonTriggerL, buttons&bitL2 != 0)
	gp.SetButton(gamepad.ButtonTriggerR, buttons&bitR2 != 0)
	gp.SetButton(gamepad.ButtonThumbL, buttons&bitL3 != 0)
	gp.SetButton(gamepad.ButtonThumbR, buttons&bitR3 != 0)
	gp.SetMiscButton(gamepad.MiscButtonSystem, buttons&bitPS != 0)
	gp.SetMiscButton(gamepad.MiscButtonBack, buttons&bitSelect != 0)
	gp.SetMiscButton(gamepad.MiscButtonMenu, buttons&bitStart != 0)

	gp.SetAxisX(centeredToNormalized(report[offStickLX]))
	gp.SetAxisY(centeredToNormalized(report[offStickLY]))
	gp.SetAxisRX(centeredToNormalized(report[offStickRX]))
	gp.SetAxisRY(centeredToNormalized(report[offStickRY]))
	gp.SetBrake(uint32(report[offPressL2]) * gamepad.NormalizedRange / 255)
	gp.SetAccelerator(uint32(report[offPressR2]) * gamepad.NormalizedRange / 255)
}

// centeredToNormalized maps an unsigned byte stick axis, centered at
// 0x80, onto the signed normalized axis range used by VirtualGamepad.
func centeredToNormalized(raw uint8) int32 {
	return (int32(raw) - analogCenter) * (gamepad.NormalizedRange / 2) / 128
}

// SetPlayerLEDs sends the 49-byte fixed-template LED report, with byte
// 11 set to the LED1-4 bitmask for the assigned seat.
func (p *Parser) SetPlayerLEDs(c parser.Conn, bitmask uint8) error {
	report := make([]byte, 49)
	report[0] = 0x01
	report[11] = bitmask
	return c.SendOutput(report)
}

func seatToLEDMask(seat int) uint8 {
	switch seat {
	case 0:
		return 0x02
	case 1:
		return 0x04
	case 2:
		return 0x08
	case 3:
		return 0x10
	default:
		return 0x02
	}
}
