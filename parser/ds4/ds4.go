// Package ds4 implements the PlayStation DualShock 4 parser family,
// grounded on spec.md §4.5's DS4 contract, the bit layout already used
// by VIIPER's own device/dualshock4 package (const.go, inputstate.go),
// and original_source/src/main/uni_hid_parser_ds4.c.
package ds4

import (
	"hash/crc32"
	"time"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
)

func init() {
	parser.Register(gamepad.ControllerTypePS4, func() any { return &Parser{} })
}

const (
	reportIDInput  = 0x11
	reportIDOutput = 0x11
	inputReportLen = 78

	offAxisX = 3
	offAxisY = 4
	offAxisRX = 5
	offAxisRY = 6
	offButtons0 = 8 // hat in low nibble, Y/B/A/X in top nibble
	offButtons1 = 9 // L1/R1/L2/R2/share/options/thumbL/thumbR
	offButtons2 = 10 // PS + touchpad-click
	axisCenter = 0x7F
	axisScale  = 4

	// Output-report flag bits, from DS4_FF_FLAG_* in the original parser:
	// which "features" a 0x11 output report updates.
	flagRumble   = 1 << 0
	flagLEDColor = 1 << 1
	flagLEDBlink = 1 << 2
)

// Parser holds no per-instance state; rumble in-flight tracking lives in
// Conn.Scratch() so the type stays safely shareable across devices.
type Parser struct{}

// scratch[0] is a bool: 1 while a rumble timer is in flight.
const rumbleInFlightOffset = 0

// Setup switches the device from report 0x01 to the "full" 0x11 report
// by sending one output report with rumble/LED flags and a default blue
// lightbar, matching VIIPER's DefaultLedRed/Green/Blue constants.
func (p *Parser) Setup(c parser.Conn) error {
	return c.SendOutput(buildOutputReport(flagRumble|flagLEDColor|flagLEDBlink, 0, 0, 0x00, 0x00, 0x40, 0, 0))
}

func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

// ParseRaw validates the report id/length then decodes the fixed DS4
// "full" report layout.
func (p *Parser) ParseRaw(c parser.Conn, report []byte) {
	if len(report) < inputReportLen || report[0] != reportIDInput {
		return
	}

	gp := c.Gamepad()
	gp.MarkFullReport()

	gp.SetAxisX(centeredScaled(report[offAxisX]))
	gp.SetAxisY(centeredScaled(report[offAxisY]))
	gp.SetAxisRX(centeredScaled(report[offAxisRX]))
	gp.SetAxisRY(centeredScaled(report[offAxisRY]))

	b0 := report[offButtons0]
	b1 := report[offButtons1]
	b2 := report[offButtons2]

	gp.SetDPad(gamepad.HatToDPad(b0 & 0x0F))
	gp.SetButton(gamepad.ButtonX, b0&0x10 != 0)
	gp.SetButton(gamepad.ButtonA, b0&0x20 != 0)
	gp.SetButton(gamepad.ButtonB, b0&0x40 != 0)
	gp.SetButton(gamepad.ButtonY, b0&0x80 != 0)

	gp.SetButton(gamepad.ButtonShoulderL, b1&0x01 != 0)
	gp.SetButton(gamepad.ButtonShoulderR, b1&0x02 != 0)
	gp.SetButton(gamepad.ButtonTriggerL, b1&0x04 != 0)
	gp.SetButton(gamepad.ButtonTriggerR, b1&0x08 != 0)
	gp.SetMiscButton(gamepad.MiscButtonBack, b1&0x10 != 0)
	gp.SetMiscButton(gamepad.MiscButtonMenu, b1&0x20 != 0)
	gp.SetButton(gamepad.ButtonThumbL, b1&0x40 != 0)
	gp.SetButton(gamepad.ButtonThumbR, b1&0x80 != 0)

	gp.SetMiscButton(gamepad.MiscButtonSystem, b2&0x01 != 0)
	// touchpad click has no virtual-gamepad equivalent; intentionally dropped.
	_ = b2
}

func centeredScaled(raw uint8) int32 {
	v := (int32(raw) - axisCenter) * axisScale
	if v > 511 {
		v = 511
	}
	if v < -512 {
		v = -512
	}
	return v
}

// SetLightbarColor re-sends the output report with a new RGB color,
// leaving rumble forces at whatever the last SetRumble call set.
func (p *Parser) SetLightbarColor(c parser.Conn, r, g, b uint8) error {
	return c.SendOutput(buildOutputReport(flagLEDColor, 0, 0, r, g, b, 0, 0))
}

// SetRumble drives both actuators at the same force and schedules a
// one-shot zero-force report at duration*4ms. A rumble call arriving
// while one is already in flight is ignored until the timer fires, per
// spec.md's "only one rumble in flight" contract.
func (p *Parser) SetRumble(c parser.Conn, force uint8, duration time.Duration) error {
	scratch := c.Scratch()
	if scratch[rumbleInFlightOffset] != 0 {
		return nil
	}
	scratch[rumbleInFlightOffset] = 1

	if err := c.SendOutput(buildOutputReport(flagRumble, force, force, 0, 0, 0, 0, 0)); err != nil {
		scratch[rumbleInFlightOffset] = 0
		return err
	}
	c.AfterFunc(duration*4, func() {
		scratch[rumbleInFlightOffset] = 0
		_ = c.SendOutput(buildOutputReport(flagRumble, 0, 0, 0, 0, 0, 0, 0))
	})
	return nil
}

// buildOutputReport assembles report 0x11 as ds4_output_report_t lays it
// out past report_id: unk0[2], flags, unk1[2], motor_right, motor_left,
// led_red/green/blue, flash_led1/2, then unk2[61] padding to a 73-byte
// body. It appends the little-endian CRC32 over {0xA2, report-id, body}.
func buildOutputReport(flags, motorRight, motorLeft, ledR, ledG, ledB, flashOn, flashOff uint8) []byte {
	const (
		offFlags    = 2
		offMotorR   = 5
		offMotorL   = 6
		offLEDRed   = 7
		offLEDGreen = 8
		offLEDBlue  = 9
		offFlashOn  = 10
		offFlashOff = 11
	)
	body := make([]byte, 73)
	body[0] = 0xc4 // unk0[0]: HID-only + poll interval, set on every send
	body[offFlags] = flags
	body[offMotorR] = motorRight
	body[offMotorL] = motorLeft
	body[offLEDRed] = ledR
	body[offLEDGreen] = ledG
	body[offLEDBlue] = ledB
	body[offFlashOn] = flashOn
	body[offFlashOff] = flashOff

	report := append([]byte{reportIDOutput}, body...)
	return appendCRC(report)
}

// appendCRC computes CRC32-IEEE over {0xA2, report...} and appends it
// little-endian. The Bluetooth transport header byte 0xA2 ("HIDP data,
// output report") is part of the checksum but never transmitted itself.
func appendCRC(report []byte) []byte {
	crc := crc32.ChecksumIEEE(append([]byte{0xA2}, report...))
	out := make([]byte, len(report)+4)
	copy(out, report)
	out[len(report)] = byte(crc)
	out[len(report)+1] = byte(crc >> 8)
	out[len(report)+2] = byte(crc >> 16)
	out[len(report)+3] = byte(crc >> 24)
	return out
}
