// Package switchpro implements the Nintendo Switch Pro (and Joy-Con)
// parser family: a setup state machine that dumps factory stick
// calibration before the device is considered ready, grounded on
// spec.md §4.5's Switch Pro contract,
// original_source/src/main/uni_hid_parser_switch.c, and the subcommand
// packet shape (output report 0x01, incrementing packet counter, data
// at offset 10) used by
// _examples/other_examples/dalmatheo-procon2-driver's controller.go.
package switchpro

import (
	"encoding/binary"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
)

func init() {
	f := func() any { return &Parser{} }
	parser.Register(gamepad.ControllerTypeSwitchPro, f)
	parser.Register(gamepad.ControllerTypeSwitchJoyConLeft, f)
	parser.Register(gamepad.ControllerTypeSwitchJoyConRight, f)
	parser.Register(gamepad.ControllerTypeSwitchJoyConPair, f)
}

// setupState walks the device through its post-classification handshake.
type setupState uint8

const (
	stateReqDevInfo setupState = iota
	stateReadFactoryCalibration
	stateSetFullReport
	stateEnableIMU
	stateSetHomeLight
	stateUpdateLED
	stateReady
)

// Subcommand IDs (output report 0x01, data byte 0 = subcommand).
const (
	subcmdReqDevInfo  = 0x02
	subcmdSPIRead     = 0x10
	subcmdSetReportMode = 0x03
	subcmdEnableIMU   = 0x40
	subcmdSetHomeLight = 0x38
	subcmdSetPlayerLED = 0x30
)

const factoryCalAddress = 0x603D

// Scratch layout: [0]=state [1]=packet counter [2]=button-A-held-at-devinfo
// [3]=reserved [4:28]=calibration (4 sticks * 3 values * uint16 LE).
const (
	stateOffset    = 0
	counterOffset  = 1
	imuGestureOffset = 2
	calOffset      = 4
)

type calValue struct{ min, center, max uint16 }

func readCal(scratch *[64]byte, idx int) calValue {
	off := calOffset + idx*6
	return calValue{
		min:    binary.LittleEndian.Uint16(scratch[off:]),
		center: binary.LittleEndian.Uint16(scratch[off+2:]),
		max:    binary.LittleEndian.Uint16(scratch[off+4:]),
	}
}

func writeCal(scratch *[64]byte, idx int, v calValue) {
	off := calOffset + idx*6
	binary.LittleEndian.PutUint16(scratch[off:], v.min)
	binary.LittleEndian.PutUint16(scratch[off+2:], v.center)
	binary.LittleEndian.PutUint16(scratch[off+4:], v.max)
}

// Parser holds no per-instance state; see the scratch layout above.
type Parser struct{}

func (p *Parser) Setup(c parser.Conn) error {
	c.Scratch()[stateOffset] = byte(stateReqDevInfo)
	return sendSubcommand(c, subcmdReqDevInfo, nil)
}

func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

// ParseRaw either advances the setup FSM (report id 0x21 subcommand
// replies) or decodes a full input report (0x30 normal, 0x3F compat
// fallback), applying this device's own factory calibration.
func (p *Parser) ParseRaw(c parser.Conn, report []byte) {
	if len(report) == 0 {
		return
	}

	// A stray compatibility-mode packet from a not-yet-classified device
	// forces immediate re-classification to Switch Pro, per spec.md's
	// heuristic re-classification rule; once classified here it's just a
	// normal 0x3F report behind the 0xA1 header byte.
	if len(report) == 13 && report[0] == 0xA1 && report[1] == 0x3F {
		decodeCompatReport(c, report[1:])
		return
	}

	switch report[0] {
	case 0x21:
		p.advanceSetup(c, report)
	case 0x30:
		decodeFullReport(c, report)
	case 0x3F:
		decodeCompatReport(c, report)
	}
}

func (p *Parser) advanceSetup(c parser.Conn, reply []byte) {
	scratch := c.Scratch()
	if len(reply) < 14 || reply[13]&0x80 == 0 {
		return // status bit not set: subcommand not acknowledged yet
	}
	switch setupState(scratch[stateOffset]) {
	case stateReqDevInfo:
		if len(reply) > 15 {
			// Button A held down during the DeviceInfo reply is the
			// hidden gesture that requests motion-mode (IMU) be enabled.
			scratch[imuGestureOffset] = reply[15] & 0x08
		}
		scratch[stateOffset] = byte(stateReadFactoryCalibration)
		sendSPIRead(c, factoryCalAddress, 18)
	case stateReadFactoryCalibration:
		if len(reply) >= 20+18 {
			parseFactoryCalibration(scratch, reply[20:20+18])
		}
		scratch[stateOffset] = byte(stateSetFullReport)
		sendSubcommand(c, subcmdSetReportMode, []byte{0x30})
	case stateSetFullReport:
		if scratch[imuGestureOffset] != 0 {
			scratch[stateOffset] = byte(stateEnableIMU)
			sendSubcommand(c, subcmdEnableIMU, []byte{0x01})
			return
		}
		scratch[stateOffset] = byte(stateSetHomeLight)
		sendSubcommand(c, subcmdSetHomeLight, []byte{0x0F})
	case stateEnableIMU:
		scratch[stateOffset] = byte(stateSetHomeLight)
		sendSubcommand(c, subcmdSetHomeLight, []byte{0x0F})
	case stateSetHomeLight:
		scratch[stateOffset] = byte(stateUpdateLED)
		sendSubcommand(c, subcmdSetPlayerLED, []byte{seatToLEDPattern(c.Seat())})
	case stateUpdateLED:
		scratch[stateOffset] = byte(stateReady)
	}
}

// parseFactoryCalibration unpacks the SPI-read 18-byte blob's four
// bit-packed 12-bit (min, center, max) triples, per spec.md's Factory
// calibration contract, and stores them into scratch.
func parseFactoryCalibration(scratch *[64]byte, blob []byte) {
	// Each stick's 9-byte group packs six 12-bit values little-endian
	// (two values per 3 bytes); left stick at offset 0, right at 9,
	// each decoded by the same six-value-from-9-byte unpack.
	left := unpack12x3(blob[0:9])
	right := unpack12x3(blob[9:18])
	writeCal(scratch, 0, calValue{min: left[1], center: left[0], max: left[2]})
	writeCal(scratch, 1, calValue{min: left[4], center: left[3], max: left[5]})
	writeCal(scratch, 2, calValue{min: right[1], center: right[0], max: right[2]})
	writeCal(scratch, 3, calValue{min: right[4], center: right[3], max: right[5]})
}

// unpack12x3 extracts six 12-bit little-endian values from 9 bytes.
func unpack12x3(b []byte) [6]uint16 {
	var out [6]uint16
	for i := 0; i < 6; i += 2 {
		base := i / 2 * 3
		out[i] = uint16(b[base]) | (uint16(b[base+1]&0x0F) << 8)
		out[i+1] = uint16(b[base+1]>>4) | (uint16(b[base+2]) << 4)
	}
	return out
}

func decodeFullReport(c parser.Conn, report []byte) {
	if len(report) < 13 {
		return
	}
	scratch := c.Scratch()
	gp := c.Gamepad()
	gp.MarkFullReport()

	b1, b2, b3 := report[3], report[4], report[5]
	gp.SetButton(gamepad.ButtonY, b1&0x01 != 0)
	gp.SetButton(gamepad.ButtonX, b1&0x02 != 0)
	gp.SetButton(gamepad.ButtonB, b1&0x04 != 0)
	gp.SetButton(gamepad.ButtonA, b1&0x08 != 0)
	gp.SetButton(gamepad.ButtonShoulderR, b1&0x40 != 0)
	gp.SetButton(gamepad.ButtonTriggerR, b1&0x80 != 0)
	gp.SetMiscButton(gamepad.MiscButtonBack, b2&0x01 != 0)
	gp.SetMiscButton(gamepad.MiscButtonMenu, b2&0x02 != 0)
	gp.SetButton(gamepad.ButtonThumbR, b2&0x04 != 0)
	gp.SetButton(gamepad.ButtonThumbL, b2&0x08 != 0)
	gp.SetMiscButton(gamepad.MiscButtonSystem, b2&0x10 != 0)

	var dpad uint8
	if b3&0x02 != 0 {
		dpad |= gamepad.DPadUp
	}
	if b3&0x01 != 0 {
		dpad |= gamepad.DPadDown
	}
	if b3&0x04 != 0 {
		dpad |= gamepad.DPadRight
	}
	if b3&0x08 != 0 {
		dpad |= gamepad.DPadLeft
	}
	gp.SetDPad(dpad)
	gp.SetButton(gamepad.ButtonShoulderL, b3&0x40 != 0)
	gp.SetButton(gamepad.ButtonTriggerL, b3&0x80 != 0)

	lx, ly := unpack12(report[6:9])
	rx, ry := unpack12(report[9:12])
	gp.SetAxisX(calibrateAxis(lx, readCal(scratch, 0)))
	gp.SetAxisY(calibrateAxis(ly, readCal(scratch, 1)))
	gp.SetAxisRX(calibrateAxis(rx, readCal(scratch, 2)))
	gp.SetAxisRY(calibrateAxis(ry, readCal(scratch, 3)))
}

// decodeCompatReport handles the 13-byte 0x3F fallback report used
// before setup completes (or by uncalibrated clones): a simpler, fixed
// button+hat+stick layout with no factory calibration applied.
func decodeCompatReport(c parser.Conn, report []byte) {
	if len(report) < 11 {
		return
	}
	gp := c.Gamepad()
	gp.MarkFullReport()

	buttons := uint16(report[1]) | uint16(report[2])<<8
	gp.SetButton(gamepad.ButtonA, buttons&0x0004 != 0)
	gp.SetButton(gamepad.ButtonB, buttons&0x0002 != 0)
	gp.SetButton(gamepad.ButtonX, buttons&0x0008 != 0)
	gp.SetButton(gamepad.ButtonY, buttons&0x0001 != 0)
	gp.SetButton(gamepad.ButtonShoulderL, buttons&0x0010 != 0)
	gp.SetButton(gamepad.ButtonShoulderR, buttons&0x0020 != 0)
	gp.SetButton(gamepad.ButtonTriggerL, buttons&0x0040 != 0)
	gp.SetButton(gamepad.ButtonTriggerR, buttons&0x0080 != 0)
	gp.SetMiscButton(gamepad.MiscButtonBack, buttons&0x0100 != 0)
	gp.SetMiscButton(gamepad.MiscButtonMenu, buttons&0x0200 != 0)

	gp.SetDPad(gamepad.HatToDPad(report[3] & 0x0F))
	gp.SetAxisX((int32(report[4]) - 0x80) * 4)
	gp.SetAxisY((int32(report[5]) - 0x80) * -4)
	gp.SetAxisRX((int32(report[6]) - 0x80) * 4)
	gp.SetAxisRY((int32(report[7]) - 0x80) * -4)
}

func unpack12(b []byte) (a, c int32) {
	a = int32(b[0]) | (int32(b[1]&0x0F) << 8)
	c = int32(b[1]>>4) | (int32(b[2]) << 4)
	return
}

// calibrateAxis applies the per-stick factory calibration: values above
// center scale against (max-center), values below scale against
// (center-min), clamped to the ±512 normalized half-range.
func calibrateAxis(v int32, cal calValue) int32 {
	center := int32(cal.center)
	var out int32
	if v > center {
		span := int32(cal.max) - center
		if span <= 0 {
			return 0
		}
		out = (v - center) * 512 / span
	} else {
		span := center - int32(cal.min)
		if span <= 0 {
			return 0
		}
		out = (v - center) * 512 / span
	}
	if out > 511 {
		out = 511
	}
	if out < -512 {
		out = -512
	}
	return out
}

func sendSubcommand(c parser.Conn, subcmd uint8, data []byte) error {
	scratch := c.Scratch()
	counter := scratch[counterOffset]
	scratch[counterOffset] = (counter + 1) & 0x0F

	packet := make([]byte, 11+len(data))
	packet[0] = 0x01
	packet[1] = counter
	// bytes 2-9: neutral rumble data, left then right actuator.
	copy(packet[2:10], []byte{0x00, 0x01, 0x40, 0x40, 0x00, 0x01, 0x40, 0x40})
	packet[10] = subcmd
	copy(packet[11:], data)
	return c.SendControl(packet)
}

func sendSPIRead(c parser.Conn, addr uint32, length uint8) error {
	data := make([]byte, 5)
	binary.LittleEndian.PutUint32(data[0:4], addr)
	data[4] = length
	return sendSubcommand(c, subcmdSPIRead, data)
}

func (p *Parser) SetPlayerLEDs(c parser.Conn, bitmask uint8) error {
	return sendSubcommand(c, subcmdSetPlayerLED, []byte{bitmask})
}

func seatToLEDPattern(seat int) uint8 {
	switch seat {
	case 0:
		return 0x01
	case 1:
		return 0x02
	case 2:
		return 0x04
	case 3:
		return 0x08
	default:
		return 0x01
	}
}
