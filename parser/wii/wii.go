// Package wii implements the Wii Remote / Wii Remote Plus / Wii U Pro
// Controller parser family: an extension-probe FSM that discovers
// whatever peripheral (if any) is plugged into the Remote's extension
// port before selecting an input-report layout, grounded on spec.md
// §4.5's Wii contract, original_source/src/main/uni_hid_parser_wii.c,
// and the extension/interface-type vocabulary of
// _examples/other_examples/friedelschoen-go-xwiimote's device.go.
package wii

import (
	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
)

func init() {
	parser.Register(gamepad.ControllerTypeWii, func() any { return &Parser{} })
}

type extension uint8

const (
	extNone extension = iota
	extNunchuk
	extClassicController
	extWiiUPro
)

type probeState uint8

const (
	stateReqStatus probeState = iota
	stateExtInit
	stateExtEncryptOff
	stateReadExtType
	stateAssignDevice
	stateUpdateLED
	stateReady
)

// Scratch layout: [0]=probeState [1]=extension [2]=register address high
// byte in use (0xA4 vs 0xA6, Remote vs Remote Plus) [3]=vertical-mode flag.
const (
	stateOffset = 0
	extOffset   = 1
	regHiOffset = 2
	vertOffset  = 3
)

const (
	registerAddrRemote = 0xA4
	registerAddrPlus   = 0xA6
)

type Parser struct{}

func (p *Parser) Setup(c parser.Conn) error {
	scratch := c.Scratch()
	scratch[stateOffset] = byte(stateReqStatus)
	scratch[regHiOffset] = registerAddrRemote
	return c.SendControl([]byte{0x15, 0x00}) // Report 0x15: status request
}

func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

// ParseRaw dispatches on report id: 0x20 status replies drive the probe
// FSM; 0x21 carries register-read data (the extension-type probe);
// everything else is an input report decoded per the layout the FSM
// already selected.
func (p *Parser) ParseRaw(c parser.Conn, report []byte) {
	if len(report) == 0 {
		return
	}
	switch report[0] {
	case 0x20:
		p.handleStatus(c, report)
	case 0x21:
		p.handleReadData(c, report)
	case 0x22:
		// acknowledgement of a write (ExtInit/ExtEncryptOff/AssignDevice);
		// advance the FSM the same way a successful status/read would.
		p.advance(c)
	case 0x30:
		decodeCore(c, report, false)
	case 0x31:
		decodeCore(c, report, false)
	case 0x32:
		decodeCoreExt(c, report)
	case 0x34:
		decodeWiiUPro(c, report)
	case 0x35:
		decodeCoreExt(c, report)
	case 0x3D:
		decodeClassic(c, report)
	}
}

func (p *Parser) handleStatus(c parser.Conn, report []byte) {
	if len(report) < 4 {
		return
	}
	scratch := c.Scratch()
	// Vertical vs horizontal Remote mode is read from the held-button
	// state riding along with the status reply; Plus key held = vertical.
	if len(report) > 2 && report[2]&0x02 != 0 {
		scratch[vertOffset] = 1
	}
	extPresent := report[3]&0x02 != 0
	if !extPresent {
		scratch[stateOffset] = byte(stateUpdateLED)
		scratch[extOffset] = byte(extNone)
		p.updateLED(c)
		return
	}
	scratch[stateOffset] = byte(stateExtInit)
	p.writeRegister(c, 0xF0, []byte{0x55})
}

func (p *Parser) handleReadData(c parser.Conn, report []byte) {
	scratch := c.Scratch()
	if setupState := probeState(scratch[stateOffset]); setupState != stateReadExtType {
		p.advance(c)
		return
	}
	if len(report) < 21 {
		return
	}
	b10, b11 := report[19], report[20]
	switch {
	case b10 == 0x00 && b11 == 0x00:
		scratch[extOffset] = byte(extNunchuk)
	case b10 == 0x01 && b11 == 0x01:
		scratch[extOffset] = byte(extClassicController)
	case b10 == 0x01 && b11 == 0x20:
		scratch[extOffset] = byte(extWiiUPro)
	}
	scratch[stateOffset] = byte(stateAssignDevice)
	p.advance(c)
}

func (p *Parser) advance(c parser.Conn) {
	scratch := c.Scratch()
	switch probeState(scratch[stateOffset]) {
	case stateExtInit:
		scratch[stateOffset] = byte(stateExtEncryptOff)
		p.writeRegister(c, 0xFB, []byte{0x00})
	case stateExtEncryptOff:
		scratch[stateOffset] = byte(stateReadExtType)
		p.readRegister(c, 0xFA, 6)
	case stateAssignDevice:
		scratch[stateOffset] = byte(stateUpdateLED)
		p.assignInputReport(c)
	case stateUpdateLED:
		scratch[stateOffset] = byte(stateReady)
	}
}

// assignInputReport selects the input-report id matching the detected
// extension and requests it via report 0x12 (data-reporting mode).
func (p *Parser) assignInputReport(c parser.Conn) {
	var mode uint8
	switch extension(c.Scratch()[extOffset]) {
	case extWiiUPro:
		mode = 0x34
	case extNunchuk, extClassicController:
		mode = 0x32
	default:
		mode = 0x30
	}
	_ = c.SendControl([]byte{0x12, 0x00, mode})
	p.updateLED(c)
}

func (p *Parser) updateLED(c parser.Conn) {
	pattern := seatToLEDPattern(c.Seat())
	_ = c.SendControl([]byte{0x11, pattern})
	p.advance(c)
}

func (p *Parser) writeRegister(c parser.Conn, reg uint8, data []byte) {
	scratch := c.Scratch()
	addrHi := scratch[regHiOffset]
	payload := append([]byte{0x16, addrHi, 0x00, reg, uint8(len(data))}, data...)
	if err := c.SendControl(payload); err != nil && addrHi == registerAddrRemote {
		// Plain Wii Remote Plus pads ignore writes at 0xA4; retry once at
		// 0xA6 per spec.md's register-address alternation rule.
		scratch[regHiOffset] = registerAddrPlus
		p.writeRegister(c, reg, data)
	}
}

func (p *Parser) readRegister(c parser.Conn, reg uint8, length uint8) {
	addrHi := c.Scratch()[regHiOffset]
	_ = c.SendControl([]byte{0x17, addrHi, 0x00, reg, 0x00, length})
}

func decodeCore(c parser.Conn, report []byte, _ bool) {
	if len(report) < 3 {
		return
	}
	gp := c.Gamepad()
	gp.MarkFullReport()
	applyCoreButtons(gp, report[1], report[2], c.Scratch()[vertOffset] != 0)
}

func decodeCoreExt(c parser.Conn, report []byte) {
	if len(report) < 3 {
		return
	}
	decodeCore(c, report, false)
}

// decodeWiiUPro handles report 0x34: four 12-bit sticks plus a 3-byte
// active-low button mask (a 1 bit means "not pressed").
func decodeWiiUPro(c parser.Conn, report []byte) {
	if len(report) < 13 {
		return
	}
	gp := c.Gamepad()
	gp.MarkFullReport()

	lx, ly := unpack12LE(report[1:4])
	rx, ry := unpack12LE(report[4:7])
	gp.SetAxisX((lx - 2048) / 4)
	gp.SetAxisY(-(ly - 2048) / 4)
	gp.SetAxisRX((rx - 2048) / 4)
	gp.SetAxisRY(-(ry - 2048) / 4)

	mask := uint32(report[10]) | uint32(report[11])<<8 | uint32(report[12])<<16
	gp.SetButton(gamepad.ButtonA, mask&0x0010 == 0)
	gp.SetButton(gamepad.ButtonB, mask&0x0040 == 0)
	gp.SetButton(gamepad.ButtonX, mask&0x0008 == 0)
	gp.SetButton(gamepad.ButtonY, mask&0x0020 == 0)
	gp.SetButton(gamepad.ButtonShoulderL, mask&0x0002 == 0)
	gp.SetButton(gamepad.ButtonShoulderR, mask&0x0200 == 0)
	gp.SetButton(gamepad.ButtonTriggerL, mask&0x800000 == 0)
	gp.SetButton(gamepad.ButtonTriggerR, mask&0x0080 == 0)
	gp.SetButton(gamepad.ButtonThumbL, mask&0x020000 == 0)
	gp.SetButton(gamepad.ButtonThumbR, mask&0x040000 == 0)
	gp.SetMiscButton(gamepad.MiscButtonMenu, mask&0x0004 == 0)
	gp.SetMiscButton(gamepad.MiscButtonBack, mask&0x1000 == 0)
	gp.SetMiscButton(gamepad.MiscButtonHome, mask&0x008000 == 0)

	var dpad uint8
	if mask&0x0001 == 0 {
		dpad |= gamepad.DPadUp
	}
	if mask&0x0400 == 0 {
		dpad |= gamepad.DPadDown
	}
	if mask&0x0080000 == 0 {
		dpad |= gamepad.DPadLeft
	}
	if mask&0x0040000 == 0 {
		dpad |= gamepad.DPadRight
	}
	gp.SetDPad(dpad)
}

func decodeClassic(c parser.Conn, report []byte) {
	if len(report) < 7 {
		return
	}
	gp := c.Gamepad()
	gp.MarkFullReport()
	mask := uint16(report[5]) | uint16(report[6])<<8
	gp.SetButton(gamepad.ButtonA, mask&0x0010 == 0)
	gp.SetButton(gamepad.ButtonB, mask&0x0040 == 0)
	gp.SetButton(gamepad.ButtonX, mask&0x0008 == 0)
	gp.SetButton(gamepad.ButtonY, mask&0x0020 == 0)
}

func applyCoreButtons(gp *gamepad.VirtualGamepad, b1, b2 uint8, vertical bool) {
	var dpad uint8
	up, down, left, right := b1&0x08 != 0, b1&0x04 != 0, b1&0x01 != 0, b1&0x02 != 0
	if vertical {
		up, down, left, right = left, right, down, up
	}
	if up {
		dpad |= gamepad.DPadUp
	}
	if down {
		dpad |= gamepad.DPadDown
	}
	if left {
		dpad |= gamepad.DPadLeft
	}
	if right {
		dpad |= gamepad.DPadRight
	}
	gp.SetDPad(dpad)
	gp.SetButton(gamepad.ButtonA, b2&0x08 != 0)
	gp.SetButton(gamepad.ButtonB, b2&0x04 != 0)
	gp.SetMiscButton(gamepad.MiscButtonMenu, b2&0x10 != 0)
	gp.SetMiscButton(gamepad.MiscButtonHome, b1&0x80 != 0)
	gp.SetMiscButton(gamepad.MiscButtonBack, b2&0x80 != 0)
}

func unpack12LE(b []byte) (a, c int32) {
	a = int32(b[0]) | (int32(b[1]&0x0F) << 8)
	c = int32(b[1]>>4) | (int32(b[2]) << 4)
	return
}

func (p *Parser) SetPlayerLEDs(c parser.Conn, bitmask uint8) error {
	return c.SendControl([]byte{0x11, bitmask})
}

func seatToLEDPattern(seat int) uint8 {
	switch seat {
	case 0:
		return 0x10
	case 1:
		return 0x20
	case 2:
		return 0x40
	case 3:
		return 0x80
	default:
		return 0x10
	}
}
