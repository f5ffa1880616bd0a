// Package icade implements the iCade (cabinet and 8-bitty) parser
// family: a keyboard-scancode mapper rather than a HID-field walker,
// grounded on spec.md §4.5's iCade contract and
// original_source/src/main/uni_hid_parser_icade.c. Only the Cabinet
// scancode table (cadeMapping) is implemented: every device classified
// as iCade, the 8-bitty included, is decoded with it whatever its
// (vid, pid).
package icade

import (
	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
)

func init() {
	parser.Register(gamepad.ControllerTypeICade, func() any { return &Parser{mapping: cadeMapping} })
}

// scanEvent is one (press-scancode, release-scancode) -> action pair.
type scanEvent struct {
	press, release byte
	apply          func(gp *gamepad.VirtualGamepad, pressed bool)
}

// cadeMapping is the classic iCade Cabinet scancode table: 'w'/'e' etc.
// pairs, one press/release rune per direction or button.
var cadeMapping = []scanEvent{
	{'w', 'e', func(gp *gamepad.VirtualGamepad, pressed bool) { setDPadBit(gp, gamepad.DPadUp, pressed) }},
	{'x', 'z', func(gp *gamepad.VirtualGamepad, pressed bool) { setDPadBit(gp, gamepad.DPadDown, pressed) }},
	{'a', 'q', func(gp *gamepad.VirtualGamepad, pressed bool) { setDPadBit(gp, gamepad.DPadLeft, pressed) }},
	{'d', 'c', func(gp *gamepad.VirtualGamepad, pressed bool) { setDPadBit(gp, gamepad.DPadRight, pressed) }},
	{'y', 't', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonA, pressed) }},
	{'h', 'r', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonB, pressed) }},
	{'u', 'f', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonX, pressed) }},
	{'j', 'n', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonY, pressed) }},
	{'i', 'm', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonShoulderL, pressed) }},
	{'k', 'p', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonShoulderR, pressed) }},
	{'o', 'g', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonTriggerL, pressed) }},
	{'l', 'v', func(gp *gamepad.VirtualGamepad, pressed bool) { gp.SetButton(gamepad.ButtonTriggerR, pressed) }},
}

func setDPadBit(gp *gamepad.VirtualGamepad, bit uint8, pressed bool) {
	if pressed {
		gp.SetDPad(gp.DPad | bit)
	} else {
		gp.SetDPad(gp.DPad &^ bit)
	}
}

// Parser decodes inbound HID-keyboard scancode reports into virtual
// button/dpad state via its family's mapping table.
type Parser struct {
	mapping []scanEvent
}

func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

// ParseRaw scans report (a standard 8-byte boot-keyboard report: modifier,
// reserved, then up to 6 scancodes) for any scancode matching this
// family's mapping table, applying press or release accordingly.
func (p *Parser) ParseRaw(c parser.Conn, report []byte) {
	if len(report) < 3 {
		return
	}
	gp := c.Gamepad()
	pressed := make(map[byte]bool, 6)
	for _, code := range report[2:] {
		if code != 0 {
			pressed[code] = true
		}
	}
	for _, ev := range p.mapping {
		if pressed[ev.press] {
			ev.apply(gp, true)
		}
		if pressed[ev.release] {
			ev.apply(gp, false)
		}
	}
}
