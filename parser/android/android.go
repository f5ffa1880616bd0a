// Package android implements the plain-HID-descriptor-walker parser
// families that share one shape: Android, Nimbus, Smart TV Remote,
// 8BitDo, OUYA, and Generic, grounded on spec.md §4.5's
// "Android / Nimbus / Smart TV Remote / 8BitDo / OUYA / Generic"
// contract and original_source/src/main/uni_hid_parser_{nimbus,ouya,
// smarttvremote,8bitdo}.c. Each family is the same walker with a
// different per-family button-number → virtual-button table; 8BitDo's
// table additionally swaps A↔B and X↔Y to match its physical labeling.
package android

import (
	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
	"github.com/alia5/bluepad32go/usb/hid"
)

func init() {
	parser.Register(gamepad.ControllerTypeAndroid, func() any { return &Parser{buttons: standardButtons} })
	parser.Register(gamepad.ControllerTypeNimbus, func() any { return &Parser{buttons: standardButtons} })
	parser.Register(gamepad.ControllerTypeSmartTVRemote, func() any { return &Parser{buttons: standardButtons} })
	parser.Register(gamepad.ControllerTypeOuya, func() any { return &Parser{buttons: standardButtons} })
	parser.Register(gamepad.ControllerTypeGeneric, func() any { return &Parser{buttons: standardButtons} })
	parser.Register(gamepad.ControllerTypeEightBitdo, func() any { return &Parser{buttons: eightBitdoButtons} })
}

// buttonMap assigns a HID Button-page usage index (1-based) to a
// virtual-gamepad button bit; 0 means "no mapping for this usage".
type buttonMap [16]uint16

var standardButtons = buttonMap{
	1: gamepad.ButtonA,
	2: gamepad.ButtonB,
	3: gamepad.ButtonX,
	4: gamepad.ButtonY,
	5: gamepad.ButtonShoulderL,
	6: gamepad.ButtonShoulderR,
	7: gamepad.ButtonTriggerL,
	8: gamepad.ButtonTriggerR,
	9: gamepad.ButtonThumbL,
	10: gamepad.ButtonThumbR,
}

// eightBitdoButtons swaps A<->B and X<->Y relative to standardButtons to
// match the 8BitDo pad's physical face-button labeling.
var eightBitdoButtons = buttonMap{
	1: gamepad.ButtonB,
	2: gamepad.ButtonA,
	3: gamepad.ButtonY,
	4: gamepad.ButtonX,
	5: gamepad.ButtonShoulderL,
	6: gamepad.ButtonShoulderR,
	7: gamepad.ButtonTriggerL,
	8: gamepad.ButtonTriggerR,
	9: gamepad.ButtonThumbL,
	10: gamepad.ButtonThumbR,
}

// Parser walks a plain HID descriptor and maps Generic Desktop axes/hat
// and Button-page usages through its family's buttonMap. It carries no
// mutable per-connection state.
type Parser struct {
	buttons buttonMap
}

func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

func (p *Parser) ParseUsage(c parser.Conn, g hid.Globals, usagePage, usage uint16, value int32) {
	gp := c.Gamepad()
	ng := gamepad.Globals{
		LogicalMin: g.LogicalMin, LogicalMax: g.LogicalMax,
		UsagePage: g.UsagePage, ReportSize: g.ReportSize,
		ReportCount: g.ReportCount, ReportID: g.ReportID,
	}

	switch usagePage {
	case hid.UsagePageGenericDesktop:
		switch usage {
		case hid.UsageX:
			gp.SetAxisX(gamepad.NormalizeAxis(ng, value))
		case hid.UsageY:
			gp.SetAxisY(gamepad.NormalizeAxis(ng, value))
		case hid.UsageZ:
			gp.SetAxisRX(gamepad.NormalizeAxis(ng, value))
		case hid.UsageRz:
			gp.SetAxisRY(gamepad.NormalizeAxis(ng, value))
		case hid.UsageHatSwitch:
			gp.SetDPad(gamepad.HatToDPad(gamepad.NormalizeHat(ng, value)))
		case gamepad.UsageDPadUp, gamepad.UsageDPadDown, gamepad.UsageDPadRight, gamepad.UsageDPadLeft:
			gp.SetDPad(gamepad.DPadFromUsage(usage, value, gp.DPad))
		}
	case hid.UsagePageButton:
		if int(usage) < len(p.buttons) {
			if bit := p.buttons[usage]; bit != 0 {
				gp.SetButton(bit, value != 0)
			}
		}
	case hid.UsagePageConsumer:
		switch usage {
		case 0x0224: // AC Back
			gp.SetMiscButton(gamepad.MiscButtonBack, value != 0)
		case 0x0223: // AC Home
			gp.SetMiscButton(gamepad.MiscButtonHome, value != 0)
		}
	}
}
