// Package xboxone implements the Xbox One / Series controller parser
// family: a HID-descriptor usage walker with a firmware-revision
// detection quirk, grounded on spec.md §4.5's Xbox One contract and
// original_source/src/main/uni_hid_parser_xboxone.c.
package xboxone

import (
	"time"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
	"github.com/alia5/bluepad32go/usb/hid"
)

func init() {
	parser.Register(gamepad.ControllerTypeXboxOne, func() any { return &Parser{} })
}

// Usage-page/usage codes that differ between the legacy (3.1) and
// Android-style (4.8) firmware mappings.
const (
	usagePageSimulation uint16 = 0x02
	usageBrake          uint16 = 0xC4
	usageAccelerator    uint16 = 0xC5
	consumerBackLegacy  uint16 = 0x0000
	consumerBackModern  uint16 = 0x0224

	longDescriptorThreshold = 330
)

// scratch[0]: 1 if firmware 4.8 (Android-style) detected from descriptor length.
const firmwareModernOffset = 0

type Parser struct{}

// Setup has nothing to send; firmware detection happens lazily from the
// first descriptor length the dispatcher reports via DetectFirmware.
func (p *Parser) Setup(c parser.Conn) error { return nil }

func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

// DetectFirmware records which brake/accelerator usage page and
// Back-button code this device's descriptor implies, per spec.md: a
// report descriptor longer than 330 bytes means firmware 4.8.
func (p *Parser) DetectFirmware(c parser.Conn, descriptorLen int) {
	if descriptorLen > longDescriptorThreshold {
		c.Scratch()[firmwareModernOffset] = 1
	}
}

func (p *Parser) ParseUsage(c parser.Conn, g hid.Globals, usagePage, usage uint16, value int32) {
	gp := c.Gamepad()
	modern := c.Scratch()[firmwareModernOffset] != 0

	switch usagePage {
	case hid.UsagePageGenericDesktop:
		switch usage {
		case hid.UsageX:
			gp.SetAxisX(gamepad.NormalizeAxis(toNormalizeGlobals(g), value))
		case hid.UsageY:
			gp.SetAxisY(gamepad.NormalizeAxis(toNormalizeGlobals(g), value))
		case hid.UsageZ:
			gp.SetAxisRX(gamepad.NormalizeAxis(toNormalizeGlobals(g), value))
		case hid.UsageRz:
			gp.SetAxisRY(gamepad.NormalizeAxis(toNormalizeGlobals(g), value))
		case hid.UsageHatSwitch:
			gp.SetDPad(gamepad.HatToDPad(gamepad.NormalizeHat(toNormalizeGlobals(g), value)))
		}
		if !modern {
			switch usage {
			case 0x32: // Z axis doubles as brake on legacy firmware
				gp.SetBrake(uint32(gamepad.NormalizePedal(toNormalizeGlobals(g), value)))
			case 0x35: // Rz doubles as accelerator on legacy firmware
				gp.SetAccelerator(uint32(gamepad.NormalizePedal(toNormalizeGlobals(g), value)))
			}
		}
	case usagePageSimulation:
		if modern {
			switch usage {
			case usageBrake:
				gp.SetBrake(uint32(gamepad.NormalizePedal(toNormalizeGlobals(g), value)))
			case usageAccelerator:
				gp.SetAccelerator(uint32(gamepad.NormalizePedal(toNormalizeGlobals(g), value)))
			}
		}
	case hid.UsagePageButton:
		setButtonByIndex(gp, usage, value != 0)
	case hid.UsagePageConsumer:
		backCode := consumerBackLegacy
		if modern {
			backCode = consumerBackModern
		}
		if backCode != 0 && usage == backCode {
			gp.SetMiscButton(gamepad.MiscButtonBack, value != 0)
		}
	}
}

func setButtonByIndex(gp *gamepad.VirtualGamepad, usage uint16, pressed bool) {
	switch usage {
	case 0x01:
		gp.SetButton(gamepad.ButtonA, pressed)
	case 0x02:
		gp.SetButton(gamepad.ButtonB, pressed)
	case 0x03:
		gp.SetButton(gamepad.ButtonX, pressed)
	case 0x04:
		gp.SetButton(gamepad.ButtonY, pressed)
	case 0x05:
		gp.SetButton(gamepad.ButtonShoulderL, pressed)
	case 0x06:
		gp.SetButton(gamepad.ButtonShoulderR, pressed)
	case 0x07:
		gp.SetMiscButton(gamepad.MiscButtonMenu, pressed)
	case 0x08:
		gp.SetMiscButton(gamepad.MiscButtonSystem, pressed)
	case 0x09:
		gp.SetButton(gamepad.ButtonThumbL, pressed)
	case 0x0A:
		gp.SetButton(gamepad.ButtonThumbR, pressed)
	}
}

func toNormalizeGlobals(g hid.Globals) gamepad.Globals {
	return gamepad.Globals{
		LogicalMin:  g.LogicalMin,
		LogicalMax:  g.LogicalMax,
		UsagePage:   g.UsagePage,
		ReportSize:  g.ReportSize,
		ReportCount: g.ReportCount,
		ReportID:    g.ReportID,
	}
}

// SetRumble sends the 11-byte fixed rumble report (id 0x03) with
// left/right/trigger-left/trigger-right force magnitudes 0-100, then
// schedules a zero-force report once duration elapses.
func (p *Parser) SetRumble(c parser.Conn, force uint8, duration time.Duration) error {
	magnitude := uint8((uint32(force) * 100) / 255)
	if err := c.SendOutput(buildRumbleReport(magnitude)); err != nil {
		return err
	}
	c.AfterFunc(duration, func() {
		_ = c.SendOutput(buildRumbleReport(0))
	})
	return nil
}

func buildRumbleReport(magnitude uint8) []byte {
	return []byte{
		0x03, 0x0F, 0x00, 0x00, 0x00,
		magnitude, magnitude, magnitude, magnitude,
		0xFF, 0x00,
	}
}
