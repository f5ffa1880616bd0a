// Package ds5 implements the PlayStation DualSense (PS5) parser family,
// grounded on spec.md §4.5's DualSense contract and
// original_source/src/main/uni_hid_parser_ds5.c. It shares DS4's axis
// and button layout shifted by the extended report's two-byte header
// (sequence-tag + flags) and CRC32 construction.
package ds5

import (
	"hash/crc32"
	"time"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
)

func init() {
	parser.Register(gamepad.ControllerTypePS5, func() any { return &Parser{} })
}

const (
	reportIDInput  = 0x31
	reportIDOutput = 0x31
	inputReportLen = 78
	headerLen      = 2 // seq-tag + extended header, precede the DS4-shaped payload

	offAxisX    = 1 + headerLen
	offAxisY    = 2 + headerLen
	offAxisRX   = 3 + headerLen
	offAxisRY   = 4 + headerLen
	offButtons0 = 6 + headerLen
	offButtons1 = 7 + headerLen
	offButtons2 = 8 + headerLen
	axisCenter  = 0x7F
	axisScale   = 4

	// Output-report valid-flag bits, from DS5_FLAG*/DS5_LIGHTBAR_SETUP_*
	// in the original parser: which struct fields a 0x31 output report
	// actually applies.
	flag0CompatibleVibration = 1 << 0
	flag0HapticsSelect       = 1 << 1
	flag1Lightbar            = 1 << 2
	flag1PlayerLED           = 1 << 4
	flag2LightbarSetupEnable = 1 << 1
	lightbarSetupLightOut    = 1 << 1

	outputTagMagic = 0x10 // ds5_output_report_t.tag is always this value
)

// Parser holds no per-instance state; scratch[0] is the seq-tag nibble
// used for the next output report, and scratch[1] is the rumble
// in-flight flag, mirroring parser/ds4's layout choice.
type Parser struct{}

const (
	seqTagOffset         = 0
	rumbleInFlightOffset = 1
)

// Setup sends an output report with the lightbar-setup flag set (which
// suppresses the white "welcome" flash) and switches the device into
// extended input report 0x31.
func (p *Parser) Setup(c parser.Conn) error {
	return c.SendOutput(buildOutputReport(c, ds5OutputFields{
		validFlag2:    flag2LightbarSetupEnable,
		lightbarSetup: lightbarSetupLightOut,
	}))
}

func (p *Parser) InitReport(c parser.Conn) {
	c.Gamepad().InitReport()
}

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

func (p *Parser) SetLightbarColor(c parser.Conn, r, g, b uint8) error {
	return c.SendOutput(buildOutputReport(c, ds5OutputFields{
		validFlag1:    flag1Lightbar,
		lightbarRed:   r,
		lightbarGreen: g,
		lightbarBlue:  b,
	}))
}

func (p *Parser) SetRumble(c parser.Conn, force uint8, duration time.Duration) error {
	scratch := c.Scratch()
	if scratch[rumbleInFlightOffset] != 0 {
		return nil
	}
	scratch[rumbleInFlightOffset] = 1

	if err := c.SendOutput(buildOutputReport(c, ds5OutputFields{
		validFlag0: flag0HapticsSelect | flag0CompatibleVibration,
		motorRight: force,
		motorLeft:  force,
	})); err != nil {
		scratch[rumbleInFlightOffset] = 0
		return err
	}
	c.AfterFunc(duration*4, func() {
		scratch[rumbleInFlightOffset] = 0
		_ = c.SendOutput(buildOutputReport(c, ds5OutputFields{
			validFlag0: flag0HapticsSelect | flag0CompatibleVibration,
		}))
	})
	return nil
}

// ds5OutputFields mirrors how the original parser zero-initializes a
// ds5_output_report_t and sets only the fields one particular effect
// needs; the valid_flag0/1/2 bits tell the controller which groups of
// fields to actually apply.
type ds5OutputFields struct {
	validFlag0, validFlag1, validFlag2       uint8
	motorRight, motorLeft                    uint8
	lightbarSetup                            uint8
	lightbarRed, lightbarGreen, lightbarBlue uint8
}

// buildOutputReport assembles report 0x31's 73-byte post-report-id body
// (seq_tag, tag, then ds5_output_report_t's fields at their original
// offsets) and appends the CRC32, for the bit-exact 78-byte wire report
// spec.md §6 requires.
func buildOutputReport(c parser.Conn, f ds5OutputFields) []byte {
	const (
		offSeqTag        = 0
		offTag           = 1
		offValidFlag0    = 2
		offValidFlag1    = 3
		offMotorRight    = 4
		offMotorLeft     = 5
		offValidFlag2    = 40
		offLightbarSetup = 43
		offLightbarRed   = 46
		offLightbarGreen = 47
		offLightbarBlue  = 48
	)

	scratch := c.Scratch()
	seq := scratch[seqTagOffset]
	next := seq + 1
	if next == 15 {
		next = 0
	}
	scratch[seqTagOffset] = next

	body := make([]byte, 73)
	body[offSeqTag] = seq << 4
	body[offTag] = outputTagMagic
	body[offValidFlag0] = f.validFlag0
	body[offValidFlag1] = f.validFlag1
	body[offMotorRight] = f.motorRight
	body[offMotorLeft] = f.motorLeft
	body[offValidFlag2] = f.validFlag2
	body[offLightbarSetup] = f.lightbarSetup
	body[offLightbarRed] = f.lightbarRed
	body[offLightbarGreen] = f.lightbarGreen
	body[offLightbarBlue] = f.lightbarBlue

	report := append([]byte{reportIDOutput}, body...)
	return appendCRC(report)
}

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
