package android_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/gamepad"
	_ "github.com/alia5/bluepad32go/parser/android"

	"github.com/alia5/bluepad32go/parser"
	"github.com/alia5/bluepad32go/parser/parsertest"
	"github.com/alia5/bluepad32go/usb/hid"
)

func usageParserFor(t *testing.T, ct gamepad.ControllerType) parser.UsageParser {
	t.Helper()
	f := parser.Lookup(ct)
	require.NotNil(t, f, "expected a registered parser for %v", ct)
	up, ok := f().(parser.UsageParser)
	require.True(t, ok, "expected a parser.UsageParser")
	return up
}

func TestStandardButtonMapping(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := usageParserFor(t, gamepad.ControllerTypeAndroid)
	g := hid.Globals{LogicalMin: 0, LogicalMax: 1, ReportSize: 1, ReportCount: 1}
	p.ParseUsage(c, g, hid.UsagePageButton, 1, 1)
	assert.True(t, c.Gamepad().Buttons&0x0001 != 0, "usage 1 maps to button A")
}

func TestEightBitdoSwapsFaceButtons(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := usageParserFor(t, gamepad.ControllerTypeEightBitdo)
	g := hid.Globals{LogicalMin: 0, LogicalMax: 1, ReportSize: 1, ReportCount: 1}
	p.ParseUsage(c, g, hid.UsagePageButton, 1, 1)
	assert.True(t, c.Gamepad().Buttons&0x0002 != 0, "usage 1 maps to button B on 8BitDo")
	assert.False(t, c.Gamepad().Buttons&0x0001 != 0)
}

func TestAxisNormalization(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := usageParserFor(t, gamepad.ControllerTypeAndroid)
	g := hid.Globals{LogicalMin: 0, LogicalMax: 255, ReportSize: 8, ReportCount: 1}
	p.ParseUsage(c, g, hid.UsagePageGenericDesktop, hid.UsageX, 128)
	assert.EqualValues(t, 0, c.Gamepad().AxisX)
}
