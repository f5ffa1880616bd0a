package ds3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/parser/ds3"
	"github.com/alia5/bluepad32go/parser/parsertest"
)

func TestSetupSendsEnableReports(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds3.Parser{}
	require.NoError(t, p.Setup(c))
	require.Len(t, c.ControlReports, 1)
	assert.Equal(t, []byte{0x53, 0xF4, 0x42, 0x03, 0x00, 0x00}, c.ControlReports[0])
}

func TestLEDUpdateDeferredToSecondReport(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds3.Parser{}
	report := make([]byte, 20)

	p.ParseRaw(c, report)
	assert.Empty(t, c.OutputReports, "first report must not trigger an LED write")

	p.ParseRaw(c, report)
	assert.Len(t, c.OutputReports, 1, "second report fires the deferred LED update")

	p.ParseRaw(c, report)
	assert.Len(t, c.OutputReports, 1, "no further automatic LED writes after the first")
}

func TestParseRawDecodesButtonsAndSticks(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds3.Parser{}
	report := make([]byte, 20)
	report[3] = 0x40 // bitCross (1<<14, byte offset 1 of the packed mask)
	report[6] = 0x80 // LX centered
	report[7] = 0x00 // LY min

	p.ParseRaw(c, report)

	gp := c.Gamepad()
	assert.True(t, gp.Buttons&0x0001 != 0, "cross maps to button A")
	assert.EqualValues(t, 0, gp.AxisX)
	assert.Less(t, gp.AxisY, int32(0))
}
