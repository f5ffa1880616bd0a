package switchpro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/parser/parsertest"
	"github.com/alia5/bluepad32go/parser/switchpro"
)

func TestSetupRequestsDeviceInfo(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &switchpro.Parser{}
	require.NoError(t, p.Setup(c))
	require.Len(t, c.ControlReports, 1)
	assert.Equal(t, byte(0x01), c.ControlReports[0][0])
	assert.Equal(t, byte(0x02), c.ControlReports[0][10]) // subcmdReqDevInfo
}

// TestCompatReportDecodesWithoutSetup covers the "13-byte A1 3F packet
// forces immediate classification/decode" case from spec.md §4.5's
// heuristic re-classification rule and scenario 9.
func TestCompatReportDecodesWithoutSetup(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &switchpro.Parser{}

	report := make([]byte, 13)
	report[0] = 0xA1
	report[1] = 0x3F
	report[2] = 0x04 // button A bit (low byte of the packed mask)
	report[5] = 0x80 // axis X centered
	report[6] = 0x80

	p.ParseRaw(c, report)

	gp := c.Gamepad()
	assert.True(t, gp.Buttons&0x0001 != 0, "button A should decode from the compat report")
	assert.EqualValues(t, 0, gp.AxisX)
}

func TestSubcommandCounterWraps(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &switchpro.Parser{}
	for i := 0; i < 20; i++ {
		require.NoError(t, p.Setup(c))
	}
	last := c.ControlReports[len(c.ControlReports)-1]
	assert.Less(t, last[1], byte(16), "packet counter must wrap within 0..15")
}
