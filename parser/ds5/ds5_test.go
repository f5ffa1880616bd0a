package ds5_test

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/parser/ds5"
	"github.com/alia5/bluepad32go/parser/parsertest"
)

// TestOutputReportCarriesMatchingCRC checks the parser's own CRC
// construction (appended little-endian over {0xA2, report...}) is
// internally self-consistent, and that the report is the bit-exact 78
// bytes spec.md §6 requires for DualSense output report 0x31.
func TestOutputReportCarriesMatchingCRC(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds5.Parser{}
	require.NoError(t, p.SetLightbarColor(c, 1, 2, 3))

	require.Len(t, c.OutputReports, 1)
	report := c.OutputReports[0]
	require.Len(t, report, 78, "DualSense output report 0x31 must be 78 bytes")

	body, crcBytes := report[:len(report)-4], report[len(report)-4:]
	want := crc32.ChecksumIEEE(append([]byte{0xA2}, body...))
	got := uint32(crcBytes[0]) | uint32(crcBytes[1])<<8 | uint32(crcBytes[2])<<16 | uint32(crcBytes[3])<<24
	assert.Equal(t, want, got)
}

// TestOutputReportSeqTagIncrements checks the sequence nibble advances
// on each output report and wraps at 15 back to 0, per
// ds5_send_output_report's "++output_seq == 15" reset.
func TestOutputReportSeqTagIncrements(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds5.Parser{}

	require.NoError(t, p.SetLightbarColor(c, 0, 0, 0))
	require.NoError(t, p.SetLightbarColor(c, 0, 0, 0))
	require.Len(t, c.OutputReports, 2)

	first := c.OutputReports[0][1] >> 4
	second := c.OutputReports[1][1] >> 4
	assert.Equal(t, first+1, second)
}

func TestParseRawDecodesAxesAndButtons(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds5.Parser{}
	p.InitReport(c)

	report := make([]byte, 78)
	report[0] = 0x31
	report[3] = 0x7F // axis X centered
	report[4] = 0xFF // axis Y max
	report[8] = 0x20 | 0x02 // A pressed, hat=2 (right)
	report[9] = 0x01        // L1 pressed

	p.ParseRaw(c, report)

	gp := c.Gamepad()
	assert.True(t, gp.Buttons&0x0001 != 0, "button A should be set")
	assert.EqualValues(t, 0, gp.AxisX)
	assert.Greater(t, gp.AxisY, int32(0))
	assert.NotZero(t, gp.DPad)
}

func TestParseRawRejectsWrongReportID(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds5.Parser{}
	report := make([]byte, 78)
	report[0] = 0x01 // not the expected 0x31
	p.ParseRaw(c, report)
	assert.Zero(t, c.Gamepad().UpdatedStates)
}

func TestRumbleSingleFlight(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &ds5.Parser{}

	require.NoError(t, p.SetRumble(c, 200, 10))
	require.Len(t, c.OutputReports, 1)

	// A second call while the timer hasn't fired is a no-op, per spec.md
	// invariant 7.
	require.NoError(t, p.SetRumble(c, 200, 10))
	assert.Len(t, c.OutputReports, 1)

	c.FireTimers()
	assert.Len(t, c.OutputReports, 2, "timer fire should emit the zero-force report")

	require.NoError(t, p.SetRumble(c, 100, 5))
	assert.Len(t, c.OutputReports, 3, "rumble allowed again after timer fired")
}
