package ds4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCRC32Law covers spec.md §8 scenario 11 and invariant 5 against the
// parser's own CRC construction, not a hand-rolled stand-in: it drives
// appendCRC, the same function buildOutputReport calls, over {0xA2,
// 0x11, 73 zero bytes} and checks both the emitted length and CRC.
func TestCRC32Law(t *testing.T) {
	report := append([]byte{reportIDOutput}, make([]byte, 73)...)
	out := appendCRC(report)
	require.Len(t, out, 78)

	crc := uint32(out[74]) | uint32(out[75])<<8 | uint32(out[76])<<16 | uint32(out[77])<<24
	assert.Equal(t, uint32(0x4693564A), crc)
}

// TestBuildOutputReportBodyLength pins the body buildOutputReport
// assembles to the 73 bytes ds4_output_report_t carries past report_id,
// so a future edit can't silently grow or shrink it.
func TestBuildOutputReportBodyLength(t *testing.T) {
	report := buildOutputReport(0, 0, 0, 0, 0, 0, 0, 0)
	require.Len(t, report, 78)
	assert.Equal(t, uint8(reportIDOutput), report[0])
}
