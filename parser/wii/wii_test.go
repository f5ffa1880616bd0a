package wii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/parser/parsertest"
	"github.com/alia5/bluepad32go/parser/wii"
)

func TestSetupRequestsStatus(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &wii.Parser{}
	require.NoError(t, p.Setup(c))
	require.Len(t, c.ControlReports, 1)
	assert.Equal(t, byte(0x15), c.ControlReports[0][0])
}

// TestNoExtensionGoesStraightToReady covers the "no extension" branch of
// spec.md §4.5's Wii probe FSM: a status reply with the extension bit
// clear should update the LED and need no register reads.
func TestNoExtensionGoesStraightToReady(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &wii.Parser{}
	require.NoError(t, p.Setup(c))

	status := []byte{0x20, 0x00, 0x00, 0x00}
	p.ParseRaw(c, status)

	// Status handling should have issued an LED write (report id 0x11)
	// without ever requesting a register read (id 0x17).
	for _, r := range c.ControlReports {
		assert.NotEqual(t, byte(0x17), r[0], "no-extension path must not probe registers")
	}
	foundLED := false
	for _, r := range c.ControlReports {
		if r[0] == 0x11 {
			foundLED = true
		}
	}
	assert.True(t, foundLED, "expected an LED write on the no-extension path")
}

func TestCoreButtonsDecode(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := &wii.Parser{}
	p.InitReport(c)

	report := []byte{0x30, 0x08, 0x08} // Up held, A held (horizontal mode)
	p.ParseRaw(c, report)

	gp := c.Gamepad()
	assert.NotZero(t, gp.DPad&0x01, "Up should be set")
	assert.True(t, gp.Buttons&0x0001 != 0, "A should be set")
}
