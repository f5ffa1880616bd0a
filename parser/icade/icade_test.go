package icade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
	_ "github.com/alia5/bluepad32go/parser/icade"
	"github.com/alia5/bluepad32go/parser/parsertest"
)

func newParser(t *testing.T) parser.RawParser {
	t.Helper()
	f := parser.Lookup(gamepad.ControllerTypeICade)
	require.NotNil(t, f)
	rp, ok := f().(parser.RawParser)
	require.True(t, ok)
	return rp
}

func TestPressReleasePairTogglesButton(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := newParser(t)

	// boot-keyboard report: modifier, reserved, up to 6 scancodes.
	press := []byte{0x00, 0x00, 'y', 0, 0, 0, 0, 0}
	p.ParseRaw(c, press)
	assert.True(t, c.Gamepad().Buttons&0x0001 != 0, "'y' press maps to button A")

	release := []byte{0x00, 0x00, 't', 0, 0, 0, 0, 0}
	p.ParseRaw(c, release)
	assert.False(t, c.Gamepad().Buttons&0x0001 != 0, "'t' release should clear button A")
}

func TestDPadScancodes(t *testing.T) {
	c := &parsertest.FakeConn{}
	p := newParser(t)

	p.ParseRaw(c, []byte{0, 0, 'w', 0, 0, 0, 0, 0})
	assert.NotZero(t, c.Gamepad().DPad&0x01)
}
