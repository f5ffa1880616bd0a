package gamepad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alia5/bluepad32go/gamepad"
)

func eightBitAxis() gamepad.Globals {
	return gamepad.Globals{LogicalMin: 0, LogicalMax: 255, ReportSize: 8, ReportCount: 1}
}

func TestNormalizeAxis(t *testing.T) {
	g := eightBitAxis()
	assert.EqualValues(t, 0, gamepad.NormalizeAxis(g, 128))
	assert.EqualValues(t, -512, gamepad.NormalizeAxis(g, 0))
	assert.EqualValues(t, 508, gamepad.NormalizeAxis(g, 255))
}

func TestNormalizeAxisSignExtendedMax(t *testing.T) {
	g := gamepad.Globals{LogicalMin: 0, LogicalMax: -1, ReportSize: 8, ReportCount: 1}
	// LogicalMax == -1 means the true max must be derived from ReportSize (255).
	assert.EqualValues(t, gamepad.NormalizeAxis(eightBitAxis(), 0), gamepad.NormalizeAxis(g, 0))
	assert.EqualValues(t, gamepad.NormalizeAxis(eightBitAxis(), 255), gamepad.NormalizeAxis(g, 255))
}

func TestNormalizeAxisRangeInvariant(t *testing.T) {
	g := eightBitAxis()
	for raw := int32(0); raw <= 255; raw++ {
		v := gamepad.NormalizeAxis(g, raw)
		assert.GreaterOrEqual(t, v, int32(-512))
		assert.LessOrEqual(t, v, int32(511))
	}
}

func TestNormalizePedalRangeInvariant(t *testing.T) {
	g := eightBitAxis()
	for raw := int32(0); raw <= 255; raw++ {
		v := gamepad.NormalizePedal(g, raw)
		assert.GreaterOrEqual(t, v, int32(0))
		assert.LessOrEqual(t, v, int32(1023))
	}
}

func TestHatToDPad(t *testing.T) {
	cases := []struct {
		hat  uint8
		want uint8
	}{
		{0, gamepad.DPadUp},
		{3, gamepad.DPadRight | gamepad.DPadDown},
		{8, 0},
		{gamepad.HatNull, 0},
		{200, 0},
	}
	for _, c := range cases {
		got := gamepad.HatToDPad(c.hat)
		assert.Equal(t, c.want, got)
		if c.hat < 8 {
			bits := 0
			for b := uint8(1); b != 0; b <<= 1 {
				if got&b != 0 {
					bits++
				}
			}
			assert.True(t, bits == 1 || bits == 2)
		}
	}
}

func TestNormalizeHatOutOfRange(t *testing.T) {
	g := gamepad.Globals{LogicalMin: 0, LogicalMax: 7}
	assert.Equal(t, uint8(gamepad.HatNull), gamepad.NormalizeHat(g, 9))
	assert.Equal(t, uint8(3), gamepad.NormalizeHat(g, 3))
}

func TestDPadFromUsage(t *testing.T) {
	var state uint8
	state = gamepad.DPadFromUsage(gamepad.UsageDPadUp, 1, state)
	assert.Equal(t, gamepad.DPadUp, state)
	state = gamepad.DPadFromUsage(gamepad.UsageDPadUp, 0, state)
	assert.Equal(t, uint8(0), state)
}
