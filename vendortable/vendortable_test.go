package vendortable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/vendortable"
)

func TestClassifyByVIDPIDKnownDevices(t *testing.T) {
	assert.Equal(t, gamepad.ControllerTypePS3, vendortable.ClassifyByVIDPID(vendortable.Table, 0x054C, 0x0268))
	assert.Equal(t, gamepad.ControllerTypePS5, vendortable.ClassifyByVIDPID(vendortable.Table, 0x054C, 0x0CE6))
	assert.Equal(t, gamepad.ControllerTypeUnknown, vendortable.ClassifyByVIDPID(vendortable.Table, 0x0000, 0x0000))
}

func TestClassifyByVIDPIDFirstMatchWins(t *testing.T) {
	table := []vendortable.Entry{
		{VID: 0x1, PID: 0x1, Type: gamepad.ControllerTypePS3},
		{VID: 0x1, PID: 0x1, Type: gamepad.ControllerTypeXbox360},
	}
	assert.Equal(t, gamepad.ControllerTypePS3, vendortable.ClassifyByVIDPID(table, 0x1, 0x1))
}

func TestTableLookupIdempotence(t *testing.T) {
	// For every row e, classifying e's own (vid,pid) must yield the type
	// of the FIRST row sharing that pair, not necessarily e's own type.
	first := map[[2]uint16]gamepad.ControllerType{}
	for _, e := range vendortable.Table {
		key := [2]uint16{e.VID, e.PID}
		if _, ok := first[key]; !ok {
			first[key] = e.Type
		}
	}
	for _, e := range vendortable.Table {
		key := [2]uint16{e.VID, e.PID}
		got := vendortable.ClassifyByVIDPID(vendortable.Table, e.VID, e.PID)
		assert.Equal(t, first[key], got)
	}
}

func TestClassifyFallback(t *testing.T) {
	assert.Equal(t, gamepad.ControllerTypeGeneric, vendortable.ClassifyFallback(vendortable.CoDMajorPeripheral|vendortable.CoDMinorPointDevice))
	assert.Equal(t, gamepad.ControllerTypeGeneric, vendortable.ClassifyFallback(vendortable.CoDMajorPeripheral|vendortable.CoDMinorKeyboard))
	assert.Equal(t, gamepad.ControllerTypeAndroid, vendortable.ClassifyFallback(0))
}

func TestClassifyByPacket(t *testing.T) {
	pkt := make([]byte, 13)
	pkt[0] = 0xA1
	pkt[1] = 0x3F
	assert.True(t, vendortable.ClassifyByPacket(pkt))
	assert.False(t, vendortable.ClassifyByPacket(pkt[:12]))

	bad := make([]byte, 13)
	bad[0] = 0xA1
	bad[1] = 0x40
	assert.False(t, vendortable.ClassifyByPacket(bad))
}

func TestJoyConRowsPresentButUnsupported(t *testing.T) {
	var left, right bool
	for _, e := range vendortable.Table {
		if e.VID == 0x057e && e.PID == 0x2006 {
			left = true
			assert.False(t, e.Supported)
			assert.Equal(t, gamepad.ControllerTypeSwitchJoyConLeft, e.Type)
		}
		if e.VID == 0x057e && e.PID == 0x2007 {
			right = true
			assert.False(t, e.Supported)
			assert.Equal(t, gamepad.ControllerTypeSwitchJoyConRight, e.Type)
		}
	}
	assert.True(t, left)
	assert.True(t, right)
}
