package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/platform"
)

type fullHooks struct {
	ready     *platform.DeviceInfo
	gamepad   *gamepad.VirtualGamepad
	deleteKey int
}

func (h *fullHooks) OnDeviceReady(dev platform.DeviceInfo) { h.ready = &dev }
func (h *fullHooks) OnGamepadData(dev platform.DeviceInfo, gp gamepad.VirtualGamepad) {
	h.gamepad = &gp
}
func (h *fullHooks) GetProperty(key platform.PropertyKey) int { return h.deleteKey }

func TestNotifyCallsImplementedHooksOnly(t *testing.T) {
	h := &fullHooks{}
	dev := platform.DeviceInfo{Seat: 2}

	platform.NotifyDeviceReady(h, dev)
	require.NotNil(t, h.ready)
	assert.Equal(t, 2, h.ready.Seat)

	gp := gamepad.VirtualGamepad{AxisX: 100}
	platform.NotifyGamepadData(h, dev, gp)
	require.NotNil(t, h.gamepad)
	assert.EqualValues(t, 100, h.gamepad.AxisX)

	// A hooks value implementing nothing must not panic.
	platform.NotifyInit(struct{}{})
	platform.NotifyDeviceConnected(struct{}{}, dev)
}

func TestShouldDeleteStoredKeysDefaultsFalse(t *testing.T) {
	assert.False(t, platform.ShouldDeleteStoredKeys(struct{}{}))

	h := &fullHooks{deleteKey: 1}
	assert.True(t, platform.ShouldDeleteStoredKeys(h))
}
