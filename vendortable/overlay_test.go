package vendortable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/vendortable"
)

func TestLoadOverlayParsesHexAndDecimalIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	content := "- vid: \"0x054C\"\n  pid: 3302\n  type: PS5\n  supported: true\n  name: DualSense Edge\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := vendortable.LoadOverlay(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 0x054C, entries[0].VID)
	assert.EqualValues(t, 3302, entries[0].PID)
	assert.Equal(t, gamepad.ControllerTypePS5, entries[0].Type)
	assert.True(t, entries[0].Supported)
}

func TestLoadOverlayRejectsUnknownControllerType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- vid: 1\n  pid: 1\n  type: NotARealFamily\n"), 0o644))

	_, err := vendortable.LoadOverlay(path)
	assert.Error(t, err)
}

func TestParseNumberOrHex(t *testing.T) {
	v, err := vendortable.ParseNumberOrHex[uint16]("0x2009")
	require.NoError(t, err)
	assert.EqualValues(t, 0x2009, v)

	v2, err := vendortable.ParseNumberOrHex[uint16](float64(1337))
	require.NoError(t, err)
	assert.EqualValues(t, 1337, v2)
}
