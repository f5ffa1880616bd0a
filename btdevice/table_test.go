package btdevice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/btdevice"
)

func addr(b byte) [6]byte {
	return [6]byte{b, 0, 0, 0, 0, 0}
}

func TestAcquireFillsAndRejectsWhenFull(t *testing.T) {
	table := btdevice.NewTable(2)

	c1, err := table.Acquire(addr(1))
	require.NoError(t, err)
	assert.Equal(t, btdevice.StateDeviceDiscovered, c1.State)

	_, err = table.Acquire(addr(2))
	require.NoError(t, err)

	_, err = table.Acquire(addr(3))
	assert.ErrorIs(t, err, btdevice.ErrTableFull)
}

func TestAcquireIsIdempotentForSameAddress(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c1, err := table.Acquire(addr(9))
	require.NoError(t, err)
	c1.SetName("whatever")

	c2, err := table.Acquire(addr(9))
	require.NoError(t, err)
	assert.Same(t, c1, c2)
	assert.Equal(t, "whatever", c2.Name)
}

func TestReleaseFreesSlotForReuse(t *testing.T) {
	table := btdevice.NewTable(1)
	c1, err := table.Acquire(addr(1))
	require.NoError(t, err)

	table.Release(c1)
	table.Release(c1) // idempotent

	c2, err := table.Acquire(addr(2))
	require.NoError(t, err)
	assert.Equal(t, addr(2), c2.RemoteAddr)
}

func TestSDPQuerySerialization(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c1, _ := table.Acquire(addr(1))
	c2, _ := table.Acquire(addr(2))

	assert.True(t, table.BeginSDPQuery(c1))
	assert.False(t, table.BeginSDPQuery(c2), "a second device may not start an SDP query while one is in flight")

	table.EndSDPQuery(c1)
	assert.True(t, table.BeginSDPQuery(c2), "releasing the target lets the next device proceed")
}

func TestFindByCID(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c, _ := table.Acquire(addr(1))
	c.ControlCID = 0x40
	c.InterruptCID = 0x41

	found, ok := table.FindByCID(0x41)
	require.True(t, ok)
	assert.Same(t, c, found)

	_, ok = table.FindByCID(0x99)
	assert.False(t, ok)
}
