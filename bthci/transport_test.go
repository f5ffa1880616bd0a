package bthci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/bthci"
	"github.com/alia5/bluepad32go/btdevice"
)

type fakeLink struct {
	busy       bool
	sent       [][]byte
	canSendReq []uint16
}

func (l *fakeLink) Send(cid uint16, payload []byte) error {
	if l.busy {
		l.busy = false // only the first send is busy, unblocking the retry
		return bthci.ErrBusy
	}
	l.sent = append(l.sent, append([]byte(nil), payload...))
	return nil
}

func (l *fakeLink) RequestCanSendNow(cid uint16) {
	l.canSendReq = append(l.canSendReq, cid)
}

func TestSendControlQueuesOnBusyAndRequestsCallback(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c, err := table.Acquire([6]byte{1})
	require.NoError(t, err)
	c.ControlCID = 0x40

	tr := bthci.NewTransport()
	link := &fakeLink{busy: true}
	tr.Bind(c, link)

	require.NoError(t, tr.SendControl(c, []byte{0xAA}))
	assert.Empty(t, link.sent, "a busy send must not reach the link")
	assert.True(t, c.PendingOutgoing(0x40))
	assert.Equal(t, []uint16{0x40}, link.canSendReq)
}

func TestDrainCanSendNowSendsQueuedPacket(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c, _ := table.Acquire([6]byte{1})
	c.ControlCID = 0x40

	tr := bthci.NewTransport()
	link := &fakeLink{busy: true}
	tr.Bind(c, link)

	require.NoError(t, tr.SendControl(c, []byte{0xAA}))
	require.NoError(t, tr.DrainCanSendNow(c, 0x40))

	require.Len(t, link.sent, 1)
	assert.Equal(t, []byte{0xAA}, link.sent[0])
	assert.False(t, c.PendingOutgoing(0x40))
}

func TestSendOutputPreservesFIFOOrderBehindAPendingPacket(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c, _ := table.Acquire([6]byte{1})
	c.InterruptCID = 0x41

	tr := bthci.NewTransport()
	link := &fakeLink{busy: true}
	tr.Bind(c, link)

	require.NoError(t, tr.SendOutput(c, []byte{0x01}))
	require.NoError(t, tr.SendOutput(c, []byte{0x02}))

	require.NoError(t, tr.DrainCanSendNow(c, 0x41))
	require.NoError(t, tr.DrainCanSendNow(c, 0x41))

	require.Len(t, link.sent, 2)
	assert.Equal(t, []byte{0x01}, link.sent[0])
	assert.Equal(t, []byte{0x02}, link.sent[1])
}
