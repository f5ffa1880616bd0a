package dispatcher_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/bthci"
	"github.com/alia5/bluepad32go/btdevice"
	"github.com/alia5/bluepad32go/dispatcher"
	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/parser"
	"github.com/alia5/bluepad32go/platform"
	"github.com/alia5/bluepad32go/vendortable"
)

type fakeScheduler struct{ fired []func() }

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.fired = append(s.fired, f)
	return func() bool { return true }
}

type fakeLink struct {
	sent       [][]byte
	canSendReq []uint16
}

func (l *fakeLink) Send(cid uint16, payload []byte) error {
	l.sent = append(l.sent, append([]byte(nil), payload...))
	return nil
}

func (l *fakeLink) RequestCanSendNow(cid uint16) {
	l.canSendReq = append(l.canSendReq, cid)
}

type fakeHooks struct {
	ready   []platform.DeviceInfo
	data    []gamepad.VirtualGamepad
	discond []platform.DeviceInfo
}

func (h *fakeHooks) OnDeviceReady(dev platform.DeviceInfo) { h.ready = append(h.ready, dev) }
func (h *fakeHooks) OnGamepadData(dev platform.DeviceInfo, gp gamepad.VirtualGamepad) {
	h.data = append(h.data, gp)
}
func (h *fakeHooks) OnDeviceDisconnected(dev platform.DeviceInfo) {
	h.discond = append(h.discond, dev)
}

// rawEchoParser is a minimal RawParser that copies report[0] into the
// gamepad's DPad field, just enough to prove routing works end to end.
type rawEchoParser struct{}

func (rawEchoParser) ParseRaw(c parser.Conn, report []byte) {
	if len(report) == 0 {
		return
	}
	c.Gamepad().DPad = report[0]
}

const fakeVID, fakePID uint16 = 0x054C, 0x0268

func newTestDispatcher(hooks any) (*dispatcher.Dispatcher, *btdevice.Table, *bthci.Transport, *fakeScheduler) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	transport := bthci.NewTransport()
	sched := &fakeScheduler{}
	vendors := []vendortable.Entry{{VID: fakeVID, PID: fakePID, Type: gamepad.ControllerTypeApple, Supported: true}}
	parser.Register(gamepad.ControllerTypeApple, func() any { return rawEchoParser{} })
	d := dispatcher.New(table, transport, sched, vendors, hooks)
	return d, table, transport, sched
}

func TestIncomingPS3ShortcutReachesReadyAndRoutesReports(t *testing.T) {
	hooks := &fakeHooks{}
	d, table, transport, _ := newTestDispatcher(hooks)

	addr := [6]byte{1, 2, 3, 4, 5, 6}
	d.Handle(bthci.HCIConnectionRequest{RemoteAddr: addr, ClassOfDevice: 0x002508})
	d.Handle(bthci.HCIRemoteNameRequestComplete{RemoteAddr: addr, Name: "PLAYSTATION(R)3 Controller"})

	c, ok := table.Find(addr)
	require.True(t, ok)
	link := &fakeLink{}
	transport.Bind(c, link)

	d.Handle(bthci.L2CAPIncomingConnection{RemoteAddr: addr, PSM: bthci.PSMHIDControl, CID: 0x40})
	d.Handle(bthci.L2CAPChannelOpened{CID: 0x40, PSM: bthci.PSMHIDControl, Success: true})
	d.Handle(bthci.L2CAPIncomingConnection{RemoteAddr: addr, PSM: bthci.PSMHIDInterrupt, CID: 0x41})
	d.Handle(bthci.L2CAPChannelOpened{CID: 0x41, PSM: bthci.PSMHIDInterrupt, Success: true})

	require.Len(t, hooks.ready, 1)
	assert.Equal(t, uint16(fakeVID), hooks.ready[0].VID)
	assert.Equal(t, uint16(fakePID), hooks.ready[0].PID)
	assert.Equal(t, gamepad.ControllerTypeApple, hooks.ready[0].ControllerType)
	assert.GreaterOrEqual(t, hooks.ready[0].Seat, 0)
	assert.Equal(t, btdevice.StateDeviceReady, c.State)

	d.Handle(bthci.L2CAPDataPacket{CID: 0x41, Data: []byte{0x07}})
	require.Len(t, hooks.data, 1)
	assert.EqualValues(t, 0x07, hooks.data[0].DPad)
}

func TestChannelClosedReleasesSlotAndNotifiesDisconnect(t *testing.T) {
	hooks := &fakeHooks{}
	d, table, transport, _ := newTestDispatcher(hooks)

	addr := [6]byte{9, 9, 9, 9, 9, 9}
	d.Handle(bthci.HCIConnectionRequest{RemoteAddr: addr, ClassOfDevice: 0})
	c, ok := table.Find(addr)
	require.True(t, ok)
	c.ControlCID = 0x50
	link := &fakeLink{}
	transport.Bind(c, link)

	d.Handle(bthci.L2CAPChannelClosed{CID: 0x50})

	_, stillThere := table.Find(addr)
	assert.False(t, stillThere)
	require.Len(t, hooks.discond, 1)
}

func TestDeviceTableFullDropsNewDiscoveries(t *testing.T) {
	hooks := &fakeHooks{}
	d, table, _, _ := newTestDispatcher(hooks)
	for i := 0; i < btdevice.DefaultSlots; i++ {
		addr := [6]byte{byte(i + 1)}
		d.Handle(bthci.HCIInquiryResult{RemoteAddr: addr})
	}
	d.Handle(bthci.HCIInquiryResult{RemoteAddr: [6]byte{0xFF}})
	_, ok := table.Find([6]byte{0xFF})
	assert.False(t, ok)
	assert.Len(t, table.Connections(), btdevice.DefaultSlots)
}
