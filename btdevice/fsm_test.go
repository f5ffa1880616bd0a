package btdevice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/btdevice"
	"github.com/alia5/bluepad32go/parser"
	"github.com/alia5/bluepad32go/parser/parsertest"
)

type fakeFamily struct {
	setupCalled bool
	ledBitmask  uint8
}

func (f *fakeFamily) Setup(c parser.Conn) error { f.setupCalled = true; return nil }
func (f *fakeFamily) SetPlayerLEDs(c parser.Conn, bitmask uint8) error {
	f.ledBitmask = bitmask
	return nil
}

type fakeScheduler struct {
	fired []func()
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.fired = append(s.fired, f)
	return func() bool { return true }
}

func (s *fakeScheduler) run() {
	for _, f := range s.fired {
		f()
	}
	s.fired = nil
}

func TestAdvanceToRejectsBackwardMoves(t *testing.T) {
	c := &btdevice.Connection{}
	require.NoError(t, c.AdvanceTo(btdevice.StateL2capControlConnected))
	err := c.AdvanceTo(btdevice.StateDeviceDiscovered)
	assert.Error(t, err, "moving backward must be rejected (invariant: FSM monotonicity)")
}

func TestAdvanceToAllowsForwardSkips(t *testing.T) {
	c := &btdevice.Connection{}
	require.NoError(t, c.AdvanceTo(btdevice.StateSdpVendorFetched))
	assert.Equal(t, btdevice.StateSdpVendorFetched, c.State)
}

func TestBeginIncomingEntersPartway(t *testing.T) {
	c := &btdevice.Connection{}
	require.NoError(t, btdevice.BeginIncoming(c))
	assert.Equal(t, btdevice.StateL2capControlConnected, c.State)
	assert.True(t, c.Flags&btdevice.FlagIncoming != 0)
}

func TestApplySDPBeforeConnectFlagsDualShock4V1(t *testing.T) {
	c := &btdevice.Connection{}
	c.SetName("Wireless Controller")
	btdevice.ApplySDPBeforeConnect(c)
	assert.True(t, c.SDPQueryBeforeConnect)

	other := &btdevice.Connection{}
	other.SetName("Xbox Wireless Controller")
	btdevice.ApplySDPBeforeConnect(other)
	assert.False(t, other.SDPQueryBeforeConnect)
}

func TestApplyPS3NameShortcutSynthesizesIdentity(t *testing.T) {
	c := &btdevice.Connection{}
	c.SetName("PLAYSTATION(R)3 Controller")
	assert.True(t, btdevice.ApplyPS3NameShortcut(c))
	assert.EqualValues(t, 0x054C, c.VID)
	assert.EqualValues(t, 0x0268, c.PID)
}

func TestEnterReadyAllocatesSeatRunsSetupAndSetsLED(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c, err := table.Acquire(addr(1))
	require.NoError(t, err)
	require.NoError(t, c.AdvanceTo(btdevice.StateSdpVendorFetched))

	fam := &fakeFamily{}
	c.Parser = fam
	pc := &parsertest.FakeConn{SeatNum: -1}

	var readyCalled *btdevice.Connection
	require.NoError(t, btdevice.EnterReady(table, c, pc, func(rc *btdevice.Connection) { readyCalled = rc }))

	assert.Equal(t, btdevice.StateDeviceReady, c.State)
	assert.True(t, c.Flags&btdevice.FlagConnected != 0)
	assert.GreaterOrEqual(t, c.Seat, 0)
	assert.True(t, fam.setupCalled)
	assert.Equal(t, uint8(1<<uint(c.Seat)), fam.ledBitmask)
	assert.Same(t, c, readyCalled)
}

func TestSDPTimeoutSetsTryHeuristicsAndReleasesTarget(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	c, _ := table.Acquire(addr(1))
	require.True(t, table.BeginSDPQuery(c))

	clk := &fakeScheduler{}
	btdevice.BeginSDPTimeout(table, c, clk, 15*time.Second)
	clk.run()

	assert.True(t, c.TryHeuristics)
	other, _ := table.Acquire(addr(2))
	assert.True(t, table.BeginSDPQuery(other), "timeout must release the SDP target")
}

func TestInquiryGateBlocksUntilPauseElapses(t *testing.T) {
	table := btdevice.NewTable(btdevice.DefaultSlots)
	clk := &fakeScheduler{}

	require.True(t, table.BeginInquiry())
	assert.False(t, table.BeginInquiry(), "a second inquiry may not start while one is running")

	table.EndInquiry(clk)
	assert.False(t, table.BeginInquiry(), "the gate stays closed until the pause timer fires")

	clk.run()
	assert.True(t, table.BeginInquiry(), "the gate reopens once the pause elapses")
}
