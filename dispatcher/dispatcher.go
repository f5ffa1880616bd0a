// Package dispatcher runs the single-threaded event loop spec.md §2.8
// and §5 describe: one goroutine draining the simulated HCI/L2CAP/SDP/
// GAP event stream, mutating the device table, and invoking whichever
// parser and platform hooks apply. It is grounded on
// internal/server/usb/server.go's handleUrbStream accept/demux loop and
// processSubmit's dispatch-by-packet-type switch, generalized from USB
// URBs to bthci.Event.
package dispatcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/alia5/bluepad32go/bthci"
	"github.com/alia5/bluepad32go/btdevice"
	"github.com/alia5/bluepad32go/gamepad"
	"github.com/alia5/bluepad32go/internal/log"
	"github.com/alia5/bluepad32go/parser"
	"github.com/alia5/bluepad32go/platform"
	"github.com/alia5/bluepad32go/usb/hid"
	"github.com/alia5/bluepad32go/vendortable"
)

// DefaultConnectionTimeout is the fallback spec.md §4.7's SDP-timeout
// margin is subtracted from when the caller doesn't set one.
const DefaultConnectionTimeout = 10 * time.Second

// Dispatcher owns the device table and wires bthci events to btdevice's
// FSM, the classified parser.Factory, and the platform lifecycle hooks.
// Every method below runs only from Run's goroutine; spec.md §5's "the
// device table is the sole mutable shared structure, all mutations
// happen on the event loop" is enforced by never calling these methods
// concurrently, not by internal locking beyond Table's own.
type Dispatcher struct {
	Table     *btdevice.Table
	Transport *bthci.Transport
	Scheduler btdevice.Scheduler
	Vendors   []vendortable.Entry

	// Hooks is the platform lifecycle implementation; see package
	// platform. A nil Hooks value is valid and every notification
	// becomes a no-op.
	Hooks any

	// HostAddr is this adapter's own Bluetooth address, used to derive
	// the default Sync-pairing PIN.
	HostAddr [6]byte

	ConnectionTimeout time.Duration

	// RawLogger, if set, traces every inbound interrupt-channel report
	// handleDataPacket receives, with in=true (client->server). Outbound
	// tracing happens on the Transport side of the same RawLogger.
	RawLogger log.RawLogger

	logger *slog.Logger
}

// New builds a Dispatcher over an existing Table/Transport/Scheduler.
func New(table *btdevice.Table, transport *bthci.Transport, scheduler btdevice.Scheduler, vendors []vendortable.Entry, hooks any) *Dispatcher {
	return &Dispatcher{
		Table:             table,
		Transport:         transport,
		Scheduler:         scheduler,
		Vendors:           vendors,
		Hooks:             hooks,
		ConnectionTimeout: DefaultConnectionTimeout,
		logger:            slog.Default(),
	}
}

// Run drains events until ctx is cancelled or the channel closes,
// calling OnInit/OnInitComplete exactly once at the boundaries spec.md
// §6 describes.
func (d *Dispatcher) Run(ctx context.Context, events <-chan bthci.Event) {
	platform.NotifyInit(d.Hooks)
	if platform.ShouldDeleteStoredKeys(d.Hooks) {
		// spec.md §7: queried once on init; dropping keys is the BT
		// stack's job, delegated here to bthci since there's no real
		// radio behind this transport to hold any.
		bthci.DeleteStoredLinkKeys()
		d.logger.Info("deleted all stored link keys before first outgoing connect attempt")
	}
	platform.NotifyInitComplete(d.Hooks)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			d.Handle(ev)
		}
	}
}

// Handle dispatches a single event by its concrete type, the same
// switch-on-packet-type idiom processSubmit uses for URBs.
func (d *Dispatcher) Handle(ev bthci.Event) {
	switch e := ev.(type) {
	case bthci.HCIInquiryResult:
		d.handleDiscovery(e.RemoteAddr, e.ClassOfDevice, "")
	case bthci.GAPInquiryResult:
		d.handleDiscovery(e.RemoteAddr, e.ClassOfDevice, e.Name)
	case bthci.HCIConnectionRequest:
		d.handleConnectionRequest(e)
	case bthci.HCIConnectionComplete:
		d.handleConnectionComplete(e)
	case bthci.HCIRemoteNameRequestComplete:
		d.handleRemoteName(e)
	case bthci.L2CAPIncomingConnection:
		d.handleIncomingL2CAP(e)
	case bthci.L2CAPChannelOpened:
		d.handleChannelOpened(e)
	case bthci.L2CAPChannelClosed:
		d.handleChannelClosed(e)
	case bthci.L2CAPCanSendNow:
		d.handleCanSendNow(e)
	case bthci.L2CAPDataPacket:
		d.handleDataPacket(e)
	case bthci.SDPQueryAttributeByte:
		d.handleSDPAttributeByte(e)
	case bthci.SDPQueryComplete:
		d.handleSDPComplete(e)
	case bthci.HCIPinCodeRequest:
		// Only logged: supplying the PIN is a platform-binding concern
		// (bthci.SyncPairingPIN/ButtonPairingPIN), not the dispatcher's.
		d.logger.Debug("pin code requested", "addr", e.RemoteAddr)
	case bthci.SMJustWorksRequest:
		d.handleJustWorksRequest(e)
	case bthci.SMPairingComplete:
		if !e.Success {
			d.logger.Warn("pairing failed", "addr", e.RemoteAddr)
		}
	default:
		d.logger.Debug("unhandled event", "kind", fmtKind(ev))
	}
}

func fmtKind(ev bthci.Event) string {
	type kinder interface{ eventKind() string }
	if k, ok := any(ev).(kinder); ok {
		return k.eventKind()
	}
	return "unknown"
}

// handleDiscovery handles both HCIInquiryResult and GAPInquiryResult:
// acquire (or find) the slot, record the class of device, and flag the
// remote name when the GAP variant already carried it.
func (d *Dispatcher) handleDiscovery(addr [6]byte, cod uint32, name string) {
	c, err := d.Table.Acquire(addr)
	if err != nil {
		d.logger.Warn("device table full, dropping discovery", "addr", addr, "error", err)
		return
	}
	c.ClassOfDevice = cod
	c.Flags |= btdevice.FlagHasCoD
	btdevice.BeginOutgoing(c)
	if name != "" {
		c.SetName(name)
		btdevice.ApplySDPBeforeConnect(c)
	}
}

func (d *Dispatcher) handleConnectionRequest(e bthci.HCIConnectionRequest) {
	if !d.Table.AcceptIncoming() {
		return
	}
	c, err := d.Table.Acquire(e.RemoteAddr)
	if err != nil {
		d.logger.Warn("device table full, declining incoming connection", "addr", e.RemoteAddr, "error", err)
		return
	}
	c.ClassOfDevice = e.ClassOfDevice
	c.Flags |= btdevice.FlagHasCoD
	_ = btdevice.BeginIncoming(c)
}

func (d *Dispatcher) handleConnectionComplete(e bthci.HCIConnectionComplete) {
	c, ok := d.Table.Find(e.RemoteAddr)
	if !ok {
		return
	}
	c.ConnectionHandle = e.ConnectionHandle
}

func (d *Dispatcher) handleRemoteName(e bthci.HCIRemoteNameRequestComplete) {
	c, ok := d.Table.Find(e.RemoteAddr)
	if !ok {
		return
	}
	// Best-effort forward move: the incoming flow already skipped past
	// this stage, so a failure here just means the name arrived late
	// relative to the FSM's linear order, not an error.
	_ = c.AdvanceTo(btdevice.StateRemoteNameFetched)
	c.SetName(e.Name)
	btdevice.ApplySDPBeforeConnect(c)
}

// handleIncomingL2CAP accepts an inbound channel open if the owning
// connection is known (or discoverable from a fresh connection request)
// and the table still has room, per spec.md §4.7's incoming flow.
func (d *Dispatcher) handleIncomingL2CAP(e bthci.L2CAPIncomingConnection) {
	c, ok := d.Table.Find(e.RemoteAddr)
	if !ok {
		var err error
		c, err = d.Table.Acquire(e.RemoteAddr)
		if err != nil {
			return
		}
	}
	switch e.PSM {
	case bthci.PSMHIDControl:
		c.ControlCID = e.CID
	case bthci.PSMHIDInterrupt:
		c.InterruptCID = e.CID
	}
}

func (d *Dispatcher) handleChannelOpened(e bthci.L2CAPChannelOpened) {
	c, ok := d.Table.FindByCID(e.CID)
	if !ok {
		return
	}
	if !e.Success {
		d.Table.Release(c)
		return
	}
	switch e.PSM {
	case bthci.PSMHIDControl:
		c.ControlCID = e.CID
		_ = c.AdvanceTo(btdevice.StateL2capControlConnected)
		if c.Flags&btdevice.FlagIncoming == 0 && c.SDPQueryBeforeConnect && c.HIDDescriptor == nil {
			// Host-initiated DualShock-4-v1 branch: fetch the HID
			// descriptor before the interrupt channel opens, per
			// spec.md §4.7.
			d.startSDP(c)
		}
	case bthci.PSMHIDInterrupt:
		c.InterruptCID = e.CID
		_ = c.AdvanceTo(btdevice.StateL2capInterruptConnected)
		d.afterInterruptConnected(c)
	}
}

// afterInterruptConnected starts classification once both channels are
// open: if the Table's state machine reached InterruptConnected via the
// incoming-connection path, the PS3 name shortcut and SDP queries run
// here; the outgoing path may already be past SDP if it queried before
// connecting.
func (d *Dispatcher) afterInterruptConnected(c *btdevice.Connection) {
	if c.Flags&btdevice.FlagIncoming != 0 && btdevice.ApplyPS3NameShortcut(c) {
		// Identity is synthesized; classify immediately instead of
		// querying SDP.
		d.classify(c)
		return
	}
	if c.HIDDescriptor == nil {
		d.startSDP(c)
		return
	}
	d.classify(c)
}

func (d *Dispatcher) handleChannelClosed(e bthci.L2CAPChannelClosed) {
	c, ok := d.Table.FindByCID(e.CID)
	if !ok {
		return
	}
	dev := toDeviceInfo(c)
	d.Transport.Unbind(c)
	d.Table.Release(c)
	platform.NotifyDeviceDisconnected(d.Hooks, dev)
}

func (d *Dispatcher) handleCanSendNow(e bthci.L2CAPCanSendNow) {
	c, ok := d.Table.FindByCID(e.CID)
	if !ok {
		return
	}
	if err := d.Transport.DrainCanSendNow(c, e.CID); err != nil {
		d.logger.Warn("failed to drain queued report", "cid", e.CID, "error", err)
	}
}

// startSDP claims the singleton SDP-query target for c, or does nothing
// if another connection already holds it; handleSDPComplete retries a
// waiting connection once that holder's SDPQueryComplete arrives and
// releases the target (spec.md §4.7's SDP serialization).
func (d *Dispatcher) startSDP(c *btdevice.Connection) {
	if !d.Table.BeginSDPQuery(c) {
		return
	}
	_ = c.AdvanceTo(btdevice.StateSdpHidDescriptorRequested)
	btdevice.BeginSDPTimeout(d.Table, c, d.Scheduler, d.ConnectionTimeout)
}

func (d *Dispatcher) handleSDPAttributeByte(e bthci.SDPQueryAttributeByte) {
	c, ok := d.Table.Find(e.RemoteAddr)
	if !ok {
		return
	}
	c.SetHIDDescriptor(append(c.HIDDescriptor, e.Byte))
}

func (d *Dispatcher) handleSDPComplete(e bthci.SDPQueryComplete) {
	c, ok := d.Table.Find(e.RemoteAddr)
	if !ok {
		return
	}
	d.Table.EndSDPQuery(c)
	if c.State == btdevice.StateSdpHidDescriptorRequested {
		_ = c.AdvanceTo(btdevice.StateSdpHidDescriptorFetched)
	}
	d.classify(c)
	// Hand the released target to a connection whose startSDP found it busy.
	for _, w := range d.Table.Connections() {
		waiting := w.State == btdevice.StateL2capInterruptConnected ||
			(w.State == btdevice.StateL2capControlConnected && w.SDPQueryBeforeConnect && w.Flags&btdevice.FlagIncoming == 0)
		if w != c && waiting && w.HIDDescriptor == nil {
			d.startSDP(w)
			return
		}
	}
}

// classify assigns a ControllerType and parser.Factory once enough
// identity is known, per spec.md §4.1's first-match-wins table and its
// Class-of-Device/packet-shape fallbacks.
func (d *Dispatcher) classify(c *btdevice.Connection) {
	t := vendortable.ClassifyByVIDPID(d.Vendors, c.VID, c.PID)
	if t == gamepad.ControllerTypeUnknown {
		if c.Flags&btdevice.FlagHasCoD != 0 {
			t = vendortable.ClassifyFallback(c.ClassOfDevice)
		}
	}
	c.SetControllerType(t)
	if f := parser.Lookup(t); f != nil {
		c.Parser = f()
	}
	_ = c.AdvanceTo(btdevice.StateSdpVendorFetched)
	d.readyConnection(c)
}

func (d *Dispatcher) readyConnection(c *btdevice.Connection) {
	dev := toDeviceInfo(c)
	platform.NotifyDeviceConnected(d.Hooks, dev)
	pc := btdevice.NewParserConn(c, d.Transport, d.Scheduler)
	onReady := func(c *btdevice.Connection) {
		platform.NotifyDeviceReady(d.Hooks, toDeviceInfo(c))
	}
	if err := btdevice.EnterReady(d.Table, c, pc, onReady); err != nil {
		d.logger.Warn("failed to enter ready state", "addr", c.RemoteAddr, "error", err)
	}
}

// handleDataPacket routes an inbound interrupt-channel report to the
// assigned parser, walking the HID descriptor when the family needs
// per-usage decoding and falling back to ParseRaw (or the Switch Pro
// packet-shape heuristic) when it doesn't.
func (d *Dispatcher) handleDataPacket(e bthci.L2CAPDataPacket) {
	c, ok := d.Table.FindByCID(e.CID)
	if !ok || c.InterruptCID != e.CID {
		return
	}
	if d.RawLogger != nil {
		d.RawLogger.Log(true, e.Data)
	}
	if c.State != btdevice.StateDeviceReady && !c.TryHeuristics {
		return
	}
	if c.Parser == nil && c.TryHeuristics && vendortable.ClassifyByPacket(e.Data) {
		c.SetVIDPID(vendortable.SwitchProVID, vendortable.SwitchProPID)
		d.classify(c)
	}
	if c.Parser == nil {
		return
	}
	pc := btdevice.NewParserConn(c, d.Transport, d.Scheduler)
	if init, ok := c.Parser.(parser.ReportInitializer); ok {
		init.InitReport(pc)
	}
	if up, ok := c.Parser.(parser.UsageParser); ok && len(c.HIDDescriptor) > 0 {
		hid.WalkReport(c.HIDDescriptor, e.Data, func(f hid.Field) {
			if f.MainTag != hid.MainTagInput {
				return
			}
			up.ParseUsage(pc, f.Globals, f.UsagePage, f.Usage, f.Value)
		})
	} else if rp, ok := c.Parser.(parser.RawParser); ok {
		rp.ParseRaw(pc, e.Data)
	}
	platform.NotifyGamepadData(d.Hooks, toDeviceInfo(c), c.Gamepad)
}

// handleJustWorksRequest derives the simulated SM confirmation value
// using the Sync-pairing PIN tied to HostAddr, re-derives it a second
// time to confirm the computation is stable, then defers the actual
// accept/reject decision to platform.ConfirmPairing (a host may prompt
// interactively; the default is to accept).
func (d *Dispatcher) handleJustWorksRequest(e bthci.SMJustWorksRequest) {
	pin := bthci.SyncPairingPIN(d.HostAddr)
	confirm, err := bthci.DeriveConfirmation(pin, d.HostAddr, e.RemoteAddr)
	if err != nil {
		d.logger.Warn("failed to derive pairing confirmation", "addr", e.RemoteAddr, "err", err)
		return
	}
	again, err := bthci.DeriveConfirmation(pin, d.HostAddr, e.RemoteAddr)
	if err != nil || !bthci.ConfirmationsMatch(confirm, again) {
		d.logger.Warn("pairing confirmation unstable", "addr", e.RemoteAddr)
		return
	}

	dev := platform.DeviceInfo{RemoteAddr: e.RemoteAddr}
	if c, ok := d.Table.Find(e.RemoteAddr); ok {
		dev = toDeviceInfo(c)
	}
	if !platform.ConfirmPairing(d.Hooks, dev) {
		d.logger.Info("pairing rejected by host", "addr", e.RemoteAddr)
		return
	}
	d.logger.Debug("just works pairing confirmed", "addr", e.RemoteAddr)
}

func toDeviceInfo(c *btdevice.Connection) platform.DeviceInfo {
	return platform.DeviceInfo{
		RemoteAddr:     c.RemoteAddr,
		VID:            c.VID,
		PID:            c.PID,
		Name:           c.Name,
		ControllerType: c.ControllerType,
		Seat:           c.Seat,
	}
}
