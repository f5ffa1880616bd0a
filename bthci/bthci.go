// Package bthci defines the simulated Bluetooth transport boundary
// spec.md §6 calls "external, out of scope": the HCI, L2CAP, SDP, GAP,
// and SM event surface the dispatcher consumes, and the PSMs/PIN-code
// rules that surface names concretely. It is adapted from
// usbip/usbip.go's wire-struct-plus-Write(io.Writer) idiom and
// ReadExactly helper, repurposed from USB-IP device export to a
// Bluetooth controller's event stream; there is no real radio behind
// it, only the Go shapes a platform-specific HCI binding would fill in.
package bthci

// Well-known L2CAP PSMs, per spec.md §6.
const (
	PSMHIDControl   uint16 = 0x11
	PSMHIDInterrupt uint16 = 0x13
)

// Event is implemented by every concrete HCI/L2CAP/SDP/GAP/SM event the
// dispatcher's single-threaded loop consumes, tagged so a type switch
// (the same "dispatch by packet type" idiom internal/server/usb/server.go
// uses in processSubmit) can route each one without reflection.
type Event interface {
	eventKind() string
}

// HCI events (spec.md §6 "Downward" list).
type (
	HCIConnectionRequest struct {
		RemoteAddr    [6]byte
		ClassOfDevice uint32
	}
	HCIConnectionComplete struct {
		RemoteAddr       [6]byte
		ConnectionHandle uint16
		Status           uint8
	}
	HCIPinCodeRequest struct {
		RemoteAddr [6]byte
	}
	HCIAuthenticationComplete struct {
		ConnectionHandle uint16
		Status           uint8
	}
	HCIRemoteNameRequestComplete struct {
		RemoteAddr [6]byte
		Name       string
		Status     uint8
	}
	HCIInquiryResult struct {
		RemoteAddr    [6]byte
		ClassOfDevice uint32
	}
	HCICommandComplete struct {
		Opcode        uint16
		ReturnParams  []byte
		NumHCIPackets uint8
	}
	HCIEncryptionChange struct {
		ConnectionHandle uint16
		Enabled          bool
	}
)

// L2CAP events.
type (
	L2CAPIncomingConnection struct {
		RemoteAddr [6]byte
		PSM        uint16
		CID        uint16
	}
	L2CAPChannelOpened struct {
		CID     uint16
		PSM     uint16
		Success bool
	}
	L2CAPChannelClosed struct {
		CID uint16
	}
	L2CAPCanSendNow struct {
		CID uint16
	}
	L2CAPDataPacket struct {
		CID  uint16
		Data []byte
	}
)

// SDP events.
type (
	SDPQueryAttributeByte struct {
		RemoteAddr [6]byte
		AttributeID uint16
		Byte        byte
	}
	SDPQueryComplete struct {
		RemoteAddr [6]byte
		Status     uint8
	}
)

// SM events.
type (
	SMJustWorksRequest struct {
		RemoteAddr [6]byte
	}
	SMPairingComplete struct {
		RemoteAddr [6]byte
		Success    bool
	}
)

// GAP events.
type (
	GAPInquiryResult struct {
		RemoteAddr    [6]byte
		ClassOfDevice uint32
		Name          string
	}
	GAPAdvertisingReport struct {
		RemoteAddr [6]byte
		Data       []byte
	}
)

func (HCIConnectionRequest) eventKind() string          { return "hci.connection_request" }
func (HCIConnectionComplete) eventKind() string         { return "hci.connection_complete" }
func (HCIPinCodeRequest) eventKind() string             { return "hci.pin_code_request" }
func (HCIAuthenticationComplete) eventKind() string     { return "hci.authentication_complete" }
func (HCIRemoteNameRequestComplete) eventKind() string  { return "hci.remote_name_request_complete" }
func (HCIInquiryResult) eventKind() string              { return "hci.inquiry_result" }
func (HCICommandComplete) eventKind() string            { return "hci.command_complete" }
func (HCIEncryptionChange) eventKind() string           { return "hci.encryption_change" }
func (L2CAPIncomingConnection) eventKind() string       { return "l2cap.incoming_connection" }
func (L2CAPChannelOpened) eventKind() string            { return "l2cap.channel_opened" }
func (L2CAPChannelClosed) eventKind() string            { return "l2cap.channel_closed" }
func (L2CAPCanSendNow) eventKind() string               { return "l2cap.can_send_now" }
func (L2CAPDataPacket) eventKind() string               { return "l2cap.data_packet" }
func (SDPQueryAttributeByte) eventKind() string         { return "sdp.query_attribute_byte" }
func (SDPQueryComplete) eventKind() string              { return "sdp.query_complete" }
func (SMJustWorksRequest) eventKind() string            { return "sm.just_works_request" }
func (SMPairingComplete) eventKind() string             { return "sm.pairing_complete" }
func (GAPInquiryResult) eventKind() string              { return "gap.inquiry_result" }
func (GAPAdvertisingReport) eventKind() string          { return "gap.advertising_report" }

// Link is the simulated per-connection L2CAP surface the dispatcher
// sends output reports through. A real platform binding implements this
// over its native Bluetooth stack; bthci only defines the shape.
type Link interface {
	// Send writes payload to cid. ErrBusy means the channel cannot
	// accept data right now; the caller must queue and wait for a
	// CanSendNow event, per spec.md §4.6.
	Send(cid uint16, payload []byte) error
	// RequestCanSendNow asks the stack to emit L2CAPCanSendNow for cid
	// once it can accept more data.
	RequestCanSendNow(cid uint16)
}

// ErrBusy is returned by Link.Send when the L2CAP channel cannot accept
// data right now.
var ErrBusy = errBusy{}

type errBusy struct{}

func (errBusy) Error() string { return "bthci: channel busy" }
