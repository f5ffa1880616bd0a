//go:build linux

package bthci

import "golang.org/x/sys/unix"

// btProtoHCI is Linux's BTPROTO_HCI (bluetooth.h); golang.org/x/sys/unix
// doesn't export it since it's bluetooth-specific rather than a generic
// socket constant.
const btProtoHCI = 1

// OpenRawHCISocket opens a raw HCI socket, the same primitive a real
// platform binding's Link implementation would build Send/
// RequestCanSendNow on top of. bthci's own simulated Link never calls
// this; it exists only as the seam a real binding fills in.
func OpenRawHCISocket() (int, error) {
	return unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW, btProtoHCI)
}
