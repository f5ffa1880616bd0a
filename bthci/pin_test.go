package bthci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alia5/bluepad32go/bthci"
)

func TestReverseAddr(t *testing.T) {
	addr := [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	want := [6]byte{0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	assert.Equal(t, want, bthci.ReverseAddr(addr))
}

func TestSyncPairingPINUsesHostAddr(t *testing.T) {
	host := [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	assert.Equal(t, bthci.ReverseAddr(host), bthci.SyncPairingPIN(host))
}

func TestButtonPairingPINUsesRemoteAddr(t *testing.T) {
	remote := [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}
	assert.Equal(t, bthci.ReverseAddr(remote), bthci.ButtonPairingPIN(remote))
}
