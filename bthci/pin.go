package bthci

// DeleteStoredLinkKeys drops every stored link key, the HCI operation
// spec.md §7's "delete stored keys" property triggers on init. There is
// no real key store behind this simulated transport; a platform binding
// would issue HCI_Delete_Stored_Link_Key(BD_ADDR=0, all=1) here.
func DeleteStoredLinkKeys() {}

// ReverseAddr byte-reverses a Bluetooth address, the transform spec.md
// §6's Wii Remote PIN-code rule applies.
func ReverseAddr(addr [6]byte) [6]byte {
	var out [6]byte
	for i := range addr {
		out[i] = addr[5-i]
	}
	return out
}

// SyncPairingPIN is the PIN for Wii Remote "press Sync button" pairing:
// the host's own address, reversed. This is the core's default, per
// spec.md §6.
func SyncPairingPIN(hostAddr [6]byte) [6]byte {
	return ReverseAddr(hostAddr)
}

// ButtonPairingPIN is the PIN for Wii Remote 1+2-button pairing: the
// remote's own address, reversed.
func ButtonPairingPIN(remoteAddr [6]byte) [6]byte {
	return ReverseAddr(remoteAddr)
}
