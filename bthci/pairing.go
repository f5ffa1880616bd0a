package bthci

import (
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/hkdf"
)

// confirmationLen is the size of the simulated SM pairing confirmation
// value; real LE Secure Connections uses a 128-bit AES-CMAC output, this
// stands in for it at the same width.
const confirmationLen = 16

// DeriveConfirmation computes the simulated "Just Works" pairing
// confirmation value for a (PIN, host address, remote address) triple.
// It has no bearing on real Bluetooth security; it only gives the
// simulated SM flow something deterministic to compare on both sides of
// a pairing exchange, grounded on the KDF shape a real SM implementation
// would use (derive a fixed-width value from shared secret material).
func DeriveConfirmation(pin [6]byte, hostAddr, remoteAddr [6]byte) ([confirmationLen]byte, error) {
	info := append(append([]byte{}, hostAddr[:]...), remoteAddr[:]...)
	r := hkdf.New(sha256.New, pin[:], nil, info)
	var out [confirmationLen]byte
	if _, err := io.ReadFull(r, out[:]); err != nil {
		return out, err
	}
	return out, nil
}

// ConfirmationsMatch compares two confirmation values in constant time,
// the way a real SM implementation must to avoid leaking timing
// information about a partial match.
func ConfirmationsMatch(a, b [confirmationLen]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
