package bthci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/bthci"
)

func TestDeriveConfirmationIsDeterministic(t *testing.T) {
	pin := [6]byte{1, 2, 3, 4, 5, 6}
	host := [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	remote := [6]byte{1, 1, 1, 1, 1, 1}

	a, err := bthci.DeriveConfirmation(pin, host, remote)
	require.NoError(t, err)
	b, err := bthci.DeriveConfirmation(pin, host, remote)
	require.NoError(t, err)

	assert.True(t, bthci.ConfirmationsMatch(a, b))
}

func TestDeriveConfirmationDiffersByRemoteAddr(t *testing.T) {
	pin := [6]byte{1, 2, 3, 4, 5, 6}
	host := [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}

	a, err := bthci.DeriveConfirmation(pin, host, [6]byte{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	b, err := bthci.DeriveConfirmation(pin, host, [6]byte{2, 2, 2, 2, 2, 2})
	require.NoError(t, err)

	assert.False(t, bthci.ConfirmationsMatch(a, b))
}
