package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateLifecycle(t *testing.T) {
	s := NewState()
	assert.Equal(t, PhaseIdle, s.Snapshot().Phase)

	assert.True(t, s.Begin())
	snap := s.Snapshot()
	assert.Equal(t, PhaseLoading, snap.Phase)
	assert.True(t, snap.Loading)

	// one submission at a time
	assert.False(t, s.Begin())

	s.Succeed("4Nd1mY5ZC6v8bPQqqEXAMPLEaddressBase58xxxxx")
	snap = s.Snapshot()
	assert.Equal(t, PhaseSucceeded, snap.Phase)
	assert.False(t, snap.Loading)
	assert.Equal(t, "4Nd1mY5ZC6v8bPQqqEXAMPLEaddressBase58xxxxx", snap.MintAddress)
	assert.Empty(t, snap.Error)

	// a new submission may start after completion and clears the old result
	assert.True(t, s.Begin())
	snap = s.Snapshot()
	assert.Empty(t, snap.MintAddress)

	s.Fail("SendTransaction: blockhash not found")
	snap = s.Snapshot()
	assert.Equal(t, PhaseFailed, snap.Phase)
	assert.False(t, snap.Loading)
	assert.Equal(t, "SendTransaction: blockhash not found", snap.Error)
	assert.Empty(t, snap.MintAddress)
}

func TestFailPreconditionKeepsLoadingPhase(t *testing.T) {
	s := NewState()
	assert.True(t, s.Begin())

	// a validation failure from another request must not release the guard
	s.FailPrecondition("missing fields")
	snap := s.Snapshot()
	assert.Equal(t, PhaseLoading, snap.Phase)
	assert.True(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.False(t, s.Begin(), "guard must still hold after a precondition failure")

	// outside a run it behaves like Fail
	s.Succeed("4Nd1mY5ZC6v8bPQqqEXAMPLEaddressBase58xxxxx")
	s.FailPrecondition("wallet not connected")
	snap = s.Snapshot()
	assert.Equal(t, PhaseFailed, snap.Phase)
	assert.Equal(t, "wallet not connected", snap.Error)
	assert.Empty(t, snap.MintAddress)
}
