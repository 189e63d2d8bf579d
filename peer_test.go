package gocuda

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/gocuda/cudart"
)

func TestPeerAccessPattern(t *testing.T) {
	rt := newFakeRuntime(3)
	rt.peers[[2]int{0, 1}] = true
	rt.peers[[2]int{1, 0}] = true
	rt.peers[[2]int{2, 0}] = true // asymmetric on purpose
	m := NewWithRuntime(rt)

	pattern, err := m.PeerAccessPattern()
	require.NoError(t, err)
	require.Len(t, pattern, 3)
	for i, row := range pattern {
		require.Len(t, row, 3)
		require.True(t, row[i], "diagonal must be true for device %d", i)
	}
	require.True(t, pattern[0][1])
	require.True(t, pattern[1][0])
	require.True(t, pattern[2][0])
	require.False(t, pattern[0][2])
	require.False(t, pattern[1][2])
}

func TestPeerAccessPatternEmpty(t *testing.T) {
	m := NewWithRuntime(newFakeRuntime(0))
	pattern, err := m.PeerAccessPattern()
	require.NoError(t, err)
	require.Empty(t, pattern)
}

func TestPeerAccessPatternSingleDevice(t *testing.T) {
	m := NewWithRuntime(newFakeRuntime(1))
	pattern, err := m.PeerAccessPattern()
	require.NoError(t, err)
	require.Equal(t, [][]bool{{true}}, pattern)
}

func TestPeerAccessPatternQueryFailureIsAdvisory(t *testing.T) {
	rt := newFakeRuntime(2)
	rt.peerStatus = cudart.ErrorNotSupported
	m := NewWithRuntime(rt)

	// The one non-fatal failure path in the layer: the caller gets an error
	// and falls back to staged copies.
	interceptFatal(t)
	pattern, err := m.PeerAccessPattern()
	require.Error(t, err)
	require.Nil(t, pattern)
	require.ErrorContains(t, err, "operation not supported")
}

func TestEnablePeerAccess(t *testing.T) {
	rt := newFakeRuntime(2)
	m := NewWithRuntime(rt)
	m.SetCurrentDevice(1)

	m.EnablePeerAccess(0, 1)
	require.True(t, rt.peers[[2]int{0, 1}])
	// Current device restored after the guarded switch.
	require.Equal(t, 1, m.CurrentDevice())

	// Enabling twice is tolerated.
	m.EnablePeerAccess(0, 1)
}
