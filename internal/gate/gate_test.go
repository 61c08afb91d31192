package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensfl/coach-mission-control/internal/db"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	store, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestGateCountsUp(t *testing.T) {
	g := newTestGate(t)

	n, err := g.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, g.Allow())
	require.NoError(t, g.Allow())

	n, err = g.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	left, err := g.Remaining()
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit-2, left)
}

func TestGateBlocksAtLimit(t *testing.T) {
	g := newTestGate(t)

	for i := 0; i < DefaultLimit; i++ {
		require.NoError(t, g.Allow())
	}

	err := g.Allow()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo limit")

	left, err := g.Remaining()
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestGateLicenseBypass(t *testing.T) {
	g := newTestGate(t)
	t.Setenv("COACH_LICENSE", "demo-license-key")

	for i := 0; i < DefaultLimit+3; i++ {
		require.NoError(t, g.Allow())
	}

	left, err := g.Remaining()
	require.NoError(t, err)
	assert.Equal(t, -1, left)

	// counter still tracks usage
	n, err := g.Count()
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit+3, n)
}

func TestGateReset(t *testing.T) {
	g := newTestGate(t)
	require.NoError(t, g.Allow())
	require.NoError(t, g.Reset())

	n, err := g.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}
