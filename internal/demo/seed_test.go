package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensfl/coach-mission-control/internal/db"
)

func TestSeed(t *testing.T) {
	store, err := db.OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	n, err := Seed(store)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	clients, err := store.GetClients()
	require.NoError(t, err)
	require.Len(t, clients, 5)

	byName := make(map[string]int)
	for _, c := range clients {
		byName[c.Name] = c.TotalSessions
	}
	assert.Equal(t, 3, byName["Sarah Weber"])
	assert.Equal(t, 5, byName["Lisa Müller"])

	seeded, err := IsSeeded(store)
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestIsSeededEmptyStore(t *testing.T) {
	store, err := db.OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	seeded, err := IsSeeded(store)
	require.NoError(t, err)
	assert.False(t, seeded)
}
