package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensfl/coach-mission-control/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func addTestClient(t *testing.T, store *Store) *models.Client {
	t.Helper()
	client, err := store.AddClient(CreateClientRequest{
		Name:       "Sarah Weber",
		Email:      "sarah.weber@example.com",
		Age:        34,
		Profession: "Marketing Managerin",
		Topics:     []string{"Leadership", "Selbstvertrauen"},
	})
	require.NoError(t, err)
	return client
}

func TestAddClient(t *testing.T) {
	store := newTestStore(t)

	client := addTestClient(t, store)

	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "active", client.Status)
	assert.True(t, client.ConsentGiven)
	assert.False(t, client.ConsentDate.IsZero())
	assert.Zero(t, client.TotalSessions)
	assert.Nil(t, client.LastSessionDate)
	assert.Len(t, client.Topics, 2)

	// An initial_consent audit entry must exist
	records, err := store.GetClientConsentRecords(client.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.ConsentInitial, records[0].Type)
	assert.Equal(t, client.ID, records[0].ClientID)
}

func TestAddClientUniqueIDs(t *testing.T) {
	store := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		client, err := store.AddClient(CreateClientRequest{Name: "C", Email: "c@example.com"})
		require.NoError(t, err)
		assert.False(t, seen[client.ID], "duplicate id %s", client.ID)
		seen[client.ID] = true
	}
}

func TestAddClientValidation(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddClient(CreateClientRequest{Name: "", Email: "x@y.com"})
	assert.True(t, IsValidation(err))

	_, err = store.AddClient(CreateClientRequest{Name: "   ", Email: "x@y.com"})
	assert.True(t, IsValidation(err))

	_, err = store.AddClient(CreateClientRequest{Name: "X", Email: "  "})
	assert.True(t, IsValidation(err))
}

func TestUpdateClient(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	before := client.UpdatedAt
	time.Sleep(10 * time.Millisecond)

	goals := "Team-Leadership entwickeln"
	updated, err := store.UpdateClient(client.ID, ClientUpdate{Goals: &goals})
	require.NoError(t, err)

	assert.Equal(t, goals, updated.Goals)
	// Untouched fields stay as they were
	assert.Equal(t, client.Name, updated.Name)
	assert.Equal(t, client.Email, updated.Email)
	assert.Equal(t, client.Age, updated.Age)
	assert.True(t, updated.UpdatedAt.After(before), "UpdatedAt must increase")
}

func TestUpdateClientNotFound(t *testing.T) {
	store := newTestStore(t)

	name := "Nobody"
	_, err := store.UpdateClient("missing-id", ClientUpdate{Name: &name})
	assert.True(t, IsNotFound(err))
}

func TestUpdateClientTopicsReplaced(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	topics := []string{"Stressmanagement"}
	updated, err := store.UpdateClient(client.ID, ClientUpdate{Topics: &topics})
	require.NoError(t, err)
	require.Len(t, updated.Topics, 1)
	assert.Equal(t, "Stressmanagement", updated.Topics[0].Name)
}

func TestDeleteClientCascades(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)
	_, err = store.AddNote(session.ID, "observation", "erste Sitzung")
	require.NoError(t, err)
	_, err = store.AppendAIResponse(session.ID, "GT1", "Antwort")
	require.NoError(t, err)

	require.NoError(t, store.DeleteClient(client.ID, "client_request"))

	_, err = store.GetClient(client.ID)
	assert.True(t, IsNotFound(err))
	_, err = store.GetSession(session.ID)
	assert.True(t, IsNotFound(err))
	notes, err := store.GetClientNotes(client.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	// The audit trail survives erasure and documents it
	records, err := store.GetClientConsentRecords(client.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.ConsentInitial, records[0].Type)
	assert.Equal(t, models.ConsentDataDeletion, records[1].Type)
	assert.Equal(t, "client_request", records[1].Reason)
}

func TestDeleteClientNotFound(t *testing.T) {
	store := newTestStore(t)
	err := store.DeleteClient("missing-id", "client_request")
	assert.True(t, IsNotFound(err))
}

func TestSearchClients(t *testing.T) {
	store := newTestStore(t)
	addTestClient(t, store)
	_, err := store.AddClient(CreateClientRequest{
		Name:       "Michael Keller",
		Email:      "michael@example.com",
		Profession: "IT-Consultant",
		Topics:     []string{"Work-Life-Balance"},
	})
	require.NoError(t, err)

	found, err := store.SearchClients("keller", ClientQueryOptions{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Michael Keller", found[0].Name)

	found, err = store.SearchClients("", ClientQueryOptions{Topic: "Leadership"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Sarah Weber", found[0].Name)
}

func TestSearchClientsMatchesTopicNames(t *testing.T) {
	store := newTestStore(t)
	addTestClient(t, store)
	_, err := store.AddClient(CreateClientRequest{
		Name:   "Michael Keller",
		Email:  "michael@example.com",
		Topics: []string{"Work-Life-Balance", "Stressmanagement"},
	})
	require.NoError(t, err)

	// Substring of a topic name, not of any text field
	found, err := store.SearchClients("stress", ClientQueryOptions{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Michael Keller", found[0].Name)

	// A client matching on several topics still appears once
	found, err = store.SearchClients("a", ClientQueryOptions{})
	require.NoError(t, err)
	names := make(map[string]int)
	for _, c := range found {
		names[c.Name]++
	}
	assert.Equal(t, 1, names["Michael Keller"])

	// Query and topic filter combine
	found, err = store.SearchClients("keller", ClientQueryOptions{Topic: "Stressmanagement"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Michael Keller", found[0].Name)
}

func TestClientCacheServesReads(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	// Cached read returns the same record
	got, err := store.GetClient(client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)

	// A fresh store over the same rows would miss the entry; here the
	// cache is warm and eviction must take effect after delete.
	require.NoError(t, store.DeleteClient(client.ID, "test"))
	_, err = store.GetClient(client.ID)
	assert.True(t, IsNotFound(err))
}
