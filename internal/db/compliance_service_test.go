package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensfl/coach-mission-control/internal/models"
)

func TestExportClientData(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)
	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)
	_, err = store.AddNote(session.ID, "observation", "aufmerksam")
	require.NoError(t, err)

	export, err := store.ExportClientData(client.ID)
	require.NoError(t, err)

	assert.Equal(t, client.ID, export.Client.ID)
	assert.False(t, export.ExportDate.IsZero())

	// The bundle must match independent queries at that instant
	sessions, err := store.GetClientSessions(client.ID)
	require.NoError(t, err)
	require.Len(t, export.Sessions, len(sessions))
	assert.Equal(t, sessions[0].ID, export.Sessions[0].ID)

	notes, err := store.GetClientNotes(client.ID)
	require.NoError(t, err)
	require.Len(t, export.Notes, len(notes))

	// The export itself left a data_export audit entry
	records, err := store.GetClientConsentRecords(client.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.ConsentDataExport, records[1].Type)
}

func TestExportTwiceAppendsTwoAuditEntries(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	first, err := store.ExportClientData(client.ID)
	require.NoError(t, err)
	second, err := store.ExportClientData(client.ID)
	require.NoError(t, err)

	// The second bundle contains the first export's audit entry
	assert.Len(t, first.ConsentRecords, 1)
	assert.Len(t, second.ConsentRecords, 2)

	records, err := store.GetClientConsentRecords(client.ID)
	require.NoError(t, err)

	var exports []models.ConsentRecord
	for _, r := range records {
		if r.Type == models.ConsentDataExport {
			exports = append(exports, r)
		}
	}
	require.Len(t, exports, 2)
	assert.NotEqual(t, exports[0].ID, exports[1].ID)
}

func TestExportUnknownClient(t *testing.T) {
	store := newTestStore(t)
	_, err := store.ExportClientData("missing-id")
	assert.True(t, IsNotFound(err))
}

func TestCreateBackup(t *testing.T) {
	store := newTestStore(t)
	a := addTestClient(t, store)
	b, err := store.AddClient(CreateClientRequest{Name: "Anna Zimmermann", Email: "anna@example.com"})
	require.NoError(t, err)
	_, err = store.CreateSession(a.ID, nil)
	require.NoError(t, err)
	_, err = store.CreateSession(b.ID, nil)
	require.NoError(t, err)

	backup, err := store.CreateBackup()
	require.NoError(t, err)

	assert.Equal(t, "1.0", backup.Version)
	assert.Equal(t, 2, backup.TotalClients)
	assert.Equal(t, 2, backup.TotalSessions)
	assert.Len(t, backup.Clients, 2)
	assert.Len(t, backup.Sessions, 2)
	assert.False(t, backup.Created.IsZero())
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	v, err := store.GetSetting("demo_sessions_used")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, store.PutSetting("demo_sessions_used", "3"))
	v, err = store.GetSetting("demo_sessions_used")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	require.NoError(t, store.PutSetting("demo_sessions_used", "4"))
	v, err = store.GetSetting("demo_sessions_used")
	require.NoError(t, err)
	assert.Equal(t, "4", v)
}
