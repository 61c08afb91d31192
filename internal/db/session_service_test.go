package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensfl/coach-mission-control/internal/models"
)

func TestCreateSession(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, client.ID, session.ClientID)
	assert.Equal(t, models.SessionActive, session.Status)
	assert.Nil(t, session.EndTime)
	assert.Nil(t, session.Duration)
	assert.False(t, session.StartTime.IsZero())
}

func TestCreateSessionUnknownClient(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateSession("missing-id", nil)
	assert.True(t, IsNotFound(err))
}

func TestEndSessionDurationRounding(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	// A session that started 125 seconds ago: 125/60 = 2.08 -> 2 minutes
	start := time.Now().Add(-125 * time.Second)
	session, err := store.CreateSession(client.ID, &SessionOverrides{StartTime: &start})
	require.NoError(t, err)

	ended, err := store.EndSession(session.ID, "Zielklärung", "gute Sitzung")
	require.NoError(t, err)

	require.NotNil(t, ended.Duration)
	assert.Equal(t, 2, *ended.Duration)
	assert.Equal(t, models.SessionCompleted, ended.Status)
	require.NotNil(t, ended.EndTime)
	assert.Equal(t, "Zielklärung", ended.Summary)

	// Owning client's stats reflect exactly this one completed session
	updated, err := store.GetClient(client.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalSessions)
	require.NotNil(t, updated.LastSessionDate)
	assert.WithinDuration(t, session.Date, *updated.LastSessionDate, time.Second)
}

func TestEndSessionTwiceRejected(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)

	first, err := store.EndSession(session.ID, "", "")
	require.NoError(t, err)

	// Re-ending must not recompute duration or end time
	_, err = store.EndSession(session.ID, "zweiter Versuch", "")
	assert.True(t, IsConflict(err))

	again, err := store.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, *first.Duration, *again.Duration)
	assert.Equal(t, first.EndTime.Unix(), again.EndTime.Unix())
	assert.Equal(t, "", again.Summary)
}

func TestEndSessionNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.EndSession("missing-id", "", "")
	assert.True(t, IsNotFound(err))
}

func TestClientStatsAcrossSessions(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	// Two completed sessions on different dates plus one still active
	early := time.Now().AddDate(0, 0, -14)
	late := time.Now().AddDate(0, 0, -2)
	completed := models.SessionCompleted
	dur := 60

	_, err := store.CreateSession(client.ID, &SessionOverrides{
		Date: &early, StartTime: &early, Status: &completed, Duration: &dur,
	})
	require.NoError(t, err)
	_, err = store.CreateSession(client.ID, &SessionOverrides{
		Date: &late, StartTime: &late, Status: &completed, Duration: &dur,
	})
	require.NoError(t, err)
	_, err = store.CreateSession(client.ID, nil)
	require.NoError(t, err)

	updated, err := store.GetClient(client.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalSessions, "active sessions do not count")
	require.NotNil(t, updated.LastSessionDate)
	assert.WithinDuration(t, late, *updated.LastSessionDate, time.Second)

	// Recomputation is idempotent
	require.NoError(t, store.RecomputeClientStats(client.ID))
	again, err := store.GetClient(client.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.TotalSessions)
}

func TestSessionLogsOrdered(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)
	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)

	_, err = store.AppendAIResponse(session.ID, "GT1", "erste Antwort")
	require.NoError(t, err)
	_, err = store.AppendAIResponse(session.ID, "SF1", "zweite Antwort")
	require.NoError(t, err)
	_, err = store.AppendTranscript(session.ID, "Guten Tag", "microphone")
	require.NoError(t, err)

	got, err := store.GetSession(session.ID)
	require.NoError(t, err)
	require.Len(t, got.AIResponses, 2)
	assert.Equal(t, 1, got.AIResponses[0].Seq)
	assert.Equal(t, "GT1", got.AIResponses[0].Prompt)
	assert.Equal(t, 2, got.AIResponses[1].Seq)
	require.Len(t, got.Transcripts, 1)
	assert.Equal(t, "Guten Tag", got.Transcripts[0].Text)
}

func TestAppendToCompletedSessionRejected(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)
	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)
	_, err = store.EndSession(session.ID, "", "")
	require.NoError(t, err)

	_, err = store.AppendAIResponse(session.ID, "GT1", "zu spät")
	assert.True(t, IsConflict(err))
	_, err = store.AppendTranscript(session.ID, "zu spät", "microphone")
	assert.True(t, IsConflict(err))
}

func TestAddNoteDerivesClient(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)
	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)

	note, err := store.AddNote(session.ID, "homework", "Tagebuch führen")
	require.NoError(t, err)
	assert.Equal(t, client.ID, note.ClientID)
	assert.Equal(t, "homework", note.Type)

	notes, err := store.GetSessionNotes(session.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestGetActiveSession(t *testing.T) {
	store := newTestStore(t)
	client := addTestClient(t, store)

	active, err := store.GetActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)

	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)

	active, err = store.GetActiveSession()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)

	_, err = store.EndSession(session.ID, "", "")
	require.NoError(t, err)

	active, err = store.GetActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)
}
