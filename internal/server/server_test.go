package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/relay"
)

func newTestServer(t *testing.T) (*Server, *db.Store) {
	t.Helper()
	store, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, relay.NewBoard(0), nil, nil), store
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMessageRelayRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/messages", `{"sender":"coach","text":"Hallo"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var posted relay.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posted))
	assert.Equal(t, 1, posted.Seq)

	w = doJSON(t, s, http.MethodGet, "/api/messages?after=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Messages []relay.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Messages, 1)
	assert.Equal(t, "Hallo", list.Messages[0].Text)

	// polling past the last seq returns an empty array, not null
	w = doJSON(t, s, http.MethodGet, "/api/messages?after=1", "")
	assert.JSONEq(t, `{"messages":[]}`, w.Body.String())

	w = doJSON(t, s, http.MethodDelete, "/api/messages", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPostMessageValidation(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/messages", `{"sender":"coach"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskUsesFallbackAndLogsToSession(t *testing.T) {
	s, store := newTestServer(t)

	client, err := store.AddClient(db.CreateClientRequest{Name: "Sarah Weber", Email: "sarah@example.com"})
	require.NoError(t, err)
	session, err := store.CreateSession(client.ID, nil)
	require.NoError(t, err)

	body := `{"prompt":"Frage zur Wunderfrage","session_id":"` + session.ID + `"}`
	w := doJSON(t, s, http.MethodPost, "/api/ask", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Answer string `json:"answer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Answer, "Wunder")

	loaded, err := store.GetSession(session.ID)
	require.NoError(t, err)
	require.Len(t, loaded.AIResponses, 1)
	assert.Equal(t, resp.Answer, loaded.AIResponses[0].Response)
}

func TestAskUnknownSession(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/ask", `{"prompt":"Hallo","session_id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTranscribeNotConfigured(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/transcribe", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPromptEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/prompts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Prompts []struct {
			Key string `json:"key"`
		} `json:"prompts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Prompts, 8)

	w = doJSON(t, s, http.MethodGet, "/api/prompts/GT1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/prompts/XX9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientEndpoints(t *testing.T) {
	s, store := newTestServer(t)

	client, err := store.AddClient(db.CreateClientRequest{
		Name:   "Michael Keller",
		Email:  "michael@example.com",
		Topics: []string{"Stressmanagement"},
	})
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodGet, "/api/clients", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Michael Keller")

	w = doJSON(t, s, http.MethodGet, "/api/clients?q=stress", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Michael Keller")

	w = doJSON(t, s, http.MethodGet, "/api/clients/"+client.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/clients/"+client.ID+"/sessions", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/clients/"+client.ID+"/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "export_date")

	w = doJSON(t, s, http.MethodGet, "/api/clients/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
