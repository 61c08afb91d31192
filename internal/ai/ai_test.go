package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackKeywordRouting(t *testing.T) {
	assert.Contains(t, Fallback("Wir haben mit GT1 das Anliegen erkundet"), "Anliegen")
	assert.Contains(t, Fallback("Die Wunderfrage hat viel bewegt"), "Wunder-Zustand")
	assert.Contains(t, Fallback("Welche Stärken bringe ich mit?"), "Ressourcen")
	assert.Contains(t, Fallback("Da ist ein innerer Widerstand"), "positive Absicht")
	assert.Contains(t, Fallback("irgendwas anderes"), "Offenheit und Tiefe")
}

func TestSupervisorCategories(t *testing.T) {
	cases := map[string]string{
		"Coachee äußert Suizid-Gedanken":      "NOTFALL",
		"Ich bin im Prozess stuck":            "PROZESS",
		"Welche Technik passt hier?":          "METHODIK",
		"Der Coachee ist blockiert":           "WIDERSTAND",
		"Allgemeine Frage zum weiteren Fokus": "PROZESS",
		"Allgemeine Frage":                    "BERATUNG",
	}
	for input, want := range cases {
		got, advice := Supervise(input)
		assert.Equal(t, want, got, input)
		assert.NotEmpty(t, advice)
	}
}

func TestClientAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  Eine gute Frage.  "}}]}`))
	}))
	defer srv.Close()

	client := &Client{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		Model:      "gpt-4o-mini",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}

	answer, err := client.Ask(context.Background(), "Wie starte ich eine Session?")
	require.NoError(t, err)
	assert.Equal(t, "Eine gute Frage.", answer)
}

func TestClientAskAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &Client{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	}

	_, err := client.Ask(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestRespondFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &Client{APIKey: "k", BaseURL: srv.URL, HTTPClient: srv.Client()}
	answer := Respond(context.Background(), client, "Frage zu Ressourcen")
	assert.Contains(t, answer, "Ressourcen")

	// nil client goes straight to the fallback
	answer = Respond(context.Background(), nil, "Wunderfrage")
	assert.Contains(t, answer, "Wunder-Zustand")
}
