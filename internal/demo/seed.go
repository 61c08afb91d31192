// Package demo seeds the store with sample clients and session history so
// the app can be tried without entering real data first.
package demo

import (
	"fmt"
	"time"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/models"
)

type seedClient struct {
	req      db.CreateClientRequest
	sessions int
}

var seedClients = []seedClient{
	{
		req: db.CreateClientRequest{
			Name:       "Sarah Weber",
			Email:      "sarah.weber@example.com",
			Age:        34,
			Profession: "Marketing Managerin",
			Situation:  "Führungsrolle übernommen, fühlt sich überfordert",
			Goals:      "Selbstvertrauen aufbauen, Team-Leadership entwickeln",
			Notes:      "Demo-Klient für Testzwecke",
			Topics:     []string{"Leadership", "Selbstvertrauen"},
		},
		sessions: 3,
	},
	{
		req: db.CreateClientRequest{
			Name:       "Michael Keller",
			Email:      "michael.keller@example.com",
			Age:        41,
			Profession: "IT-Consultant",
			Situation:  "Burnout-Vorzeichen, Work-Life-Balance gestört",
			Goals:      "Grenzen setzen, Stress reduzieren",
			Notes:      "Demo-Klient für Testzwecke",
			Topics:     []string{"Work-Life-Balance", "Stressmanagement"},
		},
		sessions: 2,
	},
	{
		req: db.CreateClientRequest{
			Name:       "Anna Zimmermann",
			Email:      "anna.zimmermann@example.com",
			Age:        28,
			Profession: "Projektleiterin",
			Situation:  "Karrierewechsel geplant, unsicher über nächste Schritte",
			Goals:      "Klarheit über Berufsziele, Mut für Veränderung",
			Notes:      "Demo-Klient für Testzwecke",
			Topics:     []string{"Karriereentwicklung", "Zielfindung"},
		},
		sessions: 4,
	},
	{
		req: db.CreateClientRequest{
			Name:       "Thomas Meier",
			Email:      "thomas.meier@example.com",
			Age:        45,
			Profession: "Abteilungsleiter",
			Situation:  "Konflikte im Team, schwierige Mitarbeitergespräche",
			Goals:      "Kommunikation verbessern, Konflikte lösen",
			Notes:      "Demo-Klient für Testzwecke",
			Topics:     []string{"Kommunikation", "Konfliktlösung"},
		},
		sessions: 1,
	},
	{
		req: db.CreateClientRequest{
			Name:       "Lisa Müller",
			Email:      "lisa.mueller@example.com",
			Age:        37,
			Profession: "Selbstständige Beraterin",
			Situation:  "Imposter-Syndrom, zweifelt an eigenen Fähigkeiten",
			Goals:      "Selbstwert stärken, authentisch auftreten",
			Notes:      "Demo-Klient für Testzwecke",
			Topics:     []string{"Selbstwert", "Authentizität"},
		},
		sessions: 5,
	},
}

// Seed inserts the demo clients with their completed session history.
// Returns the number of clients created.
func Seed(store *db.Store) (int, error) {
	for _, sc := range seedClients {
		client, err := store.AddClient(sc.req)
		if err != nil {
			return 0, fmt.Errorf("seed %s: %w", sc.req.Name, err)
		}
		// backfill one completed session per week, newest a week ago
		for i := sc.sessions; i >= 1; i-- {
			start := time.Now().AddDate(0, 0, -7*i)
			end := start.Add(50 * time.Minute)
			duration := 50
			status := models.SessionCompleted
			summary := fmt.Sprintf("Demo-Session %d mit %s", sc.sessions-i+1, client.Name)
			_, err := store.CreateSession(client.ID, &db.SessionOverrides{
				Date:      &start,
				StartTime: &start,
				EndTime:   &end,
				Status:    &status,
				Duration:  &duration,
				Summary:   &summary,
			})
			if err != nil {
				return 0, fmt.Errorf("seed sessions for %s: %w", client.Name, err)
			}
		}
	}
	return len(seedClients), nil
}

// IsSeeded reports whether any of the demo clients already exist, matched
// by name.
func IsSeeded(store *db.Store) (bool, error) {
	clients, err := store.GetClients()
	if err != nil {
		return false, err
	}
	names := make(map[string]bool, len(clients))
	for _, c := range clients {
		names[c.Name] = true
	}
	for _, sc := range seedClients {
		if names[sc.req.Name] {
			return true, nil
		}
	}
	return false, nil
}
