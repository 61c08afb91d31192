package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/models"
	"github.com/allensfl/coach-mission-control/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List clients",
	Long:    "List clients with an interactive browser, or as a plain table with --no-ui",
	Run: func(cmd *cobra.Command, args []string) {
		openStore()
		clients, err := store.GetClients()
		if err != nil {
			fmt.Printf("Error fetching clients: %v\n", err)
			return
		}

		if len(clients) == 0 {
			fmt.Println("No clients found. Use 'coach add \"Client Name\"' to create your first client.")
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if jsonOutput {
			renderClientsJSON(clients)
			return
		}
		if !noUI {
			if err := tui.RunListTUI(clients); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		renderClientsTable(clients)
	},
}

// renderClientsTable outputs clients as a formatted table
func renderClientsTable(clients []models.Client) {
	fmt.Printf("%-10s %-24s %-8s %-9s %-12s %s\n", "ID", "NAME", "STATUS", "SESSIONS", "LAST", "TOPICS")
	fmt.Println(strings.Repeat("-", 80))

	for _, client := range clients {
		var topicNames []string
		for _, topic := range client.Topics {
			topicNames = append(topicNames, topic.Name)
		}
		topicsStr := strings.Join(topicNames, ",")

		name := client.Name
		if len(name) > 22 {
			name = name[:19] + "..."
		}

		last := "-"
		if client.LastSessionDate != nil {
			last = client.LastSessionDate.Format("02/01/2006")
		}

		fmt.Printf("%-10s %-24s %-8s %-9d %-12s %s\n",
			shortID(client.ID),
			name,
			client.Status,
			client.TotalSessions,
			last,
			topicsStr)
	}
	fmt.Printf("\n%d clients\n", len(clients))
}

// shortID trims a UUID to its first block for table display
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// renderClientsJSON outputs clients as JSON
func renderClientsJSON(clients []models.Client) {
	type jsonClient struct {
		ID            string     `json:"id"`
		Name          string     `json:"name"`
		Email         string     `json:"email"`
		Status        string     `json:"status"`
		Profession    string     `json:"profession,omitempty"`
		Topics        []string   `json:"topics"`
		TotalSessions int        `json:"total_sessions"`
		LastSession   *time.Time `json:"last_session,omitempty"`
		CreatedAt     time.Time  `json:"created_at"`
	}

	out := make([]jsonClient, 0, len(clients))
	for _, client := range clients {
		var topicNames []string
		for _, topic := range client.Topics {
			topicNames = append(topicNames, topic.Name)
		}
		out = append(out, jsonClient{
			ID:            client.ID,
			Name:          client.Name,
			Email:         client.Email,
			Status:        client.Status,
			Profession:    client.Profession,
			Topics:        topicNames,
			TotalSessions: client.TotalSessions,
			LastSession:   client.LastSessionDate,
			CreatedAt:     client.CreatedAt,
		})
	}
	printJSON(out)
}

func init() {
	listCmd.Flags().Bool("no-ui", false, "Plain table output")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
