package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <client-id>",
	Short: "Edit an existing client",
	Long: `Edit an existing client in interactive mode.

Opens the same interface as 'coach add' but with all fields pre-populated
with the current client data. You can modify any field and save changes.

Usage:
  coach edit 3f2a...    - Edit the client with that ID`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		client, err := resolveClient(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Create prefilled data from the existing record
		prefilled := make(map[string]string)
		prefilled["name"] = client.Name
		prefilled["email"] = client.Email
		prefilled["phone"] = client.Phone
		prefilled["profession"] = client.Profession
		prefilled["situation"] = client.Situation
		prefilled["goals"] = client.Goals
		prefilled["notes"] = client.Notes

		if client.Age > 0 {
			prefilled["age"] = strconv.Itoa(client.Age)
		}

		if len(client.Topics) > 0 {
			var topicNames []string
			for _, topic := range client.Topics {
				topicNames = append(topicNames, topic.Name)
			}
			prefilled["topics"] = strings.Join(topicNames, ", ")
		}

		// Launch edit TUI
		if err := tui.RunEditClientTUI(store, client.ID, prefilled); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
