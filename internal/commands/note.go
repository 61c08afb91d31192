package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <session-id> <text>",
	Short: "Add a note to a session",
	Long: `Add a note to a coaching session.

Note types: manual (default), observation, intervention, homework

Example:
  coach note 9b1c... "Client wants to revisit the team conflict next time" --type homework`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		noteType, _ := cmd.Flags().GetString("type")
		content := strings.Join(args[1:], " ")

		note, err := store.AddNote(args[0], noteType, content)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📝 Note added to session %s (%s)\n", shortID(note.SessionID), note.Type)
	},
}

var notesCmd = &cobra.Command{
	Use:   "notes <client-id>",
	Short: "List all notes for a client",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		client, err := resolveClient(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		notes, err := store.GetClientNotes(client.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(notes) == 0 {
			fmt.Printf("No notes for %s yet.\n", client.Name)
			return
		}

		fmt.Printf("Notes for %s (%d):\n\n", client.Name, len(notes))
		for _, note := range notes {
			fmt.Printf("📝 %s · %s · session %s\n", note.CreatedAt.Format("02/01/2006 15:04"), note.Type, shortID(note.SessionID))
			fmt.Printf("   %s\n\n", note.Content)
		}
	},
}

func init() {
	noteCmd.Flags().StringP("type", "t", "manual", "Note type: manual, observation, intervention, homework")
}
