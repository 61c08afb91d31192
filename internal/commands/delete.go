package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <client-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a client and all their records",
	Long: `Delete a client plus every session, note and AI log that belongs to them.

The deletion is documented in the consent log before the records are
removed, so the audit trail shows who was erased, when and why.

Examples:
  coach delete 3f2a...
  coach delete 3f2a... --reason "client requested erasure" --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		client, err := resolveClient(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("⚠️  This removes %s and all %d sessions permanently.\n", client.Name, client.TotalSessions)
			fmt.Print("Type 'yes' to confirm: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("❌ Deletion cancelled.")
				return
			}
		}

		reason, _ := cmd.Flags().GetString("reason")
		if err := store.DeleteClient(client.ID, reason); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted client %s and all related records.\n", client.Name)
	},
}

func init() {
	deleteCmd.Flags().StringP("reason", "r", "client_request", "Reason recorded in the consent log")
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
