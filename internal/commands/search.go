package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search clients across all fields",
	Long: `Search clients with case-insensitive substring matching across name,
email, phone, profession, situation and goals. Combine with filters to
narrow the result set.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()
		query := strings.Join(args, " ")

		status, _ := cmd.Flags().GetString("status")
		topic, _ := cmd.Flags().GetString("topic")
		orderBy, _ := cmd.Flags().GetString("order")
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		opts := db.ClientQueryOptions{
			Status:  status,
			Topic:   topic,
			OrderBy: orderBy,
			Limit:   limit,
		}

		clients, err := store.SearchClients(query, opts)
		if err != nil {
			fmt.Printf("Error searching clients: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			renderClientsJSON(clients)
			return
		}
		renderSearchTable(clients, query)
	},
}

// renderSearchTable outputs search results as a formatted table
func renderSearchTable(clients []models.Client, query string) {
	fmt.Printf("Search results for '%s' (%d found):\n", query, len(clients))
	if len(clients) == 0 {
		fmt.Println("No clients found matching your search.")
		return
	}

	fmt.Println()
	renderClientsTable(clients)
}

// printJSON renders any value as indented JSON on stdout
func printJSON(v any) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

func init() {
	searchCmd.Flags().StringP("status", "s", "", "Filter by status (active/pending_erasure)")
	searchCmd.Flags().StringP("topic", "t", "", "Filter by coaching topic")
	searchCmd.Flags().StringP("order", "o", "", "Order by (e.g., 'name ASC', 'created_at DESC')")
	searchCmd.Flags().IntP("limit", "l", 0, "Limit number of results")
	searchCmd.Flags().Bool("json", false, "Output as JSON")
}
