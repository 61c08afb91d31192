package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "A CLI client record and session manager for coaches",
	Long: `coach is a command-line tool for coaches: manage client records, run and
track coaching sessions, keep notes, and export or back up everything on request.`,
}

// store is shared by all commands. openStore initializes it lazily so
// commands that never touch the database stay cheap.
var store *db.Store

// openStore opens the record store and exits on failure
func openStore() *db.Store {
	if store != nil {
		return store
	}
	s, err := db.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open record store: %v\n", err)
		os.Exit(1)
	}
	store = s
	return store
}

// resolveClient accepts a full client ID or a unique ID prefix
func resolveClient(ref string) (*models.Client, error) {
	if client, err := store.GetClient(ref); err == nil {
		return client, nil
	}

	clients, err := store.GetClients()
	if err != nil {
		return nil, err
	}

	var match *models.Client
	for i := range clients {
		if strings.HasPrefix(clients[i].ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("client ID prefix '%s' is ambiguous", ref)
			}
			match = &clients[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("client '%s' not found", ref)
	}
	return match, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(superviseCmd)
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
