package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/gate"
	"github.com/allensfl/coach-mission-control/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start <client-id>",
	Short: "Start a coaching session",
	Long: `Start a coaching session for a client. Opens the interactive timer by default.

Examples:
  coach start 3f2a...          # Session with interactive timer UI
  coach start 3f2a... --no-ui  # Session without UI, stop with 'coach stop'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		client, err := resolveClient(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := gate.New(store).Allow(); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		session, err := store.CreateSession(client.ID, nil)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Check if --no-ui flag is set
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			// Simple non-interactive start
			fmt.Printf("⏱️  Started session with %s\n", client.Name)
			fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
		} else {
			// Interactive timer UI
			if err := tui.RunTimerTUI(store, session, client); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the running coaching session",
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		session, err := store.GetActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No active coaching session")
			return
		}

		summary, _ := cmd.Flags().GetString("summary")
		notes, _ := cmd.Flags().GetString("notes")
		ended, err := store.EndSession(session.ID, summary, notes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		client, err := store.GetClient(ended.ClientID)
		name := ended.ClientID
		if err == nil {
			name = client.Name
		}

		fmt.Printf("⏹️  Session with %s completed\n", name)
		if ended.Duration != nil {
			duration := time.Duration(*ended.Duration) * time.Minute
			fmt.Printf("Session duration: %s\n", formatDuration(duration))
		}
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session status",
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		session, err := store.GetActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if session == nil {
			fmt.Println("No active coaching session")
			printRemaining()
			return
		}

		name := session.ClientID
		if client, err := store.GetClient(session.ClientID); err == nil {
			name = client.Name
		}

		elapsed := time.Since(session.StartTime)
		fmt.Printf("⏱️  Session running with %s\n", name)
		fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
		printRemaining()
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions <client-id>",
	Short: "List a client's coaching sessions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		client, err := resolveClient(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := store.GetClientSessions(client.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Printf("No sessions recorded for %s yet.\n", client.Name)
			return
		}

		fmt.Printf("Sessions with %s (%d):\n\n", client.Name, len(sessions))
		fmt.Printf("%-10s %-12s %-10s %-9s %s\n", "ID", "DATE", "STATUS", "DURATION", "SUMMARY")
		for _, session := range sessions {
			duration := "-"
			if session.Duration != nil {
				duration = fmt.Sprintf("%dm", *session.Duration)
			}
			summary := session.Summary
			if len(summary) > 34 {
				summary = summary[:31] + "..."
			}
			fmt.Printf("%-10s %-12s %-10s %-9s %s\n",
				shortID(session.ID),
				session.Date.Format("02/01/2006"),
				session.Status,
				duration,
				summary)
		}
	},
}

// printRemaining shows the demo limit state below the status output
func printRemaining() {
	g := gate.New(store)
	if g.Licensed() {
		return
	}
	left, err := g.Remaining()
	if err != nil {
		return
	}
	fmt.Printf("Demo sessions remaining: %d\n", left)
}

func init() {
	// Add --no-ui flag to start command
	startCmd.Flags().Bool("no-ui", false, "Start session without interactive timer")
	stopCmd.Flags().StringP("summary", "", "", "Short session summary")
	stopCmd.Flags().StringP("notes", "", "", "Closing notes for the session")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
