package commands

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the weekly session report",
	Long: `Show coaching hours per client for the current calendar week, grouped by day.

Only completed sessions count. Days without sessions are hidden unless they
fall on a weekday.

Example output:
  Client              Mon  Tue  Wed  Thu  Fri  Total
  Sarah Weber           1    -    1    -    -      2
  Michael Keller        -    1    -    -    1      2
  Total                 1    1    1    0    1      4`,
	Run: func(cmd *cobra.Command, args []string) {
		openStore()
		if err := generateWeeklyReport(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

// generateWeeklyReport creates and displays the weekly session report
func generateWeeklyReport() error {
	// Current calendar week (Monday to Sunday)
	now := time.Now()
	weekStart := getWeekStart(now)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second) // End of Sunday

	sessions, err := store.GetSessionsInRange(weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to get sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions completed this week.")
		return nil
	}

	// Group session hours by client and day
	clientDayHours := make(map[string]map[time.Weekday]float64)
	clientNames := make(map[string]string)

	for _, session := range sessions {
		if session.Duration == nil {
			continue
		}

		name, ok := clientNames[session.ClientID]
		if !ok {
			name = shortID(session.ClientID)
			if client, err := store.GetClient(session.ClientID); err == nil {
				name = client.Name
			}
			clientNames[session.ClientID] = name
		}

		weekday := session.StartTime.Weekday()
		if clientDayHours[name] == nil {
			clientDayHours[name] = make(map[time.Weekday]float64)
		}
		clientDayHours[name][weekday] += float64(*session.Duration) / 60.0
	}

	// Calculate which days have any sessions
	activeDays := make(map[time.Weekday]bool)
	for _, dayHours := range clientDayHours {
		for day, hours := range dayHours {
			if hours > 0 {
				activeDays[day] = true
			}
		}
	}

	displayReport(clientDayHours, activeDays, weekStart)
	return nil
}

// getWeekStart returns the start of the calendar week (Monday) for the given time
func getWeekStart(t time.Time) time.Time {
	weekday := t.Weekday()
	daysFromMonday := int(weekday - time.Monday)
	if weekday == time.Sunday {
		daysFromMonday = 6 // Sunday is 6 days from Monday
	}

	weekStart := t.AddDate(0, 0, -daysFromMonday)
	// Set to start of day
	return time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
}

// displayReport outputs the formatted weekly table
func displayReport(clientDayHours map[string]map[time.Weekday]float64, activeDays map[time.Weekday]bool, weekStart time.Time) {
	var names []string
	for name := range clientDayHours {
		names = append(names, name)
	}
	sort.Strings(names)

	// Determine which days to show (active days plus any weekday)
	var daysToShow []time.Weekday
	dayNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}

	for i, weekday := range weekdays {
		if activeDays[weekday] || (i < 5 && len(activeDays) > 0) {
			daysToShow = append(daysToShow, weekday)
		}
	}

	// Calculate column widths
	maxNameWidth := 20
	for _, name := range names {
		if len(name) > maxNameWidth {
			maxNameWidth = len(name)
		}
	}
	if maxNameWidth > 40 {
		maxNameWidth = 40 // Cap at 40 chars
	}

	dayColumnWidth := 5
	totalColumnWidth := 7

	// Print header
	fmt.Printf("%-*s", maxNameWidth, "Client")
	for _, weekday := range daysToShow {
		dayIndex := (int(weekday) - 1 + 7) % 7 // Convert to 0-6 with Monday=0
		fmt.Printf("  %*s", dayColumnWidth-2, dayNames[dayIndex])
	}
	fmt.Printf("  %*s\n", totalColumnWidth-2, "Total")

	printReportSeparator(maxNameWidth, len(daysToShow), dayColumnWidth, totalColumnWidth)

	// Print client rows
	weekTotals := make(map[time.Weekday]float64)
	grandTotal := 0.0

	for _, name := range names {
		dayHours := clientDayHours[name]

		displayName := name
		if len(displayName) > maxNameWidth {
			displayName = displayName[:maxNameWidth-3] + "..."
		}

		fmt.Printf("%-*s", maxNameWidth, displayName)

		clientTotal := 0.0
		for _, weekday := range daysToShow {
			hours := dayHours[weekday]
			if hours > 0 {
				roundedHours := math.Ceil(hours)
				fmt.Printf("  %*d", dayColumnWidth-2, int(roundedHours))
				weekTotals[weekday] += roundedHours
				clientTotal += roundedHours
			} else {
				fmt.Printf("  %*s", dayColumnWidth-2, "-")
			}
		}

		fmt.Printf("  %*d\n", totalColumnWidth-2, int(clientTotal))
		grandTotal += clientTotal
	}

	printReportSeparator(maxNameWidth, len(daysToShow), dayColumnWidth, totalColumnWidth)

	fmt.Printf("%-*s", maxNameWidth, "Total")
	for _, weekday := range daysToShow {
		total := weekTotals[weekday]
		if total > 0 {
			fmt.Printf("  %*d", dayColumnWidth-2, int(total))
		} else {
			fmt.Printf("  %*s", dayColumnWidth-2, "0")
		}
	}
	fmt.Printf("  %*d\n", totalColumnWidth-2, int(grandTotal))

	fmt.Printf("\nWeek of %s to %s\n",
		weekStart.Format("Jan 2"),
		weekStart.AddDate(0, 0, 6).Format("Jan 2, 2006"))
}

func printReportSeparator(nameWidth, days, dayWidth, totalWidth int) {
	fmt.Print(strings.Repeat("-", nameWidth))
	for i := 0; i < days; i++ {
		fmt.Print("  " + strings.Repeat("-", dayWidth-2))
	}
	fmt.Print("  " + strings.Repeat("-", totalWidth-2))
	fmt.Println()
}
