package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/demo"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo clients",
	Long: `Load five demo clients with a realistic session history.

Safe to run on an existing store: when the demo clients are already
present nothing is changed.`,
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		seeded, err := demo.IsSeeded(store)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if seeded {
			fmt.Println("Demo clients already present, nothing to do.")
			return
		}

		n, err := demo.Seed(store)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🌱 Seeded %d demo clients with session history\n", n)
		fmt.Println("Try 'coach ls' to browse them.")
	},
}
