package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/prompts"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts [category]",
	Short: "List the coaching prompt library",
	Long: `List the built-in coaching prompts, optionally filtered by category.

Categories: Geissler Triadisch, Einzelberatung, Systemisches Coaching, Kommunikation

Examples:
  coach prompts
  coach prompts "Einzelberatung"
  coach prompts --json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category := ""
		if len(args) > 0 {
			category = args[0]
		}

		library := prompts.ByCategory(category)
		if len(library) == 0 {
			fmt.Printf("No prompts in category '%s'. Known categories: %s\n",
				category, strings.Join(prompts.Categories(), ", "))
			return
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			printJSON(library)
			return
		}

		fmt.Printf("%-5s %-24s %-32s %s\n", "KEY", "CATEGORY", "TITLE", "PHASE")
		fmt.Println(strings.Repeat("-", 80))
		for _, p := range library {
			fmt.Printf("%-5s %-24s %-32s %s\n", p.Key, p.Category, p.Title, p.Phase)
		}
		fmt.Printf("\n%d prompts. Use 'coach prompt <key>' for the full text.\n", len(library))
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt <key>",
	Short: "Show one coaching prompt in full",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := strings.ToUpper(args[0])
		p, ok := prompts.Get(key)
		if !ok {
			fmt.Printf("Error: no prompt with key '%s'. Try 'coach prompts' for the list.\n", key)
			return
		}

		fmt.Printf("📋 %s · %s (%s)\n", p.Key, p.Title, p.Category)
		if p.Description != "" {
			fmt.Printf("%s\n", p.Description)
		}
		fmt.Println()
		fmt.Println(p.Content)
	},
}

func init() {
	promptsCmd.Flags().Bool("json", false, "Output as JSON")
}
