package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/ai"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the coaching assistant",
	Long: `Ask the AI coaching assistant a question.

Uses the OpenAI API when OPENAI_API_KEY is set, otherwise answers from the
built-in method library. With --session the exchange is logged to that
session's AI response log.

Examples:
  coach ask "Wie formuliere ich die Wunderfrage?"
  coach ask "GT1: Anliegen klären" --session 9b1c...`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		question := strings.Join(args, " ")

		client := ai.NewClientFromEnv()
		answer := ai.Respond(context.Background(), client, question)

		fmt.Printf("🤖 %s\n", answer)

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			return
		}

		openStore()
		if _, err := store.AppendAIResponse(sessionID, question, answer); err != nil {
			fmt.Printf("⚠️  Could not log to session: %v\n", err)
			return
		}
		fmt.Printf("📎 Logged to session %s\n", shortID(sessionID))
	},
}

var superviseCmd = &cobra.Command{
	Use:   "supervise <situation>",
	Short: "Get supervision advice for a coaching situation",
	Long: `Describe a coaching situation and get supervision advice.

The input is triaged into a category (NOTFALL, PROZESS, METHODIK,
WIDERSTAND or BERATUNG) and answered with the matching guidance.

Example:
  coach supervise "Klient wirkt blockiert und weicht allen Fragen aus"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category, advice := ai.Supervise(strings.Join(args, " "))
		fmt.Printf("Category: %s\n\n%s\n", category, advice)
	},
}

func init() {
	askCmd.Flags().StringP("session", "", "", "Session ID to log the exchange to")
}
