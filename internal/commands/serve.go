package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/ai"
	"github.com/allensfl/coach-mission-control/internal/relay"
	"github.com/allensfl/coach-mission-control/internal/server"
	"github.com/allensfl/coach-mission-control/internal/transcribe"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP API",
	Long: `Run the local HTTP API used by the browser cockpit.

Serves the client records, session relay, prompt library, assistant and
transcription endpoints on the given address. The AI and transcription
endpoints pick up OPENAI_API_KEY and ASSEMBLYAI_API_KEY when set.

Example:
  coach serve --addr :8080`,
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		board := relay.NewBoard(0)
		aiClient := ai.NewClientFromEnv()

		// Transcription is optional, the endpoint answers 503 without a key
		transcriber, err := transcribe.NewFromEnv(transcribe.DefaultLanguage)
		if err != nil {
			transcriber = nil
		}

		srv := server.New(store, board, aiClient, transcriber)

		addr, _ := cmd.Flags().GetString("addr")
		fmt.Printf("🌐 Serving coach API on %s\n", addr)
		if aiClient == nil {
			fmt.Println("   AI assistant: built-in fallback (set OPENAI_API_KEY for live answers)")
		}
		if transcriber == nil {
			fmt.Println("   Transcription: disabled (set ASSEMBLYAI_API_KEY to enable)")
		}

		if err := srv.Run(addr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("addr", "a", ":8080", "Listen address")
}
