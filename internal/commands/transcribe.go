package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a session recording",
	Long: `Transcribe an audio recording via AssemblyAI.

Requires ASSEMBLYAI_API_KEY. The language defaults to German; with
--session the transcript is attached to that session.

Examples:
  coach transcribe sitzung.mp3
  coach transcribe sitzung.mp3 --session 9b1c... --lang en`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lang, _ := cmd.Flags().GetString("lang")

		transcriber, err := transcribe.NewFromEnv(lang)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		fmt.Printf("🎙️  Transcribing %s...\n", args[0])
		text, err := transcriber.TranscribeFile(context.Background(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println(text)

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			return
		}

		openStore()
		if _, err := store.AppendTranscript(sessionID, text, "assemblyai"); err != nil {
			fmt.Printf("⚠️  Could not attach to session: %v\n", err)
			return
		}
		fmt.Printf("📎 Transcript attached to session %s\n", shortID(sessionID))
	},
}

func init() {
	transcribeCmd.Flags().StringP("session", "", "", "Session ID to attach the transcript to")
	transcribeCmd.Flags().StringP("lang", "", transcribe.DefaultLanguage, "Spoken language code")
}
