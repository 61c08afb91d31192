package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for coach",
	Long:  `Display detailed help for all coach commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 ██████╗ ██████╗  █████╗  ██████╗██╗  ██╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝██║  ██║
██║     ██║   ██║███████║██║     ███████║
██║     ██║   ██║██╔══██║██║     ██╔══██║
╚██████╗╚██████╔╝██║  ██║╚██████╗██║  ██║
 ╚═════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝

coach - client records + session cockpit for coaches

COMMANDS:

  add <description>       Create a new client with smart parsing
    -e, --email           Email address
    --phone               Phone number
    --age                 Age
    -p, --profession      Profession
    -t, --topics          Comma-separated coaching topics
    --situation           Current situation
    --goals               Coaching goals
    --note                Additional notes
    -i, --interactive     Force the interactive wizard

    Smart syntax:
      #topic1,topic2  Coaching topics
      @profession     Profession
      age:34          Age
      email:a@b.ch    Email
      phone:+4179...  Phone

    Example:
      coach add "Sarah Weber #leadership,confidence @marketing age:34"

  ls                      Browse clients with interactive UI
    --no-ui               Plain table output
    --json                JSON output

    Quick actions:
      ↑/↓           Navigate clients
      ←/→           Page
      /             Search
      esc/q         Quit

  edit <id>               Edit a client in the wizard
  delete <id>             Delete a client and all their records
    -r, --reason          Reason recorded in the consent log
    -y, --yes             Skip confirmation

  search <query>          Search clients across all fields
    -s, --status          Filter by status
    -t, --topic           Filter by topic
    --json                JSON output

  start <client-id>       Start a coaching session
    --no-ui               Start without interactive timer
  stop                    End the running session
    --summary             Short session summary
  status                  Show current session and demo limit
  sessions <client-id>    List a client's sessions

  note <session-id> <text>  Add a note to a session
    -t, --type              manual, observation, intervention, homework
  notes <client-id>         List all notes for a client

  ask <question>          Ask the coaching assistant
    --session             Log the exchange to a session
  supervise <situation>   Get supervision advice
  transcribe <file>       Transcribe a session recording
    --session             Attach transcript to a session
    --lang                Spoken language (default de)

  prompts [category]      List the coaching prompt library
  prompt <key>            Show one prompt in full

  export <client-id>      Export everything stored about a client
  backup                  Write a full JSON backup
  report                  Weekly session hours per client

  serve                   Run the local HTTP API
    -a, --addr            Listen address (default :8080)
  seed                    Load the demo clients
  help                    Show this help

Set OPENAI_API_KEY for live AI answers, ASSEMBLYAI_API_KEY for
transcription, and COACH_LICENSE to lift the demo session limit.

`)
}
