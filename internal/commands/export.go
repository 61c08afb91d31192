package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <client-id>",
	Short: "Export all data stored about one client",
	Long: `Export everything stored about a client as a JSON bundle: the record
itself, all sessions with AI logs and transcripts, notes, and the consent
history. The export is documented in the consent log.

Examples:
  coach export 3f2a...
  coach export 3f2a... --out weber_export.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		client, err := resolveClient(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		export, err := store.ExportClientData(client.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("export_%s_%s.json", shortID(export.Client.ID), time.Now().Format("2006-01-02"))
		}

		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling JSON: %v\n", err)
			return
		}
		if err := os.WriteFile(out, data, 0o600); err != nil {
			fmt.Printf("Error writing %s: %v\n", out, err)
			return
		}

		fmt.Printf("📦 Exported %s: %d sessions, %d notes, %d consent records\n",
			export.Client.Name, len(export.Sessions), len(export.Notes), len(export.ConsentRecords))
		fmt.Printf("Written to %s\n", out)
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a full backup of the record store",
	Long: `Write a snapshot of all clients, sessions and notes to a JSON file.

Example:
  coach backup --out coach_backup.json`,
	Run: func(cmd *cobra.Command, args []string) {
		openStore()

		backup, err := store.CreateBackup()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("coach_backup_%s.json", time.Now().Format("2006-01-02"))
		}

		data, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling JSON: %v\n", err)
			return
		}
		if err := os.WriteFile(out, data, 0o600); err != nil {
			fmt.Printf("Error writing %s: %v\n", out, err)
			return
		}

		fmt.Printf("💾 Backup written to %s (%d clients, %d sessions)\n",
			out, backup.TotalClients, backup.TotalSessions)
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file (default export_<id>_<date>.json)")
	backupCmd.Flags().StringP("out", "o", "", "Output file (default coach_backup_<date>.json)")
}
