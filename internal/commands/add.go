package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/parser"
	"github.com/allensfl/coach-mission-control/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [client description]",
	Short: "Add a new client",
	Long: `Add a new client record with optional metadata.

Modes:
  Interactive: coach add -i (or just 'coach add' with no arguments)
  Quick: coach add "Sarah Weber" -e sarah@example.com
  Smart parsing: coach add "Sarah Weber #leadership,confidence @marketing age:34 email:s.weber@mail.ch"

Smart parsing syntax:
  #topic1,topic2   - Coaching topics (comma-separated or individual)
  @profession      - Profession
  age:34           - Age
  email:a@b.ch     - Email address
  phone:+41791...  - Phone number`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		openStore()
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		// If interactive mode or if there are parsing errors, use TUI
		if interactive {
			runInteractiveAdd(cmd, args)
		} else {
			// Check if we should parse the description for metadata
			description := strings.Join(args, " ")
			parsed := parser.ParseClientInfo(description)

			if len(parsed.Errors) > 0 {
				// There were parsing errors, fall back to interactive with pre-filled data
				fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
				fmt.Println("Opening interactive mode for confirmation...")
				runInteractiveAddWithParsed(cmd, parsed)
			} else {
				// Direct creation with parsed or flag data
				runDirectAdd(cmd, parsed)
			}
		}
	},
}

// runInteractiveAdd starts interactive mode
func runInteractiveAdd(cmd *cobra.Command, args []string) {
	prefilled := make(map[string]string)

	// Pre-fill from arguments if provided
	if len(args) > 0 {
		prefilled["name"] = strings.Join(args, " ")
	}

	fillFromFlags(cmd, prefilled)

	if err := tui.RunAddClientTUI(store, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runInteractiveAddWithParsed starts interactive mode with parsed data
func runInteractiveAddWithParsed(cmd *cobra.Command, parsed parser.ParsedClient) {
	prefilled := make(map[string]string)
	prefilled["name"] = parsed.Name

	if len(parsed.Topics) > 0 {
		prefilled["topics"] = strings.Join(parsed.Topics, ", ")
	}
	if parsed.Profession != "" {
		prefilled["profession"] = parsed.Profession
	}
	if parsed.Age > 0 {
		prefilled["age"] = strconv.Itoa(parsed.Age)
	}
	if parsed.Email != "" {
		prefilled["email"] = parsed.Email
	}
	if parsed.Phone != "" {
		prefilled["phone"] = parsed.Phone
	}

	// Override with any explicit flags
	fillFromFlags(cmd, prefilled)

	if err := tui.RunAddClientTUI(store, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// fillFromFlags copies explicit flags into the prefilled map (flags win)
func fillFromFlags(cmd *cobra.Command, prefilled map[string]string) {
	if email, _ := cmd.Flags().GetString("email"); email != "" {
		prefilled["email"] = email
	}
	if phone, _ := cmd.Flags().GetString("phone"); phone != "" {
		prefilled["phone"] = phone
	}
	if age, _ := cmd.Flags().GetInt("age"); age > 0 {
		prefilled["age"] = strconv.Itoa(age)
	}
	if profession, _ := cmd.Flags().GetString("profession"); profession != "" {
		prefilled["profession"] = profession
	}
	if topics, _ := cmd.Flags().GetStringSlice("topics"); len(topics) > 0 {
		prefilled["topics"] = strings.Join(topics, ", ")
	}
	if situation, _ := cmd.Flags().GetString("situation"); situation != "" {
		prefilled["situation"] = situation
	}
	if goals, _ := cmd.Flags().GetString("goals"); goals != "" {
		prefilled["goals"] = goals
	}
	if note, _ := cmd.Flags().GetString("note"); note != "" {
		prefilled["notes"] = note
	}
}

// runDirectAdd creates the client directly without TUI
func runDirectAdd(cmd *cobra.Command, parsed parser.ParsedClient) {
	// Start with parsed data
	name := parsed.Name
	email := parsed.Email
	phone := parsed.Phone
	age := parsed.Age
	profession := parsed.Profession
	topics := parsed.Topics

	// Override with explicit flags (flags take precedence)
	if flagEmail, _ := cmd.Flags().GetString("email"); flagEmail != "" {
		email = flagEmail
	}
	if flagPhone, _ := cmd.Flags().GetString("phone"); flagPhone != "" {
		phone = flagPhone
	}
	if flagAge, _ := cmd.Flags().GetInt("age"); flagAge > 0 {
		age = flagAge
	}
	if flagProfession, _ := cmd.Flags().GetString("profession"); flagProfession != "" {
		profession = flagProfession
	}
	if flagTopics, _ := cmd.Flags().GetStringSlice("topics"); len(flagTopics) > 0 {
		topics = flagTopics
	}

	situation, _ := cmd.Flags().GetString("situation")
	goals, _ := cmd.Flags().GetString("goals")
	note, _ := cmd.Flags().GetString("note")

	req := db.CreateClientRequest{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Age:        age,
		Profession: profession,
		Situation:  situation,
		Goals:      goals,
		Notes:      note,
		Topics:     topics,
	}

	client, err := store.AddClient(req)
	if err != nil {
		fmt.Printf("Error adding client: %v\n", err)
		return
	}

	// Success message
	fmt.Printf("✅ Added client %s (ID: %s)\n", client.Name, client.ID)
	if client.Email != "" {
		fmt.Printf("  Email: %s\n", client.Email)
	}
	if client.Phone != "" {
		fmt.Printf("  Phone: %s\n", client.Phone)
	}
	if client.Profession != "" {
		fmt.Printf("  Profession: %s\n", client.Profession)
	}
	if len(client.Topics) > 0 {
		var topicNames []string
		for _, topic := range client.Topics {
			topicNames = append(topicNames, topic.Name)
		}
		fmt.Printf("  Topics: %s\n", strings.Join(topicNames, ", "))
	}
	fmt.Printf("  Consent documented: %s\n", client.ConsentDate.Format("02/01/2006"))
}

func init() {
	// Add flags to the add command
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("email", "e", "", "Email address")
	addCmd.Flags().StringP("phone", "", "", "Phone number")
	addCmd.Flags().IntP("age", "", 0, "Age")
	addCmd.Flags().StringP("profession", "p", "", "Profession")
	addCmd.Flags().StringSliceP("topics", "t", []string{}, "Comma-separated coaching topics")
	addCmd.Flags().StringP("situation", "", "", "Current situation")
	addCmd.Flags().StringP("goals", "", "", "Coaching goals")
	addCmd.Flags().StringP("note", "", "", "Additional notes")
}
