package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/parser"
)

// Step represents the current step in the wizard
type Step int

const (
	StepName Step = iota
	StepEmail
	StepPhone
	StepAge
	StepProfession
	StepTopics
	StepSituation
	StepGoals
	StepNotes
	StepSave
	StepComplete
)

// AddClientModel represents the TUI model for adding clients
type AddClientModel struct {
	store       *db.Store
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// Client data
	name       string
	email      string
	phone      string
	age        string
	profession string
	topics     []string
	situation  string
	goals      string
	notes      string

	// Pre-filled data from flags or smart syntax parsing
	prefilled map[string]string

	// Edit mode
	isEditMode   bool
	editClientID string

	// State
	err               error
	completed         bool
	cancelled         bool
	validationErr     string
	createdClientID   string
	createdClientName string

	// Shimmer effect for field labels
	shimmer *ShimmerState

	// Save confirmation modal
	showSaveModal   bool
	saveModalChoice bool // true for Yes, false for No
}

// NewAddClientModel creates a new add client TUI model
func NewAddClientModel(store *db.Store, prefilled map[string]string) AddClientModel {
	inputs := make([]textinput.Model, 9)

	// Apply color theme to all inputs
	for i := 0; i < 9; i++ {
		inputs[i] = textinput.New()
		inputs[i].Width = 60

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Name input
	inputs[StepName].Placeholder = "Enter client name... (required)"
	inputs[StepName].Focus()
	inputs[StepName].CharLimit = 120

	// Email input
	inputs[StepEmail].Placeholder = "Email address (required)"
	inputs[StepEmail].CharLimit = 120

	// Phone input
	inputs[StepPhone].Placeholder = "Phone like +41 79 123 45 67 (Enter to skip)"
	inputs[StepPhone].CharLimit = 30

	// Age input
	inputs[StepAge].Placeholder = "Age (Enter to skip)"
	inputs[StepAge].CharLimit = 3

	// Profession input
	inputs[StepProfession].Placeholder = "Profession (Enter to skip)"
	inputs[StepProfession].CharLimit = 80

	// Topics input
	inputs[StepTopics].Placeholder = "Add topic (Enter to skip, 'q' when done adding topics)"
	inputs[StepTopics].CharLimit = 50

	// Situation input
	inputs[StepSituation].Placeholder = "Current situation (Enter to skip)"
	inputs[StepSituation].CharLimit = 500

	// Goals input
	inputs[StepGoals].Placeholder = "Coaching goals (Enter to skip)"
	inputs[StepGoals].CharLimit = 500

	// Notes input
	inputs[StepNotes].Placeholder = "Additional notes (Enter to skip)"
	inputs[StepNotes].CharLimit = 500

	shimmerConfig := DefaultShimmerConfig()
	shimmer := NewShimmerState(shimmerConfig)

	m := AddClientModel{
		store:       store,
		currentStep: StepName,
		inputs:      inputs,
		prefilled:   prefilled,
		topics:      []string{},
		shimmer:     shimmer,
	}

	// Set pre-filled values
	if name, ok := prefilled["name"]; ok {
		m.inputs[StepName].SetValue(name)
		m.name = name
	}
	if email, ok := prefilled["email"]; ok {
		m.inputs[StepEmail].SetValue(email)
		m.email = email
	}
	if phone, ok := prefilled["phone"]; ok {
		m.inputs[StepPhone].SetValue(phone)
		m.phone = phone
	}
	if age, ok := prefilled["age"]; ok {
		m.inputs[StepAge].SetValue(age)
		m.age = age
	}
	if profession, ok := prefilled["profession"]; ok {
		m.inputs[StepProfession].SetValue(profession)
		m.profession = profession
	}
	if topics, ok := prefilled["topics"]; ok && topics != "" {
		for _, topic := range strings.Split(topics, ",") {
			topic = strings.TrimSpace(topic)
			if topic != "" {
				m.topics = append(m.topics, topic)
			}
		}
	}
	if situation, ok := prefilled["situation"]; ok {
		m.inputs[StepSituation].SetValue(situation)
		m.situation = situation
	}
	if goals, ok := prefilled["goals"]; ok {
		m.inputs[StepGoals].SetValue(goals)
		m.goals = goals
	}
	if notes, ok := prefilled["notes"]; ok {
		m.inputs[StepNotes].SetValue(notes)
		m.notes = notes
	}

	return m
}

// NewEditClientModel creates a new edit client TUI model with existing client data
func NewEditClientModel(store *db.Store, clientID string, prefilled map[string]string) AddClientModel {
	m := NewAddClientModel(store, prefilled)

	m.isEditMode = true
	m.editClientID = clientID

	return m
}

// Init initializes the model
func (m AddClientModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if m.shimmer.ShouldTick() {
		cmds = append(cmds, tea.Tick(m.shimmer.GetTickInterval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		}))
	}

	return tea.Batch(cmds...)
}

// shimmerTickMsg is sent when shimmer should update
type shimmerTickMsg struct{}

// Update handles messages
func (m AddClientModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.shimmer.ShouldTick() {
			return m, tea.Tick(m.shimmer.GetTickInterval(), func(time.Time) tea.Msg {
				return shimmerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update input field widths based on available space
		maxInputWidth := (m.width * 2 / 3) - 10
		if maxInputWidth < 30 {
			maxInputWidth = 30
		}
		if maxInputWidth > 80 {
			maxInputWidth = 80
		}

		for i := range m.inputs {
			m.inputs[i].Width = maxInputWidth
		}

		return m, nil

	case tea.KeyMsg:
		// Handle save modal keys if modal is shown
		if m.showSaveModal {
			switch msg.String() {
			case "left", "right":
				m.saveModalChoice = !m.saveModalChoice
				return m, nil
			case "y", "Y":
				m.saveModalChoice = true
				return m.handleSaveChoice()
			case "n", "N":
				m.saveModalChoice = false
				return m.handleSaveChoice()
			case "enter":
				return m.handleSaveChoice()
			case "esc":
				m.showSaveModal = false
				return m, nil
			case "ctrl+c":
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			// If on Save step, go back to previous step instead of showing modal
			if m.currentStep == StepSave {
				return m.prevStep()
			}

			if !m.hasChanges() {
				m.cancelled = true
				return m, tea.Quit
			}

			// Show save confirmation modal for unsaved changes
			m.showSaveModal = true
			m.saveModalChoice = true // Default to "Yes"
			return m, nil

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			// Don't allow skipping required fields
			if m.currentStep == StepName && strings.TrimSpace(m.name) == "" {
				m.validationErr = "Client name is required"
				return m, nil
			}
			if m.currentStep == StepEmail && strings.TrimSpace(m.email) == "" {
				m.validationErr = "Email is required"
				return m, nil
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	// Update the current input (only for input steps, not Save step)
	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)

		m.updateCurrentField()
	}

	return m, cmd
}

// View renders the TUI
func (m AddClientModel) View() string {
	if m.cancelled {
		return "" // Don't show anything, let TUI handle exit message
	}

	if m.completed {
		return "" // Don't show anything, let TUI handle exit message
	}

	// Handle very small terminals
	if m.width < 85 {
		return m.renderSmallLayout()
	}

	// Calculate adaptive column widths
	rightWidth := (m.width * 30) / 100 // Start with 30%
	if rightWidth < 50 {
		maxRightWidth := (m.width * 70) / 100
		if maxRightWidth >= 50 {
			rightWidth = 50
		} else {
			return m.renderSmallLayout()
		}
	}

	leftWidth := m.width - rightWidth - 4 // Account for margins

	if leftWidth < 30 {
		leftWidth = 30
		rightWidth = m.width - leftWidth - 4
	}

	leftStyle := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	rightStyle := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 2).
		Padding(1)

	// Left side: Step-by-step wizard
	left := m.renderWizard()

	// Right side: Live preview
	right := m.renderPreview()

	leftPanel := leftStyle.Render(left)
	rightPanel := rightStyle.Render(right)

	mainView := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		" ",
		rightPanel,
	)

	if m.showSaveModal {
		return m.renderSaveModal(mainView)
	}

	return mainView
}

// renderWizard renders the step-by-step wizard
func (m AddClientModel) renderWizard() string {
	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)

	titleText := "📝 Create New Client"
	if m.isEditMode {
		titleText = fmt.Sprintf("📝 Edit Client %s", m.name)
	}

	b.WriteString(titleStyle.Render(titleText))
	b.WriteString("\n\n")

	// Current step indicator with dynamic coloring (with fallback)
	stepLabels := []string{"Name", "Email", "Phone", "Age", "Profession", "Topics", "Situation", "Goals", "Notes", "Save"}

	supportsColor := m.terminalSupportsColor()

	if supportsColor {
		// Define color codes for direct terminal output
		purpleColor := "\033[38;2;167;139;250m"         // ColorAccentBright - current step (purple)
		greenColor := "\033[38;2;34;197;94m"            // ColorSuccess - completed steps (green)
		darkGreyPurpleColor := "\033[38;2;109;115;131m" // ColorDisabledText - skipped steps
		lightGreyColor := "\033[38;2;177;184;199m"      // ColorSecondaryText - future steps
		resetColor := "\033[0m"

		for i, label := range stepLabels {
			hasValue := m.stepHasValue(Step(i))

			// Add extra spacing before Save step to distinguish it
			if Step(i) == StepSave {
				b.WriteString("\n")
			}

			if Step(i) == m.currentStep {
				// Current step - purple arrow
				if Step(i) == StepSave {
					b.WriteString(fmt.Sprintf("%s▶ 💾 %s%s\n", purpleColor, label, resetColor))
				} else {
					b.WriteString(fmt.Sprintf("%s▶ %s%s\n", purpleColor, label, resetColor))
				}
			} else if m.isEditMode && hasValue {
				// Edit mode: all populated steps show as completed (green)
				b.WriteString(fmt.Sprintf("%s✓ %s%s\n", greenColor, label, resetColor))
			} else if Step(i) < m.currentStep {
				if hasValue {
					// Completed with value - green checkmark and text
					b.WriteString(fmt.Sprintf("%s✓ %s%s\n", greenColor, label, resetColor))
				} else {
					// Skipped - no icon, darker grey-purple text
					b.WriteString(fmt.Sprintf("%s  %s%s\n", darkGreyPurpleColor, label, resetColor))
				}
			} else {
				// Future step - lighter default grey (or grey in edit mode if no value)
				color := lightGreyColor
				if m.isEditMode && !hasValue {
					color = darkGreyPurpleColor
				}

				if Step(i) == StepSave {
					b.WriteString(fmt.Sprintf("%s  💾 %s%s\n", color, label, resetColor))
				} else {
					b.WriteString(fmt.Sprintf("%s  %s%s\n", color, label, resetColor))
				}
			}
		}
	} else {
		// Fallback for terminals that don't support colors - plain text
		for i, label := range stepLabels {
			hasValue := m.stepHasValue(Step(i))

			if Step(i) == StepSave {
				b.WriteString("\n")
			}

			if Step(i) == m.currentStep {
				if Step(i) == StepSave {
					b.WriteString(fmt.Sprintf("▶ 💾 %s\n", label))
				} else {
					b.WriteString(fmt.Sprintf("▶ %s\n", label))
				}
			} else if m.isEditMode && hasValue {
				b.WriteString(fmt.Sprintf("✓ %s\n", label))
			} else if Step(i) < m.currentStep {
				if hasValue {
					b.WriteString(fmt.Sprintf("✓ %s\n", label))
				} else {
					b.WriteString(fmt.Sprintf("  %s\n", label))
				}
			} else {
				if Step(i) == StepSave {
					b.WriteString(fmt.Sprintf("  💾 %s\n", label))
				} else {
					b.WriteString(fmt.Sprintf("  %s\n", label))
				}
			}
		}
	}
	b.WriteString("\n")

	// Current input field - simple text without styling boxes
	switch m.currentStep {
	case StepName:
		b.WriteString("👤 Client Name\n")
		b.WriteString(m.inputs[StepName].View())

	case StepEmail:
		b.WriteString("📧 Email\n")
		b.WriteString(m.inputs[StepEmail].View())

	case StepPhone:
		b.WriteString("📞 Phone\n")
		b.WriteString(m.inputs[StepPhone].View())

	case StepAge:
		b.WriteString("🎂 Age\n")
		b.WriteString(m.inputs[StepAge].View())

	case StepProfession:
		b.WriteString("💼 Profession\n")
		b.WriteString(m.inputs[StepProfession].View())

	case StepTopics:
		b.WriteString("🏷️  Topics\n")
		if len(m.topics) > 0 {
			b.WriteString(fmt.Sprintf("Added: %s\n", strings.Join(m.topics, ", ")))
		}
		b.WriteString(m.inputs[StepTopics].View())

	case StepSituation:
		b.WriteString("🧭 Situation\n")
		b.WriteString(m.inputs[StepSituation].View())

	case StepGoals:
		b.WriteString("🎯 Goals\n")
		b.WriteString(m.inputs[StepGoals].View())

	case StepNotes:
		b.WriteString("📝 Notes\n")
		b.WriteString(m.inputs[StepNotes].View())

	case StepSave:
		b.WriteString("💾 Save Client\n")
		b.WriteString("Press Enter to save client")
	}

	// Show validation error if any
	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString(errorStyle.Render("❌ " + m.validationErr))
	}

	b.WriteString("\n\n")

	// Help text
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Enter: Next | Tab/↓: Next | Shift+Tab/↑: Back | Esc: Cancel"))

	return b.String()
}

// terminalSupportsColor checks if the terminal supports ANSI truecolor
func (m AddClientModel) terminalSupportsColor() bool {
	colorTerm := os.Getenv("COLORTERM")

	return colorTerm == "truecolor"
}

// stepHasValue checks if a step has been filled with a value (not skipped)
func (m AddClientModel) stepHasValue(step Step) bool {
	switch step {
	case StepName:
		return strings.TrimSpace(m.name) != ""
	case StepEmail:
		return strings.TrimSpace(m.email) != ""
	case StepPhone:
		return strings.TrimSpace(m.phone) != ""
	case StepAge:
		return strings.TrimSpace(m.age) != ""
	case StepProfession:
		return strings.TrimSpace(m.profession) != ""
	case StepTopics:
		return len(m.topics) > 0
	case StepSituation:
		return strings.TrimSpace(m.situation) != ""
	case StepGoals:
		return strings.TrimSpace(m.goals) != ""
	case StepNotes:
		return strings.TrimSpace(m.notes) != ""
	case StepSave:
		return false // Save step doesn't have a value, it's an action
	default:
		return false
	}
}

// hasChanges checks if there are any changes made to the client
func (m AddClientModel) hasChanges() bool {
	if m.isEditMode {
		if m.prefilled == nil {
			return true
		}

		if strings.TrimSpace(m.name) != strings.TrimSpace(m.prefilled["name"]) {
			return true
		}
		if strings.TrimSpace(m.email) != strings.TrimSpace(m.prefilled["email"]) {
			return true
		}
		if strings.TrimSpace(m.phone) != strings.TrimSpace(m.prefilled["phone"]) {
			return true
		}
		if strings.TrimSpace(m.age) != strings.TrimSpace(m.prefilled["age"]) {
			return true
		}
		if strings.TrimSpace(m.profession) != strings.TrimSpace(m.prefilled["profession"]) {
			return true
		}
		if strings.TrimSpace(m.situation) != strings.TrimSpace(m.prefilled["situation"]) {
			return true
		}
		if strings.TrimSpace(m.goals) != strings.TrimSpace(m.prefilled["goals"]) {
			return true
		}
		if strings.TrimSpace(m.notes) != strings.TrimSpace(m.prefilled["notes"]) {
			return true
		}

		if strings.Join(m.topics, ", ") != strings.TrimSpace(m.prefilled["topics"]) {
			return true
		}

		return false
	}

	// In add mode, check if any field has content
	return strings.TrimSpace(m.name) != "" ||
		strings.TrimSpace(m.email) != "" ||
		strings.TrimSpace(m.phone) != "" ||
		strings.TrimSpace(m.age) != "" ||
		strings.TrimSpace(m.profession) != "" ||
		len(m.topics) > 0 ||
		strings.TrimSpace(m.situation) != "" ||
		strings.TrimSpace(m.goals) != "" ||
		strings.TrimSpace(m.notes) != ""
}

// renderPreview renders the live client card preview
func (m AddClientModel) renderPreview() string {
	var b strings.Builder

	if m.width < 85 {
		return m.renderSmallPreview()
	}

	// Calculate adaptive width for right panel
	rightPanelWidth := (m.width * 30) / 100
	if rightPanelWidth < 50 {
		maxRightWidth := (m.width * 70) / 100
		if maxRightWidth >= 50 {
			rightPanelWidth = 50
		} else {
			return m.renderSmallPreview()
		}
	}

	// Calculate vertical centering
	availableHeight := m.height - 8
	if availableHeight < 1 {
		availableHeight = 1
	}

	// Card dimensions
	cardWidth := 36
	if rightPanelWidth > 45 {
		cardWidth = 42
	}

	verticalPadding := (availableHeight - 18) / 2 // Approximate card height
	if verticalPadding < 0 {
		verticalPadding = 0
	}

	for i := 0; i < verticalPadding; i++ {
		b.WriteString("\n")
	}

	var cardContent strings.Builder

	// ASCII logo
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center)

	cardContent.WriteString(logoStyle.Render(strings.Join(logoLines, "\n")))
	cardContent.WriteString("\n")

	// Separator line
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Align(lipgloss.Center)
	cardContent.WriteString(separatorStyle.Render(strings.Repeat("═", 35)))
	cardContent.WriteString("\n")

	// Name section with bordered box and shimmer effect
	var nameText string
	if m.name != "" {
		nameText = m.name
	} else {
		nameText = "Unnamed Client"
	}

	shimmerName := m.shimmer.RenderShimmerText(nameText, cardWidth-6)

	nameBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center).
		Width(cardWidth - 4)

	// Reset ANSI codes so border displays properly after the shimmer
	nameWithEmoji := fmt.Sprintf("👤 %s\033[0m", shimmerName)
	cardContent.WriteString(nameBoxStyle.Render(nameWithEmoji))
	cardContent.WriteString("\n")

	// Status line
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPlaceholder)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)
	cardContent.WriteString(statusStyle.Render("● active"))
	cardContent.WriteString("\n")

	cardContent.WriteString(separatorStyle.Render(strings.Repeat("─", 37)))
	cardContent.WriteString("\n")

	// Metadata section
	metadataStyle := lipgloss.NewStyle().
		Align(lipgloss.Left).
		Padding(0, 1)

	var metadata strings.Builder

	// Email with validation hint
	if m.email != "" {
		normalized, err := parser.NormalizeEmail(m.email)
		if err == nil {
			metadata.WriteString(fmt.Sprintf("📧 Email: %s\n", normalized))
		} else {
			warningStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorHelpText)).
				Italic(true)
			metadata.WriteString(fmt.Sprintf("📧 Email: %s %s\n", m.email, warningStyle.Render("(invalid)")))
		}
	}

	// Phone
	if m.phone != "" {
		phone := m.phone
		if normalized, err := parser.NormalizePhone(m.phone); err == nil {
			phone = normalized
		}
		metadata.WriteString(fmt.Sprintf("📞 Phone: %s\n", phone))
	}

	// Age and profession
	if m.age != "" {
		metadata.WriteString(fmt.Sprintf("🎂 Age: %s\n", m.age))
	}
	if m.profession != "" {
		metadata.WriteString(fmt.Sprintf("💼 Profession: %s\n", m.profession))
	}

	// Topics with purple styling
	if len(m.topics) > 0 {
		topicStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true)
		var styledTopics []string
		for _, topic := range m.topics {
			styledTopics = append(styledTopics, topicStyle.Render("#"+topic))
		}
		metadata.WriteString(fmt.Sprintf("🏷️  Topics: %s\n", strings.Join(styledTopics, " ")))
	}

	// Situation and goals
	if m.situation != "" {
		metadata.WriteString(fmt.Sprintf("🧭 Situation: %s\n", m.situation))
	}
	if m.goals != "" {
		metadata.WriteString(fmt.Sprintf("🎯 Goals: %s\n", m.goals))
	}

	// Notes
	if m.notes != "" {
		noteStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		metadata.WriteString(fmt.Sprintf("📝 Notes: %s\n", noteStyle.Render(m.notes)))
	}

	cardContent.WriteString(metadataStyle.Render(metadata.String()))

	// Create the card with static purple border
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(cardWidth).
		Padding(1).
		Align(lipgloss.Center)

	cardContainer := lipgloss.NewStyle().
		Width(rightPanelWidth).
		Align(lipgloss.Center)

	card := cardStyle.Render(cardContent.String())
	b.WriteString(cardContainer.Render(card))

	return b.String()
}

// renderSmallPreview renders a compact preview for small terminals
func (m AddClientModel) renderSmallPreview() string {
	var b strings.Builder

	b.WriteString("═══ PREVIEW ═══\n")
	b.WriteString("💡 Tip: Stretch terminal for better UI\n")

	if m.name != "" {
		b.WriteString(fmt.Sprintf("👤 %s\n", m.name))
	}

	if m.email != "" {
		b.WriteString(fmt.Sprintf("📧 %s\n", m.email))
	}

	if m.phone != "" {
		b.WriteString(fmt.Sprintf("📞 %s\n", m.phone))
	}

	if m.age != "" {
		b.WriteString(fmt.Sprintf("🎂 %s\n", m.age))
	}

	if m.profession != "" {
		b.WriteString(fmt.Sprintf("💼 %s\n", m.profession))
	}

	if len(m.topics) > 0 {
		b.WriteString(fmt.Sprintf("🏷️  %s\n", strings.Join(m.topics, ", ")))
	}

	if m.situation != "" {
		b.WriteString(fmt.Sprintf("🧭 %s\n", m.situation))
	}

	if m.goals != "" {
		b.WriteString(fmt.Sprintf("🎯 %s\n", m.goals))
	}

	if m.notes != "" {
		b.WriteString(fmt.Sprintf("📝 %s\n", m.notes))
	}

	b.WriteString("═══════════════\n")
	return b.String()
}

// renderSmallLayout renders entire TUI for very small terminals
func (m AddClientModel) renderSmallLayout() string {
	style := lipgloss.NewStyle().
		Width(m.width - 2).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	wizard := m.renderWizard()
	preview := m.renderSmallPreview()

	content := wizard + "\n" + preview

	return style.Render(content)
}

// handleEnter processes the Enter key
func (m AddClientModel) handleEnter() (AddClientModel, tea.Cmd) {
	m.validationErr = "" // Clear any previous validation error

	switch m.currentStep {
	case StepName:
		if strings.TrimSpace(m.name) == "" {
			m.validationErr = "Client name is required"
			return m, nil
		}
		return m.nextStep()

	case StepEmail:
		raw := strings.TrimSpace(m.inputs[StepEmail].Value())
		if raw == "" {
			m.validationErr = "Email is required"
			return m, nil
		}
		email, err := parser.NormalizeEmail(raw)
		if err != nil {
			m.validationErr = "Invalid email address"
			return m, nil
		}
		m.email = email
		return m.nextStep()

	case StepPhone:
		phone := strings.TrimSpace(m.inputs[StepPhone].Value())
		if phone == "" {
			m.phone = ""
			return m.nextStep()
		}
		normalized, err := parser.NormalizePhone(phone)
		if err != nil {
			m.validationErr = "Invalid phone number"
			return m, nil
		}
		m.phone = normalized
		return m.nextStep()

	case StepAge:
		ageInput := strings.TrimSpace(m.inputs[StepAge].Value())
		if ageInput == "" {
			m.age = ""
			return m.nextStep()
		}
		age, err := strconv.Atoi(ageInput)
		if err != nil || age < 1 || age > 120 {
			m.validationErr = "Invalid age. Use a number between 1 and 120"
			return m, nil
		}
		m.age = ageInput
		return m.nextStep()

	case StepProfession:
		// Profession is optional, just move on
		return m.nextStep()

	case StepTopics:
		// Handle topic input, one topic at a time
		currentTopic := strings.TrimSpace(m.inputs[StepTopics].Value())
		if currentTopic == "q" || currentTopic == "Q" {
			// User wants to stop adding topics
			return m.nextStep()
		} else if currentTopic == "" {
			return m.nextStep()
		} else {
			// Add the topic and clear input for the next one
			m.topics = append(m.topics, currentTopic)
			m.inputs[StepTopics].SetValue("")
			m.inputs[StepTopics].Placeholder = fmt.Sprintf("Add another topic (%d added so far, Enter to finish, 'q' to stop)", len(m.topics))
			return m, nil
		}

	case StepSituation:
		return m.nextStep()

	case StepGoals:
		return m.nextStep()

	case StepNotes:
		// Notes is optional, move to Save step
		return m.nextStep()

	case StepSave:
		// Save the client
		return m.saveClient()
	}

	return m, nil
}

// nextStep moves to the next step
func (m AddClientModel) nextStep() (AddClientModel, tea.Cmd) {
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepSave {
			// Only focus input fields, not the Save step
			m.inputs[m.currentStep].Focus()
		}
		// Reset shimmer for new field
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m AddClientModel) prevStep() (AddClientModel, tea.Cmd) {
	if m.currentStep > StepName {
		if m.currentStep <= StepNotes {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		if m.currentStep <= StepNotes {
			m.inputs[m.currentStep].Focus()
		}
		// Reset shimmer for new field
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

// updateCurrentField updates the model field based on current input
func (m *AddClientModel) updateCurrentField() {
	switch m.currentStep {
	case StepName:
		m.name = m.inputs[StepName].Value()
	case StepEmail:
		m.email = m.inputs[StepEmail].Value()
	case StepPhone:
		m.phone = m.inputs[StepPhone].Value()
	case StepAge:
		m.age = m.inputs[StepAge].Value()
	case StepProfession:
		m.profession = m.inputs[StepProfession].Value()
	case StepTopics:
		// Don't auto-update topics here, we handle them manually in handleEnter
		// This prevents interference with the multi-topic input logic
	case StepSituation:
		m.situation = m.inputs[StepSituation].Value()
	case StepGoals:
		m.goals = m.inputs[StepGoals].Value()
	case StepNotes:
		m.notes = m.inputs[StepNotes].Value()
	}
}

// saveClient persists the client to the store
func (m AddClientModel) saveClient() (AddClientModel, tea.Cmd) {
	age := 0
	if m.age != "" {
		age, _ = strconv.Atoi(m.age)
	}

	// Step validation already normalized the email; keep the raw value if
	// a prefilled one slips through unnormalized.
	email := m.email
	if normalized, err := parser.NormalizeEmail(m.email); err == nil {
		email = normalized
	}

	if m.isEditMode {
		update := db.ClientUpdate{
			Name:       ptr(strings.TrimSpace(m.name)),
			Email:      ptr(email),
			Phone:      ptr(m.phone),
			Age:        ptr(age),
			Profession: ptr(m.profession),
			Situation:  ptr(m.situation),
			Goals:      ptr(m.goals),
			Notes:      ptr(m.notes),
			Topics:     &m.topics,
		}

		client, err := m.store.UpdateClient(m.editClientID, update)
		if err != nil {
			m.err = err
			return m, nil
		}

		m.completed = true
		m.createdClientID = client.ID
		m.createdClientName = client.Name
	} else {
		req := db.CreateClientRequest{
			Name:       strings.TrimSpace(m.name),
			Email:      email,
			Phone:      m.phone,
			Age:        age,
			Profession: m.profession,
			Situation:  m.situation,
			Goals:      m.goals,
			Notes:      m.notes,
			Topics:     m.topics,
		}

		client, err := m.store.AddClient(req)
		if err != nil {
			m.err = err
			return m, nil
		}

		m.completed = true
		m.createdClientID = client.ID
		m.createdClientName = client.Name
	}

	return m, tea.Quit
}

func ptr[T any](v T) *T {
	return &v
}

// handleSaveChoice handles the save confirmation modal response
func (m AddClientModel) handleSaveChoice() (AddClientModel, tea.Cmd) {
	m.showSaveModal = false

	if m.saveModalChoice {
		// User chose "Yes", save the client
		return m.saveClient()
	}

	// User chose "No", cancel without saving
	m.cancelled = true
	return m, tea.Quit
}

// renderSaveModal renders the save confirmation modal overlay
func (m AddClientModel) renderSaveModal(background string) string {
	modalWidth := 50
	modalHeight := 7

	var modalContent strings.Builder
	modalContent.WriteString("Save changes?\n\n")

	// Yes/No options with highlighting
	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)

	if m.saveModalChoice {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}

	yesButton := yesStyle.Render("Yes")
	noButton := noStyle.Render("No")

	modalContent.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		yesButton,
		"   ",
		noButton,
	))
	modalContent.WriteString("\n\n")
	modalContent.WriteString("← → or Y/N to choose, Enter to confirm\nEsc to cancel")

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center)

	modal := modalStyle.Render(modalContent.String())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
