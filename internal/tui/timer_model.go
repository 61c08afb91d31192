package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/models"
)

// TimerModel represents the TUI model for a running coaching session
type TimerModel struct {
	width   int
	height  int
	session *models.Session
	client  *models.Client

	// Timer state
	elapsedTime time.Duration
	lastUpdate  time.Time

	// Animation state
	timerAnimation int

	// UI state
	stopping bool // True when user pressed S and we're ending the session
	exiting  bool // True when user pressed ESC/Q and we're exiting without ending
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// NewTimerModel creates a new session timer TUI model
func NewTimerModel(session *models.Session, client *models.Client) TimerModel {
	return TimerModel{
		session:        session,
		client:         client,
		elapsedTime:    time.Since(session.StartTime),
		lastUpdate:     time.Now(),
		timerAnimation: 0,
		stopping:       false,
		exiting:        false,
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		}),
		tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
			return animationTickMsg{}
		}),
	)
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		now := time.Now()
		m.elapsedTime = now.Sub(m.session.StartTime)
		m.lastUpdate = now

		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case animationTickMsg:
		m.timerAnimation = (m.timerAnimation + 1) % 4

		if !m.stopping && !m.exiting {
			return m, tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
				return animationTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// End the session and save
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Exit without ending
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	helpBarHeight := 1

	contentHeight := m.height - helpBarHeight - 1

	// Check if screen is too narrow for split view
	if m.width < 90 {
		timerPanel := m.renderTimerPanel(m.width, contentHeight)

		return lipgloss.JoinVertical(
			lipgloss.Left,
			timerPanel,
			helpBar,
		)
	}

	// Wide view: split screen
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2 // -2 for gap

	leftPanel := m.renderTimerPanel(leftWidth, contentHeight)
	rightPanel := m.renderClientDetailsPanel(rightWidth, contentHeight)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		"  ", // Gap
		rightPanel,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		helpBar,
	)
}

// renderTimerPanel renders the left timer panel
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string

	// Animated header
	animChars := []string{"⏱", "⏲", "⏱", "⏲"}
	animChar := animChars[m.timerAnimation]
	headerText := fmt.Sprintf("%s  SESSION RUNNING  %s", animChar, animChar)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	components = append(components, headerStyle.Render(headerText))

	// Client name
	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	nameText := m.client.Name
	if len(nameText) > width-4 {
		nameText = nameText[:width-7] + "..."
	}
	components = append(components, nameStyle.Render(nameText))

	// Big clock display
	clockDisplay := m.renderBigClock()
	clockLines := strings.Split(clockDisplay, "\n")
	clockContent := ""
	for _, line := range clockLines {
		centeredLine := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(line)
		clockContent += centeredLine + "\n"
	}
	components = append(components, strings.TrimRight(clockContent, "\n"))

	// Session start time
	sessionInfo := fmt.Sprintf("Started at %s", m.session.StartTime.Format("15:04:05"))
	sessionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, sessionStyle.Render(sessionInfo))

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderBigClock renders ASCII art clock
func (m TimerModel) renderBigClock() string {
	duration := m.elapsedTime
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	// ASCII art for digits (3x5 characters each)
	digits := map[rune][][]string{
		'0': {
			{" ███ "},
			{"█   █"},
			{"█   █"},
			{"█   █"},
			{" ███ "},
		},
		'1': {
			{"  █  "},
			{" ██  "},
			{"  █  "},
			{"  █  "},
			{"█████"},
		},
		'2': {
			{" ███ "},
			{"█   █"},
			{"   █ "},
			{"  █  "},
			{"█████"},
		},
		'3': {
			{" ███ "},
			{"█   █"},
			{"  ██ "},
			{"█   █"},
			{" ███ "},
		},
		'4': {
			{"█   █"},
			{"█   █"},
			{"█████"},
			{"    █"},
			{"    █"},
		},
		'5': {
			{"█████"},
			{"█    "},
			{"████ "},
			{"    █"},
			{"████ "},
		},
		'6': {
			{" ███ "},
			{"█    "},
			{"████ "},
			{"█   █"},
			{" ███ "},
		},
		'7': {
			{"█████"},
			{"    █"},
			{"   █ "},
			{"  █  "},
			{" █   "},
		},
		'8': {
			{" ███ "},
			{"█   █"},
			{" ███ "},
			{"█   █"},
			{" ███ "},
		},
		'9': {
			{" ███ "},
			{"█   █"},
			{" ████"},
			{"    █"},
			{" ███ "},
		},
		':': {
			{"     "},
			{"  █  "},
			{"     "},
			{"  █  "},
			{"     "},
		},
	}

	// Format time string
	timeStr := ""
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", minutes, seconds)
	}

	// Build the big clock display
	var lines [5]strings.Builder

	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i][0])
				lines[i].WriteString(" ") // Space between digits
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderClientDetailsPanel renders the right panel with client info
func (m TimerModel) renderClientDetailsPanel(width, height int) string {
	client := m.client
	var b strings.Builder

	b.WriteString("\n")

	// ASCII logo at top
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width - 8)

	b.WriteString(logoStyle.Render(strings.Join(logoLines, "\n")))
	b.WriteString("\n\n")

	// Separator line
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(width - 8)
	separatorLine := strings.Repeat("─", min(width-12, 40))
	b.WriteString(separatorStyle.Render(separatorLine))
	b.WriteString("\n\n")

	// Name in bordered box
	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(nameStyle.Render(client.Name))
	b.WriteString("\n\n")

	// Status with emoji
	statusIcon := "🟢"
	statusColor := ColorSuccess
	statusText := client.Status
	if client.Status != "active" {
		statusIcon = "▪"
		statusColor = ColorDisabledText
	}

	statusStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	statusLine := fmt.Sprintf("%s Status: %s", statusIcon,
		lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Bold(true).Render(statusText))
	b.WriteString(statusStyle.Render(statusLine))
	b.WriteString("\n")

	// Profession
	professionStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	professionValue := "none"
	professionColor := ColorDisabledText
	if client.Profession != "" {
		professionValue = client.Profession
		professionColor = ColorAccentBright
	}
	professionLine := fmt.Sprintf("💼 Profession: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(professionColor)).Render(professionValue))
	b.WriteString(professionStyle.Render(professionLine))
	b.WriteString("\n")

	// Topics
	topicsStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	topicsValue := "none"
	topicsColor := ColorDisabledText
	if len(client.Topics) > 0 {
		var topicNames []string
		for _, topic := range client.Topics {
			topicNames = append(topicNames, "#"+topic.Name)
		}
		topicsValue = strings.Join(topicNames, " ")
		topicsColor = ColorAccentBright
	}
	topicsLine := fmt.Sprintf("🏷️  Topics: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(topicsColor)).Render(topicsValue))
	b.WriteString(topicsStyle.Render(topicsLine))
	b.WriteString("\n")

	// Session count
	sessionsStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	sessionsLine := fmt.Sprintf("📊 Sessions: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render(fmt.Sprintf("%d completed", client.TotalSessions)))
	b.WriteString(sessionsStyle.Render(sessionsLine))
	b.WriteString("\n")

	// Last session
	lastStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	lastValue := "none"
	lastColor := ColorDisabledText
	if client.LastSessionDate != nil && !client.LastSessionDate.IsZero() {
		lastValue = client.LastSessionDate.Format("Jan 02, 2006")
		lastColor = ColorWarning
	}
	lastLine := fmt.Sprintf("📅 Last session: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(lastColor)).Render(lastValue))
	b.WriteString(lastStyle.Render(lastLine))
	b.WriteString("\n")

	// Created date
	createdStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	createdValue := client.CreatedAt.Format("Jan 02, 2006")
	createdLine := fmt.Sprintf("📝 Client since: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(createdValue))
	b.WriteString(createdStyle.Render(createdLine))

	return b.String()
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "s end & save · esc/q exit (keep running) · ctrl+c force quit"

	return helpStyle.Render(helpText)
}

// RunTimerTUI runs the session timer TUI
func RunTimerTUI(store *db.Store, session *models.Session, client *models.Client) error {
	model := NewTimerModel(session, client)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel := finalModel.(TimerModel)
	if timerModel.stopping {
		ended, err := store.EndSession(session.ID, "", "")
		if err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}

		minutes := 0
		if ended.Duration != nil {
			minutes = *ended.Duration
		}
		fmt.Printf("⏹️  Session with %s completed\n", client.Name)
		fmt.Printf("📊 Session duration: %s\n", formatMinutes(minutes))
	} else if timerModel.exiting {
		fmt.Printf("\n💡 Session is still running for %s\n", client.Name)
		fmt.Printf("   Use 'coach status' to check it or 'coach stop' to end it.\n")
	}

	return nil
}

// formatMinutes formats a minute count in a human-readable way
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%.1fh", float64(minutes)/60)
	}
	return fmt.Sprintf("%dm", minutes)
}
