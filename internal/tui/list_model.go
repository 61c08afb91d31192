package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allensfl/coach-mission-control/internal/models"
)

// ListModel represents the TUI model for browsing clients
type ListModel struct {
	width  int
	height int

	// Client data
	allClients     []models.Client
	clients        []models.Client // filtered view
	selectedClient int             // index in clients slice

	// UI state
	focus        Focus
	searchActive bool
	searchQuery  string

	// Shimmer effect for selected client name
	shimmer *ShimmerState

	// Pagination
	currentPage    int
	clientsPerPage int
}

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
	FocusModal
)

// NewListModel creates a new client list TUI model
func NewListModel(clients []models.Client) ListModel {
	shimmerConfig := DefaultShimmerConfig()
	shimmer := NewShimmerState(shimmerConfig)

	model := ListModel{
		allClients:     clients,
		clients:        clients,
		selectedClient: 0,
		focus:          FocusTable,
		shimmer:        shimmer,
		currentPage:    0,
	}

	return model
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	cmds := []tea.Cmd{}

	if m.shimmer.ShouldTick() {
		cmds = append(cmds, tea.Tick(m.shimmer.GetTickInterval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		}))
	}

	return tea.Batch(cmds...)
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		// Continue shimmer animation if focused on table
		if m.focus == FocusTable && m.shimmer.ShouldTick() {
			return m, tea.Tick(m.shimmer.GetTickInterval(), func(time.Time) tea.Msg {
				return shimmerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate clients per page based on available height
		availableHeight := m.height - 12
		if availableHeight < 3 {
			availableHeight = 3
		}
		m.clientsPerPage = availableHeight

		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSearch {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Exit search filter first if active, otherwise quit
			if msg.String() == "esc" && m.searchActive {
				m.focus = FocusTable
				m.searchActive = false
				m.searchQuery = ""
				m.clients = m.allClients
				m.selectedClient = 0
				m.currentPage = 0
				m.shimmer.SetActive(true)
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			return m.moveSelectionUp(), nil

		case "down", "j":
			return m.moveSelectionDown(), nil

		case "left", "h":
			return m.prevPage(), nil

		case "right", "l":
			return m.nextPage(), nil

		case "/":
			// Enter search mode
			m.focus = FocusSearch
			m.searchActive = true
			m.shimmer.SetActive(false)
			return m, nil
		}
	}

	return m, nil
}

// handleSearchKeys handles key input when in search mode
func (m ListModel) handleSearchKeys(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Exit search
		m.focus = FocusTable
		m.searchActive = false
		m.searchQuery = ""
		m.clients = m.allClients
		m.selectedClient = 0
		m.currentPage = 0
		m.shimmer.SetActive(true)
		return m, nil

	case "enter":
		// Apply search filter and return to table
		m.focus = FocusTable
		m.shimmer.SetActive(true)
		m.clients = filterClients(m.allClients, m.searchQuery)
		m.selectedClient = 0
		m.currentPage = 0
		return m, nil

	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
		}
		return m, nil

	default:
		// Add character to search query
		m.searchQuery += msg.String()
		return m, nil
	}
}

// filterClients selects the clients matching the query across the text fields
func filterClients(clients []models.Client, query string) []models.Client {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clients
	}

	var out []models.Client
	for _, c := range clients {
		haystack := strings.ToLower(c.Name + " " + c.Email + " " + c.Profession + " " + c.Situation + " " + c.Goals)
		for _, t := range c.Topics {
			haystack += " " + strings.ToLower(t.Name)
		}
		if strings.Contains(haystack, query) {
			out = append(out, c)
		}
	}
	return out
}

// moveSelectionUp moves the selection up
func (m ListModel) moveSelectionUp() ListModel {
	if m.selectedClient > 0 {
		m.selectedClient--
		m.shimmer.Reset() // Reset shimmer for new selection

		// Auto-pagination: if we scrolled above current page, go to previous page
		currentPageStart := m.currentPage * m.clientsPerPage
		if m.selectedClient < currentPageStart && m.currentPage > 0 {
			m.currentPage--
		}
	}
	return m
}

// moveSelectionDown moves the selection down
func (m ListModel) moveSelectionDown() ListModel {
	if m.selectedClient < len(m.clients)-1 {
		m.selectedClient++
		m.shimmer.Reset() // Reset shimmer for new selection

		// Auto-pagination: if we scrolled below current page, go to next page
		currentPageEnd := min((m.currentPage+1)*m.clientsPerPage-1, len(m.clients)-1)
		maxPages := (len(m.clients) + m.clientsPerPage - 1) / m.clientsPerPage
		if m.selectedClient > currentPageEnd && m.currentPage < maxPages-1 {
			m.currentPage++
		}
	}
	return m
}

// prevPage goes to previous page
func (m ListModel) prevPage() ListModel {
	if m.currentPage > 0 {
		m.currentPage--
		// Adjust selection to be within the new page
		maxIndex := min((m.currentPage+1)*m.clientsPerPage-1, len(m.clients)-1)
		if m.selectedClient > maxIndex {
			m.selectedClient = maxIndex
		}
		minIndex := m.currentPage * m.clientsPerPage
		if m.selectedClient < minIndex {
			m.selectedClient = minIndex
		}
		m.shimmer.Reset()
	}
	return m
}

// nextPage goes to next page
func (m ListModel) nextPage() ListModel {
	maxPages := (len(m.clients) + m.clientsPerPage - 1) / m.clientsPerPage
	if m.currentPage < maxPages-1 {
		m.currentPage++
		// Adjust selection to be within the new page
		minIndex := m.currentPage * m.clientsPerPage
		if m.selectedClient < minIndex {
			m.selectedClient = minIndex
		}
		maxIndex := min((m.currentPage+1)*m.clientsPerPage-1, len(m.clients)-1)
		if m.selectedClient > maxIndex {
			m.selectedClient = maxIndex
		}
		m.shimmer.Reset()
	}
	return m
}

// View renders the TUI
func (m ListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Calculate layout
	leftWidth := m.width * 60 / 100       // 60% for table
	rightWidth := m.width - leftWidth - 1 // Rest for details

	leftPanel := m.renderClientTable(leftWidth)
	rightPanel := m.renderClientDetails(rightWidth)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		" ",
		rightPanel,
	)

	// Search bar (if active)
	var searchBar string
	if m.searchActive {
		searchBar = m.renderSearchBar()
	} else {
		searchBar = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"", // Small top margin to show border
		content,
		"", // Small bottom spacing
		searchBar,
	)
}

// Helper function for min
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// renderClientTable renders the left panel with the client table
func (m ListModel) renderClientTable(width int) string {
	var b strings.Builder

	// Table header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))

	b.WriteString(headerStyle.Render("👥 Clients"))
	b.WriteString("\n\n")

	if len(m.clients) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No clients found"))
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Width(width).
			Render(b.String())
	}

	// Table column headers
	columnHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Padding(0, 1)

	// Calculate column widths for the available space
	availableWidth := width - 4 // Account for borders
	statusWidth := 9            // "● active"
	sessionsWidth := 8
	lastWidth := 10
	nameWidth := availableWidth - statusWidth - sessionsWidth - lastWidth - 6

	if nameWidth < 20 {
		nameWidth = 20
	}

	headers := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		nameWidth, "NAME",
		statusWidth, "STATUS",
		sessionsWidth, "SESSIONS",
		lastWidth, "LAST")
	b.WriteString(columnHeaderStyle.Render(headers))
	b.WriteString("\n\n")

	// Calculate visible clients for current page
	startIndex := m.currentPage * m.clientsPerPage
	endIndex := min(startIndex+m.clientsPerPage, len(m.clients))

	// Render client rows
	for i := startIndex; i < endIndex; i++ {
		client := m.clients[i]
		isSelected := i == m.selectedClient

		name := client.Name
		if len(name) > nameWidth-1 {
			if nameWidth > 4 {
				name = name[:nameWidth-4] + "..."
			} else {
				name = name[:nameWidth-1]
			}
		}

		// Apply shimmer to selected client name
		if isSelected {
			name = m.shimmer.RenderShimmerText(name, nameWidth)
		}

		// Format status text (always plain text for consistent column alignment)
		var statusText string
		if client.Status == "active" {
			statusText = "● active"
		} else {
			statusText = "○ " + client.Status
		}

		sessionsText := fmt.Sprintf("%d", client.TotalSessions)

		// Format last session text
		var lastText string
		if client.LastSessionDate != nil {
			days := int(time.Since(*client.LastSessionDate).Hours() / 24)
			if days == 0 {
				lastText = "TODAY"
			} else if days == 1 {
				lastText = "YESTERDAY"
			} else if days <= 7 {
				lastText = fmt.Sprintf("%dd ago", days)
			} else {
				lastText = client.LastSessionDate.Format("02/01")
			}
		} else {
			lastText = "-"
		}

		if len(lastText) > lastWidth {
			lastText = lastText[:lastWidth]
		}

		// Apply colors to status and last-session columns
		var coloredStatusText string
		if client.Status == "active" {
			coloredStatusText = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(statusText)
		} else {
			coloredStatusText = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(statusText)
		}

		var coloredLastText string
		if client.LastSessionDate != nil {
			days := int(time.Since(*client.LastSessionDate).Hours() / 24)
			if days <= 7 {
				coloredLastText = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(lastText)
			} else {
				coloredLastText = lastText
			}
		} else {
			coloredLastText = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(lastText)
		}

		rowContent := fmt.Sprintf("%-*s %-*s %-*s %-*s",
			nameWidth, name,
			statusWidth, coloredStatusText,
			sessionsWidth, sessionsText,
			lastWidth, coloredLastText)

		if isSelected {
			// Selected row: use shining purple border
			shimmerBorder := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Bold(true).
				Padding(0, 1)

			b.WriteString(shimmerBorder.Render(rowContent))
		} else {
			// Regular row: no borders, just content
			b.WriteString(" " + rowContent)
		}
		b.WriteString("\n")
	}

	// Pagination info
	if m.clientsPerPage < len(m.clients) {
		totalPages := (len(m.clients) + m.clientsPerPage - 1) / m.clientsPerPage
		pageInfo := fmt.Sprintf("Page %d/%d (%d clients)", m.currentPage+1, totalPages, len(m.clients))
		pageStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Align(lipgloss.Center).
			Width(width - 2).
			MarginTop(1)
		b.WriteString(pageStyle.Render(pageInfo))
	}

	// Apply outer border
	outerBorderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)

	return outerBorderStyle.Render(b.String())
}

// renderClientDetails renders the right panel with client details
func (m ListModel) renderClientDetails(width int) string {
	var b strings.Builder

	if len(m.clients) == 0 || m.selectedClient >= len(m.clients) {
		// Empty state with logo
		logoStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width)
		b.WriteString(logoStyle.Render("coach"))

		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width).
			MarginTop(2)
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("Select a client to view details"))
	} else {
		// Show selected client details
		client := m.clients[m.selectedClient]

		// Name
		nameStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Width(width)
		b.WriteString(nameStyle.Render("👤 " + client.Name))
		b.WriteString("\n\n")

		// Status
		statusColor := ColorSecondaryText
		if client.Status == "active" {
			statusColor = ColorSuccess
		}
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(statusColor)).
			Bold(true)
		b.WriteString("Status: ")
		b.WriteString(statusStyle.Render(client.Status))
		b.WriteString("\n")

		// Contact
		if client.Email != "" {
			b.WriteString("Email: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(client.Email))
			b.WriteString("\n")
		}
		if client.Phone != "" {
			b.WriteString("Phone: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(client.Phone))
			b.WriteString("\n")
		}

		// Profession and age
		if client.Profession != "" {
			b.WriteString("Profession: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(client.Profession))
			b.WriteString("\n")
		}
		if client.Age > 0 {
			b.WriteString(fmt.Sprintf("Age: %d\n", client.Age))
		}

		// Topics
		if len(client.Topics) > 0 {
			var topicNames []string
			for _, topic := range client.Topics {
				topicNames = append(topicNames, topic.Name)
			}
			b.WriteString("Topics: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(strings.Join(topicNames, ", ")))
			b.WriteString("\n")
		}

		// Session stats
		b.WriteString(fmt.Sprintf("Sessions: %d\n", client.TotalSessions))
		if client.LastSessionDate != nil {
			b.WriteString("Last session: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(client.LastSessionDate.Format("02/01/2006")))
			b.WriteString("\n")
		}

		// Consent
		if client.ConsentGiven {
			b.WriteString("Consent: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓ given"))
			if !client.ConsentDate.IsZero() {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(
					" (" + client.ConsentDate.Format("02/01/2006") + ")"))
			}
			b.WriteString("\n")
		}

		// Situation and goals
		if client.Situation != "" {
			b.WriteString("\nSituation:\n")
			situationStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondaryText)).
				Width(width - 2)
			b.WriteString(situationStyle.Render(client.Situation))
			b.WriteString("\n")
		}
		if client.Goals != "" {
			b.WriteString("\nGoals:\n")
			goalsStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondaryText)).
				Width(width - 2)
			b.WriteString(goalsStyle.Render(client.Goals))
			b.WriteString("\n")
		}

		// Notes
		if client.Notes != "" {
			b.WriteString("\nNotes:\n")
			noteStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondaryText)).
				Italic(true).
				Width(width - 2)
			b.WriteString(noteStyle.Render(client.Notes))
		}
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)

	return borderStyle.Render(b.String())
}

// renderSearchBar renders the search bar when active
func (m ListModel) renderSearchBar() string {
	searchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(m.width - 2)

	prompt := "Search: " + m.searchQuery + "█"
	return searchStyle.Render(prompt)
}

// renderHelpBar renders the help bar with hotkey hints
func (m ListModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "↑/↓ nav · ←/→ page · / search · q/esc quit"
	return helpStyle.Render(helpText)
}

// RunListTUI runs the interactive client browser
func RunListTUI(clients []models.Client) error {
	model := NewListModel(clients)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
