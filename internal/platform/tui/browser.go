// Package tui provides the terminal browser for the balance tables, campaign
// waves and recorded scores, plus an SSH server that serves it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/balance"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show section sidebar
	sidebarWidth       = 20  // Width of section sidebar
	healthBarCellWidth = 28  // Cells of the HUD preview bar
	maxScores          = 100 // Max scores to load
	healthStep         = 10  // Health change per heal/hurt key
)

// Section is a page of the browser.
type Section int

const (
	SectionWaves Section = iota
	SectionTables
	SectionScores
	sectionCount
)

// String returns the sidebar title of the section.
func (s Section) String() string {
	switch s {
	case SectionWaves:
		return "Waves"
	case SectionTables:
		return "Tables"
	case SectionScores:
		return "Scores"
	default:
		return "?"
	}
}

// BrowserModel is the Bubble Tea model for the balance browser.
type BrowserModel struct {
	store       *storage.Store // may be nil
	tables      config.Tables
	player      config.PlayerConfig
	section     Section
	scores      []storage.ScoreEntry
	table       table.Model
	help        help.Model
	keys        BrowserKeyMap
	health      int // HUD preview health
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewBrowserModel creates a new browser model.
func NewBrowserModel(store *storage.Store, tables config.Tables, player config.PlayerConfig, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:       store,
		tables:      tables,
		player:      player,
		section:     SectionWaves,
		keys:        DefaultBrowserKeyMap(),
		help:        h,
		health:      player.MaxHealth,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.loadScores()
	m.table = m.createTable()
	return m
}

// Section returns the active section.
func (m BrowserModel) Section() Section {
	return m.section
}

// Health returns the HUD preview health.
func (m BrowserModel) Health() int {
	return m.health
}

// IsQuitting returns true if user wants to quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// loadScores loads the top scores from the store, if any.
func (m *BrowserModel) loadScores() {
	m.scores = nil
	if m.store == nil {
		return
	}
	if scores, err := m.store.TopScores(maxScores); err == nil {
		m.scores = scores
	}
}

// createTable builds the table for the active section.
func (m BrowserModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	switch m.section {
	case SectionWaves:
		columns = []table.Column{
			{Title: "Stage", Width: 8},
			{Title: "Enemies", Width: 8},
			{Title: "Delay", Width: 7},
			{Title: "Big", Width: 6},
			{Title: "Med", Width: 6},
			{Title: "Small", Width: 6},
			{Title: "HP", Width: 5},
		}
		rows = waveRows()
	case SectionTables:
		columns = []table.Column{
			{Title: "Table", Width: 10},
			{Title: "Entry", Width: 16},
			{Title: "Value", Width: 8},
		}
		rows = tableRows(m.tables)
	case SectionScores:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Reached", Width: 9},
			{Title: "Date", Width: 14},
		}
		rows = scoreRows(m.scores)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)), // Leave room for header, HUD, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	t.SetRows(rows)
	t.GotoTop()
	return t
}

// waveRows lists every campaign stage with its spawn parameters.
func waveRows() []table.Row {
	stages := balance.Campaign()
	rows := make([]table.Row, 0, len(stages))
	for _, st := range stages {
		if st.Boss {
			rows = append(rows, table.Row{
				st.String(), "1", "-", "-", "-", "-",
				fmt.Sprintf("%d", balance.BossHP(st.Level)),
			})
			continue
		}
		p := balance.EnemyTypeProbabilities(st.Level, st.Wave)
		rows = append(rows, table.Row{
			st.String(),
			fmt.Sprintf("%d", balance.EnemyCount(st.Level, st.Wave)),
			fmt.Sprintf("%dms", balance.SpawnDelayMs(st.Level, st.Wave)),
			percent(p.Big),
			percent(p.Medium),
			percent(p.Small),
			fmt.Sprintf("%d", balance.BigEnemyHealth(st.Level)),
		})
	}
	return rows
}

// tableRows flattens the damage, score and powerup tables.
func tableRows(t config.Tables) []table.Row {
	rows := []table.Row{
		{"damage", balance.DamageEnemyCollision.String(), fmt.Sprintf("%d", t.Damage.Amount(balance.DamageEnemyCollision))},
		{"damage", balance.DamageBossCollision.String(), fmt.Sprintf("%d", t.Damage.Amount(balance.DamageBossCollision))},
		{"damage", balance.DamageBulletHit.String(), fmt.Sprintf("%d", t.Damage.Amount(balance.DamageBulletHit))},
	}
	for _, tier := range []balance.Tier{balance.TierSmall, balance.TierMedium, balance.TierBig, balance.TierBoss} {
		rows = append(rows, table.Row{"score", tier.String(), fmt.Sprintf("%d", t.Score.Award(tier))})
	}
	rows = append(rows, table.Row{"powerup", "drop_rate", percent(t.Powerup.DropRate)})
	for _, kind := range balance.PowerupKinds() {
		rows = append(rows, table.Row{"powerup", kind.String(), percent(t.Powerup.Weights[kind])})
	}
	return rows
}

// scoreRows formats recorded runs.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		reached := fmt.Sprintf("L%dW%d", s.Level, s.Wave)
		if s.Completed {
			reached = "cleared"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			reached,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSection):
			m.section = (m.section + 1) % sectionCount
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.PrevSection):
			m.section = (m.section + sectionCount - 1) % sectionCount
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.Heal):
			m.health = min(m.health+healthStep, m.player.MaxHealth)
			return m, nil

		case key.Matches(msg, m.keys.Hurt):
			m.health = max(m.health-healthStep, 0)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("STARFALL BALANCE - %s", m.section)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(m.renderTabs())
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	// HUD preview
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("HP %3d/%d ", m.health, m.player.MaxHealth))
	b.WriteString(RenderHealthBar(m.health, m.player.MaxHealth, healthBarCellWidth))
	b.WriteString(fmt.Sprintf(" %.0fpx", balance.HealthBarWidth(float64(m.health), float64(m.player.MaxHealth))))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the section list.
func (m BrowserModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Sections\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for s := SectionWaves; s < sectionCount; s++ {
		cursor := "  "
		style := lipgloss.NewStyle()
		if s == m.section {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + s.String()))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTabs renders the section list horizontally for narrow terminals.
func (m BrowserModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, sectionCount)
	for s := SectionWaves; s < sectionCount; s++ {
		if s == m.section {
			tabs = append(tabs, activeTabStyle.Render(s.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+s.String()+" "))
		}
	}
	return centerText(strings.Join(tabs, " "), m.width)
}

// renderTableContent renders the table or an empty message.
func (m BrowserModel) renderTableContent() string {
	if m.section == SectionScores && len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nUse 'starfall record' after a run.")
	}
	return m.table.View()
}

// centerText pads s to sit in the middle of width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunBrowser runs the balance browser in the local terminal.
func RunBrowser(store *storage.Store, tables config.Tables, player config.PlayerConfig, width, height int) error {
	model := NewBrowserModel(store, tables, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
