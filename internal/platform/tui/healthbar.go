package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/balance"
)

var (
	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	barLowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// healthBarCells converts the pixel width of the HUD bar into terminal cells
// for a bar that is cells wide when full.
func healthBarCells(health, maxHealth, cells int) int {
	if cells <= 0 {
		return 0
	}
	px := balance.HealthBarWidth(float64(health), float64(maxHealth))
	filled := int(math.Round(px / balance.HealthBarMaxWidth * float64(cells)))
	return min(filled, cells)
}

// RenderHealthBar draws a health bar cells wide. Below a quarter of the bar
// the fill turns red.
func RenderHealthBar(health, maxHealth, cells int) string {
	filled := healthBarCells(health, maxHealth, cells)

	style := barFullStyle
	if filled*4 < cells {
		style = barLowStyle
	}

	return style.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", max(cells-filled, 0)))
}
