package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the radar panel and target list horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, radarPanel, targetList, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, radarPanel, targetList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
