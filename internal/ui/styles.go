package ui

import "github.com/charmbracelet/lipgloss"

// Radar color palette
var (
	ColorGridBlue     = lipgloss.Color("#4080FF")
	ColorGridDim      = lipgloss.Color("#2060CC")
	ColorBeamGreen    = lipgloss.Color("#00FF00")
	ColorTrailGreen   = lipgloss.Color("#00AA00")
	ColorDimGreen     = lipgloss.Color("#004A0A")
	ColorMarker       = lipgloss.Color("#FFFF00")
	ColorBorderBright = lipgloss.Color("#4080FF")
	ColorBorderNorm   = lipgloss.Color("#2060CC")
	ColorWarning      = lipgloss.Color("#FFAA00")
	ColorError        = lipgloss.Color("#FF3300")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#001133")).
			Foreground(ColorGridBlue).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBeamGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGridBlue)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#001133")).
			Foreground(ColorGridBlue).
			Padding(0, 1)

	StyleStatusSweeping = lipgloss.NewStyle().
				Foreground(ColorBeamGreen).
				Bold(true)

	StyleStatusStopped = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorGridBlue).
			Bold(true).
			Padding(0, 1)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorGridDim)

	StyleTargetID = lipgloss.NewStyle().
			Foreground(ColorMarker).
			Bold(true)

	StyleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorBeamGreen).
			Bold(true)

	StyleTargetValue = lipgloss.NewStyle().
				Foreground(ColorTrailGreen)

	StyleTargetMissing = lipgloss.NewStyle().
				Foreground(ColorDimGreen)

	StyleSparkline = lipgloss.NewStyle().
			Foreground(ColorTrailGreen)

	StyleLegend = lipgloss.NewStyle().
			Foreground(ColorGridDim)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
