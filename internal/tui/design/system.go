package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing in terminal cells.
const (
	SpaceXS = 1
	SpaceSM = 2
)

// Palette. Every colour adapts to light and dark terminals.
var (
	ColorBrand    = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}
	ColorAccent   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	ColorPositive = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ColorNegative = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	ColorNeutral  = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}

	ColorInk      = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#E2E8F0"}
	ColorInkSoft  = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}
	ColorInkFaint = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#475569"}
	ColorPaper    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B1120"}
	ColorBar      = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#1E293B"}
	ColorRule     = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"}
	ColorSelected = lipgloss.AdaptiveColor{Light: "#CCFBF1", Dark: "#134E4A"}
)

// Text.
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorInk)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorInkSoft)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorPositive)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorNegative)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorInkFaint)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBrand).MarginBottom(SpaceXS)
	LabelStyle = lipgloss.NewStyle().Foreground(ColorInkSoft).Width(22)

	LabelFocusedStyle = LabelStyle.Foreground(ColorBrand).Bold(true)
)

// Chrome: header, tab bar and status bar.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorBar).
			Foreground(ColorInk).
			Padding(0, SpaceSM)

	TabStyle       = lipgloss.NewStyle().Foreground(ColorInkSoft).Padding(0, SpaceXS)
	TabActiveStyle = TabStyle.Foreground(ColorBrand).Background(ColorSelected).Bold(true)
	TabArrowStyle  = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorInk).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Background(ColorPositive).Foreground(ColorPaper)
	StatusBarErrorStyle   = StatusBarStyle.Background(ColorNegative).Foreground(ColorPaper)
	StatusBarWarningStyle = StatusBarStyle.Background(ColorAccent).Foreground(ColorPaper)
	StatusBarInfoStyle    = StatusBarStyle.Background(ColorNeutral).Foreground(ColorPaper)
)

// Lists, tables and form buttons.
var (
	ListItemSelectedStyle = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)
	TableHeaderStyle      = lipgloss.NewStyle().Foreground(ColorInkSoft).Bold(true).Underline(true)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			Background(ColorBrand).
			Foreground(ColorPaper).
			Bold(true)
	ButtonSecondaryStyle = ButtonStyle.Background(ColorBar).Foreground(ColorInk).Bold(false)
)

// Overlays.
var (
	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorRule).
					Background(ColorPaper).
					Foreground(ColorInk).
					Padding(1, 2)

	// ConfirmOverlayStyle frames destructive confirmations.
	ConfirmOverlayStyle = CenteredOverlayContainerStyle.BorderForeground(ColorNegative)
	LogOverlayStyle     = CenteredOverlayContainerStyle

	HelpTitleStyle     = lipgloss.NewStyle().Bold(true).MarginBottom(1).Align(lipgloss.Center).Foreground(ColorInk)
	LogPanelTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).MarginBottom(1).Foreground(ColorInk)

	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorInk)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorNegative)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorInkFaint).Italic(true)
)

// GetStateStyle colours an account or pack status label.
func GetStateStyle(state string) lipgloss.Style {
	switch state {
	case "active":
		return TextSuccessStyle
	case "inactive":
		return TextSecondaryStyle
	case "error":
		return TextErrorStyle
	default:
		return TextStyle
	}
}

// Initialize tells lipgloss which background the adaptive colours target.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
