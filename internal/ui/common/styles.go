// Package common provides shared styles and utilities for the UI.
package common

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles shared by every page
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WarnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	CreditStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Icons
const (
	DiceIcon   = "🎲"
	RoomIcon   = "🏠"
	TrophyIcon = "🏆"
	OpenIcon   = "🟢"
	ClosedIcon = "🔴"
)
