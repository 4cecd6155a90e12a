package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dice-room/internal/ui/common"
)

// Section is a titled widget demo.
type Section struct {
	Title string
	Body  string
}

// Showcase stacks widget demos vertically.
func Showcase(sections []Section) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		title := common.SelectedStyle.Render(s.Title)
		blocks = append(blocks, common.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, s.Body)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
