// Package view provides UI rendering functions. Renderers take plain data
// and never touch models, so they can be tested in isolation.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dice-room/internal/ui/common"
)

// Notice is a one-line status message shown under the title.
type Notice struct {
	Text  string
	Error bool
}

// Frame is the chrome around every page.
type Frame struct {
	Title  string
	Notice *Notice
	Body   string
	Help   string
	Path   string // current route, shown in the footer
	Width  int
	Height int
}

// Render lays out a frame centered in the terminal.
func Render(f Frame) string {
	var sb strings.Builder

	sb.WriteString(center(f.Width, common.TitleStyle(f.Title)))
	sb.WriteString("\n\n")

	if f.Notice != nil && f.Notice.Text != "" {
		style := common.SuccessStyle
		if f.Notice.Error {
			style = common.WarnStyle
		}
		sb.WriteString(center(f.Width, style.Render(f.Notice.Text)))
		sb.WriteString("\n\n")
	}

	sb.WriteString(center(f.Width, f.Body))
	sb.WriteString("\n\n")

	if f.Help != "" {
		sb.WriteString(center(f.Width, common.HintStyle.Render(f.Help)))
		sb.WriteString("\n")
	}
	if f.Path != "" {
		sb.WriteString(center(f.Width, common.CreditStyle.Render(f.Path)))
	}

	content := common.DocStyle.Render(sb.String())
	if f.Width <= 0 || f.Height <= 0 {
		return content
	}
	return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Center, content)
}

func center(width int, s string) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
