package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dice-room/internal/ui/common"
)

// Field is one rendered form row.
type Field struct {
	Label   string
	Input   string // output of textinput.Model.View
	Focused bool
}

// Form renders labelled inputs with an optional validation error and a
// busy indicator.
func Form(fields []Field, errText, busy string) string {
	rows := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		marker := "  "
		if f.Focused {
			marker = common.SelectedStyle.Render("▶ ")
		}
		rows = append(rows, marker+common.LabelStyle.Render(f.Label)+f.Input)
	}

	var footer []string
	if errText != "" {
		footer = append(footer, common.ErrorStyle.Render(errText))
	}
	if busy != "" {
		footer = append(footer, busy)
	}
	if len(footer) > 0 {
		rows = append(rows, "", strings.Join(footer, "  "))
	}
	return common.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
