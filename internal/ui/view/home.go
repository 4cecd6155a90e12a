package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/ui/common"
)

// CachedRoom is the remembered room shown on the home page.
type CachedRoom struct {
	RoomID api.RoomID
	Name   string
	Round  int
}

// Home renders the main menu.
func Home(items []string, selected int, cached *CachedRoom) string {
	lines := []string{"请选择:", ""}
	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if i == selected {
			line = common.SelectedStyle.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	menu := common.BoxStyle.Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if cached == nil {
		return menu
	}
	current := fmt.Sprintf("%s 当前房间: %s (#%s) 第 %d 轮",
		common.RoomIcon, common.TruncateName(cached.Name, 16), cached.RoomID, cached.Round)
	return lipgloss.JoinVertical(lipgloss.Center, current, "", menu)
}
