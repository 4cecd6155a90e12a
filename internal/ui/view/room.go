package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/ui/common"
)

// RoomCard renders room details. Fields of the full shape are shown only
// when detail is non-nil.
func RoomCard(summary api.RoomSummary, detail *api.RoomInfoVO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", common.RoomIcon, summary.Name)
	sb.WriteString(strings.Repeat("─", 32) + "\n")
	fmt.Fprintf(&sb, "%s%s\n", common.LabelStyle.Render("房间号"), summary.RoomID)
	fmt.Fprintf(&sb, "%s%s\n", common.LabelStyle.Render("存活时间"), common.FormatTTL(summary.TTL))
	fmt.Fprintf(&sb, "%s%d\n", common.LabelStyle.Render("当前轮次"), summary.Round)

	if detail != nil {
		state := common.ClosedIcon + " 已关闭"
		if detail.Opened() {
			state = common.OpenIcon + " 开放中"
		}
		if detail.Deleted() {
			state = "已删除"
		}
		fmt.Fprintf(&sb, "%s%s\n", common.LabelStyle.Render("状态"), state)
		fmt.Fprintf(&sb, "%s%s\n", common.LabelStyle.Render("创建时间"), common.OrDash(detail.CreateTime.String()))
		fmt.Fprintf(&sb, "%s%s", common.LabelStyle.Render("更新时间"), common.OrDash(detail.UpdateTime.String()))
	}
	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// RoomPanel places the room card next to the leaderboard.
func RoomPanel(summary api.RoomSummary, detail *api.RoomInfoVO, records []api.PlayerRecord, loading string) string {
	board := Leaderboard(records)
	if loading != "" {
		board = lipgloss.JoinVertical(lipgloss.Left, board, loading)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, RoomCard(summary, detail), "  ", board)
}
