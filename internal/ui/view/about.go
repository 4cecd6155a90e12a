package view

import (
	"strings"

	"github.com/palemoky/dice-room/internal/ui/common"
)

// About renders the about page.
func About(baseURL, storagePath, logPath string) string {
	lines := []string{
		common.DiceIcon + " 骰子房间",
		"",
		"创建房间、加入房间、调整轮次并查看排行榜。",
		"房间由服务端管理，本地只缓存当前房间。",
		"",
		"服务地址: " + common.OrDash(baseURL),
		"本地缓存: " + common.OrDash(storagePath),
		"调试日志: " + common.OrDash(logPath),
	}
	return common.BoxStyle.Padding(1, 3).Render(strings.Join(lines, "\n"))
}
