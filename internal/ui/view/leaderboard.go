package view

import (
	"fmt"
	"strings"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/ui/common"
)

// Leaderboard renders player records in server order.
func Leaderboard(records []api.PlayerRecord) string {
	var sb strings.Builder
	sb.WriteString(common.TrophyIcon + " 排行榜\n")
	sb.WriteString(strings.Repeat("─", 56) + "\n")

	if len(records) == 0 {
		sb.WriteString("暂无掷骰记录")
		return common.BoxStyle.Render(sb.String())
	}

	sb.WriteString("排名\t玩家\t\t牌号\t轮次\t骰子\t结果\t积分\n")
	sb.WriteString(strings.Repeat("─", 56) + "\n")
	for i, r := range records {
		fmt.Fprintf(&sb, "%2d.\t%s\t\t%s\t%d\t%s\t%s\t%d\n",
			i+1, common.TruncateName(r.Name, 10), common.OrDash(r.CardNum.String()), r.Round,
			common.OrDash(r.Dice.String()), common.OrDash(r.DiceOutcome.String()), r.Score)
	}
	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
