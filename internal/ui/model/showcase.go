package model

import (
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/ui/common"
	"github.com/palemoky/dice-room/internal/ui/view"
)

// sampleRecords feed the table demo.
var sampleRecords = []api.PlayerRecord{
	{PlayerID: 1, CardNum: "01", Name: "Alice", Round: 1, Dice: "6,6,6", DiceOutcome: "豹子", Score: 18},
	{PlayerID: 2, CardNum: "02", Name: "Bob", Round: 1, Dice: "4,5,6", DiceOutcome: "顺子", Score: 15},
	{PlayerID: 3, CardNum: "03", Name: "Carol", Round: 1, Dice: "2,2,5", DiceOutcome: "对子", Score: 9},
}

// ShowcasePage demonstrates the widget kit used by the other pages.
type ShowcasePage struct {
	spinner  spinner.Model
	progress progress.Model
	percent  float64
	table    table.Model
	input    textinput.Model
	echo     string
}

func NewShowcasePage() *ShowcasePage {
	columns := []table.Column{
		{Title: "玩家", Width: 8},
		{Title: "牌号", Width: 4},
		{Title: "骰子", Width: 7},
		{Title: "结果", Width: 6},
		{Title: "积分", Width: 4},
	}
	rows := make([]table.Row, 0, len(sampleRecords))
	for _, r := range sampleRecords {
		rows = append(rows, table.Row{r.Name, r.CardNum.String(), r.Dice.String(), r.DiceOutcome.String(), strconv.Itoa(r.Score)})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(true),
	)

	ti := textinput.New()
	ti.Placeholder = "随便输入点什么"
	ti.CharLimit = 20
	ti.Width = 24

	return &ShowcasePage{
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		percent:  0.3,
		table:    t,
		input:    ti,
	}
}

func (p *ShowcasePage) Init() tea.Cmd { return p.spinner.Tick }

func (p *ShowcasePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.input.Focused() {
			switch msg.Type {
			case tea.KeyEnter:
				p.echo = p.input.Value()
				p.input.SetValue("")
				return p, nil
			case tea.KeyTab:
				p.input.Blur()
				p.table.Focus()
				return p, nil
			}
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}

		switch msg.String() {
		case "left", "h":
			p.percent = max(0, p.percent-0.1)
			return p, nil
		case "right", "l":
			p.percent = min(1, p.percent+0.1)
			return p, nil
		case "tab":
			p.table.Blur()
			return p, p.input.Focus()
		}
		var cmd tea.Cmd
		p.table, cmd = p.table.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *ShowcasePage) View() string {
	selected := ""
	if row := p.table.SelectedRow(); row != nil {
		selected = common.HintStyle.Render("选中: " + row[0])
	}
	echo := common.HintStyle.Render("回显: " + common.OrDash(p.echo))

	return view.Showcase([]view.Section{
		{Title: "Spinner", Body: p.spinner.View() + " 掷骰中..."},
		{Title: "Progress", Body: p.progress.ViewAs(p.percent)},
		{Title: "Table", Body: p.table.View() + "\n" + selected},
		{Title: "Input", Body: p.input.View() + "\n" + echo},
	})
}

func (p *ShowcasePage) Title() string { return "组件展示" }

func (p *ShowcasePage) Help() string {
	return "←→ 进度 | ↑↓ 表格 | Tab 切换输入框 | ESC 返回"
}

// Percent returns the progress demo value.
func (p *ShowcasePage) Percent() float64 { return p.percent }
