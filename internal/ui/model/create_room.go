package model

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/sound"
	"github.com/palemoky/dice-room/internal/storage"
	"github.com/palemoky/dice-room/internal/ui/view"
)

const (
	fieldName = iota
	fieldTTL
	fieldRound
	fieldCount
)

const (
	defaultTTL   = "3600"
	defaultRound = "1"
)

type roomCreatedMsg struct {
	req    api.CreateRoomRequest
	result *api.CreateRoomResult
	err    error
}

// CreateRoomPage collects name, ttl and round, then shows the new room.
type CreateRoomPage struct {
	deps    Deps
	inputs  []textinput.Model
	focus   int
	errText string
	busy    bool
	spinner spinner.Model

	panel *RoomPanel
}

func NewCreateRoomPage(deps Deps) *CreateRoomPage {
	p := &CreateRoomPage{
		deps:    deps,
		inputs:  make([]textinput.Model, fieldCount),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	name := textinput.New()
	name.Placeholder = "房间名称"
	name.CharLimit = 32
	name.Width = 24

	ttl := textinput.New()
	ttl.Placeholder = "存活秒数"
	ttl.CharLimit = 8
	ttl.Width = 24
	ttl.SetValue(defaultTTL)

	round := textinput.New()
	round.Placeholder = "起始轮次"
	round.CharLimit = 4
	round.Width = 24
	round.SetValue(defaultRound)

	p.inputs[fieldName] = name
	p.inputs[fieldTTL] = ttl
	p.inputs[fieldRound] = round
	p.inputs[fieldName].Focus()
	return p
}

func (p *CreateRoomPage) Init() tea.Cmd { return textinput.Blink }

// parseForm validates the inputs.
func (p *CreateRoomPage) parseForm() (api.CreateRoomRequest, error) {
	name := strings.TrimSpace(p.inputs[fieldName].Value())
	if name == "" {
		return api.CreateRoomRequest{}, errors.New("请输入房间名称")
	}
	ttl, err := strconv.Atoi(strings.TrimSpace(p.inputs[fieldTTL].Value()))
	if err != nil || ttl <= 0 {
		return api.CreateRoomRequest{}, errors.New("存活时间必须是正整数（秒）")
	}
	round, err := strconv.Atoi(strings.TrimSpace(p.inputs[fieldRound].Value()))
	if err != nil || round <= 0 {
		return api.CreateRoomRequest{}, errors.New("轮次必须是正整数")
	}
	return api.CreateRoomRequest{Name: name, TTL: ttl, Round: round}, nil
}

func (p *CreateRoomPage) submit() tea.Cmd {
	req, err := p.parseForm()
	if err != nil {
		p.errText = err.Error()
		return nil
	}
	p.errText = ""
	p.busy = true
	return tea.Batch(func() tea.Msg {
		res, err := p.deps.API.CreateRoom(context.Background(), req)
		return roomCreatedMsg{req: req, result: res, err: err}
	}, p.spinner.Tick)
}

func (p *CreateRoomPage) setFocus(i int) tea.Cmd {
	p.inputs[p.focus].Blur()
	p.focus = (i + fieldCount) % fieldCount
	return p.inputs[p.focus].Focus()
}

func (p *CreateRoomPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if p.panel != nil {
		var cmd tea.Cmd
		p.panel, cmd = p.panel.Update(msg)
		return p, cmd
	}

	switch msg := msg.(type) {
	case roomCreatedMsg:
		p.busy = false
		if msg.err != nil {
			return p, NotifyError(msg.err)
		}
		if msg.result == nil {
			return p, NotifyError(errors.New("创建房间失败"))
		}
		summary := api.RoomSummary{
			RoomID: msg.result.RoomID,
			Name:   msg.req.Name,
			TTL:    msg.req.TTL,
			Round:  msg.req.Round,
		}
		if p.deps.Storage != nil {
			p.deps.Storage.Remember(context.Background(), storage.CachedRoomFrom(summary))
		}
		p.deps.play(sound.CueSuccess)
		p.panel = NewRoomPanel(p.deps, summary)
		return p, tea.Batch(Notify("房间创建成功，房间号 "+summary.RoomID.String()), p.panel.Init())

	case spinner.TickMsg:
		if !p.busy {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.String() {
		case "tab", "down":
			return p, p.setFocus(p.focus + 1)
		case "shift+tab", "up":
			return p, p.setFocus(p.focus - 1)
		case "enter":
			if p.focus < fieldCount-1 {
				return p, p.setFocus(p.focus + 1)
			}
			return p, p.submit()
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *CreateRoomPage) View() string {
	if p.panel != nil {
		return p.panel.View()
	}
	labels := [fieldCount]string{"名称", "存活(秒)", "轮次"}
	fields := make([]view.Field, fieldCount)
	for i := range fieldCount {
		fields[i] = view.Field{Label: labels[i], Input: p.inputs[i].View(), Focused: i == p.focus}
	}
	busy := ""
	if p.busy {
		busy = p.spinner.View() + " 创建中..."
	}
	return view.Form(fields, p.errText, busy)
}

func (p *CreateRoomPage) Title() string {
	if p.panel != nil {
		return "房间 #" + p.panel.Summary().RoomID.String()
	}
	return "创建房间"
}

func (p *CreateRoomPage) Help() string {
	if p.panel != nil {
		return p.panel.Help()
	}
	return "Tab/↑↓ 切换 | 回车下一项/提交 | ESC 返回"
}

// Panel returns the room panel, nil until the room is created.
func (p *CreateRoomPage) Panel() *RoomPanel { return p.panel }

// ErrText returns the current validation error.
func (p *CreateRoomPage) ErrText() string { return p.errText }
