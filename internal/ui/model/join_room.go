package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/apperrors"
	"github.com/palemoky/dice-room/internal/sound"
	"github.com/palemoky/dice-room/internal/storage"
	"github.com/palemoky/dice-room/internal/ui/view"
)

type roomJoinedMsg struct {
	info *api.RoomInfoVO
	err  error
}

// JoinRoomPage looks a room up by id and shows it.
type JoinRoomPage struct {
	deps    Deps
	input   textinput.Model
	errText string
	busy    bool
	spinner spinner.Model

	panel *RoomPanel
}

// NewJoinRoomPage prefills the input with the cached room id.
func NewJoinRoomPage(deps Deps) *JoinRoomPage {
	ti := textinput.New()
	ti.Placeholder = "输入房间号"
	ti.CharLimit = 20
	ti.Width = 24
	ti.Focus()

	if deps.Storage != nil {
		if id, ok := deps.Storage.GetRoomID(context.Background()); ok {
			ti.SetValue(id.String())
		}
	}

	return &JoinRoomPage{
		deps:    deps,
		input:   ti,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p *JoinRoomPage) Init() tea.Cmd { return textinput.Blink }

func (p *JoinRoomPage) submit() tea.Cmd {
	id, err := api.ParseRoomID(strings.TrimSpace(p.input.Value()))
	if err != nil {
		p.errText = "房间号必须是正整数"
		return nil
	}
	p.errText = ""
	p.busy = true
	return tea.Batch(func() tea.Msg {
		info, err := p.deps.API.GetRoomDetail(context.Background(), id)
		return roomJoinedMsg{info: info, err: err}
	}, p.spinner.Tick)
}

func (p *JoinRoomPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if p.panel != nil {
		var cmd tea.Cmd
		p.panel, cmd = p.panel.Update(msg)
		return p, cmd
	}

	switch msg := msg.(type) {
	case roomJoinedMsg:
		p.busy = false
		if msg.err != nil {
			if apperrors.IsNotFound(msg.err) && p.deps.Storage != nil {
				p.deps.Storage.Clear(context.Background())
			}
			return p, NotifyError(msg.err)
		}
		if msg.info == nil {
			return p, NotifyError(apperrors.ErrRoomNotFound)
		}
		summary := msg.info.Summary()
		if p.deps.Storage != nil {
			p.deps.Storage.Remember(context.Background(), storage.CachedRoomFrom(summary))
		}
		p.deps.play(sound.CueSuccess)
		p.panel = NewRoomPanel(p.deps, summary)
		p.panel.detail = msg.info
		return p, tea.Batch(Notify("已加入房间 "+summary.Name), p.panel.loadRank(), p.panel.spinner.Tick)

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
		if msg.Type == tea.KeyEnter {
			return p, p.submit()
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *JoinRoomPage) View() string {
	if p.panel != nil {
		return p.panel.View()
	}
	busy := ""
	if p.busy {
		busy = p.spinner.View() + " 查询中..."
	}
	return view.Form([]view.Field{{Label: "房间号", Input: p.input.View(), Focused: true}}, p.errText, busy)
}

func (p *JoinRoomPage) Title() string {
	if p.panel != nil {
		return "房间 #" + p.panel.Summary().RoomID.String()
	}
	return "加入房间"
}

func (p *JoinRoomPage) Help() string {
	if p.panel != nil {
		return p.panel.Help()
	}
	return "回车加入 | ESC 返回"
}

// Panel returns the room panel, nil until a room is joined.
func (p *JoinRoomPage) Panel() *RoomPanel { return p.panel }

// Input returns the room id input value.
func (p *JoinRoomPage) Input() string { return p.input.Value() }

// ErrText returns the current validation error.
func (p *JoinRoomPage) ErrText() string { return p.errText }
