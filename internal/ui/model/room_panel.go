package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/apperrors"
	"github.com/palemoky/dice-room/internal/sound"
	"github.com/palemoky/dice-room/internal/storage"
	"github.com/palemoky/dice-room/internal/ui/view"
)

type roomDetailMsg struct {
	info *api.RoomInfoVO
	err  error
}

type rankMsg struct {
	records []api.PlayerRecord
	err     error
}

type roundMsg struct {
	round int
	err   error
}

type openMsg struct {
	open bool
	err  error
}

// RoomPanel shows one room and drives its round, open state and leaderboard.
// It is embedded by the create and join pages once a room is known.
type RoomPanel struct {
	deps    Deps
	summary api.RoomSummary
	detail  *api.RoomInfoVO
	records []api.PlayerRecord

	pending       int
	roundInFlight bool // round keys are ignored until the PATCH returns
	spinner       spinner.Model
}

// NewRoomPanel creates a panel for summary. Details and the leaderboard are
// fetched by Init.
func NewRoomPanel(deps Deps, summary api.RoomSummary) *RoomPanel {
	return &RoomPanel{
		deps:    deps,
		summary: summary,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p *RoomPanel) Init() tea.Cmd {
	return tea.Batch(p.loadDetail(), p.loadRank(), p.spinner.Tick)
}

func (p *RoomPanel) roomID() api.RoomID { return p.summary.RoomID }

func (p *RoomPanel) loadDetail() tea.Cmd {
	p.pending++
	id := p.roomID()
	return func() tea.Msg {
		info, err := p.deps.API.GetRoomDetail(context.Background(), id)
		return roomDetailMsg{info: info, err: err}
	}
}

func (p *RoomPanel) loadRank() tea.Cmd {
	p.pending++
	id, role := p.roomID(), p.deps.RoleType
	return func() tea.Msg {
		res, err := p.deps.API.GetRoomRank(context.Background(), id, role)
		if err != nil || res == nil {
			return rankMsg{err: err}
		}
		return rankMsg{records: res.PlayerRecords}
	}
}

func (p *RoomPanel) setRound(round int) tea.Cmd {
	p.pending++
	p.roundInFlight = true
	id := p.roomID()
	return func() tea.Msg {
		return roundMsg{round: round, err: p.deps.API.UpdateRoomRound(context.Background(), id, round)}
	}
}

func (p *RoomPanel) setOpen(open bool) tea.Cmd {
	p.pending++
	id := p.roomID()
	return func() tea.Msg {
		var err error
		if open {
			err = p.deps.API.OpenRoom(context.Background(), id)
		} else {
			err = p.deps.API.CloseRoom(context.Background(), id)
		}
		return openMsg{open: open, err: err}
	}
}

func (p *RoomPanel) done() {
	if p.pending > 0 {
		p.pending--
	}
}

func (p *RoomPanel) remember() {
	if p.deps.Storage != nil {
		p.deps.Storage.Remember(context.Background(), storage.CachedRoomFrom(p.summary))
	}
}

func (p *RoomPanel) Update(msg tea.Msg) (*RoomPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.pending == 0 {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case roomDetailMsg:
		p.done()
		if msg.err != nil {
			if apperrors.IsNotFound(msg.err) && p.deps.Storage != nil {
				p.deps.Storage.Clear(context.Background())
			}
			return p, NotifyError(msg.err)
		}
		if msg.info != nil {
			p.detail = msg.info
			p.summary = msg.info.Summary()
			p.remember()
		}
		return p, nil

	case rankMsg:
		p.done()
		if msg.err != nil {
			return p, NotifyError(msg.err)
		}
		p.records = msg.records
		p.deps.play(sound.CueDice)
		return p, nil

	case roundMsg:
		p.done()
		p.roundInFlight = false
		if msg.err != nil {
			return p, NotifyError(msg.err)
		}
		p.summary.Round = msg.round
		if p.detail != nil {
			p.detail.Round = msg.round
		}
		p.remember()
		return p, Notify(fmt.Sprintf("轮次已更新为 %d", msg.round))

	case openMsg:
		p.done()
		if msg.err != nil {
			return p, NotifyError(msg.err)
		}
		text := "房间已关闭"
		if msg.open {
			text = "房间已开启"
		}
		return p, tea.Batch(Notify(text), p.loadDetail(), p.spinner.Tick)

	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *RoomPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "+", "=":
		if p.roundInFlight {
			return nil
		}
		return tea.Batch(p.setRound(p.summary.Round+1), p.spinner.Tick)
	case "-":
		if p.roundInFlight {
			return nil
		}
		if p.summary.Round <= 1 {
			return Notify("轮次不能小于 1")
		}
		return tea.Batch(p.setRound(p.summary.Round-1), p.spinner.Tick)
	case "o":
		return tea.Batch(p.setOpen(true), p.spinner.Tick)
	case "c":
		return tea.Batch(p.setOpen(false), p.spinner.Tick)
	case "r":
		return tea.Batch(p.loadDetail(), p.loadRank(), p.spinner.Tick)
	case "x":
		if p.deps.Storage != nil {
			p.deps.Storage.Clear(context.Background())
		}
		return Navigate("/")
	}
	return nil
}

func (p *RoomPanel) View() string {
	loading := ""
	if p.pending > 0 {
		loading = p.spinner.View() + " 加载中..."
	}
	return view.RoomPanel(p.summary, p.detail, p.records, loading)
}

func (p *RoomPanel) Help() string {
	return "+/- 轮次 | O 开启 | C 关闭 | R 刷新 | X 离开房间 | ESC 返回"
}

// Summary returns the room as currently known.
func (p *RoomPanel) Summary() api.RoomSummary { return p.summary }

// Detail returns the full room info, nil until loaded.
func (p *RoomPanel) Detail() *api.RoomInfoVO { return p.detail }

// Records returns the last loaded leaderboard.
func (p *RoomPanel) Records() []api.PlayerRecord { return p.records }

// Pending reports the number of in-flight requests.
func (p *RoomPanel) Pending() int { return p.pending }
