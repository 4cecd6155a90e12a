package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/storage"
)

// mockRoomAPI 房间接口 mock
type mockRoomAPI struct {
	mock.Mock
}

func (m *mockRoomAPI) CreateRoom(ctx context.Context, req api.CreateRoomRequest) (*api.CreateRoomResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.CreateRoomResult), args.Error(1)
}

func (m *mockRoomAPI) GetRoomInfo(ctx context.Context, roomID api.RoomID) (*api.RoomSummary, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.RoomSummary), args.Error(1)
}

func (m *mockRoomAPI) GetRoomDetail(ctx context.Context, roomID api.RoomID) (*api.RoomInfoVO, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.RoomInfoVO), args.Error(1)
}

func (m *mockRoomAPI) UpdateRoomRound(ctx context.Context, roomID api.RoomID, round int) error {
	return m.Called(ctx, roomID, round).Error(0)
}

func (m *mockRoomAPI) GetRoomRank(ctx context.Context, roomID api.RoomID, roleType string) (*api.RankResult, error) {
	args := m.Called(ctx, roomID, roleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.RankResult), args.Error(1)
}

func (m *mockRoomAPI) OpenRoom(ctx context.Context, roomID api.RoomID) error {
	return m.Called(ctx, roomID).Error(0)
}

func (m *mockRoomAPI) CloseRoom(ctx context.Context, roomID api.RoomID) error {
	return m.Called(ctx, roomID).Error(0)
}

// cuePlayer records played cues.
type cuePlayer struct {
	played []string
}

func (p *cuePlayer) Play(name string) { p.played = append(p.played, name) }

type fixture struct {
	api   *mockRoomAPI
	store *storage.LocalStorage
	sound *cuePlayer
	deps  Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		api:   &mockRoomAPI{},
		store: storage.NewLocalStorage(storage.NewMemoryBackend(), zerolog.Nop()),
		sound: &cuePlayer{},
	}
	f.deps = Deps{
		API:      f.api,
		Storage:  f.store,
		Sound:    f.sound,
		RoleType: "0",
		BaseURL:  "http://localhost:8080/api",
		CacheLoc: "memory",
		Log:      zerolog.Nop(),
	}
	t.Cleanup(func() { f.api.AssertExpectations(t) })
	return f
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
