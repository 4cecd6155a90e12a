// Package model contains the bubbletea models behind each page.
package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/sound"
	"github.com/palemoky/dice-room/internal/storage"
)

// RoomAPI is the subset of *api.Client the pages call.
type RoomAPI interface {
	CreateRoom(ctx context.Context, req api.CreateRoomRequest) (*api.CreateRoomResult, error)
	GetRoomInfo(ctx context.Context, roomID api.RoomID) (*api.RoomSummary, error)
	GetRoomDetail(ctx context.Context, roomID api.RoomID) (*api.RoomInfoVO, error)
	UpdateRoomRound(ctx context.Context, roomID api.RoomID, round int) error
	GetRoomRank(ctx context.Context, roomID api.RoomID, roleType string) (*api.RankResult, error)
	OpenRoom(ctx context.Context, roomID api.RoomID) error
	CloseRoom(ctx context.Context, roomID api.RoomID) error
}

var _ RoomAPI = (*api.Client)(nil)

// Deps are the collaborators shared by every page.
type Deps struct {
	API      RoomAPI
	Storage  *storage.LocalStorage
	Sound    sound.Player
	RoleType string // roleType sent with leaderboard requests
	BaseURL  string // shown on the about page
	CacheLoc string // shown on the about page
	LogPath  string
	Log      zerolog.Logger
}

func (d Deps) play(cue string) {
	if d.Sound != nil {
		d.Sound.Play(cue)
	}
}

// Page is one routed screen.
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	Title() string
	Help() string
}

// --- Tea Messages ---

// NavigateMsg asks the app to route to Path.
type NavigateMsg struct {
	Path string
}

// BackMsg asks the app to return to the previous route.
type BackMsg struct{}

// NotifyMsg shows a temporary notice.
type NotifyMsg struct {
	Text  string
	Error bool
}

// clearNoticeMsg removes the notice with the given sequence number.
type clearNoticeMsg struct {
	seq int
}

// Navigate returns a command emitting NavigateMsg.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// Notify returns a command emitting a success notice.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: text} }
}

// NotifyError returns a command emitting an error notice with err's message.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: err.Error(), Error: true} }
}
