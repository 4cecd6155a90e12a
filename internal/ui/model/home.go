package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/storage"
	"github.com/palemoky/dice-room/internal/ui/common"
	"github.com/palemoky/dice-room/internal/ui/view"
)

type menuItem struct {
	label string
	path  string
}

// HomePage is the main menu.
type HomePage struct {
	deps     Deps
	cached   *storage.CachedRoom
	items    []menuItem
	selected int
}

// NewHomePage builds the menu. The cached room, if any, adds a resume entry.
func NewHomePage(deps Deps) *HomePage {
	h := &HomePage{deps: deps}
	if deps.Storage != nil {
		h.cached = deps.Storage.GetRoomInfo(context.Background())
	}
	h.buildItems()
	return h
}

func (h *HomePage) buildItems() {
	h.items = h.items[:0]
	if h.cached != nil {
		h.items = append(h.items, menuItem{"继续当前房间", "/join-room"})
	}
	h.items = append(h.items,
		menuItem{"创建房间", "/create-room"},
		menuItem{"加入房间", "/join-room"},
		menuItem{"关于", "/about"},
		menuItem{"组件展示", "/primevue-test"},
	)
	if h.selected >= len(h.items) {
		h.selected = len(h.items) - 1
	}
}

func (h *HomePage) Init() tea.Cmd { return nil }

func (h *HomePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch key.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.items)-1 {
			h.selected++
		}
	case "enter":
		return h, Navigate(h.items[h.selected].path)
	case "d":
		if h.cached != nil && h.deps.Storage != nil {
			h.deps.Storage.Clear(context.Background())
			h.cached = nil
			h.buildItems()
			return h, Notify("已清除当前房间")
		}
	case "q":
		return h, tea.Quit
	default:
		if r := key.Runes; len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			if idx := int(r[0] - '1'); idx < len(h.items) {
				h.selected = idx
				return h, Navigate(h.items[idx].path)
			}
		}
	}
	return h, nil
}

func (h *HomePage) View() string {
	labels := make([]string, len(h.items))
	for i, it := range h.items {
		labels[i] = it.label
	}
	var cached *view.CachedRoom
	if h.cached != nil {
		cached = &view.CachedRoom{RoomID: h.cached.RoomID, Name: h.cached.Name, Round: h.cached.Round}
	}
	return view.Home(labels, h.selected, cached)
}

func (h *HomePage) Title() string { return common.DiceIcon + " 骰子房间" }

func (h *HomePage) Help() string {
	if h.cached != nil {
		return "↑↓ 选择 | 回车确认 | D 清除当前房间 | Q 退出"
	}
	return "↑↓ 选择 | 回车确认 | Q 退出"
}

// Selected returns the highlighted menu index.
func (h *HomePage) Selected() int { return h.selected }
