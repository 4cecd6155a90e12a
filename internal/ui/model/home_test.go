package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/storage"
)

func navTarget(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	nav, ok := find[NavigateMsg](collect(cmd))
	require.True(t, ok, "expected a navigation")
	return nav.Path
}

func TestHomePage_Menu(t *testing.T) {
	f := newFixture(t)
	home := NewHomePage(f.deps)

	assert.Len(t, home.items, 4)
	assert.Equal(t, 0, home.Selected())
	assert.NotContains(t, home.View(), "继续当前房间")

	// 上边界
	home.Update(key("up"))
	assert.Equal(t, 0, home.Selected())

	for range 10 {
		home.Update(key("j"))
	}
	assert.Equal(t, 3, home.Selected(), "should stop at the last item")

	home.Update(key("k"))
	_, cmd := home.Update(key("enter"))
	assert.Equal(t, "/about", navTarget(t, cmd))
}

func TestHomePage_DigitShortcut(t *testing.T) {
	f := newFixture(t)
	home := NewHomePage(f.deps)

	_, cmd := home.Update(key("1"))
	assert.Equal(t, "/create-room", navTarget(t, cmd))

	_, cmd = home.Update(key("4"))
	assert.Equal(t, "/primevue-test", navTarget(t, cmd))
	assert.Equal(t, 3, home.Selected())

	_, cmd = home.Update(key("9"))
	assert.Nil(t, cmd)
}

func TestHomePage_CachedRoom(t *testing.T) {
	f := newFixture(t)
	f.store.Remember(context.Background(), storage.CachedRoom{RoomID: 1001, Name: "周五骰局", TTL: 3600, Round: 2})

	home := NewHomePage(f.deps)
	require.Len(t, home.items, 5)
	assert.Contains(t, home.View(), "继续当前房间")
	assert.Contains(t, home.Help(), "清除")

	_, cmd := home.Update(key("enter"))
	assert.Equal(t, "/join-room", navTarget(t, cmd))

	_, cmd = home.Update(key("d"))
	msg, ok := find[NotifyMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "已清除当前房间", msg.Text)
	assert.Len(t, home.items, 4)

	_, found := f.store.GetRoomID(context.Background())
	assert.False(t, found)
	assert.Nil(t, f.store.GetRoomInfo(context.Background()))

	// 没有缓存时 D 不产生通知
	_, cmd = home.Update(key("d"))
	assert.Nil(t, cmd)
}

func TestHomePage_SelectionClampedAfterClear(t *testing.T) {
	f := newFixture(t)
	f.store.Remember(context.Background(), storage.CachedRoom{RoomID: api.RoomID(7), Name: "x", Round: 1})

	home := NewHomePage(f.deps)
	home.Update(key("5"))
	assert.Equal(t, 4, home.Selected())

	home.Update(key("d"))
	assert.Equal(t, 3, home.Selected())
}

func TestHomePage_Quit(t *testing.T) {
	f := newFixture(t)
	home := NewHomePage(f.deps)

	_, cmd := home.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
