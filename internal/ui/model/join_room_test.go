package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/apperrors"
	"github.com/palemoky/dice-room/internal/sound"
	"github.com/palemoky/dice-room/internal/storage"
)

func TestJoinRoomPage_PrefillsCachedRoom(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, NewJoinRoomPage(f.deps).Input())

	f.store.SaveRoomID(context.Background(), 1001)
	p := NewJoinRoomPage(f.deps)
	assert.Equal(t, "1001", p.Input())
	assert.Equal(t, "加入房间", p.Title())
}

func TestJoinRoomPage_InvalidInput(t *testing.T) {
	for _, input := range []string{"", "abc", "0", "-5", "12.5"} {
		t.Run(input, func(t *testing.T) {
			f := newFixture(t)
			p := NewJoinRoomPage(f.deps)
			p.input.SetValue(input)

			_, cmd := p.Update(key("enter"))
			assert.Nil(t, cmd)
			assert.Equal(t, "房间号必须是正整数", p.ErrText())
			f.api.AssertNotCalled(t, "GetRoomDetail", mock.Anything, mock.Anything)
		})
	}
}

func TestJoinRoomPage_Success(t *testing.T) {
	f := newFixture(t)
	detail := &api.RoomInfoVO{RoomID: 42, Name: "午休局", TTL: 600, Round: 5, IsOpen: 1}
	f.api.On("GetRoomDetail", mock.Anything, api.RoomID(42)).Return(detail, nil).Once()
	f.api.On("GetRoomRank", mock.Anything, api.RoomID(42), "0").Return(&api.RankResult{
		PlayerRecords: []api.PlayerRecord{{PlayerID: 9, Name: "Bob", Score: 15}},
	}, nil).Once()

	p := NewJoinRoomPage(f.deps)
	p.input.SetValue(" 42 ")

	_, cmd := p.Update(key("enter"))
	assert.Contains(t, p.View(), "查询中")
	joined, ok := find[roomJoinedMsg](collect(cmd))
	require.True(t, ok)

	_, cmd = p.Update(joined)
	require.NotNil(t, p.Panel())
	assert.Same(t, detail, p.Panel().Detail())
	assert.Equal(t, "房间 #42", p.Title())

	cached := f.store.GetRoomInfo(context.Background())
	require.NotNil(t, cached)
	assert.Equal(t, storage.CachedRoom{RoomID: 42, Name: "午休局", TTL: 600, Round: 5}, *cached)

	msgs := collect(cmd)
	notice, ok := find[NotifyMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "已加入房间 午休局", notice.Text)

	for _, m := range msgs {
		p.Update(m)
	}
	require.Len(t, p.Panel().Records(), 1)
	assert.Zero(t, p.Panel().Pending())
	assert.Equal(t, []string{sound.CueSuccess, sound.CueDice}, f.sound.played)
}

func TestJoinRoomPage_NotFoundClearsCache(t *testing.T) {
	f := newFixture(t)
	f.store.Remember(context.Background(), storage.CachedRoom{RoomID: 1001, Name: "旧房间", Round: 1})
	f.api.On("GetRoomDetail", mock.Anything, api.RoomID(1001)).Return(nil, apperrors.ErrRoomNotFound).Once()

	p := NewJoinRoomPage(f.deps)
	_, cmd := p.Update(key("enter"))
	joined, ok := find[roomJoinedMsg](collect(cmd))
	require.True(t, ok)

	_, cmd = p.Update(joined)
	msg, ok := find[NotifyMsg](collect(cmd))
	require.True(t, ok)
	assert.True(t, msg.Error)
	assert.Equal(t, "房间不存在", msg.Text)
	assert.Nil(t, p.Panel())

	_, found := f.store.GetRoomID(context.Background())
	assert.False(t, found)
	assert.Nil(t, f.store.GetRoomInfo(context.Background()))
}

func TestJoinRoomPage_OtherErrorKeepsCache(t *testing.T) {
	f := newFixture(t)
	f.store.SaveRoomID(context.Background(), 1001)
	f.api.On("GetRoomDetail", mock.Anything, api.RoomID(1001)).
		Return(nil, apperrors.NewHTTPError("room_info", 502)).Once()

	p := NewJoinRoomPage(f.deps)
	_, cmd := p.Update(key("enter"))
	joined, _ := find[roomJoinedMsg](collect(cmd))
	p.Update(joined)

	_, found := f.store.GetRoomID(context.Background())
	assert.True(t, found)
}
