package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/palemoky/dice-room/internal/apperrors"
)

// 业务失败且服务端未给出 message 时的提示
const (
	msgCreateRoomFailed = "创建房间失败"
	msgRoomInfoFailed   = "获取房间信息失败"
	msgUpdateRoundFail  = "修改轮次失败"
	msgRankFailed       = "获取排行榜失败"
	msgOpenRoomFailed   = "开启房间失败"
	msgCloseRoomFailed  = "关闭房间失败"
)

// CreateRoom 创建房间
func (c *Client) CreateRoom(ctx context.Context, req CreateRoomRequest) (*CreateRoomResult, error) {
	return do[*CreateRoomResult](ctx, c, call{
		op:       "create room",
		method:   http.MethodPost,
		path:     "/room/create",
		body:     req,
		fallback: msgCreateRoomFailed,
	})
}

// GetRoomInfo 获取房间基本信息。房间不存在时返回 apperrors.ErrRoomNotFound。
func (c *Client) GetRoomInfo(ctx context.Context, roomID RoomID) (*RoomSummary, error) {
	return do[*RoomSummary](ctx, c, infoCall(roomID))
}

// GetRoomDetail 获取房间完整信息（含开启状态和时间戳）。
func (c *Client) GetRoomDetail(ctx context.Context, roomID RoomID) (*RoomInfoVO, error) {
	return do[*RoomInfoVO](ctx, c, infoCall(roomID))
}

func infoCall(roomID RoomID) call {
	return call{
		op:       "room info",
		method:   http.MethodGet,
		path:     "/room/info/" + url.PathEscape(roomID.String()),
		fallback: msgRoomInfoFailed,
		notFound: apperrors.ErrRoomNotFound,
	}
}

// UpdateRoomRound 修改轮次
func (c *Client) UpdateRoomRound(ctx context.Context, roomID RoomID, round int) error {
	_, err := do[json.RawMessage](ctx, c, call{
		op:     "update round",
		method: http.MethodPatch,
		path:   "/room/round",
		query: url.Values{
			"roomId": {roomID.String()},
			"round":  {strconv.Itoa(round)},
		},
		fallback: msgUpdateRoundFail,
	})
	return err
}

// GetRoomRank 获取排行榜
func (c *Client) GetRoomRank(ctx context.Context, roomID RoomID, roleType string) (*RankResult, error) {
	return do[*RankResult](ctx, c, call{
		op:     "room rank",
		method: http.MethodGet,
		path:   "/room/rank",
		query: url.Values{
			"roomId":   {roomID.String()},
			"roleType": {roleType},
		},
		fallback: msgRankFailed,
	})
}

// OpenRoom 开启房间
func (c *Client) OpenRoom(ctx context.Context, roomID RoomID) error {
	return c.toggle(ctx, "open room", "/room/open", roomID, msgOpenRoomFailed)
}

// CloseRoom 关闭房间
func (c *Client) CloseRoom(ctx context.Context, roomID RoomID) error {
	return c.toggle(ctx, "close room", "/room/close", roomID, msgCloseRoomFailed)
}

func (c *Client) toggle(ctx context.Context, op, path string, roomID RoomID, fallback string) error {
	_, err := do[json.RawMessage](ctx, c, call{
		op:       op,
		method:   http.MethodPatch,
		path:     path,
		query:    url.Values{"roomId": {roomID.String()}},
		fallback: fallback,
	})
	return err
}
