// Package api is a typed client for the room REST service.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// businessOK is the embedded success code of every response envelope.
const businessOK = 200

// RoomID identifies a room. The service sends it either as a JSON number or
// as a string holding an integer; both decode to the same value.
type RoomID int64

// ParseRoomID parses decimal user input such as "42".
func ParseRoomID(s string) (RoomID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid room id %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid room id %q: must be positive", s)
	}
	return RoomID(n), nil
}

func (id RoomID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id *RoomID) UnmarshalJSON(b []byte) error {
	n, err := decodeFlexInt(b)
	if err != nil {
		return fmt.Errorf("roomId: %w", err)
	}
	*id = RoomID(n)
	return nil
}

// PlayerID identifies a player on the leaderboard. Decoded like RoomID.
type PlayerID int64

func (id PlayerID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id *PlayerID) UnmarshalJSON(b []byte) error {
	n, err := decodeFlexInt(b)
	if err != nil {
		return fmt.Errorf("playerId: %w", err)
	}
	*id = PlayerID(n)
	return nil
}

// decodeFlexInt accepts 42, "42" and null (as 0).
func decodeFlexInt(b []byte) (int64, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return 0, nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		return strconv.ParseInt(s, 10, 64)
	}
	return strconv.ParseInt(string(b), 10, 64)
}

// Text is a display field the service sends as a string or as a number, such
// as a card number or an epoch timestamp. Numbers keep their JSON spelling.
type Text string

func (t Text) String() string { return string(t) }

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", b)
		}
		*t = Text(n.String())
	}
	return nil
}

// envelope is the common response wrapper {code, message, data}.
type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	Name  string `json:"name"`
	TTL   int    `json:"ttl"` // 存活时间（秒）
	Round int    `json:"round"`
}

// CreateRoomResult 创建房间返回
type CreateRoomResult struct {
	RoomID RoomID `json:"roomId"`
}

// RoomSummary is the short room info shape.
type RoomSummary struct {
	RoomID RoomID `json:"roomId"`
	Name   string `json:"name"`
	TTL    int    `json:"ttl"`
	Round  int    `json:"round"`
}

// RoomInfoVO is the full room info shape.
type RoomInfoVO struct {
	RoomID     RoomID `json:"roomId"`
	Name       string `json:"name"`
	TTL        int    `json:"ttl"`
	Round      int    `json:"round"`
	IsOpen     int    `json:"isOpen"` // 1 开启, 0 关闭
	IsDel      int    `json:"isDel"`
	CreateTime Text   `json:"createTime"`
	UpdateTime Text   `json:"updateTime"`
}

// Opened reports whether the room accepts rolls.
func (r *RoomInfoVO) Opened() bool { return r.IsOpen == 1 }

// Deleted reports whether the room was removed server-side.
func (r *RoomInfoVO) Deleted() bool { return r.IsDel == 1 }

// Summary projects the full shape onto RoomSummary.
func (r *RoomInfoVO) Summary() RoomSummary {
	return RoomSummary{RoomID: r.RoomID, Name: r.Name, TTL: r.TTL, Round: r.Round}
}

// PlayerRecord 排行榜中的一行
type PlayerRecord struct {
	PlayerID    PlayerID `json:"playerId"`
	CardNum     Text     `json:"cardnum"`
	Name        string   `json:"name"`
	Round       int      `json:"round"`
	Dice        Text     `json:"dice"`
	DiceOutcome Text     `json:"diceOutcome"`
	Score       int      `json:"score"`
	RollTime    Text     `json:"rollTime"`
}

// RankResult 排行榜
type RankResult struct {
	PlayerRecords []PlayerRecord `json:"playerRecords"`
}
