package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/palemoky/dice-room/internal/api"
)

// 存储键
const (
	KeyRoomID   = "currentRoomId"
	KeyRoomInfo = "currentRoomInfo"
)

// CachedRoom 本地缓存的当前房间
type CachedRoom struct {
	RoomID api.RoomID `json:"roomId"`
	Name   string     `json:"name"`
	TTL    int        `json:"ttl"`
	Round  int        `json:"round"`
}

// CachedRoomFrom 从接口返回的房间信息生成缓存
func CachedRoomFrom(s api.RoomSummary) CachedRoom {
	return CachedRoom{RoomID: s.RoomID, Name: s.Name, TTL: s.TTL, Round: s.Round}
}

// LocalStorage 当前房间缓存。任何存储或解析错误只记录日志，
// 读取时返回“不存在”，写入时静默失败。
type LocalStorage struct {
	backend Backend
	log     zerolog.Logger
}

// NewLocalStorage 创建缓存
func NewLocalStorage(backend Backend, log zerolog.Logger) *LocalStorage {
	return &LocalStorage{backend: backend, log: log}
}

// SaveRoomID 保存房间ID
func (s *LocalStorage) SaveRoomID(ctx context.Context, roomID api.RoomID) {
	if err := s.backend.Set(ctx, KeyRoomID, roomID.String()); err != nil {
		s.log.Error().Err(err).Msg("保存房间ID失败")
	}
}

// GetRoomID 获取房间ID
func (s *LocalStorage) GetRoomID(ctx context.Context) (api.RoomID, bool) {
	raw, ok, err := s.backend.Get(ctx, KeyRoomID)
	if err != nil {
		s.log.Error().Err(err).Msg("获取房间ID失败")
		return 0, false
	}
	if !ok || raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.log.Error().Err(err).Str("value", raw).Msg("获取房间ID失败")
		return 0, false
	}
	return api.RoomID(n), true
}

// ClearRoomID 清除房间ID
func (s *LocalStorage) ClearRoomID(ctx context.Context) {
	if err := s.backend.Remove(ctx, KeyRoomID); err != nil {
		s.log.Error().Err(err).Msg("清除房间ID失败")
	}
}

// SaveRoomInfo 保存房间信息
func (s *LocalStorage) SaveRoomInfo(ctx context.Context, info CachedRoom) {
	raw, err := json.Marshal(info)
	if err != nil {
		s.log.Error().Err(err).Msg("保存房间信息失败")
		return
	}
	if err := s.backend.Set(ctx, KeyRoomInfo, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("保存房间信息失败")
	}
}

// GetRoomInfo 获取房间信息，不存在或已损坏时返回 nil
func (s *LocalStorage) GetRoomInfo(ctx context.Context) *CachedRoom {
	raw, ok, err := s.backend.Get(ctx, KeyRoomInfo)
	if err != nil {
		s.log.Error().Err(err).Msg("获取房间信息失败")
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var info *CachedRoom
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		s.log.Error().Err(err).Msg("获取房间信息失败")
		return nil
	}
	// null 或空对象都视为没有缓存
	if info == nil || *info == (CachedRoom{}) {
		return nil
	}
	return info
}

// ClearRoomInfo 清除房间信息
func (s *LocalStorage) ClearRoomInfo(ctx context.Context) {
	if err := s.backend.Remove(ctx, KeyRoomInfo); err != nil {
		s.log.Error().Err(err).Msg("清除房间信息失败")
	}
}

// Remember 同时缓存房间ID和房间信息
func (s *LocalStorage) Remember(ctx context.Context, info CachedRoom) {
	s.SaveRoomID(ctx, info.RoomID)
	s.SaveRoomInfo(ctx, info)
}

// Clear 清除当前房间的全部缓存
func (s *LocalStorage) Clear(ctx context.Context) {
	s.ClearRoomID(ctx)
	s.ClearRoomInfo(ctx)
}
