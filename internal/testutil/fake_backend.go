//go:build !production

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// FakeRoom 假后端中保存的房间
type FakeRoom struct {
	RoomID     int64
	Name       string
	TTL        int
	Round      int
	IsOpen     int
	IsDel      int
	CreateTime string
	UpdateTime string
	Records    []map[string]any
}

// Request 记录收到的请求，供断言使用
type Request struct {
	Method    string
	Path      string
	Query     map[string]string
	Body      map[string]any
	RequestID string
}

// FakeBackend 用 chi 实现的房间服务替身
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	nextID   int64
	rooms    map[int64]*FakeRoom
	requests []Request

	// Override 非空时直接处理所有请求，用于构造异常响应
	Override http.HandlerFunc
	// StringIDs 为 true 时 roomId 以字符串返回
	StringIDs bool
}

// NewFakeBackend starts a fake room service. The returned URL includes the
// /api base path.
func NewFakeBackend(t *testing.T) (*FakeBackend, string) {
	t.Helper()

	fb := &FakeBackend{nextID: 1000, rooms: make(map[int64]*FakeRoom)}

	r := chi.NewRouter()
	r.Use(fb.record)
	r.Route("/api/room", func(r chi.Router) {
		r.Post("/create", fb.create)
		r.Get("/info/{roomId}", fb.info)
		r.Patch("/round", fb.round)
		r.Get("/rank", fb.rank)
		r.Patch("/open", fb.setOpen(1))
		r.Patch("/close", fb.setOpen(0))
	})

	fb.Server = httptest.NewServer(r)
	t.Cleanup(fb.Server.Close)
	return fb, fb.Server.URL + "/api"
}

// AddRoom seeds a room and returns it.
func (fb *FakeBackend) AddRoom(room FakeRoom) *FakeRoom {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if room.RoomID == 0 {
		fb.nextID++
		room.RoomID = fb.nextID
	}
	r := room
	fb.rooms[r.RoomID] = &r
	return &r
}

// Room returns a copy of the stored room.
func (fb *FakeBackend) Room(id int64) (FakeRoom, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	r, ok := fb.rooms[id]
	if !ok {
		return FakeRoom{}, false
	}
	return *r, true
}

// Requests returns every request seen so far.
func (fb *FakeBackend) Requests() []Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]Request(nil), fb.requests...)
}

// LastRequest returns the most recent request.
func (fb *FakeBackend) LastRequest() Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.requests) == 0 {
		return Request{}
	}
	return fb.requests[len(fb.requests)-1]
}

func (fb *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     make(map[string]string),
			RequestID: r.Header.Get("X-Request-ID"),
		}
		for k := range r.URL.Query() {
			req.Query[k] = r.URL.Query().Get(k)
		}
		if r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			if len(raw) > 0 {
				_ = json.Unmarshal(raw, &req.Body)
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))
		}

		fb.mu.Lock()
		fb.requests = append(fb.requests, req)
		override := fb.Override
		fb.mu.Unlock()

		if override != nil {
			override(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WriteEnvelope writes {code, message, data} with HTTP 200.
func WriteEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func (fb *FakeBackend) id(v int64) any {
	if fb.StringIDs {
		return strconv.FormatInt(v, 10)
	}
	return v
}

func (fb *FakeBackend) create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		TTL   int    `json:"ttl"`
		Round int    `json:"round"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		WriteEnvelope(w, 400, "房间名称不能为空", nil)
		return
	}

	room := fb.AddRoom(FakeRoom{
		Name:       body.Name,
		TTL:        body.TTL,
		Round:      body.Round,
		IsOpen:     1,
		CreateTime: "2025-01-01 10:00:00",
		UpdateTime: "2025-01-01 10:00:00",
	})
	WriteEnvelope(w, 200, "success", map[string]any{"roomId": fb.id(room.RoomID)})
}

func (fb *FakeBackend) lookup(w http.ResponseWriter, raw string) (*FakeRoom, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteEnvelope(w, 400, "roomId 无效", nil)
		return nil, false
	}
	fb.mu.Lock()
	room, ok := fb.rooms[id]
	fb.mu.Unlock()
	if !ok {
		WriteEnvelope(w, 404, "房间不存在", nil)
		return nil, false
	}
	return room, true
}

func (fb *FakeBackend) info(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "roomId"), 10, 64)
	if err != nil {
		http.Error(w, "bad room id", http.StatusBadRequest)
		return
	}
	fb.mu.Lock()
	room, ok := fb.rooms[id]
	var data map[string]any
	if ok {
		data = map[string]any{
			"roomId":     fb.id(room.RoomID),
			"name":       room.Name,
			"ttl":        room.TTL,
			"round":      room.Round,
			"isOpen":     room.IsOpen,
			"isDel":      room.IsDel,
			"createTime": room.CreateTime,
			"updateTime": room.UpdateTime,
		}
	}
	fb.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	WriteEnvelope(w, 200, "success", data)
}

func (fb *FakeBackend) round(w http.ResponseWriter, r *http.Request) {
	room, ok := fb.lookup(w, r.URL.Query().Get("roomId"))
	if !ok {
		return
	}
	round, err := strconv.Atoi(r.URL.Query().Get("round"))
	if err != nil || round < 1 {
		WriteEnvelope(w, 400, "", nil)
		return
	}
	fb.mu.Lock()
	room.Round = round
	fb.mu.Unlock()
	WriteEnvelope(w, 200, "success", nil)
}

func (fb *FakeBackend) rank(w http.ResponseWriter, r *http.Request) {
	room, ok := fb.lookup(w, r.URL.Query().Get("roomId"))
	if !ok {
		return
	}
	fb.mu.Lock()
	records := append([]map[string]any{}, room.Records...)
	fb.mu.Unlock()
	WriteEnvelope(w, 200, "success", map[string]any{"playerRecords": records})
}

func (fb *FakeBackend) setOpen(open int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room, ok := fb.lookup(w, r.URL.Query().Get("roomId"))
		if !ok {
			return
		}
		fb.mu.Lock()
		room.IsOpen = open
		fb.mu.Unlock()
		WriteEnvelope(w, 200, "success", nil)
	}
}
