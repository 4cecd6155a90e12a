// Package storage caches the current room selection between client runs.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/palemoky/dice-room/internal/config"
)

// errCorrupt 存储文件内容无法解析
var errCorrupt = errors.New("存储文件已损坏")

// Backend 键值存储，Get 在键不存在时返回 ok=false
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Open 根据配置创建存储后端，返回的 close 函数释放底层资源
func Open(cfg *config.Config) (Backend, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return NewMemoryBackend(), func() error { return nil }, nil
	case config.BackendFile:
		return NewFileBackend(cfg.Storage.Path), func() error { return nil }, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisBackend(client, cfg.Storage.KeyPrefix), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("未知的缓存后端: %q", cfg.Storage.Backend)
	}
}

// --- 内存 ---

// MemoryBackend 进程内存储
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryBackend 创建内存存储
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryBackend) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// --- 文件 ---

// FileBackend 把所有键值保存在一个 JSON 文件里。写入通过临时文件 + rename 完成。
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend 创建文件存储，文件在首次写入时创建
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path 返回存储文件路径
func (f *FileBackend) Path() string { return f.path }

func (f *FileBackend) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (f *FileBackend) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, _, err := f.loadForWrite()
	if err != nil {
		return err
	}
	data[key] = value
	return f.save(data)
}

func (f *FileBackend) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, reset, err := f.loadForWrite()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok && !reset {
		return nil
	}
	delete(data, key)
	return f.save(data)
}

func (f *FileBackend) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取存储文件失败: %w", err)
	}

	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorrupt, err)
	}
	return data, nil
}

// loadForWrite 与 load 相同，但损坏的文件会被当作空存储，reset 为 true 时调用方需要重写文件
func (f *FileBackend) loadForWrite() (data map[string]string, reset bool, err error) {
	data, err = f.load()
	if errors.Is(err, errCorrupt) {
		log.Warn().Err(err).Str("path", f.path).Msg("storage file corrupted, starting empty")
		return make(map[string]string), true, nil
	}
	return data, false, err
}

func (f *FileBackend) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("创建存储目录失败: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("写入存储文件失败: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("写入存储文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// --- Redis ---

// RedisBackend Redis 存储，键不过期
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend 创建 Redis 存储
func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisBackend) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}
