package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL      = "http://localhost:8080/api"
	defaultTimeout      = 10
	defaultBackend      = BackendFile
	defaultKeyPrefix    = "dice-room:"
	defaultRedisAddr    = "localhost:6379"
	defaultLogLevel     = "info"
	defaultLogMaxMB     = 10
	defaultInitialRoute = "/"
	defaultRoleType     = "0"

	appDirName = ".dice-room"
)

// 本地缓存后端
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config 客户端配置
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// APIConfig 房间服务接口配置
type APIConfig struct {
	BaseURL string `yaml:"base_url" env:"DICE_API_BASE_URL"`
	Timeout int    `yaml:"timeout" env:"DICE_API_TIMEOUT"` // 请求超时（秒）
}

// StorageConfig 本地缓存配置
type StorageConfig struct {
	Backend   string `yaml:"backend" env:"DICE_STORAGE_BACKEND"`
	Path      string `yaml:"path" env:"DICE_STORAGE_PATH"`
	KeyPrefix string `yaml:"key_prefix" env:"DICE_STORAGE_KEY_PREFIX"`
}

// RedisConfig Redis 配置（storage.backend 为 redis 时使用）
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"DICE_REDIS_ADDR"`
	Password string `yaml:"password" env:"DICE_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"DICE_REDIS_DB"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level" env:"DICE_LOG_LEVEL"`
	File  string `yaml:"file" env:"DICE_LOG_FILE"`
	MaxMB int    `yaml:"max_mb" env:"DICE_LOG_MAX_MB"`
}

// UIConfig 终端界面配置
type UIConfig struct {
	InitialRoute string `yaml:"initial_route" env:"DICE_UI_INITIAL_ROUTE"`
	RoleType     string `yaml:"role_type" env:"DICE_UI_ROLE_TYPE"`
	Sound        bool   `yaml:"sound" env:"DICE_UI_SOUND"`
}

// TimeoutDuration 返回请求超时时长
func (c *APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Load 加载配置文件，环境变量优先于文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置（仍然应用环境变量）
func Default() *Config {
	var cfg Config
	_ = env.Parse(&cfg)
	cfg.applyDefaults()
	if cfg.Validate() != nil {
		// 环境变量无效时退回纯默认值
		cfg = Config{}
		cfg.applyDefaults()
	}
	return &cfg
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("未知的缓存后端: %q", c.Storage.Backend)
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url 无效: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url 必须是 http(s) 地址: %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout 不能为负数: %d", c.API.Timeout)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaultTimeout
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultBackend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(AppDir(), "storage.json")
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = defaultKeyPrefix
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = defaultRedisAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(AppDir(), "debug.log")
	}
	if c.Log.MaxMB == 0 {
		c.Log.MaxMB = defaultLogMaxMB
	}
	if c.UI.InitialRoute == "" {
		c.UI.InitialRoute = defaultInitialRoute
	}
	if c.UI.RoleType == "" {
		c.UI.RoleType = defaultRoleType
	}
}

// AppDir 返回本地数据目录（~/.dice-room），取不到 home 时使用当前目录
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}
