package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/api"
	"github.com/palemoky/dice-room/internal/config"
	"github.com/palemoky/dice-room/internal/logger"
	"github.com/palemoky/dice-room/internal/sound"
	"github.com/palemoky/dice-room/internal/storage"
	"github.com/palemoky/dice-room/internal/ui"
	"github.com/palemoky/dice-room/internal/ui/model"
)

func main() {
	configPath := flag.String("config", filepath.Join(config.AppDir(), "config.yaml"), "配置文件路径")
	apiURL := flag.String("api", "", "房间服务地址，覆盖配置文件")
	route := flag.String("route", "", "启动页面路由，如 /join-room")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}
	if *route != "" {
		cfg.UI.InitialRoute = *route
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	// 日志写入文件，避免干扰界面
	if err := logger.Init(cfg.Log); err != nil {
		log.Printf("初始化日志失败，本次运行不记录日志: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			os.Exit(1)
		}
	}()

	backend, closeBackend, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("打开本地缓存失败: %v", err)
	}
	defer func() { _ = closeBackend() }()

	var player sound.Player = sound.Mute{}
	if cfg.UI.Sound {
		sm := sound.NewSoundManager(filepath.Join(config.AppDir(), "sounds"))
		if err := sm.Init(); err != nil {
			l := logger.Component("sound")
			l.Warn().Err(err).Msg("sound disabled")
		} else {
			defer sm.Close()
			player = sm
		}
	}

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.TimeoutDuration()),
		api.WithLogger(logger.Component("api")),
	)

	deps := model.Deps{
		API:      client,
		Storage:  storage.NewLocalStorage(backend, logger.Component("storage")),
		Sound:    player,
		RoleType: cfg.UI.RoleType,
		BaseURL:  client.BaseURL(),
		CacheLoc: cacheLocation(cfg, backend),
		LogPath:  logger.GetLogPath(),
		Log:      logger.Component("ui"),
	}

	app, err := ui.NewApp(deps, cfg.UI.InitialRoute)
	if err != nil {
		log.Fatalf("创建界面失败: %v", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}

// cacheLocation describes where the room cache lives, for the about page.
func cacheLocation(cfg *config.Config, backend storage.Backend) string {
	switch b := backend.(type) {
	case *storage.FileBackend:
		return b.Path()
	case *storage.RedisBackend:
		return "redis://" + cfg.Redis.Addr + "/" + cfg.Storage.KeyPrefix
	default:
		return cfg.Storage.Backend
	}
}
