package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	"gigaleverage/internal/config"
	"gigaleverage/internal/database"
	"gigaleverage/internal/events"
	"gigaleverage/internal/logging"
	"gigaleverage/internal/services"
	"gigaleverage/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	if database.IsDevelopment() {
		if err := utils.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "Warning: failed to load .env:", err)
		}
	}

	configDir := utils.Getenv("GIGALEVERAGE_CONFIG_DIR", "")
	if configDir == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		configDir = dir
	}

	level := logging.ParseLevel(utils.Getenv("LOG_LEVEL", "info"))
	log := logging.New(logging.Config{
		Dir:   filepath.Join(configDir, "logs"),
		Level: level.String(),
	})
	defer func() { _ = log.Sync() }()

	store, err := loadSettings(configDir, log)
	if err != nil {
		return err
	}

	app := NewApp(log)

	db, err := database.Init(database.Config{
		Path:     database.GetDefaultDBPath(configDir),
		LogLevel: logger.Warn,
		Logger:   log,
	})
	if err != nil {
		log.Warn("leverages will not be persisted", zap.Error(err))
		db = nil
	} else if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	keyringService, err := services.NewKeyringService(services.DefaultKeyringConfig())
	if err != nil {
		log.Warn("keyring unavailable, api key stays in config.json only", zap.Error(err))
		keyringService = nil
	}

	svc, err := services.NewServices(db, store, keyringService, log)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}
	app.Leverages = svc.Leverages
	app.Settings = svc.Settings

	bind := []interface{}{
		app,
		svc.Leverages,
		svc.Settings,
	}
	if svc.Keyring != nil {
		bind = append(bind, svc.Keyring)
	}

	return wails.Run(&options.App{
		Title:  "GigaLeverage",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "GigaLeverage",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           logging.NewWailsLogger(log),
		LogLevel:         logging.WailsLevel(level),
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind:       bind,
	})
}

// loadSettings opens the settings store. The app cannot run without a
// readable settings location, so any error here ends startup.
func loadSettings(dir string, log *zap.Logger) (*config.Store, error) {
	store := config.NewStore(dir, log.Named("config"))
	if _, err := store.Load(); err != nil {
		log.Error("failed to load settings", zap.String("path", store.Path()), zap.Error(err))
		return nil, err
	}
	return store, nil
}
