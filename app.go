package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gigaleverage/internal/events"
	"gigaleverage/internal/services"
)

// splashDelay is how long the loading screen stays up after startup.
var splashDelay = 2 * time.Second

// App struct
type App struct {
	ctx       context.Context
	Leverages services.LeverageService
	Settings  services.SettingsService
	dbClose   func() error
	log       *zap.Logger

	screenMu    sync.Mutex
	screen      events.Screen
	splashTimer *time.Timer
}

// NewApp creates a new App application struct
func NewApp(log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		ctx:    context.Background(),
		log:    log.Named("app"),
		screen: events.ScreenLoading,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if a.Leverages != nil {
		if err := a.Leverages.Startup(ctx); err != nil {
			a.log.Error("failed to restore leverages", zap.Error(err))
		}
	}

	a.screenMu.Lock()
	a.splashTimer = time.AfterFunc(splashDelay, func() {
		a.transition(events.ScreenLoading, events.ScreenApiKeySetup)
	})
	a.screenMu.Unlock()
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.screenMu.Lock()
	if a.splashTimer != nil {
		a.splashTimer.Stop()
		a.splashTimer = nil
	}
	a.screenMu.Unlock()

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.log.Error("failed to close database", zap.Error(err))
		} else {
			a.log.Info("database closed")
		}
		a.dbClose = nil
	}
}

// CurrentScreen returns the screen the frontend should show.
func (a *App) CurrentScreen() string {
	a.screenMu.Lock()
	defer a.screenMu.Unlock()
	return string(a.screen)
}

// SaveApiKey stores the credential and moves on to the leverage list.
func (a *App) SaveApiKey(key string) error {
	if a.Settings == nil {
		return errors.New("settings service not available")
	}
	if err := a.Settings.UpdateApiKey(key); err != nil {
		return err
	}
	a.transition("", events.ScreenLeverages)
	return nil
}

// transition switches to screen. A non-empty from makes it conditional on
// the current screen.
func (a *App) transition(from, screen events.Screen) {
	a.screenMu.Lock()
	if (from != "" && a.screen != from) || a.screen == screen {
		a.screenMu.Unlock()
		return
	}
	a.screen = screen
	a.screenMu.Unlock()

	a.log.Debug("screen changed", zap.String("screen", string(screen)))
	events.EmitScreen(a.ctx, screen)
}
