package events

import (
	"context"

	"gigaleverage/internal/models"
)

const (
	LeveragesChanged = "leverages:changed"
	ScreenChanged    = "screen:changed"
)

// Screen names the top-level view shown by the frontend.
type Screen string

const (
	ScreenLoading     Screen = "loading"
	ScreenApiKeySetup Screen = "api-key-setup"
	ScreenLeverages   Screen = "leverages"
)

// EmitLeverages pushes the current leverage list to the frontend.
func EmitLeverages(ctx context.Context, leverages []models.Leverage) {
	if leverages == nil {
		leverages = []models.Leverage{}
	}
	Emit(ctx, LeveragesChanged, leverages)
}

func EmitScreen(ctx context.Context, screen Screen) {
	Emit(ctx, ScreenChanged, screen)
}
