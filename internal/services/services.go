package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gigaleverage/internal/repositories"
)

// Services aggregates the services bound to the frontend.
type Services struct {
	Catalog   ProviderCatalog
	Leverages LeverageService
	Settings  SettingsService
	Keyring   *KeyringService
}

// NewServices wires the services. db may be nil to keep leverages in memory
// only; keyring may be nil when no keychain backend is available.
func NewServices(db *gorm.DB, store ConfigStore, keyring *KeyringService, log *zap.Logger) (*Services, error) {
	catalog, err := NewProviderCatalog()
	if err != nil {
		return nil, err
	}

	var leverageRepo repositories.LeverageRepository
	if db != nil {
		leverageRepo = repositories.NewLeverageRepository(db)
	}

	var vault ApiKeyVault
	if keyring != nil {
		vault = keyring
	}

	return &Services{
		Catalog:   catalog,
		Leverages: NewLeverageService(catalog, leverageRepo, log),
		Settings:  NewSettingsService(store, vault, log),
		Keyring:   keyring,
	}, nil
}
