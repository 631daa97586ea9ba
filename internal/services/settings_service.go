package services

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"gigaleverage/internal/models"
)

// ConfigStore persists the AppConfig record.
type ConfigStore interface {
	Load() (models.AppConfig, error)
	Save(cfg models.AppConfig) error
	UpdateApiKey(key string) error
	GetApiKey() string
}

// ApiKeyVault keeps a secure copy of provider credentials.
type ApiKeyVault interface {
	StoreApiKey(provider string, apiKey []byte) error
}

// vaultProvider is the provider the app credential belongs to.
const vaultProvider = "coingecko"

type SettingsService interface {
	GetApiKey() string
	HasApiKey() bool
	UpdateApiKey(key string) error
}

type settingsService struct {
	mu    sync.Mutex
	store ConfigStore
	vault ApiKeyVault
	log   *zap.Logger
}

// NewSettingsService wraps store for the frontend. vault is optional.
func NewSettingsService(store ConfigStore, vault ApiKeyVault, log *zap.Logger) SettingsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &settingsService{store: store, vault: vault, log: log.Named("settings")}
}

func (s *settingsService) GetApiKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.GetApiKey()
}

func (s *settingsService) HasApiKey() bool {
	return strings.TrimSpace(s.GetApiKey()) != ""
}

// UpdateApiKey persists key and mirrors it into the vault once saved.
func (s *settingsService) UpdateApiKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.UpdateApiKey(key); err != nil {
		s.log.Error("failed to save api key", zap.Error(err))
		return err
	}
	s.log.Info("api key updated")

	if s.vault == nil || key == "" {
		return nil
	}
	if err := s.vault.StoreApiKey(vaultProvider, []byte(key)); err != nil {
		s.log.Warn("failed to mirror api key into keyring", zap.Error(err))
	}
	return nil
}
