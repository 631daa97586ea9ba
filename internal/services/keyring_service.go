package services

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/99designs/keyring"
)

const serviceName = "gigaleverage"

// ApiKeyInfo describes a stored credential without exposing it.
type ApiKeyInfo struct {
	Provider    string `json:"provider"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type KeyringService struct {
	ring keyring.Keyring
}

// DefaultKeyringConfig allows only the platform keychain backends. Hosts
// without one get no vault.
func DefaultKeyringConfig() keyring.Config {
	return keyring.Config{
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
		},
		ServiceName:              serviceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  serviceName,
		KWalletAppID:             serviceName,
		KWalletFolder:            serviceName,
		WinCredPrefix:            serviceName,
	}
}

func NewKeyringService(cfg keyring.Config) (*KeyringService, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = serviceName
	}
	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return &KeyringService{ring: ring}, nil
}

func (s *KeyringService) StoreApiKey(provider string, apiKey []byte) error {
	if len(apiKey) == 0 {
		return errors.New("API key is empty")
	}
	if provider == "" {
		return errors.New("provider is required")
	}

	return s.ring.Set(keyring.Item{
		Key:         provider,
		Data:        apiKey,
		Label:       provider + " API key",
		Description: "API key for " + provider + " used by GigaLeverage",
	})
}

func (s *KeyringService) GetApiKey(provider string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	item, err := s.ring.Get(provider)
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

// DeleteApiKey removes the provider's key. Removing a missing key is not an
// error.
func (s *KeyringService) DeleteApiKey(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	err := s.ring.Remove(provider)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *KeyringService) ListApiKeys() ([]ApiKeyInfo, error) {
	providers, err := s.ring.Keys()
	if err != nil {
		return nil, err
	}
	sort.Strings(providers)

	results := make([]ApiKeyInfo, 0, len(providers))
	for _, provider := range providers {
		results = append(results, ApiKeyInfo{
			Provider:    provider,
			Label:       provider + " API key",
			Description: "API key for " + provider + " used by GigaLeverage",
		})
	}
	return results, nil
}
