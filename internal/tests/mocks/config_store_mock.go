package mocks

import (
	"gigaleverage/internal/models"
)

type ConfigStoreMock struct {
	LoadFunc         func() (models.AppConfig, error)
	SaveFunc         func(cfg models.AppConfig) error
	UpdateApiKeyFunc func(key string) error

	Config models.AppConfig
}

func (m *ConfigStoreMock) Load() (models.AppConfig, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return m.Config, nil
}

func (m *ConfigStoreMock) Save(cfg models.AppConfig) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(cfg); err != nil {
			return err
		}
	}
	m.Config = cfg
	return nil
}

func (m *ConfigStoreMock) UpdateApiKey(key string) error {
	if m.UpdateApiKeyFunc != nil {
		return m.UpdateApiKeyFunc(key)
	}
	m.Config.ApiKey = key
	return m.Save(m.Config)
}

func (m *ConfigStoreMock) GetApiKey() string {
	return m.Config.ApiKey
}
