package mocks

type SettingsServiceMock struct {
	UpdateApiKeyFunc func(key string) error

	ApiKey string
}

func (m *SettingsServiceMock) GetApiKey() string {
	return m.ApiKey
}

func (m *SettingsServiceMock) HasApiKey() bool {
	return m.ApiKey != ""
}

func (m *SettingsServiceMock) UpdateApiKey(key string) error {
	if m.UpdateApiKeyFunc != nil {
		if err := m.UpdateApiKeyFunc(key); err != nil {
			return err
		}
	}
	m.ApiKey = key
	return nil
}
