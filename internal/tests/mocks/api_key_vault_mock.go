package mocks

type ApiKeyVaultMock struct {
	StoreApiKeyFunc func(provider string, apiKey []byte) error

	Stored map[string]string
}

func (m *ApiKeyVaultMock) StoreApiKey(provider string, apiKey []byte) error {
	if m.StoreApiKeyFunc != nil {
		if err := m.StoreApiKeyFunc(provider, apiKey); err != nil {
			return err
		}
	}
	if m.Stored == nil {
		m.Stored = make(map[string]string)
	}
	m.Stored[provider] = string(apiKey)
	return nil
}
