package models

// AppConfig is the persisted settings record (config.json).
type AppConfig struct {
	ApiKey string `json:"api_key"`
}

// DefaultAppConfig returns the record used when nothing usable is on disk.
func DefaultAppConfig() AppConfig {
	return AppConfig{ApiKey: ""}
}
