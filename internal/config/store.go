// Package config persists the application settings record to a JSON file
// in the per-user configuration directory.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"

	"gigaleverage/internal/models"
)

const (
	AppDirName     = "gigaleverage"
	ConfigFileName = "config.json"
)

var (
	// ErrConfigDirUnavailable means the settings directory could not be
	// resolved or created. The application cannot start without it.
	ErrConfigDirUnavailable = errors.New("config directory unavailable")
	// ErrIO wraps read and write failures on the settings file.
	ErrIO = errors.New("config io error")
	// ErrParse marks settings content that is not a valid record. Load
	// recovers from it by substituting the default record.
	ErrParse = errors.New("config parse error")
	// ErrInvalidApiKey rejects credentials that cannot be stored as UTF-8
	// text without being altered.
	ErrInvalidApiKey = errors.New("api key is not valid UTF-8")
)

const apiKeyField = "api_key"

// DefaultDir returns <user config dir>/gigaleverage.
func DefaultDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigDirUnavailable, err)
	}
	return filepath.Join(root, AppDirName), nil
}

// Store owns the in-memory settings record and its file.
type Store struct {
	dir    string
	path   string
	config models.AppConfig
	log    *zap.Logger
}

func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		dir:    dir,
		path:   filepath.Join(dir, ConfigFileName),
		config: models.DefaultAppConfig(),
		log:    log,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file into memory. A missing file or unparsable
// content yields the default record; read failures are returned.
func (s *Store) Load() (models.AppConfig, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return models.AppConfig{}, fmt.Errorf("%w: create %s: %w", ErrConfigDirUnavailable, s.dir, err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.config = models.DefaultAppConfig()
		return s.config, nil
	}
	if err != nil {
		return models.AppConfig{}, fmt.Errorf("%w: read %s: %w", ErrIO, s.path, err)
	}

	cfg, err := decode(data)
	if err != nil {
		s.log.Warn("settings file is invalid, using defaults",
			zap.String("path", s.path), zap.Error(err))
		cfg = models.DefaultAppConfig()
	}
	s.config = cfg
	return s.config, nil
}

// Save writes cfg as pretty-printed JSON, replacing the file contents. The
// write is not atomic.
func (s *Store) Save(cfg models.AppConfig) error {
	if !utf8.ValidString(cfg.ApiKey) {
		return ErrInvalidApiKey
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrIO, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, s.path, err)
	}
	s.config = cfg
	return nil
}

// UpdateApiKey sets the credential and persists it immediately.
func (s *Store) UpdateApiKey(key string) error {
	if !utf8.ValidString(key) {
		return ErrInvalidApiKey
	}
	s.config.ApiKey = key
	return s.Save(s.config)
}

func (s *Store) GetApiKey() string {
	return s.config.ApiKey
}

// decode accepts a single UTF-8 JSON object with exactly one "api_key"
// string member. Other members are ignored. Field names match exactly.
func decode(data []byte) (models.AppConfig, error) {
	if !utf8.Valid(data) {
		return models.AppConfig{}, fmt.Errorf("%w: content is not valid UTF-8", ErrParse)
	}
	cfg, err := decodeObject(json.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return models.AppConfig{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return cfg, nil
}

func decodeObject(dec *json.Decoder) (models.AppConfig, error) {
	var cfg models.AppConfig

	tok, err := dec.Token()
	if err != nil {
		return cfg, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return cfg, fmt.Errorf("expected object, got %v", tok)
	}

	seen := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return cfg, err
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return cfg, err
		}
		if name != apiKeyField {
			continue
		}
		if seen {
			return cfg, fmt.Errorf("duplicate field %q", apiKeyField)
		}
		seen = true
		if len(raw) == 0 || raw[0] != '"' {
			return cfg, fmt.Errorf("field %q must be a string", apiKeyField)
		}
		if err := json.Unmarshal(raw, &cfg.ApiKey); err != nil {
			return cfg, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return cfg, err
	}
	if !seen {
		return cfg, fmt.Errorf("missing field %q", apiKeyField)
	}
	if _, err := dec.Token(); err != io.EOF {
		return cfg, errors.New("trailing data after object")
	}
	return cfg, nil
}
