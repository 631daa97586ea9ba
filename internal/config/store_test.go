package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gigaleverage/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), AppDirName)
	return NewStore(dir, zap.NewNop()), dir
}

func TestLoad_CreatesDirAndReturnsDefault(t *testing.T) {
	store, dir := newTestStore(t)

	cfg, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, models.AppConfig{ApiKey: ""}, cfg)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "load must not create the settings file")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"CG-abc123",
		"ключ-🔑-鍵",
		"with \"quotes\" and \\ backslash\n",
	}
	for _, key := range cases {
		t.Run(key, func(t *testing.T) {
			store, dir := newTestStore(t)
			_, err := store.Load()
			require.NoError(t, err)

			require.NoError(t, store.Save(models.AppConfig{ApiKey: key}))

			reloaded := NewStore(dir, zap.NewNop())
			cfg, err := reloaded.Load()
			require.NoError(t, err)
			assert.Equal(t, models.AppConfig{ApiKey: key}, cfg)
			assert.Equal(t, key, reloaded.GetApiKey())
		})
	}
}

func TestSave_RejectsInvalidUTF8Key(t *testing.T) {
	store, dir := newTestStore(t)
	_, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(models.AppConfig{ApiKey: "good"}))

	err = store.Save(models.AppConfig{ApiKey: "\xffabc"})
	assert.ErrorIs(t, err, ErrInvalidApiKey)

	err = store.UpdateApiKey("\xffabc")
	assert.ErrorIs(t, err, ErrInvalidApiKey)
	assert.Equal(t, "good", store.GetApiKey())

	cfg, err := NewStore(dir, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "good", cfg.ApiKey)
}

func TestSave_WritesPrettyJSON(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load()
	require.NoError(t, err)

	require.NoError(t, store.Save(models.AppConfig{ApiKey: "k"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"api_key\": \"k\"\n}\n", string(data))
}

func TestLoad_CorruptFileFallsBackToDefault(t *testing.T) {
	cases := map[string]string{
		"garbage":    "not json at all",
		"truncated":  `{"api_key": "abc`,
		"wrong type": `{"api_key": 42}`,
		"array":      `["abc"]`,
		"empty":      "",
		"null value": `{"api_key": null}`,
		"missing":    `{"theme": "dark"}`,
		"wrong case": `{"API_KEY": "shouty"}`,
		"duplicate":  `{"api_key": "a", "api_key": "b"}`,
		"bad utf8":   "{\"api_key\": \"\xff\xfe\"}",
		"trailing":   `{"api_key": "a"} {}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			dir := filepath.Join(t.TempDir(), AppDirName)
			require.NoError(t, os.MkdirAll(dir, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
			store := NewStore(dir, zap.New(core))

			cfg, err := store.Load()

			require.NoError(t, err)
			assert.Equal(t, models.AppConfig{ApiKey: ""}, cfg)
			assert.Equal(t, 1, logs.Len())
		})
	}
}

func TestLoad_UnknownFieldsAreDropped(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"api_key":"k","theme":"dark"}`), 0o600))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.ApiKey)

	require.NoError(t, store.Save(cfg))
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "theme")
}

func TestLoad_UnreadableFileIsIOError(t *testing.T) {
	store, _ := newTestStore(t)
	// A directory in place of the file cannot be read as one.
	require.NoError(t, os.MkdirAll(store.Path(), 0o755))

	_, err := store.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrConfigDirUnavailable)
}

func TestLoad_DirCreationFailure(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	store := NewStore(filepath.Join(blocker, AppDirName), zap.NewNop())

	_, err := store.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigDirUnavailable)
}

func TestSave_WriteFailureIsIOError(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(store.Path(), 0o755))

	err := store.Save(models.AppConfig{ApiKey: "k"})

	assert.ErrorIs(t, err, ErrIO)
	assert.Equal(t, "", store.GetApiKey())
}

func TestUpdateApiKey_PersistsImmediately(t *testing.T) {
	store, dir := newTestStore(t)
	_, err := store.Load()
	require.NoError(t, err)

	require.NoError(t, store.UpdateApiKey("new-key"))
	assert.Equal(t, "new-key", store.GetApiKey())

	cfg, err := NewStore(dir, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "new-key", cfg.ApiKey)
}

func TestUpdateApiKey_PropagatesSaveError(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(store.Path(), 0o755))

	err := store.UpdateApiKey("k")

	assert.ErrorIs(t, err, ErrIO)
}

func TestDecode_ReportsParseError(t *testing.T) {
	for _, content := range []string{"{", `{"Api_Key":"x"}`, "\"\xff\""} {
		_, err := decode([]byte(content))
		assert.ErrorIs(t, err, ErrParse, content)
	}
}

func TestDecode_IgnoresOtherMembers(t *testing.T) {
	cfg, err := decode([]byte(`{"theme": {"nested": [1, 2]}, "api_key": "k", "api_key_2": "x"}`))
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.ApiKey)
}
