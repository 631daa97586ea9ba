package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	root, err := FindProjectRoot()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}

func TestGetenv(t *testing.T) {
	t.Setenv("GIGALEVERAGE_TEST_VALUE", "  value ")
	assert.Equal(t, "value", Getenv("GIGALEVERAGE_TEST_VALUE", "fallback"))

	t.Setenv("GIGALEVERAGE_TEST_VALUE", "   ")
	assert.Equal(t, "fallback", Getenv("GIGALEVERAGE_TEST_VALUE", "fallback"))

	os.Unsetenv("GIGALEVERAGE_TEST_MISSING")
	assert.Equal(t, "fallback", Getenv("GIGALEVERAGE_TEST_MISSING", "fallback"))
}
