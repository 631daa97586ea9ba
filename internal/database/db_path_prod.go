//go:build prod

package database

import "path/filepath"

// GetDefaultDBPath returns the database path for production mode, next to
// config.json in the per-user config directory.
func GetDefaultDBPath(appDir string) string {
	return filepath.Join(appDir, "gigaleverage.db")
}

func IsDevelopment() bool {
	return false
}
