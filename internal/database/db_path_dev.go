//go:build !prod

package database

// GetDefaultDBPath returns the database path for development mode.
// In dev mode, the database is kept in the working directory so it is easy
// to inspect and reset.
func GetDefaultDBPath(appDir string) string {
	return "gigaleverage.db"
}

func IsDevelopment() bool {
	return true
}
