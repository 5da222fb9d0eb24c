package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	DSN           string // postgres connection string
	Port          string
	SessionSecret string
	ContentRoot   string // base directory for publicly served static files
	AdminEmail    string
	AdminPassword string
}

// Load reads .env files (current dir, parent, repo root) and builds the config.
// Missing optional values fall back to development defaults; required values
// are checked by the components that consume them.
func Load() Config {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	return Config{
		DSN:           os.Getenv("DB_DSN"),
		Port:          getenv("APP_PORT", "8080"),
		SessionSecret: getenv("SESSION_SECRET", "dev_fallback_secret"),
		ContentRoot:   getenv("CONTENT_ROOT", "wwwroot"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@storefront.local"),
		AdminPassword: getenv("ADMIN_PASSWORD", "changeme"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
