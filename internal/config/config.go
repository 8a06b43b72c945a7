package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Database DatabaseConfig
	Log      LogConfig
	RSVP     RSVPConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type AdminConfig struct {
	Username string
	Password string
}

type DatabaseConfig struct {
	Path string
}

type LogConfig struct {
	Dir string
}

type RSVPConfig struct {
	Locale    string
	PublicURL string
}

const (
	defaultAdminUser = "admin"
	defaultAdminPass = "197288zz"
)

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", ":8080"),
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
			AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USER", defaultAdminUser),
			Password: getEnv("ADMIN_PASS", defaultAdminPass),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "/data/rsvp.db"),
		},
		Log: LogConfig{
			Dir: os.Getenv("LOG_DIR"),
		},
		RSVP: RSVPConfig{
			Locale:    getEnv("RSVP_LOCALE", "en"),
			PublicURL: getEnv("PUBLIC_URL", "http://localhost:8080/"),
		},
	}
}

// UsesDefaultCredentials reports whether the admin area is still protected by the
// development fallback credentials.
func (c *Config) UsesDefaultCredentials() bool {
	return c.Admin.Username == defaultAdminUser && c.Admin.Password == defaultAdminPass
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
