package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every setting the application reads from the environment.
// It is built once in main and passed down; nothing reads os.Getenv after startup.
type Config struct {
	Port string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	JWTSecret string

	// TokenTTL is the lifetime of issued access tokens.
	// Set via TOKEN_TTL_MINUTES (default one week).
	TokenTTL time.Duration

	// FirstSuperuserEmail/Password seed the initial superuser account on startup
	// when no user with that email exists. Seeding is skipped when the email is empty.
	FirstSuperuserEmail    string
	FirstSuperuserPassword string

	// CORSAllowedOrigins is set via ALLOWED_ORIGINS (comma-separated).
	CORSAllowedOrigins []string
}

func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBName: getEnv("DB_NAME", "wares"),
		DBUser: getEnv("DB_USER", "wares"),
		DBPass: getEnv("DB_PASS", ""),

		JWTSecret: os.Getenv("JWT_SECRET"),

		TokenTTL: time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60*24*7)) * time.Minute,

		FirstSuperuserEmail:    getEnv("FIRST_SUPERUSER_EMAIL", ""),
		FirstSuperuserPassword: getEnv("FIRST_SUPERUSER_PASSWORD", ""),

		CORSAllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

// DSN assembles the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
