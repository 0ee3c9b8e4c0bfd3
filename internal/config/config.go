// Package config handles loading runtime configuration for the settlement report API.
// Values come from environment variables (and optionally a .env file) so the same binary
// can run on a laptop against a staging database and in production without code changes.
package config

import (
	"strings"
	"time"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// Handy in development; in production the real environment is already populated.
	"github.com/joho/godotenv"
	// viper binds environment variables to typed values and supplies defaults.
	"github.com/spf13/viper"
)

// Environment names accepted in ENV (or the legacy FLASK_ENV).
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all runtime configuration values for the application.
// It is built once in main and passed by pointer to everything that needs it.
type Config struct {
	Port string // TCP port the HTTP server listens on (e.g., "8080")
	Env  string // "development" or "production"

	DBHost            string        // MySQL host name
	DBPort            int           // MySQL port, 3306 unless overridden
	DBUser            string        // MySQL user
	DBPass            string        // MySQL password
	DBName            string        // Schema holding manager / match / settlement tables
	DBMaxOpenConns    int           // Upper bound on concurrent connections
	DBMaxIdleConns    int           // Connections kept warm between requests
	DBConnMaxLifetime time.Duration // Recycle connections older than this

	SecretKey string // HS256 key for debug-route tokens

	// Timezone is the IANA zone match schedules are converted into before any
	// date filtering or display. Schedules are stored in UTC.
	Timezone string

	StaticDir   string // Directory holding index.html and the dashboard script
	DebugRoutes bool   // Mount /api/debug/* routes
	LogLevel    string // zap level name: debug, info, warn, error
}

// Load reads configuration from environment variables and returns a populated Config.
// A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("SECRET_KEY", "default-secret-key")
	v.SetDefault("APP_TIMEZONE", "Asia/Seoul")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("LOG_LEVEL", "info")

	env := resolveEnv(v.GetString("ENV"), v.GetString("FLASK_ENV"))

	// Debug routes follow the environment unless DEBUG_ROUTES says otherwise.
	debugRoutes := env == EnvDevelopment
	if v.IsSet("DEBUG_ROUTES") {
		debugRoutes = v.GetBool("DEBUG_ROUTES")
	}

	return &Config{
		Port:              v.GetString("PORT"),
		Env:               env,
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetInt("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPass:            v.GetString("DB_PASS"),
		DBName:            v.GetString("DB_NAME"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		SecretKey:         v.GetString("SECRET_KEY"),
		Timezone:          v.GetString("APP_TIMEZONE"),
		StaticDir:         v.GetString("STATIC_DIR"),
		DebugRoutes:       debugRoutes,
		LogLevel:          v.GetString("LOG_LEVEL"),
	}
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// resolveEnv prefers ENV, falls back to FLASK_ENV for older deployment manifests,
// and defaults to production so an unconfigured host never exposes dev behaviour.
func resolveEnv(env, legacy string) string {
	for _, candidate := range []string{env, legacy} {
		switch strings.ToLower(strings.TrimSpace(candidate)) {
		case EnvDevelopment:
			return EnvDevelopment
		case EnvProduction:
			return EnvProduction
		}
	}
	return EnvProduction
}
