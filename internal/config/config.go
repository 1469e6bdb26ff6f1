package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Session  SessionConfig
	App      AppConfig
	Company  CompanyConfig
	Admin    AdminConfig
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// SessionConfig holds the signing secret and lifetime of session cookies
type SessionConfig struct {
	Secret       string
	Expiration   string
	CookieSecure bool
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	Version        string
	LogLevel       string
	Timezone       string
	AllowedOrigins []string
}

type CompanyConfig struct {
	Code string
}

// AdminConfig seeds a staff account at startup when both fields are set
type AdminConfig struct {
	Username string
	Password string
}

func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "dayflow"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		AutoMigrate: autoMigrate,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Session configuration
	cookieSecure, err := strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
	}

	config.Session = SessionConfig{
		Secret:       getEnv("SESSION_SECRET_KEY", ""),
		Expiration:   getEnv("SESSION_EXPIRATION_TIME", "12h"),
		CookieSecure: cookieSecure,
	}

	config.Company = CompanyConfig{
		Code: strings.ToUpper(getEnv("COMPANY_CODE", "DF")),
	}

	config.Admin = AdminConfig{
		Username: getEnv("ADMIN_USERNAME", ""),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.Session.Expiration); err != nil {
		return fmt.Errorf("invalid SESSION_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Company.Code == "" {
		return fmt.Errorf("COMPANY_CODE must not be empty")
	}
	if (c.Admin.Username == "") != (c.Admin.Password == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	if c.Admin.Password != "" && len(c.Admin.Password) < 8 {
		return fmt.Errorf("ADMIN_PASSWORD must be at least 8 characters")
	}
	return nil
}

// Location returns the time zone that defines "today" for the attendance ledger.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// DatabaseURL returns the PostgreSQL connection string with credentials escaped.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": []string{c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
