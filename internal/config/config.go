package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Email     EmailConfig
	AI        AIConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name              string
	Environment       string // development, staging, production
	Port              string
	Version           string
	AllowRegistration bool // one-time admin registration switch
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Enabled  bool
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type EmailConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	To       string // admin inbox for contact notifications
}

type AIConfig struct {
	APIKey string
	Model  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig carries one fixed window per throttled route group.
type RateLimitConfig struct {
	API      Window
	Login    Window
	Register Window
	Contact  Window
	AI       Window
}

// Window is a fixed-window request budget per client IP.
type Window struct {
	Limit  int
	Period time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:              getEnv("APP_NAME", "Portfolio API"),
			Environment:       getEnv("APP_ENV", "development"),
			Port:              getEnv("APP_PORT", "5000"),
			Version:           getEnv("APP_VERSION", "1.0.0"),
			AllowRegistration: getEnvBool("ALLOW_REGISTRATION", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "portfolio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", false),
		},
		JWT: JWTConfig{
			AccessSecret:  getEnv("JWT_SECRET", "change-me-access"),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  getEnvDuration("JWT_ACCESS_EXPIRE", 30*time.Minute),
			RefreshExpiry: getEnvDuration("JWT_REFRESH_EXPIRE", 7*24*time.Hour),
		},
		Email: EmailConfig{
			Host:     getEnv("EMAIL_HOST", "localhost"),
			Port:     getEnv("EMAIL_PORT", "587"),
			User:     getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASSWORD", ""),
			From:     getEnv("EMAIL_FROM", "noreply@portfolio.dev"),
			To:       getEnv("EMAIL_TO", getEnv("EMAIL_USER", "")),
		},
		AI: AIConfig{
			APIKey: getEnv("GOOGLE_API_KEY", getEnv("GEMINI_API_KEY", "")),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash-002"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(getEnv("CLIENT_URL", "http://localhost:5173")),
		},
		RateLimit: RateLimitConfig{
			API:      Window{Limit: getEnvInt("RATE_API_MAX", 100), Period: getEnvDuration("RATE_API_WINDOW", 15*time.Minute)},
			Login:    Window{Limit: getEnvInt("RATE_LOGIN_MAX", 5), Period: getEnvDuration("RATE_LOGIN_WINDOW", 15*time.Minute)},
			Register: Window{Limit: getEnvInt("RATE_REGISTER_MAX", 2), Period: getEnvDuration("RATE_REGISTER_WINDOW", 24*time.Hour)},
			Contact:  Window{Limit: getEnvInt("RATE_CONTACT_MAX", 5), Period: getEnvDuration("RATE_CONTACT_WINDOW", time.Hour)},
			AI:       Window{Limit: getEnvInt("RATE_AI_MAX", 10), Period: getEnvDuration("RATE_AI_WINDOW", time.Hour)},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.AccessSecret == "change-me-access" || c.JWT.RefreshSecret == "change-me-refresh" {
			return fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}
	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
