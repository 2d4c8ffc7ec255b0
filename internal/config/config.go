package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// SetLogLevel adjusts the package logger, e.g. from LOG_LEVEL
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DBDriver    string `json:"db_driver"`
	DBPath      string `json:"db_path"`
	DBHost      string `json:"db_host"`
	DBPort      string `json:"db_port"`
	DBName      string `json:"db_name"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
	DBSSLMode   string `json:"db_sslmode"`
	DatabaseURL string `json:"database_url"`

	// Session configuration
	SessionStore  string        `json:"session_store"`
	SessionTTL    time.Duration `json:"session_ttl"`
	RedisAddr     string        `json:"redis_addr"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret          string        `json:"jwt_secret"`
	TokenTTL           time.Duration `json:"token_ttl"`
	PasswordEncoder    string        `json:"password_encoder"`
	RequireLogin       bool          `json:"require_login"`
	CORSAllowedOrigins []string      `json:"cors_allowed_origins"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DatabaseURL: %s, "+
		"SessionStore: %s, SessionTTL: %s, RedisAddr: %s, RedisPassword: [REDACTED], RedisDB: %d, LogLevel: %s, JWTSecret: [REDACTED], TokenTTL: %s, PasswordEncoder: %s, RequireLogin: %t, CORSAllowedOrigins: %v}",
		c.Port, c.Host, c.Environment, c.DBDriver, c.DBPath, c.DBHost, c.DBPort, c.DBName, c.DBUser, maskDatabaseURL(c.DatabaseURL),
		c.SessionStore, c.SessionTTL, c.RedisAddr, c.RedisDB, c.LogLevel, c.TokenTTL, c.PasswordEncoder, c.RequireLogin, c.CORSAllowedOrigins)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates numeric values and, when present, the DATABASE_URL format
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(GetEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	sessionMinutes, err := strconv.Atoi(GetEnvWithDefault("SESSION_TTL_MINUTES", "30"))
	if err != nil || sessionMinutes < 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %q", os.Getenv("SESSION_TTL_MINUTES"))
	}

	tokenHours, err := strconv.Atoi(GetEnvWithDefault("TOKEN_TTL_HOURS", "24"))
	if err != nil || tokenHours <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %q", os.Getenv("TOKEN_TTL_HOURS"))
	}

	dbURL := GetEnvWithDefault("DATABASE_URL", "")
	if dbURL != "" {
		// validate URL with net/url
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %s", maskDatabaseURL(dbURL))
		}
	}

	config := &Config{
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:        GetEnvWithDefault("APP_ENV", "development"),
		DBDriver:           GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:             GetEnvWithDefault("DB_PATH", "pizza.sqlite"),
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "pizza"),
		DBUser:             GetEnvWithDefault("DB_USER", "user"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		DatabaseURL:        dbURL,
		SessionStore:       GetEnvWithDefault("SESSION_STORE", "memory"),
		SessionTTL:         time.Duration(sessionMinutes) * time.Minute,
		RedisAddr:          GetEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      GetEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:            redisDB,
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:          GetEnvWithDefault("JWT_SECRET", "secret"),
		TokenTTL:           time.Duration(tokenHours) * time.Hour,
		PasswordEncoder:    GetEnvWithDefault("PASSWORD_ENCODER", "bcrypt"),
		RequireLogin:       GetEnvAsType("REQUIRE_LOGIN", false),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080")),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
