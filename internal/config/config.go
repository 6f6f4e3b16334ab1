package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Plaid     PlaidConfig
	Scheduler SchedulerConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// PlaidConfig holds the bank-feed connector settings. Everything the
// connector and the webhook verifier need is injected from here; nothing
// reads the environment after Load returns.
type PlaidConfig struct {
	BaseURL          string
	ClientID         string
	Secret           string
	Environment      string
	RequestTimeout   time.Duration
	MaxRetryAttempts int
	WebhookMaxAge    time.Duration
}

type SchedulerConfig struct {
	SyncInterval          time.Duration
	AutoBudgetInterval    time.Duration
	DynamicBudgetInterval time.Duration
	MaxConcurrentItems    int
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "expenseease_user"),
			Password:        getEnv("DB_PASSWORD", "expenseease_password"),
			Name:            getEnv("DB_NAME", "expenseease_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Plaid: PlaidConfig{
			BaseURL:          getEnv("PLAID_BASE_URL", "https://sandbox.plaid.com"),
			ClientID:         getEnv("PLAID_CLIENT_ID", ""),
			Secret:           getEnv("PLAID_SECRET", ""),
			Environment:      getEnv("PLAID_ENV", "sandbox"),
			RequestTimeout:   getDurationEnv("PLAID_REQUEST_TIMEOUT", 30*time.Second),
			MaxRetryAttempts: getIntEnv("PLAID_MAX_RETRY_ATTEMPTS", 3),
			WebhookMaxAge:    getDurationEnv("PLAID_WEBHOOK_MAX_AGE", 5*time.Minute),
		},
		Scheduler: SchedulerConfig{
			SyncInterval:          getDurationEnv("SCHEDULER_SYNC_INTERVAL", time.Hour),
			AutoBudgetInterval:    getDurationEnv("SCHEDULER_AUTO_BUDGET_INTERVAL", 7*24*time.Hour),
			DynamicBudgetInterval: getDurationEnv("SCHEDULER_DYNAMIC_BUDGET_INTERVAL", 24*time.Hour),
			MaxConcurrentItems:    getIntEnv("SCHEDULER_MAX_CONCURRENT_ITEMS", 4),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// DSN returns a key=value connection string. A DATABASE_URL in URL form
// takes precedence over the individual DB_* settings.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		dsn, err := pq.ParseURL(c.URL)
		if err != nil {
			log.Printf("Invalid DATABASE_URL, falling back to DB_* settings: %v", err)
		} else {
			return dsn
		}
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
