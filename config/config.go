package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the portal service
type Config struct {
	Service  ServiceConfig
	Logging  LoggingConfig
	GenAI    GenAIConfig
	News     NewsConfig
	Search   SearchConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name            string
	Port            string
	ShutdownTimeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// GenAIConfig holds generative backend configuration.
// An empty APIKey is valid: every content operation then serves its fallback.
type GenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// NewsConfig holds news aggregation configuration
type NewsConfig struct {
	DefaultLimit int
	HomeLimit    int
}

// SearchConfig holds assistant search rate limiting configuration
type SearchConfig struct {
	RatePerSecond float64
	Burst         int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers       []string
	TopicFeedback string
}

// Result is fx.Out struct for providing config dependencies
type Result struct {
	fx.Out

	Config         *Config
	ServiceConfig  *ServiceConfig
	LoggingConfig  *LoggingConfig
	GenAIConfig    *GenAIConfig
	NewsConfig     *NewsConfig
	SearchConfig   *SearchConfig
	DatabaseConfig *DatabaseConfig
	KafkaConfig    *KafkaConfig
}

// Out returns fx-compatible config result
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:         cfg,
		ServiceConfig:  &cfg.Service,
		LoggingConfig:  &cfg.Logging,
		GenAIConfig:    &cfg.GenAI,
		NewsConfig:     &cfg.News,
		SearchConfig:   &cfg.Search,
		DatabaseConfig: &cfg.Database,
		KafkaConfig:    &cfg.Kafka,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	apiKey := getEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("API_KEY", "")
	}

	cfg := &Config{
		Service: ServiceConfig{
			Name:            getEnv("SERVICE_NAME", "portal-service"),
			Port:            getEnv("SERVICE_PORT", "8080"),
			ShutdownTimeout: getEnvDuration("SERVICE_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		GenAI: GenAIConfig{
			APIKey:  strings.TrimSpace(apiKey),
			Model:   getEnv("GENAI_MODEL", "gemini-2.5-flash"),
			Timeout: getEnvDuration("GENAI_TIMEOUT", 60*time.Second),
		},
		News: NewsConfig{
			DefaultLimit: getEnvInt("NEWS_DEFAULT_LIMIT", 50),
			HomeLimit:    getEnvInt("HOME_NEWS_LIMIT", 50),
		},
		Search: SearchConfig{
			RatePerSecond: getEnvFloat("SEARCH_RATE_PER_SECOND", 2),
			Burst:         getEnvInt("SEARCH_RATE_BURST", 5),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DATABASE_HOST", "localhost"),
			Port:           getEnv("DATABASE_PORT", "5432"),
			User:           getEnv("DATABASE_USER", "portal_user"),
			Password:       getEnv("DATABASE_PASSWORD", "portal_pass"),
			DBName:         getEnv("DATABASE_NAME", "portal_db"),
			SSLMode:        getEnv("DATABASE_SSLMODE", "disable"),
			MigrationsPath: getEnv("DATABASE_MIGRATIONS_PATH", "file://migrations"),
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(getEnv("KAFKA_BROKERS", "localhost:9093")),
			TopicFeedback: getEnv("KAFKA_TOPIC_FEEDBACK", "feedback.received"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Service.Port == "" {
		return fmt.Errorf("SERVICE_PORT is required")
	}

	if c.News.DefaultLimit <= 0 {
		return fmt.Errorf("NEWS_DEFAULT_LIMIT must be positive")
	}

	if c.News.HomeLimit <= 0 {
		return fmt.Errorf("HOME_NEWS_LIMIT must be positive")
	}

	if c.Search.RatePerSecond <= 0 {
		return fmt.Errorf("SEARCH_RATE_PER_SECOND must be positive")
	}

	if c.Search.Burst <= 0 {
		return fmt.Errorf("SEARCH_RATE_BURST must be positive")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DATABASE_HOST is required")
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	return nil
}

// HasAPIKey reports whether the generative backend credential is configured
func (c *GenAIConfig) HasAPIKey() bool {
	return c.APIKey != ""
}

// GetDSN returns database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets environment variable as duration with default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// getEnvInt gets environment variable as int with default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvFloat gets environment variable as float64 with default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
