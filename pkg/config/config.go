package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Fireflies FirefliesConfig
	WordPress WordPressConfig
	LinkedIn  LinkedInConfig
	Twitter   TwitterConfig
	Store     StoreConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// FirefliesConfig holds the transcript source configuration
type FirefliesConfig struct {
	BaseURL string
	Timeout time.Duration
}

// WordPressConfig holds CMS gateway configuration. The site URL and
// credentials are supplied per request; only transport tuning lives here.
type WordPressConfig struct {
	Timeout time.Duration
}

// LinkedInConfig holds the LinkedIn gateway configuration
type LinkedInConfig struct {
	BaseURL string
	Timeout time.Duration
}

// TwitterConfig holds the simulated Twitter gateway configuration
type TwitterConfig struct {
	BaseURL        string
	SimulatedDelay time.Duration
}

// StoreConfig selects the credential store backend
type StoreConfig struct {
	Backend  string // "memory", "file" or "redis"
	FilePath string
	Redis    RedisConfig
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var server ServerConfig
	if err := envconfig.Process("", &server); err != nil {
		return nil, fmt.Errorf("failed to process server config: %w", err)
	}

	config := &Config{
		Server: server,
		Fireflies: FirefliesConfig{
			BaseURL: getEnv("FIREFLIES_API_URL", "https://api.fireflies.ai/graphql"),
			Timeout: getEnvAsDuration("FIREFLIES_TIMEOUT", "30s"),
		},
		WordPress: WordPressConfig{
			Timeout: getEnvAsDuration("WORDPRESS_TIMEOUT", "30s"),
		},
		LinkedIn: LinkedInConfig{
			BaseURL: getEnv("LINKEDIN_API_URL", "https://api.linkedin.com"),
			Timeout: getEnvAsDuration("LINKEDIN_TIMEOUT", "30s"),
		},
		Twitter: TwitterConfig{
			BaseURL:        getEnv("TWITTER_API_URL", "https://api.twitter.com"),
			SimulatedDelay: getEnvAsDuration("TWITTER_SIMULATED_DELAY", "1s"),
		},
		Store: StoreConfig{
			Backend:  getEnv("STORE_BACKEND", "memory"),
			FilePath: getEnv("STORE_FILE_PATH", "credentials.json"),
			Redis: RedisConfig{
				Host:     getEnv("REDIS_HOST", "localhost"),
				Port:     getEnv("REDIS_PORT", "6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("REDIS_DB", 0),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("STORE_BACKEND must be one of memory, file, redis; got %q", c.Store.Backend)
	}
	if c.Store.Backend == "file" && c.Store.FilePath == "" {
		return fmt.Errorf("STORE_FILE_PATH is required when STORE_BACKEND=file")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Store.Redis.Host, c.Store.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
