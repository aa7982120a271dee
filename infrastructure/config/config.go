package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"prioritize/pkg/utils"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address" validate:"required"`
	Environment   string `yaml:"environment" validate:"oneof=development staging production test"`
	AppName       string `yaml:"app_name" validate:"required"`

	// Graph service client configuration
	ServiceURL     string        `yaml:"service_url" validate:"required,url"`
	ContentType    string        `yaml:"content_type" validate:"required"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gt=0"`
	Breaker        BreakerConfig `yaml:"breaker"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Observability
	OTLPEndpoint string `yaml:"otlp_endpoint"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing"`
	EnableCORS    bool `yaml:"enable_cors"`

	// File is the YAML file the configuration was read from, if any
	File string `yaml:"-"`
}

// BreakerConfig holds circuit breaker settings for graph service calls
type BreakerConfig struct {
	MaxRequests  uint32        `yaml:"max_requests" validate:"gt=0"`
	Interval     time.Duration `yaml:"interval"`
	Timeout      time.Duration `yaml:"timeout" validate:"gt=0"`
	FailureRatio float64       `yaml:"failure_ratio" validate:"gt=0,lte=1"`
	MinRequests  uint32        `yaml:"min_requests"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		ServerAddress:  ":8080",
		Environment:    "development",
		AppName:        defaultAppName(),
		ServiceURL:     "http://localhost:8080",
		ContentType:    "application/json; charset=UTF-8",
		RequestTimeout: 10 * time.Second,
		Breaker: BreakerConfig{
			MaxRequests:  5,
			Interval:     30 * time.Second,
			Timeout:      60 * time.Second,
			FailureRatio: 0.8,
			MinRequests:  5,
		},
		LogLevel:       "info",
		AllowedOrigins: []string{"*"},
		EnableMetrics:  true,
		EnableTracing:  false,
		EnableCORS:     true,
	}
}

// LoadConfig loads configuration from defaults, the YAML file named by
// CONFIG_FILE and environment variables, in that order of precedence
func LoadConfig() (*Config, error) {
	cfg := Default()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		if err := loadFile(file, cfg); err != nil {
			return nil, err
		}
		cfg.File = file
	}

	loadEnvironmentVariables(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func loadEnvironmentVariables(cfg *Config) {
	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.AppName = getEnv("APP_NAME", cfg.AppName)

	cfg.ServiceURL = getEnv("SERVICE_URL", cfg.ServiceURL)
	cfg.ContentType = getEnv("CONTENT_TYPE", cfg.ContentType)
	cfg.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)

	cfg.Breaker.MaxRequests = uint32(getEnvInt("BREAKER_MAX_REQUESTS", int(cfg.Breaker.MaxRequests)))
	cfg.Breaker.Interval = getEnvDuration("BREAKER_INTERVAL", cfg.Breaker.Interval)
	cfg.Breaker.Timeout = getEnvDuration("BREAKER_TIMEOUT", cfg.Breaker.Timeout)
	cfg.Breaker.FailureRatio = getEnvFloat("BREAKER_FAILURE_RATIO", cfg.Breaker.FailureRatio)
	cfg.Breaker.MinRequests = uint32(getEnvInt("BREAKER_MIN_REQUESTS", int(cfg.Breaker.MinRequests)))

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.OTLPEndpoint = getEnv("OTLP_ENDPOINT", cfg.OTLPEndpoint)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.EnableMetrics)
	cfg.EnableTracing = getEnvBool("ENABLE_TRACING", cfg.EnableTracing)
	cfg.EnableCORS = getEnvBool("ENABLE_CORS", cfg.EnableCORS)
}

// defaultAppName is the name of the working directory
func defaultAppName() string {
	wd, err := os.Getwd()
	if err != nil {
		return "prioritize"
	}
	return filepath.Base(wd)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
