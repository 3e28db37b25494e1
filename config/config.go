package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Knit     KnitConfig
	Explore  ExploreConfig
	Detect   DetectConfig
	Provider ProviderConfig
	Redis    RedisConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	MaxUploadBytes     int64
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogFormat   string
	Version     string
	ServiceName string
}

type KnitConfig struct {
	// DataPath, when set, is uploaded at startup.
	DataPath string
}

type ExploreConfig struct {
	MaxDepth       int
	AttributeDepth int
	ChildDepth     int
	MaxParameters  int
	MaxComponents  int
	MaxInjections  int
	MaxChildren    int
}

type DetectConfig struct {
	MaxDependencies int
}

type ProviderConfig struct {
	// URL of a remote class-info API; empty means the uploaded document
	// answers lookups.
	URL     string
	Timeout time.Duration
	Rate    float64
	Burst   int
}

type RedisConfig struct {
	// Addr empty keeps documents in memory.
	Addr        string
	Password    string
	DB          int
	DocumentTTL time.Duration
}

type SessionConfig struct {
	TTL       time.Duration
	SweepSpec string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxUploadBytes:     int64(getEnvAsInt("MAX_UPLOAD_BYTES", 32<<20)),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ServiceName: getEnv("SERVICE_NAME", "knit-di-graph"),
		},
		Knit: KnitConfig{
			DataPath: getEnv("KNIT_DATA_PATH", ""),
		},
		Explore: ExploreConfig{
			MaxDepth:       getEnvAsInt("EXPLORE_MAX_DEPTH", 5),
			AttributeDepth: getEnvAsInt("EXPLORE_ATTRIBUTE_DEPTH", 2),
			ChildDepth:     getEnvAsInt("EXPLORE_CHILD_DEPTH", 1),
			MaxParameters:  getEnvAsInt("EXPLORE_MAX_PARAMETERS", 10),
			MaxComponents:  getEnvAsInt("EXPLORE_MAX_COMPONENTS", 10),
			MaxInjections:  getEnvAsInt("EXPLORE_MAX_INJECTIONS", 10),
			MaxChildren:    getEnvAsInt("EXPLORE_MAX_CHILDREN", 5),
		},
		Detect: DetectConfig{
			MaxDependencies: getEnvAsInt("DETECT_MAX_DEPENDENCIES", 5),
		},
		Provider: ProviderConfig{
			URL:     strings.TrimRight(getEnv("PROVIDER_URL", ""), "/"),
			Timeout: getEnvAsDuration("PROVIDER_TIMEOUT", 10*time.Second),
			Rate:    getEnvAsFloat("PROVIDER_RATE", 20),
			Burst:   getEnvAsInt("PROVIDER_BURST", 5),
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", ""),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvAsInt("REDIS_DB", 0),
			DocumentTTL: getEnvAsDuration("REDIS_DOCUMENT_TTL", 0),
		},
		Session: SessionConfig{
			TTL:       getEnvAsDuration("SESSION_TTL", 30*time.Minute),
			SweepSpec: getEnv("SESSION_SWEEP_SPEC", "@every 5m"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	switch strings.ToLower(c.App.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.App.LogFormat)
	}

	e := c.Explore
	if e.MaxDepth <= 0 {
		return fmt.Errorf("EXPLORE_MAX_DEPTH must be positive")
	}
	if e.AttributeDepth < 0 || e.ChildDepth < 0 {
		return fmt.Errorf("EXPLORE_ATTRIBUTE_DEPTH and EXPLORE_CHILD_DEPTH must not be negative")
	}
	if e.MaxParameters <= 0 || e.MaxComponents <= 0 || e.MaxInjections <= 0 || e.MaxChildren <= 0 {
		return fmt.Errorf("explore caps must be positive")
	}

	if c.Detect.MaxDependencies <= 0 {
		return fmt.Errorf("DETECT_MAX_DEPENDENCIES must be positive")
	}

	if c.Provider.URL != "" {
		if !strings.HasPrefix(c.Provider.URL, "http://") && !strings.HasPrefix(c.Provider.URL, "https://") {
			return fmt.Errorf("PROVIDER_URL must be an http(s) URL")
		}
		if c.Provider.Timeout <= 0 {
			return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
		}
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if _, err := cron.ParseStandard(c.Session.SweepSpec); err != nil {
		return fmt.Errorf("SESSION_SWEEP_SPEC: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
