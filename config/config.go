package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Career advisor specifics
	Knowledge KnowledgeConfig
	Gemini    GeminiConfig
	Session   SessionConfig
	Chat      ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// KnowledgeConfig locates the static skills/categories dataset.
type KnowledgeConfig struct {
	DataPath string
}

// GeminiConfig configures the generative-language backend. An empty APIKey is
// a valid state: the bot degrades to rule-based intents plus a fixed apology.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// SessionConfig bounds the in-memory session registry.
type SessionConfig struct {
	MaxUsers int
	IdleTTL  time.Duration
}

// ChatConfig holds chat endpoint settings.
type ChatConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Knowledge base
	cfg.Knowledge.DataPath = viper.GetString("knowledge.data_path")
	if dataPath := viper.GetString("knowledge_data_path"); dataPath != "" {
		cfg.Knowledge.DataPath = dataPath
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if apiKey := viper.GetString("gemini_api_key"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	cfg.Gemini.Timeout = parseDuration(viper.GetString("gemini.timeout"), 30*time.Second)

	// Sessions
	cfg.Session.MaxUsers = viper.GetInt("session.max_users")
	cfg.Session.IdleTTL = parseDuration(viper.GetString("session.idle_ttl"), 24*time.Hour)
	if cfg.Session.MaxUsers <= 0 {
		return nil, fmt.Errorf("session.max_users must be positive, got %d", cfg.Session.MaxUsers)
	}

	// Chat endpoint
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("knowledge.data_path", "./data/data.json")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("session.max_users", 1000)
	viper.SetDefault("session.idle_ttl", "24h")
	viper.SetDefault("chat.rate_limit_per_min", 60)
}

// parseDuration parses a duration string, falling back when empty or invalid.
func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
