package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Pipeline
	OpenAI    OpenAIConfig
	RateLimit RateLimitConfig
	Watcher   WatcherConfig
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

// OpenAIConfig configures the transcription and extraction clients.
type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
}

// RateLimitConfig bounds the processing endpoints.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// WatcherConfig enables the recording inbox. When Dir is empty the
// watcher stays off.
type WatcherConfig struct {
	Dir           string
	MaxConcurrent int
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

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.ChatModel = viper.GetString("openai.chat_model")
	cfg.OpenAI.TranscriptionModel = viper.GetString("openai.transcription_model")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	// Rate limiting
	cfg.RateLimit.RPS = viper.GetFloat64("ratelimit.rps")
	cfg.RateLimit.Burst = viper.GetInt("ratelimit.burst")

	// Inbox watcher
	cfg.Watcher.Dir = viper.GetString("watcher.dir")
	cfg.Watcher.MaxConcurrent = viper.GetInt("watcher.max_concurrent")
	if inbox := viper.GetString("watcher_dir"); inbox != "" {
		cfg.Watcher.Dir = inbox
	}

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
	viper.SetDefault("openai.chat_model", "gpt-4o-mini")
	viper.SetDefault("openai.transcription_model", "whisper-1")
	viper.SetDefault("ratelimit.rps", 1)
	viper.SetDefault("ratelimit.burst", 5)
	viper.SetDefault("watcher.max_concurrent", 2)
}
