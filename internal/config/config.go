// Package config loads settings for the match service and the terminal client
// from an optional YAML file overlaid with environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Server    Server    `yaml:"server"`
	Redis     Redis     `yaml:"redis"`
	SQLite    SQLite    `yaml:"sqlite"`
	Telemetry Telemetry `yaml:"telemetry"`
	Client    Client    `yaml:"client"`
}

type Server struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	// QueueTimeout drops queued devices that stop polling for their status.
	QueueTimeout time.Duration `yaml:"queue-timeout" env:"MATCH_QUEUE_TIMEOUT" env-default:"10s"`
}

type Redis struct {
	URL string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
	// MatchTTL bounds how long finished or abandoned match state is kept.
	MatchTTL time.Duration `yaml:"match-ttl" env:"REDIS_MATCH_TTL" env-default:"24h"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"three-in-a-row.db"`
}

type Telemetry struct {
	Enabled       bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	CollectorAddr string `yaml:"collector-addr" env:"OTEL_COLLECTOR_ADDR" env-default:"otel-collector:4317"`
	ServiceName   string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"three-in-a-row"`
	StdoutTraces  bool   `yaml:"stdout-traces" env:"OTEL_STDOUT_TRACES" env-default:"false"`
}

type Client struct {
	ServerURL       string        `yaml:"server-url" env:"SERVER_URL" env-default:"http://127.0.0.1:8080"`
	RequestTimeout  time.Duration `yaml:"request-timeout" env:"CLIENT_REQUEST_TIMEOUT" env-default:"5s"`
	PollInterval    time.Duration `yaml:"poll-interval" env:"CLIENT_POLL_INTERVAL" env-default:"2s"`
	MaxPollFailures int           `yaml:"max-poll-failures" env:"CLIENT_MAX_POLL_FAILURES" env-default:"3"`
	ThinkTime       time.Duration `yaml:"think-time" env:"CLIENT_THINK_TIME" env-default:"1s"`
	BoardSize       int           `yaml:"board-size" env:"CLIENT_BOARD_SIZE" env-default:"3"`
	Difficulty      string        `yaml:"difficulty" env:"CLIENT_DIFFICULTY" env-default:"easy"`
}

// Load reads path when it is set, then applies environment overrides. With
// an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// SlogLevel maps LogLevel onto slog, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
