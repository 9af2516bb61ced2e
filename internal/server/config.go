package server

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"snake/internal/config"
)

// Config is read from the environment.
type Config struct {
	Port            int           `env:"PORT" envDefault:"8000"`
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Root            string        `env:"SNAKE_ROOT" envDefault:"."`
	IndexFallback   bool          `env:"SNAKE_INDEX_FALLBACK" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SNAKE_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig parses the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NewLogger builds the process logger described by c.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
