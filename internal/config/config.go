// Package config loads game settings from a .env file and the environment.
// Command-line flags are applied on top by main.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable. Defaults match the classic game: seven
// letters, words of four or more, at least fifty solutions.
type Config struct {
	DictPath        string        `env:"WASP_DICT" envDefault:"/usr/share/dict/web2"`
	Letters         int           `env:"WASP_LETTERS" envDefault:"7"`
	MinLength       int           `env:"WASP_MIN_LENGTH" envDefault:"4"`
	MinSolutions    int           `env:"WASP_MIN_SOLUTIONS" envDefault:"50"`
	MaxAttempts     int           `env:"WASP_MAX_ATTEMPTS" envDefault:"100000"`
	GenerateTimeout time.Duration `env:"WASP_GENERATE_TIMEOUT" envDefault:"30s"`

	Fullscreen bool   `env:"WASP_FULLSCREEN"`
	SkipSplash bool   `env:"WASP_SKIP_SPLASH"`
	Daily      bool   `env:"WASP_DAILY"`
	DailySalt  string `env:"WASP_DAILY_SALT" envDefault:"spelling-wasp"`
	Seed       uint64 `env:"WASP_SEED"` // 0 = time based

	ResultsDB   string `env:"WASP_RESULTS_DB"`   // empty = in-memory history
	MetricsFile string `env:"WASP_METRICS_FILE"` // empty = no metrics dump
	PhrasesFile string `env:"WASP_PHRASES_FILE"` // empty = embedded phrases

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFile  string `env:"LOG_FILE"`
}

// Load reads an optional .env file (missing is fine) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SetupLogging configures the global zerolog logger. It returns a closer
// for the log file, if one was opened.
func SetupLogging(cfg Config) (io.Closer, error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
