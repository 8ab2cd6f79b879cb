// Package config reads the server configuration from the environment and an
// optional .env.<env> file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the server settings.
type Config struct {
	// Env is the deployment environment: DEV (default), TEST, QA or PROD.
	Env string
	// Port is the HTTP port to listen on.
	Port string
	// DBURL is the mongodb connection URL. An empty DBURL keeps the roster in
	// memory and the page state in StateDir.
	DBURL  string
	DBName string
	// StateDir is where page state is saved when DBURL is empty.
	StateDir string
	// Latency delays every API response, to simulate a remote service.
	Latency time.Duration
	// RateLimit is the number of requests allowed per minute per client IP.
	// Zero disables rate limiting.
	RateLimit int
	LogLevel  string
	// Seed fills an empty roster with the sample records at startup.
	Seed bool
}

// Load reads the configuration. If dir contains a .env.<env> file, its
// variables are loaded first without overriding the existing environment.
func Load(dir string) (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("port", "8080")
	conf.SetDefault("db_url", "")
	conf.SetDefault("db_name", "gradeboard")
	conf.SetDefault("state_dir", ".gradeboard")
	conf.SetDefault("latency", time.Duration(0))
	conf.SetDefault("rate_limit", 0)
	conf.SetDefault("log_level", "info")
	conf.SetDefault("seed", true)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(dir, ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, fmt.Errorf("godotenv.Load(%s) error: %w", dotEnvPath, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("os.Stat(%s) error: %w", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Env:       env,
		Port:      conf.GetString("port"),
		DBURL:     conf.GetString("db_url"),
		DBName:    conf.GetString("db_name"),
		StateDir:  conf.GetString("state_dir"),
		Latency:   conf.GetDuration("latency"),
		RateLimit: conf.GetInt("rate_limit"),
		LogLevel:  conf.GetString("log_level"),
		Seed:      conf.GetBool("seed"),
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	if cfg.DBName == "" {
		return errors.New("DB_NAME is required")
	}

	if cfg.DBURL == "" && cfg.StateDir == "" {
		return errors.New("STATE_DIR is required when DB_URL is not set")
	}

	if cfg.Latency < 0 {
		return fmt.Errorf("invalid LATENCY %s", cfg.Latency)
	}

	if cfg.RateLimit < 0 {
		return fmt.Errorf("invalid RATE_LIMIT %d", cfg.RateLimit)
	}

	return nil
}
