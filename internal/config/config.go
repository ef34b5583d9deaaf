package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string
	// Self-play settings for the "simulation" command.
	SimDeals    int
	SimSeed     int64
	SimOpponent string
}

func Defaults() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   "text",
		SimDeals:    50,
		SimSeed:     1,
		SimOpponent: "random",
	}
}

var (
	cfg      Config
	loadOnce sync.Once
	loadErr  error
)

// Load reads envFile (if it exists) into the environment and builds the
// configuration once. Later calls return the first result.
func Load(envFile string) (Config, error) {
	loadOnce.Do(func() {
		cfg, loadErr = load(envFile)
	})
	return cfg, loadErr
}

func load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from defaults overridden by getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Defaults()
	if v := getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		if v != "text" && v != "json" {
			return Config{}, fmt.Errorf("LOG_FORMAT must be text or json, got %q", v)
		}
		c.LogFormat = v
	}
	if v := getenv("SIM_DEALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("SIM_DEALS must be a positive integer, got %q", v)
		}
		c.SimDeals = n
	}
	if v := getenv("SIM_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SIM_SEED: %w", err)
		}
		c.SimSeed = n
	}
	if v := getenv("SIM_OPPONENT"); v != "" {
		c.SimOpponent = v
	}
	return c, nil
}
