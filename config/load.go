package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvAgents         = "ROADNET_AGENTS"
	EnvRounds         = "ROADNET_ROUNDS"
	EnvShrinkage      = "ROADNET_SHRINKAGE"
	EnvRoadsPerRound  = "ROADNET_ROADS_PER_ROUND"
	EnvMaxRounds      = "ROADNET_MAX_ROUNDS"
	EnvUpdateInterval = "ROADNET_UPDATE_INTERVAL"
	EnvSeed           = "ROADNET_SEED"
	EnvDemandMode     = "ROADNET_DEMAND_MODE"
	EnvCacheSize      = "ROADNET_CACHE_SIZE"
	EnvAddr           = "ROADNET_ADDR"
)

// Load starts from Default, loads .env files into the process environment
// and applies ROADNET_* overrides. Variables already set in the environment
// win over file values.
//
// With no paths, ./.env is loaded if present. Explicit paths must exist.
func Load(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		if len(paths) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file: %w", err)
		}
	}

	return FromEnv(Default(), os.LookupEnv)
}

// Read parses a single .env file without touching the process environment
// and applies it over base.
func Read(base Config, path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return FromEnv(base, func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	})
}

// envKeys lists every ROADNET_* key carried by a Config env tag.
var envKeys = []string{
	EnvAgents, EnvRounds, EnvShrinkage, EnvRoadsPerRound, EnvMaxRounds,
	EnvUpdateInterval, EnvSeed, EnvDemandMode, EnvCacheSize, EnvAddr,
}

// FromEnv applies every ROADNET_* key found by lookup over base and validates
// the result. Empty values keep the base.
func FromEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	vars := make(map[string]string, len(envKeys))
	for _, k := range envKeys {
		if v, ok := lookup(k); ok && v != "" {
			vars[k] = v
		}
	}

	c := base
	if err := env.ParseWithOptions(&c, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
