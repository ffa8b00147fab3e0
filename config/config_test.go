package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/roadnet/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 100, c.Agents)
	assert.Equal(t, 36000, c.Rounds)
	assert.Equal(t, 0.8, c.Shrinkage)
	assert.Equal(t, 1, c.RoadsPerRound)
	assert.Equal(t, 10, c.MaxRounds)
	assert.Equal(t, 500, c.UpdateInterval)
	assert.Equal(t, int64(1), c.Seed)
	assert.Equal(t, config.DemandOD, c.DemandMode)
	assert.Equal(t, 1024, c.CacheSize)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"agents":          func(c *config.Config) { c.Agents = 0 },
		"rounds":          func(c *config.Config) { c.Rounds = 0 },
		"shrinkage zero":  func(c *config.Config) { c.Shrinkage = 0 },
		"shrinkage one":   func(c *config.Config) { c.Shrinkage = 1 },
		"roads per round": func(c *config.Config) { c.RoadsPerRound = 0 },
		"max rounds":      func(c *config.Config) { c.MaxRounds = 0 },
		"update interval": func(c *config.Config) { c.UpdateInterval = -1 },
		"demand mode":     func(c *config.Config) { c.DemandMode = "bogus" },
		"cache size":      func(c *config.Config) { c.CacheSize = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		config.EnvAgents:        "25",
		config.EnvShrinkage:     "0.5",
		config.EnvSeed:          "99",
		config.EnvDemandMode:    config.DemandEdgeLoad,
		config.EnvRoadsPerRound: "",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	c, err := config.FromEnv(config.Default(), lookup)
	require.NoError(t, err)
	assert.Equal(t, 25, c.Agents)
	assert.Equal(t, 0.5, c.Shrinkage)
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, config.DemandEdgeLoad, c.DemandMode)
	assert.Equal(t, 1, c.RoadsPerRound, "empty values keep the base")

	env[config.EnvRounds] = "many"
	_, err = config.FromEnv(config.Default(), lookup)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	delete(env, config.EnvRounds)
	env[config.EnvShrinkage] = "1.5"
	_, err = config.FromEnv(config.Default(), lookup)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestFromEnv_EveryKey(t *testing.T) {
	env := map[string]string{
		config.EnvAgents:         "7",
		config.EnvRounds:         "8",
		config.EnvShrinkage:      "0.25",
		config.EnvRoadsPerRound:  "3",
		config.EnvMaxRounds:      "4",
		config.EnvUpdateInterval: "0",
		config.EnvSeed:           "-5",
		config.EnvDemandMode:     config.DemandEdgeLoad,
		config.EnvCacheSize:      "16",
		config.EnvAddr:           "127.0.0.1:0",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	c, err := config.FromEnv(config.Default(), lookup)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Agents:         7,
		Rounds:         8,
		Shrinkage:      0.25,
		RoadsPerRound:  3,
		MaxRounds:      4,
		UpdateInterval: 0,
		Seed:           -5,
		DemandMode:     config.DemandEdgeLoad,
		CacheSize:      16,
		Addr:           "127.0.0.1:0",
	}, c)

	env[config.EnvSeed] = "1e3"
	_, err = config.FromEnv(config.Default(), lookup)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorContains(t, err, "Seed")
}

func TestLoad_EnvFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roadnet.env")
	require.NoError(t, os.WriteFile(path, []byte("ROADNET_MAX_ROUNDS=4\nROADNET_ADDR=:9090\n"), 0o600))

	c, err := config.Read(config.Default(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.MaxRounds)
	assert.Equal(t, ":9090", c.Addr)

	// Process environment wins over the file.
	t.Setenv(config.EnvMaxRounds, "7")
	t.Setenv(config.EnvAddr, "")
	c, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.MaxRounds)
	assert.Equal(t, config.DefaultAddr, c.Addr)

	_, err = config.Load(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}
