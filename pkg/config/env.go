package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnvironmentOverrides.
const (
	EnvMapWidth   = "EMPIRE_MAP_WIDTH"
	EnvMapHeight  = "EMPIRE_MAP_HEIGHT"
	EnvScenario   = "EMPIRE_SCENARIO"
	EnvSeed       = "EMPIRE_SEED"
	EnvDifficulty = "EMPIRE_DIFFICULTY"
	EnvListenAddr = "EMPIRE_LISTEN_ADDR"
)

// ApplyEnvironmentOverrides layers EMPIRE_* environment variables over the
// loaded configuration. Unset variables leave the file values alone.
func ApplyEnvironmentOverrides(cfg *GameConfig) error {
	if v := os.Getenv(EnvMapWidth); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvMapWidth, v, err)
		}
		cfg.MapWidth = width
	}
	if v := os.Getenv(EnvMapHeight); v != "" {
		height, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvMapHeight, v, err)
		}
		cfg.MapHeight = height
	}
	if v := os.Getenv(EnvScenario); v != "" {
		cfg.Scenario = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvDifficulty); v != "" {
		cfg.Difficulty = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.Bridge.ListenAddress = v
	}
	return cfg.Validate()
}
