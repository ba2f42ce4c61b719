// Package config loads game configuration from YAML files with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Difficulty levels for AI opponents.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// PlayerConfig describes one seat at the table.
type PlayerConfig struct {
	Name         string `yaml:"name"`
	Civilization string `yaml:"civilization"`
	Color        string `yaml:"color"`
	Human        bool   `yaml:"human"`
}

// BridgeConfig configures the websocket bridge the UI connects to.
type BridgeConfig struct {
	ListenAddress   string        `yaml:"listenAddress"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	MaxMessageBytes int64         `yaml:"maxMessageBytes"`
}

// GameConfig is the root configuration for a game session.
type GameConfig struct {
	MapWidth         int            `yaml:"mapWidth"`
	MapHeight        int            `yaml:"mapHeight"`
	Scenario         string         `yaml:"scenario"` // "random" or "earth"
	Seed             int64          `yaml:"seed"`
	Difficulty       string         `yaml:"difficulty"`
	StartingSettlers int            `yaml:"startingSettlers"`
	Players          []PlayerConfig `yaml:"players"`
	Bridge           BridgeConfig   `yaml:"bridge"`
}

// DefaultConfig returns a playable two-seat configuration on the standard
// 80x50 random map.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		MapWidth:         80,
		MapHeight:        50,
		Scenario:         "random",
		Seed:             time.Now().UnixNano(),
		Difficulty:       DifficultyNormal,
		StartingSettlers: 1,
		Players: []PlayerConfig{
			{Name: "Player", Civilization: "romans", Color: "#e03030", Human: true},
			{Name: "Cleopatra", Civilization: "egyptians", Color: "#3030e0", Human: false},
		},
		Bridge: BridgeConfig{
			ListenAddress:   ":8080",
			ReadTimeout:     60 * time.Second,
			WriteTimeout:    10 * time.Second,
			MaxMessageBytes: 64 * 1024,
		},
	}
}

// LoadConfig loads a configuration from a YAML file.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes a configuration to a YAML file.
func SaveConfig(cfg *GameConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks structural constraints the engine depends on.
func (c *GameConfig) Validate() error {
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return fmt.Errorf("config: map dimensions must be positive, got %dx%d", c.MapWidth, c.MapHeight)
	}
	if len(c.Players) == 0 {
		return fmt.Errorf("config: at least one player is required")
	}
	switch c.Scenario {
	case "", "random", "earth":
	default:
		return fmt.Errorf("config: unknown scenario %q", c.Scenario)
	}
	switch c.Difficulty {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
	default:
		return fmt.Errorf("config: unknown difficulty %q", c.Difficulty)
	}
	return nil
}
