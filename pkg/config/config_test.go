package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.MapWidth != 80 || cfg.MapHeight != 50 {
		t.Errorf("map = %dx%d, want 80x50", cfg.MapWidth, cfg.MapHeight)
	}
	if len(cfg.Players) != 2 {
		t.Errorf("players = %d, want 2", len(cfg.Players))
	}
	humans := 0
	for _, p := range cfg.Players {
		if p.Human {
			humans++
		}
	}
	if humans != 1 {
		t.Errorf("human seats = %d, want 1", humans)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr bool
	}{
		{"default", func(*GameConfig) {}, false},
		{"zero width", func(c *GameConfig) { c.MapWidth = 0 }, true},
		{"negative height", func(c *GameConfig) { c.MapHeight = -1 }, true},
		{"no players", func(c *GameConfig) { c.Players = nil }, true},
		{"earth scenario", func(c *GameConfig) { c.Scenario = "earth" }, false},
		{"unknown scenario", func(c *GameConfig) { c.Scenario = "mars" }, true},
		{"hard difficulty", func(c *GameConfig) { c.Difficulty = DifficultyHard }, false},
		{"unknown difficulty", func(c *GameConfig) { c.Difficulty = "nightmare" }, true},
		{"empty scenario defaults", func(c *GameConfig) { c.Scenario = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapWidth = 40
	cfg.MapHeight = 30
	cfg.Scenario = "earth"
	cfg.Seed = 12345
	cfg.Players = []PlayerConfig{
		{Name: "Alice", Civilization: "greeks", Color: "#abc", Human: true},
	}

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.MapWidth != 40 || loaded.MapHeight != 30 {
		t.Errorf("map = %dx%d, want 40x30", loaded.MapWidth, loaded.MapHeight)
	}
	if loaded.Scenario != "earth" || loaded.Seed != 12345 {
		t.Errorf("scenario/seed = %s/%d, want earth/12345", loaded.Scenario, loaded.Seed)
	}
	if len(loaded.Players) != 1 || loaded.Players[0].Name != "Alice" {
		t.Errorf("players = %+v, want the single configured seat", loaded.Players)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("mapWidth: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MapWidth != 64 {
		t.Errorf("mapWidth = %d, want 64", cfg.MapWidth)
	}
	if cfg.MapHeight != 50 {
		t.Errorf("mapHeight = %d, want default 50", cfg.MapHeight)
	}
	if cfg.Bridge.ListenAddress != ":8080" {
		t.Errorf("listen address = %q, want default :8080", cfg.Bridge.ListenAddress)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("mapWidth: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("scenario: mars\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); err == nil {
		t.Error("expected validation error for unknown scenario")
	}
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvMapWidth, "100")
	t.Setenv(EnvScenario, "earth")
	t.Setenv(EnvSeed, "987")
	t.Setenv(EnvListenAddr, ":9999")

	cfg := DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides: %v", err)
	}
	if cfg.MapWidth != 100 {
		t.Errorf("mapWidth = %d, want 100", cfg.MapWidth)
	}
	if cfg.MapHeight != 50 {
		t.Errorf("mapHeight = %d, want untouched default 50", cfg.MapHeight)
	}
	if cfg.Scenario != "earth" || cfg.Seed != 987 {
		t.Errorf("scenario/seed = %s/%d, want earth/987", cfg.Scenario, cfg.Seed)
	}
	if cfg.Bridge.ListenAddress != ":9999" {
		t.Errorf("listen address = %q, want :9999", cfg.Bridge.ListenAddress)
	}
}

func TestApplyEnvironmentOverrides_Invalid(t *testing.T) {
	t.Setenv(EnvMapWidth, "eighty")
	cfg := DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err == nil {
		t.Error("expected error for non-numeric width")
	}

	t.Setenv(EnvMapWidth, "")
	t.Setenv(EnvScenario, "mars")
	cfg = DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err == nil {
		t.Error("expected validation error for unknown scenario override")
	}
}
