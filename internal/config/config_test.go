package config

import (
	"os"
	"path/filepath"
	"testing"

	"compoundlab/internal/growth"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval != "monthly" {
		t.Errorf("expected interval monthly, got %s", cfg.Interval)
	}
	if cfg.Years < 1 {
		t.Error("years should be at least 1")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	cfg := &Config{Principal: 2500, Rate: 4.5, Interval: "weekly", Deposit: 75, Years: 8}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Principal != 2500 || loaded.Rate != 4.5 || loaded.Interval != "weekly" ||
		loaded.Deposit != 75 || loaded.Years != 8 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadPartialUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte("principal: 9000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Principal != 9000 {
		t.Errorf("expected principal 9000, got %f", cfg.Principal)
	}
	if cfg.Interval != DefaultInterval {
		t.Errorf("expected default interval, got %s", cfg.Interval)
	}
	if cfg.Years != DefaultYears {
		t.Errorf("expected default years, got %d", cfg.Years)
	}
}

func TestParams(t *testing.T) {
	cfg := &Config{Principal: 100, Rate: 6, Interval: "daily", Deposit: 1, Years: 2}

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("params failed: %v", err)
	}
	if p.Interval != growth.Daily {
		t.Errorf("expected daily interval, got %v", p.Interval)
	}
	if p.TotalPeriods() != 730 {
		t.Errorf("expected 730 periods, got %d", p.TotalPeriods())
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative principal", Config{Principal: -1, Interval: "monthly", Years: 1}},
		{"negative deposit", Config{Deposit: -1, Interval: "monthly", Years: 1}},
		{"zero years", Config{Interval: "monthly", Years: 0}},
		{"too many years", Config{Interval: "monthly", Years: MaxYears + 1}},
		{"bad interval", Config{Interval: "hourly", Years: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("retirement")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Years != 30 {
		t.Errorf("expected 30 years, got %d", cfg.Years)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	// Mutating the returned preset must not affect the registry.
	cfg.Years = 1
	if Presets["retirement"].Years != 30 {
		t.Error("preset registry was mutated")
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Errorf("listed preset %s not found", name)
			continue
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
