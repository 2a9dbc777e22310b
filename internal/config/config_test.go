package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCoinsConfig()) {
		t.Errorf("embedded defaults drifted from DefaultCoinsConfig:\n got %+v\nwant %+v", cfg, DefaultCoinsConfig())
	}
}

func TestLoadCoinsFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCoins("")
	if err != nil {
		t.Fatalf("LoadCoins() failed: %v", err)
	}
	if cfg.Coin.CaptureRadius != 0.8 || cfg.Spawn.Interval != 0.3 {
		t.Errorf("expected default tuning, got %+v", cfg)
	}
}

func TestLoadCoinsUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".coinfall", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "coins.yaml"), []byte("hud:\n  max_score: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCoins("")
	if err != nil {
		t.Fatalf("LoadCoins() failed: %v", err)
	}
	if cfg.HUD.MaxScore != 25 {
		t.Errorf("user config not picked up, max_score = %d", cfg.HUD.MaxScore)
	}
}

func TestLoadCoinsCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := []byte(`
spawn:
  interval: 0.5
coin:
  capture_radius: 1.25
`)
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCoins(path)
	if err != nil {
		t.Fatalf("LoadCoins(%q) failed: %v", path, err)
	}
	if cfg.Spawn.Interval != 0.5 {
		t.Errorf("Spawn.Interval = %v, expected 0.5", cfg.Spawn.Interval)
	}
	if cfg.Coin.CaptureRadius != 1.25 {
		t.Errorf("Coin.CaptureRadius = %v, expected 1.25", cfg.Coin.CaptureRadius)
	}
	// Untouched fields keep defaults
	if cfg.Spawn.Height != 10 || cfg.Player.Speed != 5 {
		t.Errorf("defaults lost on partial override: %+v", cfg)
	}
}

func TestLoadCoinsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"negative capture radius", "coin:\n  capture_radius: -1\n", true},
		{"zero spawn interval", "spawn:\n  interval: 0\n", true},
		{"unknown key", "coins:\n  speed: 3\n", true},
		{"fractional threshold", "coin:\n  compact_threshold: 1.5\n", true},
		{"oversized ground", "world:\n  ground_size: 800\n", true},
		{"malformed yaml", "spawn: [\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadCoins(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
			if !reflect.DeepEqual(cfg, DefaultCoinsConfig()) {
				t.Error("failed load should return defaults")
			}
		})
	}

	if _, err := LoadCoins(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestValidateEmptyDocument(t *testing.T) {
	if err := Validate([]byte("")); err != nil {
		t.Errorf("empty document should validate, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultCoinsConfig()

	for _, p := range []DifficultyPreset{DifficultyNormal, DifficultyFixed} {
		cfg := DefaultCoinsConfig()
		ApplyPreset(&cfg, p)
		if !reflect.DeepEqual(cfg, base) {
			t.Errorf("preset %q should not change the config", p)
		}
	}

	easy := DefaultCoinsConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Coin.CaptureRadius <= base.Coin.CaptureRadius || easy.Coin.BaseSpeed >= base.Coin.BaseSpeed {
		t.Errorf("easy should widen the catch and slow coins: %+v", easy.Coin)
	}

	hard := DefaultCoinsConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Coin.CaptureRadius >= base.Coin.CaptureRadius || hard.Coin.BaseSpeed <= base.Coin.BaseSpeed {
		t.Errorf("hard should tighten the catch and speed coins up: %+v", hard.Coin)
	}
	if err := Validate(mustYAML(t, hard)); err != nil {
		t.Errorf("hard preset should still satisfy the schema: %v", err)
	}
}
