package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	cfg := Normalize(Config{
		APIKey:        "  sk-test  ",
		Model:         "  ",
		MaxIterations: 0,
	})

	if cfg.APIKey != "sk-test" {
		t.Fatalf("api key not trimmed: %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-3.5-turbo" {
		t.Fatalf("blank model should fall back to the default, got %q", cfg.Model)
	}
	if cfg.MaxIterations != 1 {
		t.Fatalf("max iterations should clamp to 1, got %d", cfg.MaxIterations)
	}
	if cfg.CommandTimeout != 60*time.Second {
		t.Fatalf("unexpected command timeout: %v", cfg.CommandTimeout)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	if err := Validate(Config{}); err == nil {
		t.Fatal("expected an error for a missing API key")
	}
	if err := Validate(Config{APIKey: "sk-test"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFileConfigApplyOverlaysOnlySetKeys(t *testing.T) {
	model := "gpt-4o-mini"
	iterations := 8
	fc := FileConfig{Model: &model, MaxIterations: &iterations}

	cfg := fc.Apply(DefaultConfig())

	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("model not applied: %q", cfg.Model)
	}
	if cfg.MaxIterations != 8 {
		t.Fatalf("max iterations not applied: %d", cfg.MaxIterations)
	}
	if cfg.CommandTimeout != DefaultConfig().CommandTimeout {
		t.Fatalf("unset key must keep its default, got %v", cfg.CommandTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchat.yaml")
	content := "model: gpt-4o\nmax_iterations: 3\ncommand_timeout_seconds: 15\nverbose: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := fc.Apply(DefaultConfig())

	if cfg.Model != "gpt-4o" {
		t.Fatalf("unexpected model: %q", cfg.Model)
	}
	if cfg.MaxIterations != 3 {
		t.Fatalf("unexpected max iterations: %d", cfg.MaxIterations)
	}
	if cfg.CommandTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.CommandTimeout)
	}
	if !cfg.Verbose {
		t.Fatal("verbose should be enabled")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
