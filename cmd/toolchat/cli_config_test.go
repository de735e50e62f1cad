package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseCLIConfigReadsEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", " sk-test ")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_BASE_URL", "")

	cfg, err := parseCLIConfig(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.APIKey != "sk-test" {
		t.Fatalf("unexpected api key: %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o" {
		t.Fatalf("unexpected model: %q", cfg.Model)
	}
	if cfg.MaxIterations != 5 {
		t.Fatalf("unexpected default max iterations: %d", cfg.MaxIterations)
	}
}

func TestParseCLIConfigFlagBeatsFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_BASE_URL", "")

	path := filepath.Join(t.TempDir(), "toolchat.yaml")
	if err := os.WriteFile(path, []byte("max_iterations: 9\ncommand_timeout_seconds: 10\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := parseCLIConfig([]string{"-config", path, "-max_iterations", "2"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.MaxIterations != 2 {
		t.Fatalf("flag should beat file, got %d", cfg.MaxIterations)
	}
	if cfg.CommandTimeout != 10*time.Second {
		t.Fatalf("file timeout should apply, got %v", cfg.CommandTimeout)
	}
}

func TestParseCLIConfigFileOnly(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_BASE_URL", "")

	path := filepath.Join(t.TempDir(), "toolchat.yaml")
	if err := os.WriteFile(path, []byte("max_iterations: 9\nmodel: gpt-4o-mini\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := parseCLIConfig([]string{"-config", path})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.MaxIterations != 9 {
		t.Fatalf("file value should apply, got %d", cfg.MaxIterations)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("file model should apply, got %q", cfg.Model)
	}
}
