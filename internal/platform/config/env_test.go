package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Limit int    `env:"TEST_LIMIT" envDefault:"2000"`
	Path  string `env:"TEST_PATH"  envDefault:"input.txt"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 2000 {
		t.Fatalf("expected default limit 2000, got %d", cfg.Limit)
	}
	if cfg.Path != "input.txt" {
		t.Fatalf("expected default path input.txt, got %q", cfg.Path)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TEST_PATH", "ignored.txt")
	t.Setenv("RPGSIM_TEST_PATH", "commands.txt")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Path != "commands.txt" {
		t.Fatalf("expected prefixed path, got %q", cfg.Path)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("RPGSIM_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
