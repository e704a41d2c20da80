package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Input  string `env:"CMD_TEST_INPUT" envDefault:"input.txt"`
	Format string `env:"CMD_TEST_FORMAT" envDefault:"auto"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("RPGSIM_CMD_TEST_INPUT", "env.txt")
	t.Setenv("RPGSIM_CMD_TEST_FORMAT", "text")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Input, "input", cfg.Input, "input")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "format")

	if err := ParseArgs(fs, []string{"-input", "flag.txt"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Input != "flag.txt" {
		t.Fatalf("expected flag value for input, got %q", cfg.Input)
	}
	if cfg.Format != "text" {
		t.Fatalf("expected env default format, got %q", cfg.Format)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	var cfg *testConfig
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceSimulator, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("RPGSIM_OTEL_ENDPOINT", "")
	want := errors.New("boom")

	err := RunWithTelemetry(context.Background(), ServiceSimulator, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
