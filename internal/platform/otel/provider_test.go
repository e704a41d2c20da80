package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/rpgsim/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("RPGSIM_OTEL_ENDPOINT", "")
	t.Setenv("RPGSIM_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "rpgsim-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSettingsDisabled(t *testing.T) {
	tests := []struct {
		name     string
		settings otel.Settings
		want     bool
	}{
		{name: "empty endpoint", settings: otel.Settings{}, want: true},
		{name: "explicitly disabled", settings: otel.Settings{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: true},
		{name: "enabled", settings: otel.Settings{Endpoint: "http://localhost:4318"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.Disabled(); got != tt.want {
				t.Fatalf("Disabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetupWithSettings_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	shutdown, err := otel.SetupWithSettings(context.Background(), "rpgsim-test", otel.Settings{
		Endpoint: "http://192.0.2.1:4318",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("RPGSIM_OTEL_ENDPOINT", "")

	shutdown, err := otel.Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
