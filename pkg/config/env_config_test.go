// pkg/config/env_config_test.go
package config

import (
	"strings"
	"testing"
)

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvFrames, "42")
	t.Setenv(EnvWidth, "1024")
	t.Setenv(EnvHeight, "768.5")
	t.Setenv(EnvGravityX, "-0.1")
	t.Setenv(EnvGravityY, "0.5")
	t.Setenv(EnvBounceFriction, "0.75")
	t.Setenv(EnvPairing, "symmetric")

	cfg := DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides() error = %v", err)
	}

	if cfg.Frames != 42 {
		t.Errorf("frames = %d, want 42", cfg.Frames)
	}
	if cfg.Bounds.Width != 1024 || cfg.Bounds.Height != 768.5 {
		t.Errorf("bounds = %+v", cfg.Bounds)
	}
	if cfg.Physics.Gravity != [2]float64{-0.1, 0.5} {
		t.Errorf("gravity = %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.Bounce() != 0.75 {
		t.Errorf("bounce = %v, want 0.75", cfg.Physics.Bounce())
	}
	if cfg.Physics.Pairing != "symmetric" {
		t.Errorf("pairing = %q, want symmetric", cfg.Physics.Pairing)
	}
}

func TestApplyEnvironmentOverrides_UnsetLeavesValues(t *testing.T) {
	for _, key := range []string{EnvFrames, EnvWidth, EnvHeight, EnvGravityX, EnvGravityY, EnvBounceFriction, EnvPairing} {
		t.Setenv(key, "")
	}

	cfg := DefaultConfig()
	want := DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides() error = %v", err)
	}

	if cfg.Frames != want.Frames || cfg.Bounds != want.Bounds || cfg.Physics.Gravity != want.Physics.Gravity {
		t.Errorf("values changed without overrides: %+v", cfg)
	}
	if cfg.Physics.Bounce() != want.Physics.Bounce() {
		t.Errorf("bounce changed without override: %v", cfg.Physics.Bounce())
	}
}

func TestApplyEnvironmentOverrides_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvFrames, "many"},
		{EnvFrames, "1.5"},
		{EnvWidth, "wide"},
		{EnvGravityY, "down"},
		{EnvBounceFriction, "bouncy"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			err := ApplyEnvironmentOverrides(DefaultConfig())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}
