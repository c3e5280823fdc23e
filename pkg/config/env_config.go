// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override scenario values when set.
const (
	EnvFrames         = "MOVER_FRAMES"
	EnvWidth          = "MOVER_WIDTH"
	EnvHeight         = "MOVER_HEIGHT"
	EnvGravityX       = "MOVER_GRAVITY_X"
	EnvGravityY       = "MOVER_GRAVITY_Y"
	EnvBounceFriction = "MOVER_BOUNCE_FRICTION"
	EnvPairing        = "MOVER_PAIRING"
)

// ApplyEnvironmentOverrides replaces scenario values with any MOVER_* variables
// present in the environment. Unset or empty variables leave values untouched.
func ApplyEnvironmentOverrides(s *Scenario) error {
	if err := overrideInt(EnvFrames, &s.Frames); err != nil {
		return err
	}

	floats := []struct {
		key    string
		target *float64
	}{
		{EnvWidth, &s.Bounds.Width},
		{EnvHeight, &s.Bounds.Height},
		{EnvGravityX, &s.Physics.Gravity[0]},
		{EnvGravityY, &s.Physics.Gravity[1]},
	}
	for _, f := range floats {
		if err := overrideFloat(f.key, f.target); err != nil {
			return err
		}
	}

	if value := os.Getenv(EnvBounceFriction); value != "" {
		friction, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvBounceFriction, value, err)
		}
		s.Physics.BounceFriction = Float64(friction)
	}

	if value := os.Getenv(EnvPairing); value != "" {
		s.Physics.Pairing = value
	}

	return nil
}

func overrideInt(key string, target *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}

func overrideFloat(key string, target *float64) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}
