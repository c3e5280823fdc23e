// pkg/config/validate.go
package config

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/opd-ai/go-mover/pkg/entity"
)

// Validate reports every problem in the scenario at once.
// Bodies are only checked for values the simulation cannot recover from.
func (s *Scenario) Validate() error {
	var errs []error

	if s.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", s.Frames))
	}
	if !finite(s.Bounds.Width) || s.Bounds.Width < 0 {
		errs = append(errs, fmt.Errorf("bounds width must be a non-negative number, got %v", s.Bounds.Width))
	}
	if !finite(s.Bounds.Height) || s.Bounds.Height < 0 {
		errs = append(errs, fmt.Errorf("bounds height must be a non-negative number, got %v", s.Bounds.Height))
	}
	if !finite(s.Physics.Gravity[0]) || !finite(s.Physics.Gravity[1]) {
		errs = append(errs, fmt.Errorf("gravity must be finite, got %v", s.Physics.Gravity))
	}
	if bounce := s.Physics.Bounce(); !finite(bounce) || bounce < 0 {
		errs = append(errs, fmt.Errorf("bounce friction must be a non-negative number, got %v", bounce))
	}
	if _, err := entity.ParsePairing(s.Physics.Pairing); err != nil {
		errs = append(errs, err)
	}

	for i, body := range s.Bodies {
		label := body.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if !finite(body.Mass) || body.Mass <= 0 {
			errs = append(errs, fmt.Errorf("body %s: mass must be positive, got %v", label, body.Mass))
		}
		if !finite(body.Position[0]) || !finite(body.Position[1]) {
			errs = append(errs, fmt.Errorf("body %s: position must be finite, got %v", label, body.Position))
		}
		if !finite(body.Velocity[0]) || !finite(body.Velocity[1]) {
			errs = append(errs, fmt.Errorf("body %s: velocity must be finite, got %v", label, body.Velocity))
		}
		if !finite(body.Acceleration[0]) || !finite(body.Acceleration[1]) {
			errs = append(errs, fmt.Errorf("body %s: acceleration must be finite, got %v", label, body.Acceleration))
		}
		if body.Color != "" {
			if _, err := ParseColor(body.Color); err != nil {
				errs = append(errs, fmt.Errorf("body %s: %w", label, err))
			}
		}
	}

	return errors.Join(errs...)
}

// ParseColor parses a #rgb or #rrggbb color.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
