// pkg/engine/settings.go
package engine

import (
	"github.com/opd-ai/go-mover/pkg/config"
	"github.com/opd-ai/go-mover/pkg/entity"
	"github.com/opd-ai/go-mover/pkg/physics"
)

// Settings controls what World applies to every body each frame.
// Nil force sections are switched off.
type Settings struct {
	Bounds         physics.Bounds
	Gravity        physics.Vector2D
	BounceFriction float64
	Pairing        entity.Pairing
	Friction       *Friction
	Drag           *Drag
	Attraction     *Attraction
}

// Friction holds ApplyFriction arguments
type Friction struct {
	Coefficient float64
	Normal      float64
}

// Drag holds ApplyDrag arguments
type Drag struct {
	Density     float64
	Area        float64
	Coefficient float64
}

// Attraction holds Attract arguments. Every body attracts every other body.
type Attraction struct {
	G     float64
	Repel bool
}

// DefaultSettings returns an unbounded, force-free world with elastic bounces.
func DefaultSettings() Settings {
	return Settings{
		BounceFriction: entity.DefaultBounceFriction,
		Pairing:        entity.Directed,
	}
}

// SettingsFromScenario converts scenario configuration.
func SettingsFromScenario(s *config.Scenario) (Settings, error) {
	pairing, err := entity.ParsePairing(s.Physics.Pairing)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{
		Bounds:         physics.Bounds{Width: s.Bounds.Width, Height: s.Bounds.Height},
		Gravity:        s.Physics.GravityVector(),
		BounceFriction: s.Physics.Bounce(),
		Pairing:        pairing,
	}

	if f := s.Physics.SurfaceFriction; f.Enabled {
		settings.Friction = &Friction{Coefficient: f.Coefficient, Normal: f.Normal}
	}
	if d := s.Physics.Drag; d.Enabled {
		settings.Drag = &Drag{Density: d.Density, Area: d.Area, Coefficient: d.Coefficient}
	}
	if a := s.Physics.Attraction; a.Enabled {
		settings.Attraction = &Attraction{G: a.G, Repel: a.Repel}
	}

	return settings, nil
}
