// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-mover/pkg/entity"
	"github.com/opd-ai/go-mover/pkg/physics"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Scenario describes a simulation run: the box, the forces applied every
// frame, and the initial bodies.
type Scenario struct {
	Name    string        `json:"name" toml:"name" yaml:"name"`
	Frames  int           `json:"frames" toml:"frames" yaml:"frames"`
	Bounds  BoundsConfig  `json:"bounds" toml:"bounds" yaml:"bounds"`
	Physics PhysicsConfig `json:"physics" toml:"physics" yaml:"physics"`
	Bodies  []BodyConfig  `json:"bodies" toml:"bodies" yaml:"bodies"`
}

// BoundsConfig is the box [0,Width] x [0,Height]. Zero disables an axis.
type BoundsConfig struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// PhysicsConfig contains the forces and collision settings
type PhysicsConfig struct {
	Gravity [2]float64 `json:"gravity" toml:"gravity" yaml:"gravity"`
	// BounceFriction scales velocity on every wall bounce. Unset means 1.
	BounceFriction  *float64         `json:"bounceFriction,omitempty" toml:"bounceFriction,omitempty" yaml:"bounceFriction,omitempty"`
	Pairing         string           `json:"pairing" toml:"pairing" yaml:"pairing"`
	SurfaceFriction FrictionConfig   `json:"surfaceFriction" toml:"surfaceFriction" yaml:"surfaceFriction"`
	Drag            DragConfig       `json:"drag" toml:"drag" yaml:"drag"`
	Attraction      AttractionConfig `json:"attraction" toml:"attraction" yaml:"attraction"`
}

// FrictionConfig enables constant-magnitude friction against motion
type FrictionConfig struct {
	Enabled     bool    `json:"enabled" toml:"enabled" yaml:"enabled"`
	Coefficient float64 `json:"coefficient" toml:"coefficient" yaml:"coefficient"`
	Normal      float64 `json:"normal" toml:"normal" yaml:"normal"`
}

// DragConfig enables quadratic drag
type DragConfig struct {
	Enabled     bool    `json:"enabled" toml:"enabled" yaml:"enabled"`
	Density     float64 `json:"density" toml:"density" yaml:"density"`
	Area        float64 `json:"area" toml:"area" yaml:"area"`
	Coefficient float64 `json:"coefficient" toml:"coefficient" yaml:"coefficient"`
}

// AttractionConfig enables inverse-square attraction (or repulsion) between bodies
type AttractionConfig struct {
	Enabled bool    `json:"enabled" toml:"enabled" yaml:"enabled"`
	G       float64 `json:"g" toml:"g" yaml:"g"`
	Repel   bool    `json:"repel" toml:"repel" yaml:"repel"`
}

// BodyConfig contains the initial state of one body. Acceleration only
// affects the first frame, since Update clears it.
type BodyConfig struct {
	Name         string     `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Position     [2]float64 `json:"position" toml:"position" yaml:"position"`
	Velocity     [2]float64 `json:"velocity" toml:"velocity" yaml:"velocity"`
	Acceleration [2]float64 `json:"acceleration" toml:"acceleration" yaml:"acceleration"`
	Mass         float64    `json:"mass" toml:"mass" yaml:"mass"`
	Color        string     `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
}

// Options converts the config to body construction options.
func (b BodyConfig) Options() entity.Options {
	return entity.Options{
		Position:     physics.Vector2D{X: b.Position[0], Y: b.Position[1]},
		Velocity:     physics.Vector2D{X: b.Velocity[0], Y: b.Velocity[1]},
		Acceleration: physics.Vector2D{X: b.Acceleration[0], Y: b.Acceleration[1]},
		Mass:         b.Mass,
		Color:        b.Color,
	}
}

// GravityVector returns the configured gravity.
func (p PhysicsConfig) GravityVector() physics.Vector2D {
	return physics.Vector2D{X: p.Gravity[0], Y: p.Gravity[1]}
}

// Bounce returns the wall bounce friction, defaulting to no damping.
func (p PhysicsConfig) Bounce() float64 {
	if p.BounceFriction == nil {
		return entity.DefaultBounceFriction
	}
	return *p.BounceFriction
}

// Clone returns a deep copy that shares no bodies or optional values with s.
func (s *Scenario) Clone() (*Scenario, error) {
	var clone Scenario
	if err := copier.CopyWithOption(&clone, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("failed to copy scenario: %w", err)
	}
	return &clone, nil
}

// Float64 returns a pointer to v, for optional fields.
func Float64(v float64) *float64 {
	return &v
}

type format int

const (
	formatJSON format = iota
	formatTOML
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadConfig loads a scenario from a .json, .toml, .yaml or .yml file and fills
// unset force parameters with their defaults.
func LoadConfig(path string) (*Scenario, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var scenario Scenario
	switch f {
	case formatJSON:
		err = json.Unmarshal(data, &scenario)
	case formatTOML:
		err = toml.Unmarshal(data, &scenario)
	case formatYAML:
		err = yaml.Unmarshal(data, &scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	scenario.ApplyDefaults()
	return &scenario, nil
}

// SaveConfig writes a scenario in the format implied by the file extension
func SaveConfig(scenario *Scenario, path string) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatJSON:
		data, err = json.MarshalIndent(scenario, "", "  ")
	case formatTOML:
		data, err = toml.Marshal(scenario)
	case formatYAML:
		data, err = yaml.Marshal(scenario)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyDefaults fills zero-valued force parameters. Zero is never a useful
// value for them since it disables the force the section enables.
func (s *Scenario) ApplyDefaults() {
	p := &s.Physics
	if p.SurfaceFriction.Coefficient == 0 {
		p.SurfaceFriction.Coefficient = entity.DefaultFrictionCoefficient
	}
	if p.SurfaceFriction.Normal == 0 {
		p.SurfaceFriction.Normal = entity.DefaultNormalForce
	}
	if p.Drag.Density == 0 {
		p.Drag.Density = entity.DefaultDragDensity
	}
	if p.Drag.Area == 0 {
		p.Drag.Area = entity.DefaultDragArea
	}
	if p.Drag.Coefficient == 0 {
		p.Drag.Coefficient = entity.DefaultDragCoefficient
	}
	if p.Attraction.G == 0 {
		p.Attraction.G = entity.DefaultG
	}
	if p.Pairing == "" {
		p.Pairing = entity.Directed.String()
	}
	for i := range s.Bodies {
		if s.Bodies[i].Mass == 0 {
			s.Bodies[i].Mass = entity.DefaultMass
		}
		if s.Bodies[i].Color == "" {
			s.Bodies[i].Color = entity.DefaultColor
		}
	}
}

// DefaultConfig returns a small bouncing-balls scenario
func DefaultConfig() *Scenario {
	return &Scenario{
		Name:   "bouncing",
		Frames: 600,
		Bounds: BoundsConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:        [2]float64{0, 0.2},
			BounceFriction: Float64(0.9),
			Pairing:        entity.Directed.String(),
			SurfaceFriction: FrictionConfig{
				Enabled:     false,
				Coefficient: entity.DefaultFrictionCoefficient,
				Normal:      entity.DefaultNormalForce,
			},
			Drag: DragConfig{
				Enabled:     true,
				Density:     entity.DefaultDragDensity,
				Area:        entity.DefaultDragArea,
				Coefficient: 0.01,
			},
			Attraction: AttractionConfig{
				Enabled: false,
				G:       entity.DefaultG,
			},
		},
		Bodies: []BodyConfig{
			{Name: "small", Position: [2]float64{100, 100}, Velocity: [2]float64{3, 0}, Mass: 8, Color: "#e63946"},
			{Name: "medium", Position: [2]float64{400, 50}, Velocity: [2]float64{-2, 1}, Mass: 16, Color: "#457b9d"},
			{Name: "large", Position: [2]float64{650, 200}, Velocity: [2]float64{-1, -2}, Mass: 32, Color: "#2a9d8f"},
		},
	}
}
