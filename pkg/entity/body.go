// pkg/entity/body.go
package entity

import "github.com/opd-ai/go-mover/pkg/physics"

// Defaults used when the caller has no better value.
const (
	DefaultMass  = 1.0
	DefaultColor = "#000"

	// DefaultBounceFriction keeps the full speed on a wall bounce.
	DefaultBounceFriction = 1.0

	DefaultFrictionCoefficient = 0.08
	DefaultNormalForce         = 1.0

	DefaultDragDensity     = 1.0
	DefaultDragArea        = 1.0
	DefaultDragCoefficient = 0.1

	DefaultG = 0.4
)

// The separation used by the inverse-square law is clamped to a length in this range.
const (
	MinAttractDistance = 5.0
	MaxAttractDistance = 25.0
)

// Body is a point mass moving in the plane.
//
// Acceleration is an accumulator: every Apply* call adds to it and Update
// consumes and clears it. Only Position and Velocity carry over between frames.
//
// Body performs no validation. A zero mass turns the next applied force into
// non-finite acceleration, which then spreads into velocity and position.
type Body struct {
	physics.Kinematics

	ID    ID
	Mass  float64
	Color string

	size float64
}

// Options configures New. Zero values select the defaults: zero vectors,
// DefaultMass and DefaultColor.
type Options struct {
	Position     physics.Vector2D
	Velocity     physics.Vector2D
	Acceleration physics.Vector2D
	Mass         float64
	Color        string
}

// New creates a body. The collision radius is taken from the mass once, here.
func New(opts Options) *Body {
	mass := opts.Mass
	if mass == 0 {
		mass = DefaultMass
	}
	color := opts.Color
	if color == "" {
		color = DefaultColor
	}

	return &Body{
		Kinematics: physics.Kinematics{
			Position:     opts.Position,
			Velocity:     opts.Velocity,
			Acceleration: opts.Acceleration,
		},
		ID:    GenerateID(),
		Mass:  mass,
		Color: color,
		size:  mass,
	}
}

// Radius returns the collision radius fixed at construction.
// It does not follow later changes to Mass.
func (b *Body) Radius() float64 {
	return b.size
}

// SetMass changes the mass used for force and attraction. The body keeps its radius.
func (b *Body) SetMass(mass float64) {
	b.Mass = mass
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return b.Velocity.Length()
}

// Circle returns the collision shape at the current position.
func (b *Body) Circle() physics.Circle {
	return physics.Circle{Center: b.Position, Radius: b.size}
}

// ApplyForce adds force/mass to the acceleration accumulator.
func (b *Body) ApplyForce(force physics.Vector2D) {
	b.Accelerate(force.Div(b.Mass))
}

// ApplyFriction applies a force of magnitude mu*normal against the direction
// of motion. A body at rest receives no force.
func (b *Body) ApplyFriction(mu, normal float64) {
	friction := b.Velocity.Normalize().Scale(-mu * normal)
	b.ApplyForce(friction)
}

// ApplyGravity accelerates the body by g regardless of its mass.
func (b *Body) ApplyGravity(g physics.Vector2D) {
	b.ApplyForce(g.Scale(b.Mass))
}

// ApplyDrag applies quadratic drag, 0.5 * density * speed² * area * coefficient,
// against the direction of motion. A body at rest receives no force.
func (b *Body) ApplyDrag(density, area, coefficient float64) {
	speed := b.Velocity.Length()
	magnitude := density * speed * speed * area * coefficient
	drag := b.Velocity.Normalize().Scale(-0.5 * magnitude)
	b.ApplyForce(drag)
}

// Attract pulls every mover toward b, or pushes it away when repel is set,
// with an inverse-square force scaled by g and both masses. Only the movers
// are accelerated; b is left alone. Use Gravitate with Symmetric for a mutual pull.
func (b *Body) Attract(g float64, repel bool, movers ...*Body) {
	for _, mover := range movers {
		if mover == nil || mover == b {
			continue
		}
		Gravitate(b, mover, g, repel, Directed).Apply(b, mover)
	}
}

// CollisionReport lists what a CheckCollision call changed.
type CollisionReport struct {
	Walls      []physics.Wall
	Redirected []*Body
}

// Collided reports whether anything was hit.
func (r CollisionReport) Collided() bool {
	return len(r.Walls) > 0 || len(r.Redirected) > 0
}

// CheckCollision resolves collisions for b against the box [0,width] x [0,height]
// and against bodies.
//
// A non-positive width or height switches that axis off. A body outside an
// enabled axis is clamped onto the edge, the velocity component on that axis is
// negated and the whole velocity is scaled by friction.
//
// Every other body whose circle overlaps or touches b's has its velocity turned
// to point away from b, keeping its speed. b's own velocity is not changed by
// this pass, and no body is moved apart.
func (b *Body) CheckCollision(width, height, friction float64, bodies []*Body) CollisionReport {
	var report CollisionReport

	bounds := physics.Bounds{Width: width, Height: height}
	report.Walls = bounds.Reflect(&b.Position, &b.Velocity, friction)

	for _, other := range bodies {
		if other == nil || other == b {
			continue
		}
		interaction := Collide(b, other, Directed)
		if !interaction.Touching {
			continue
		}
		interaction.Apply(b, other)
		report.Redirected = append(report.Redirected, other)
	}

	return report
}

// Update integrates one frame and clears the accumulator.
func (b *Body) Update() {
	b.Step()
}

// State is a detached copy of a body's observable state.
type State struct {
	ID       ID               `json:"id"`
	Position physics.Vector2D `json:"position"`
	Velocity physics.Vector2D `json:"velocity"`
	Mass     float64          `json:"mass"`
	Radius   float64          `json:"radius"`
	Speed    float64          `json:"speed"`
	Color    string           `json:"color"`
}

// Snapshot copies the body's state.
func (b *Body) Snapshot() State {
	return State{
		ID:       b.ID,
		Position: b.Position,
		Velocity: b.Velocity,
		Mass:     b.Mass,
		Radius:   b.size,
		Speed:    b.Speed(),
		Color:    b.Color,
	}
}
