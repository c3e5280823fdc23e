// pkg/entity/interaction.go
package entity

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-mover/pkg/physics"
)

// Pairing selects which side of a pair responds to an interaction.
type Pairing int

const (
	// Directed changes only the second body of the pair. Visiting every
	// ordered pair reproduces per-body CheckCollision and Attract calls.
	Directed Pairing = iota
	// Symmetric changes both bodies. Visit each unordered pair once.
	Symmetric
)

func (p Pairing) String() string {
	switch p {
	case Directed:
		return "directed"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("Pairing(%d)", int(p))
	}
}

// ParsePairing accepts "directed" or "symmetric", case-insensitively.
// An empty string selects Directed.
func ParsePairing(s string) (Pairing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "directed":
		return Directed, nil
	case "symmetric":
		return Symmetric, nil
	default:
		return Directed, fmt.Errorf("unknown pairing %q", s)
	}
}

// Delta is a change to one body's state. Acceleration is added to the
// accumulator. When Redirect is set the velocity is turned to point along
// Heading and keeps its speed.
type Delta struct {
	Redirect     bool
	Heading      float64
	Acceleration physics.Vector2D
}

func (d Delta) apply(b *Body) {
	if d.Redirect {
		b.Velocity.SetAngle(d.Heading)
	}
	b.Accelerate(d.Acceleration)
}

// Interaction holds the changes a pairwise interaction makes to A and B.
// Computing it does not touch either body.
type Interaction struct {
	Touching bool
	A        Delta
	B        Delta
}

// Apply makes the changes to a and b.
func (in Interaction) Apply(a, b *Body) {
	in.A.apply(a)
	in.B.apply(b)
}

// Collide tests a and b for overlap, touching included. On contact b is turned
// to head directly away from a at its current speed; with Symmetric, a is also
// turned away from b. Bodies at the same position use heading 0 for b.
func Collide(a, b *Body, pairing Pairing) Interaction {
	if a == b {
		return Interaction{}
	}
	result := physics.CheckCollision(a.Circle(), b.Circle())
	if !result.Collided {
		return Interaction{}
	}

	in := Interaction{Touching: true}
	in.B = Delta{Redirect: true, Heading: result.Normal.Angle()}
	if pairing == Symmetric {
		in.A = Delta{Redirect: true, Heading: result.Normal.Scale(-1).Angle()}
	}
	return in
}

// Gravitate computes the inverse-square pull of a on b,
// g * a.Mass * b.Mass / d², with the separation clamped to a length in
// [MinAttractDistance, MaxAttractDistance]. repel flips the sign. With
// Symmetric, a also receives the opposite force. Bodies at the same position
// exert no force on each other.
func Gravitate(a, b *Body, g float64, repel bool, pairing Pairing) Interaction {
	if a == b {
		return Interaction{}
	}

	separation := a.Position.Sub(b.Position).ClampLength(MinAttractDistance, MaxAttractDistance)
	distance := separation.Length()
	if distance == 0 {
		return Interaction{}
	}

	strength := g * a.Mass * b.Mass / (distance * distance)
	if repel {
		strength = -strength
	}
	force := separation.Normalize().Scale(strength)

	var in Interaction
	in.B.Acceleration = force.Div(b.Mass)
	if pairing == Symmetric {
		in.A.Acceleration = force.Scale(-1).Div(a.Mass)
	}
	return in
}
