// pkg/entity/interaction_test.go
package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-mover/pkg/physics"
)

func TestParsePairing(t *testing.T) {
	tests := []struct {
		input    string
		expected Pairing
		wantErr  bool
	}{
		{"", Directed, false},
		{"directed", Directed, false},
		{" Symmetric ", Symmetric, false},
		{"SYMMETRIC", Symmetric, false},
		{"mutual", Directed, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePairing(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPairing_String(t *testing.T) {
	assert.Equal(t, "directed", Directed.String())
	assert.Equal(t, "symmetric", Symmetric.String())
	assert.Equal(t, "Pairing(7)", Pairing(7).String())
}

func TestCollide_DoesNotMutate(t *testing.T) {
	a := New(Options{Mass: 2, Velocity: physics.Vector2D{X: 1}})
	b := New(Options{Mass: 2, Position: physics.Vector2D{X: 3}, Velocity: physics.Vector2D{X: -1}})

	in := Collide(a, b, Symmetric)

	require.True(t, in.Touching)
	assert.True(t, in.A.Redirect)
	assert.True(t, in.B.Redirect)
	assert.InDelta(t, 0.0, in.B.Heading, tolerance)
	assert.InDelta(t, math.Pi, math.Abs(in.A.Heading), tolerance)
	assert.Equal(t, physics.Vector2D{X: 1}, a.Velocity)
	assert.Equal(t, physics.Vector2D{X: -1}, b.Velocity)
}

func TestCollide_Directed(t *testing.T) {
	a := New(Options{Mass: 2, Velocity: physics.Vector2D{X: 1}})
	b := New(Options{Mass: 2, Position: physics.Vector2D{X: 3}, Velocity: physics.Vector2D{X: -1}})

	Collide(a, b, Directed).Apply(a, b)

	assert.Equal(t, physics.Vector2D{X: 1}, a.Velocity)
	assertVector(t, physics.Vector2D{X: 1}, b.Velocity)
}

func TestCollide_Symmetric(t *testing.T) {
	a := New(Options{Mass: 2, Velocity: physics.Vector2D{X: 2}})
	b := New(Options{Mass: 2, Position: physics.Vector2D{Y: 3}, Velocity: physics.Vector2D{X: -1}})

	Collide(a, b, Symmetric).Apply(a, b)

	// b heads away along +y, a along -y, both keep their speed
	assertVector(t, physics.Vector2D{Y: 1}, b.Velocity)
	assertVector(t, physics.Vector2D{Y: -2}, a.Velocity)
}

func TestCollide_KeepsSpeedOverRepeatedContacts(t *testing.T) {
	a := New(Options{Mass: 4})
	b := New(Options{Mass: 4, Position: physics.Vector2D{X: 3, Y: 4}, Velocity: physics.Vector2D{X: -3, Y: 4}})

	Collide(a, b, Directed).Apply(a, b)
	assertVector(t, physics.Vector2D{X: 3, Y: 4}, b.Velocity)

	for i := 0; i < 1000; i++ {
		b.Position = physics.FromAngle(float64(i)*0.37, 5)
		Collide(a, b, Directed).Apply(a, b)
	}

	assert.InDelta(t, 5.0, b.Speed(), 1e-10)
	assert.InDelta(t, b.Position.Angle(), b.Velocity.Angle(), tolerance)
}

func TestCollide_CoincidentCenters(t *testing.T) {
	a := New(Options{Mass: 1, Velocity: physics.Vector2D{Y: 2}})
	b := New(Options{Mass: 1, Velocity: physics.Vector2D{Y: -3}})

	Collide(a, b, Symmetric).Apply(a, b)

	assertVector(t, physics.Vector2D{X: 3}, b.Velocity)
	assertVector(t, physics.Vector2D{X: -2}, a.Velocity)
}

func TestCollide_SelfAndApart(t *testing.T) {
	a := New(Options{Mass: 1})
	b := New(Options{Mass: 1, Position: physics.Vector2D{X: 100}})

	assert.False(t, Collide(a, a, Symmetric).Touching)
	assert.False(t, Collide(a, b, Symmetric).Touching)
}

func TestGravitate_Directed(t *testing.T) {
	a := New(Options{Mass: 2})
	b := New(Options{Mass: 3, Position: physics.Vector2D{X: 0, Y: 10}})

	in := Gravitate(a, b, DefaultG, false, Directed)

	assert.Equal(t, physics.Vector2D{}, in.A.Acceleration)
	assertVector(t, physics.Vector2D{Y: -0.008}, in.B.Acceleration)
	assert.Equal(t, physics.Vector2D{}, b.Acceleration, "computing does not apply")
}

func TestGravitate_Symmetric_ConservesMomentum(t *testing.T) {
	a := New(Options{Mass: 2, Position: physics.Vector2D{X: 1, Y: 1}})
	b := New(Options{Mass: 5, Position: physics.Vector2D{X: 9, Y: 7}})

	Gravitate(a, b, DefaultG, false, Symmetric).Apply(a, b)

	momentum := a.Acceleration.Scale(a.Mass).Add(b.Acceleration.Scale(b.Mass))
	assertVector(t, physics.Vector2D{}, momentum)

	// 0.4 * 2 * 5 / 10² on each side
	assert.InDelta(t, 0.04, a.Acceleration.Length()*a.Mass, tolerance)
	assert.Greater(t, a.Acceleration.X, 0.0)
	assert.Less(t, b.Acceleration.X, 0.0)
}

func TestGravitate_Repel(t *testing.T) {
	a := New(Options{Mass: 1})
	b := New(Options{Mass: 1, Position: physics.Vector2D{X: 10}})

	in := Gravitate(a, b, 1, true, Symmetric)

	assert.Greater(t, in.B.Acceleration.X, 0.0)
	assert.Less(t, in.A.Acceleration.X, 0.0)
}

func TestGravitate_DirectedMatchesAttract(t *testing.T) {
	a1 := New(Options{Mass: 4, Position: physics.Vector2D{X: 2, Y: 3}})
	b1 := New(Options{Mass: 1.5, Position: physics.Vector2D{X: -7, Y: 12}})
	a2 := New(Options{Mass: 4, Position: physics.Vector2D{X: 2, Y: 3}})
	b2 := New(Options{Mass: 1.5, Position: physics.Vector2D{X: -7, Y: 12}})

	a1.Attract(0.7, false, b1)
	Gravitate(a2, b2, 0.7, false, Directed).Apply(a2, b2)

	assertVector(t, b1.Acceleration, b2.Acceleration)
	assert.False(t, math.IsNaN(b2.Acceleration.X))
}
