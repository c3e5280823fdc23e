// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components.
// Value methods return new vectors; pointer methods ending in Self mutate
// the receiver and return it so calls can be chained.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Div divides the vector by a scalar value. Dividing by zero yields
// non-finite components.
func (v Vector2D) Div(divisor float64) Vector2D {
	return Vector2D{
		X: v.X / divisor,
		Y: v.Y / divisor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// WithAngle returns a vector of the same magnitude pointing along angle.
func (v Vector2D) WithAngle(angle float64) Vector2D {
	return FromAngle(angle, v.Length())
}

// ClampLength returns the vector with its magnitude clamped into [min, max].
// The zero vector has no direction and is returned unchanged.
func (v Vector2D) ClampLength(min, max float64) Vector2D {
	length := v.Length()
	switch {
	case length == 0:
		return v
	case length < min:
		return v.Scale(min / length)
	case length > max:
		return v.Scale(max / length)
	}
	return v
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// IsZero reports whether both components are zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Clone returns a copy that shares no state with v.
func (v Vector2D) Clone() Vector2D {
	return v
}

// AddSelf adds other to v in place.
func (v *Vector2D) AddSelf(other Vector2D) *Vector2D {
	v.X += other.X
	v.Y += other.Y
	return v
}

// SubSelf subtracts other from v in place.
func (v *Vector2D) SubSelf(other Vector2D) *Vector2D {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// ScaleSelf multiplies v by factor in place.
func (v *Vector2D) ScaleSelf(factor float64) *Vector2D {
	v.X *= factor
	v.Y *= factor
	return v
}

// MultiplySelf is an alias of ScaleSelf.
func (v *Vector2D) MultiplySelf(factor float64) *Vector2D {
	return v.ScaleSelf(factor)
}

// NormalizeSelf turns v into a unit vector in place. The zero vector is left as is.
func (v *Vector2D) NormalizeSelf() *Vector2D {
	*v = v.Normalize()
	return v
}

// SetAngle points v along angle, keeping its magnitude.
func (v *Vector2D) SetAngle(angle float64) *Vector2D {
	*v = v.WithAngle(angle)
	return v
}

// Zero resets both components.
func (v *Vector2D) Zero() *Vector2D {
	v.X, v.Y = 0, 0
	return v
}
