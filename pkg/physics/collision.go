// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided     bool
	Normal       Vector2D
	Penetration  float64
	ContactPoint Vector2D
}

// CheckCollision performs detailed collision detection between two circles.
// Touching circles count as collided with zero penetration.
func CheckCollision(a, b Circle) CollisionResult {
	// Vector from A to B
	normal := b.Center.Sub(a.Center)
	distance := normal.Length()

	if distance > a.Radius+b.Radius {
		return CollisionResult{Collided: false}
	}

	penetration := a.Radius + b.Radius - distance

	// Coincident centers have no normal; Normalize yields zero
	normal = normal.Normalize()
	contactPoint := a.Center.Add(normal.Scale(a.Radius))

	return CollisionResult{
		Collided:     true,
		Normal:       normal,
		Penetration:  penetration,
		ContactPoint: contactPoint,
	}
}

// Wall identifies one edge of a Bounds box.
type Wall int

const (
	WallMinX Wall = iota
	WallMaxX
	WallMinY
	WallMaxY
)

func (w Wall) String() string {
	switch w {
	case WallMinX:
		return "min_x"
	case WallMaxX:
		return "max_x"
	case WallMinY:
		return "min_y"
	case WallMaxY:
		return "max_y"
	default:
		return "unknown"
	}
}

// Bounds is the axis-aligned box [0,Width] x [0,Height].
// A non-positive extent disables checking on that axis entirely.
type Bounds struct {
	Width  float64
	Height float64
}

// Reflect clamps position back into the box and reflects velocity off every
// violated wall. Each reflection negates the velocity component of that axis and
// then scales the whole velocity by friction. The walls hit are returned in the
// order they were resolved, x before y.
func (b Bounds) Reflect(position, velocity *Vector2D, friction float64) []Wall {
	var hits []Wall

	if b.Width > 0 {
		if position.X < 0 {
			position.X = 0
			velocity.X = -velocity.X
			velocity.ScaleSelf(friction)
			hits = append(hits, WallMinX)
		} else if position.X > b.Width {
			position.X = b.Width
			velocity.X = -velocity.X
			velocity.ScaleSelf(friction)
			hits = append(hits, WallMaxX)
		}
	}

	if b.Height > 0 {
		if position.Y < 0 {
			position.Y = 0
			velocity.Y = -velocity.Y
			velocity.ScaleSelf(friction)
			hits = append(hits, WallMinY)
		} else if position.Y > b.Height {
			position.Y = b.Height
			velocity.Y = -velocity.Y
			velocity.ScaleSelf(friction)
			hits = append(hits, WallMaxY)
		}
	}

	return hits
}
