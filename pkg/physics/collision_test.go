// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestCheckCollision(t *testing.T) {
	t.Run("no_collision", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 5},
		)
		if result.Collided {
			t.Error("Expected no collision, but got collision")
		}
	})

	t.Run("collision_with_penetration", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			Circle{Center: Vector2D{X: 8, Y: 0}, Radius: 5},
		)
		if !result.Collided {
			t.Fatal("Expected collision, but got no collision")
		}
		if result.Penetration != 2 {
			t.Errorf("Expected penetration 2, got %v", result.Penetration)
		}
		if result.Normal != (Vector2D{X: 1, Y: 0}) {
			t.Errorf("Expected normal (1, 0), got %v", result.Normal)
		}
		if result.ContactPoint != (Vector2D{X: 5, Y: 0}) {
			t.Errorf("Expected contact point (5, 0), got %v", result.ContactPoint)
		}
	})

	t.Run("exact_touch_counts", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			Circle{Center: Vector2D{X: 3, Y: 4}, Radius: 2},
		)
		if !result.Collided {
			t.Fatal("Expected touching circles to collide")
		}
		if result.Penetration != 0 {
			t.Errorf("Expected zero penetration, got %v", result.Penetration)
		}
	})

	t.Run("just_apart", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			Circle{Center: Vector2D{X: 3, Y: 4.000001}, Radius: 2},
		)
		if result.Collided {
			t.Errorf("Expected circles just beyond touching to miss, got %+v", result)
		}
	})

	t.Run("coincident_centers", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 1, Y: 1}, Radius: 1},
			Circle{Center: Vector2D{X: 1, Y: 1}, Radius: 1},
		)
		if !result.Collided || !result.Normal.IsZero() {
			t.Errorf("Expected collision with zero normal, got %+v", result)
		}
	})
}

func TestBounds_Reflect(t *testing.T) {
	tests := []struct {
		name        string
		bounds      Bounds
		position    Vector2D
		velocity    Vector2D
		friction    float64
		expectedPos Vector2D
		expectedVel Vector2D
		walls       []Wall
	}{
		{
			name:        "left_wall_elastic",
			bounds:      Bounds{Width: 100, Height: 100},
			position:    Vector2D{X: -1, Y: 50},
			velocity:    Vector2D{X: -3, Y: 0},
			friction:    1,
			expectedPos: Vector2D{X: 0, Y: 50},
			expectedVel: Vector2D{X: 3, Y: 0},
			walls:       []Wall{WallMinX},
		},
		{
			name:        "left_wall_damped",
			bounds:      Bounds{Width: 100, Height: 100},
			position:    Vector2D{X: -1, Y: 50},
			velocity:    Vector2D{X: -3, Y: 0},
			friction:    0.5,
			expectedPos: Vector2D{X: 0, Y: 50},
			expectedVel: Vector2D{X: 1.5, Y: 0},
			walls:       []Wall{WallMinX},
		},
		{
			name:        "friction_scales_whole_velocity",
			bounds:      Bounds{Width: 100, Height: 100},
			position:    Vector2D{X: 50, Y: 120},
			velocity:    Vector2D{X: 4, Y: 2},
			friction:    0.5,
			expectedPos: Vector2D{X: 50, Y: 100},
			expectedVel: Vector2D{X: 2, Y: -1},
			walls:       []Wall{WallMaxY},
		},
		{
			name:        "corner_hits_both_axes",
			bounds:      Bounds{Width: 10, Height: 10},
			position:    Vector2D{X: 12, Y: -2},
			velocity:    Vector2D{X: 2, Y: -2},
			friction:    0.5,
			expectedPos: Vector2D{X: 10, Y: 0},
			expectedVel: Vector2D{X: -0.5, Y: 0.5},
			walls:       []Wall{WallMaxX, WallMinY},
		},
		{
			name:        "disabled_axis_ignored",
			bounds:      Bounds{Width: 0, Height: 100},
			position:    Vector2D{X: -40, Y: 50},
			velocity:    Vector2D{X: -3, Y: 0},
			friction:    1,
			expectedPos: Vector2D{X: -40, Y: 50},
			expectedVel: Vector2D{X: -3, Y: 0},
		},
		{
			name:        "inside_untouched",
			bounds:      Bounds{Width: 100, Height: 100},
			position:    Vector2D{X: 10, Y: 10},
			velocity:    Vector2D{X: -3, Y: 7},
			friction:    0.1,
			expectedPos: Vector2D{X: 10, Y: 10},
			expectedVel: Vector2D{X: -3, Y: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.position, tt.velocity
			walls := tt.bounds.Reflect(&pos, &vel, tt.friction)

			if !nearlyEqual(pos, tt.expectedPos) {
				t.Errorf("position = %v, expected %v", pos, tt.expectedPos)
			}
			if !nearlyEqual(vel, tt.expectedVel) {
				t.Errorf("velocity = %v, expected %v", vel, tt.expectedVel)
			}
			if len(walls) != len(tt.walls) {
				t.Fatalf("walls = %v, expected %v", walls, tt.walls)
			}
			for i := range walls {
				if walls[i] != tt.walls[i] {
					t.Errorf("walls[%d] = %v, expected %v", i, walls[i], tt.walls[i])
				}
			}
		})
	}
}

func TestWall_String(t *testing.T) {
	if WallMinX.String() != "min_x" || WallMaxY.String() != "max_y" {
		t.Errorf("unexpected wall names %q %q", WallMinX, WallMaxY)
	}
	if Wall(42).String() != "unknown" {
		t.Errorf("unexpected name for invalid wall: %q", Wall(42))
	}
}

func BenchmarkCheckCollision(b *testing.B) {
	c1 := Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5}
	c2 := Circle{Center: Vector2D{X: 8, Y: 0}, Radius: 5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CheckCollision(c1, c2)
	}
}
