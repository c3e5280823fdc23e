// pkg/physics/kinematics.go
package physics

// Kinematics tracks point-mass motion.
// Acceleration is a per-step accumulator and is cleared by Step.
type Kinematics struct {
	Position     Vector2D
	Velocity     Vector2D
	Acceleration Vector2D
}

// Accelerate adds a into the accumulator.
func (k *Kinematics) Accelerate(a Vector2D) {
	k.Acceleration.AddSelf(a)
}

// Step advances one frame with semi-implicit Euler: velocity picks up the
// accumulated acceleration, position moves by the new velocity, and the
// accumulator is reset. The step size is always one frame.
func (k *Kinematics) Step() {
	k.Velocity.AddSelf(k.Acceleration)
	k.Position.AddSelf(k.Velocity)
	k.Acceleration.Zero()
}

// IsFinite reports whether every component of the state is finite.
func (k *Kinematics) IsFinite() bool {
	return k.Position.IsFinite() && k.Velocity.IsFinite() && k.Acceleration.IsFinite()
}
