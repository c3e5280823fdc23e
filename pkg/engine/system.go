// pkg/engine/system.go
package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-mover/pkg/entity"
	"github.com/opd-ai/go-mover/pkg/event"
)

type physicsEntity struct {
	basic    ecs.BasicEntity
	body     *entity.Body
	diverged bool
}

// PhysicsSystem drives the per-frame body contract inside an ecs.World:
// forces for every body, then collisions for every body, then integration
// for every body. Bodies are processed in the order they were added.
type PhysicsSystem struct {
	world    *World
	entities []*physicsEntity
}

// Add satisfies the engo add-pattern for systems
func (ps *PhysicsSystem) Add(basic *ecs.BasicEntity, body *entity.Body) {
	ps.entities = append(ps.entities, &physicsEntity{basic: *basic, body: body})
}

// Remove satisfies the ecs.System interface
func (ps *PhysicsSystem) Remove(basic ecs.BasicEntity) {
	for i, e := range ps.entities {
		if e.basic.ID() == basic.ID() {
			ps.entities = append(ps.entities[:i], ps.entities[i+1:]...)
			return
		}
	}
}

// Priority runs physics before any other system added to the world.
func (ps *PhysicsSystem) Priority() int {
	return 100
}

// Update satisfies the ecs.System interface. Each call is one frame; dt is
// ignored because bodies integrate in whole frames.
func (ps *PhysicsSystem) Update(dt float32) {
	w := ps.world
	w.frame++
	bodies := ps.bodies()

	ps.applyForces(bodies)
	ps.resolveCollisions(bodies)
	ps.integrate()
}

func (ps *PhysicsSystem) bodies() []*entity.Body {
	bodies := make([]*entity.Body, len(ps.entities))
	for i, e := range ps.entities {
		bodies[i] = e.body
	}
	return bodies
}

func (ps *PhysicsSystem) applyForces(bodies []*entity.Body) {
	s := ps.world.Settings

	for _, b := range bodies {
		if !s.Gravity.IsZero() {
			b.ApplyGravity(s.Gravity)
		}
		if s.Friction != nil {
			b.ApplyFriction(s.Friction.Coefficient, s.Friction.Normal)
		}
		if s.Drag != nil {
			b.ApplyDrag(s.Drag.Density, s.Drag.Area, s.Drag.Coefficient)
		}
	}

	if s.Attraction == nil {
		return
	}
	switch s.Pairing {
	case entity.Symmetric:
		forEachPair(bodies, func(a, b *entity.Body) {
			entity.Gravitate(a, b, s.Attraction.G, s.Attraction.Repel, entity.Symmetric).Apply(a, b)
		})
	default:
		for _, b := range bodies {
			b.Attract(s.Attraction.G, s.Attraction.Repel, bodies...)
		}
	}
}

func (ps *PhysicsSystem) resolveCollisions(bodies []*entity.Body) {
	w := ps.world
	s := w.Settings

	if s.Pairing == entity.Symmetric {
		for _, b := range bodies {
			report := b.CheckCollision(s.Bounds.Width, s.Bounds.Height, s.BounceFriction, nil)
			w.publishReport(b, report)
		}
		forEachPair(bodies, func(a, b *entity.Body) {
			in := entity.Collide(a, b, entity.Symmetric)
			if !in.Touching {
				return
			}
			in.Apply(a, b)
			w.publishReport(a, entity.CollisionReport{Redirected: []*entity.Body{b}})
		})
		return
	}

	for _, b := range bodies {
		report := b.CheckCollision(s.Bounds.Width, s.Bounds.Height, s.BounceFriction, bodies)
		w.publishReport(b, report)
	}
}

func (ps *PhysicsSystem) integrate() {
	w := ps.world
	for _, e := range ps.entities {
		e.body.Update()

		if !e.diverged && !e.body.IsFinite() {
			e.diverged = true
			w.logger.Warn(w.ctx, "Body state is no longer finite",
				"body_id", uint64(e.body.ID),
				"frame", w.frame,
				"mass", e.body.Mass,
			)
			w.EventBus.Publish(event.NewBodyEvent(event.BodyDiverged, w, uint64(e.body.ID), w.frame))
		}
	}
}

func forEachPair(bodies []*entity.Body, fn func(a, b *entity.Body)) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			fn(bodies[i], bodies[j])
		}
	}
}
