// pkg/engine/world.go
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-mover/pkg/config"
	"github.com/opd-ai/go-mover/pkg/entity"
	"github.com/opd-ai/go-mover/pkg/event"
	"github.com/opd-ai/go-mover/pkg/logging"
)

// World owns a set of bodies and advances them one frame per Step.
//
// World is not safe for concurrent use. Event handlers run synchronously
// inside Step and must not call back into the World.
type World struct {
	Settings Settings
	EventBus *event.Bus

	ecs      *ecs.World
	system   *PhysicsSystem
	frame    uint64
	logger   *logging.Logger
	ctx      context.Context
	scenario *config.Scenario
}

// FrameHook receives the state of every body after each frame.
// Returning an error stops Run with that error.
type FrameHook func(frame uint64, states []entity.State) error

// RunOptions configures Run
type RunOptions struct {
	// Frames to run; zero runs until the context is cancelled.
	Frames int
	// Interval paces frames in real time; zero runs as fast as possible.
	Interval time.Duration
	Hook     FrameHook
}

// NewWorld creates an empty world. A nil logger discards output.
func NewWorld(settings Settings, logger *logging.Logger) *World {
	if logger == nil {
		logger = logging.Discard()
	}

	w := &World{
		Settings: settings,
		EventBus: event.NewEventBus(),
		ecs:      &ecs.World{},
		logger:   logger,
		ctx:      context.Background(),
	}
	w.system = &PhysicsSystem{world: w}
	w.ecs.AddSystem(w.system)

	return w
}

// FromScenario builds a world and its bodies from a scenario. The world keeps
// its own copy of s for Reset.
func FromScenario(s *config.Scenario, logger *logging.Logger) (*World, error) {
	settings, err := SettingsFromScenario(s)
	if err != nil {
		return nil, logging.WrapError(err, "invalid scenario %q", s.Name)
	}
	scenario, err := s.Clone()
	if err != nil {
		return nil, err
	}

	w := NewWorld(settings, logger)
	w.scenario = scenario
	w.addScenarioBodies()
	return w, nil
}

// Reset replaces every body with a fresh one built from the scenario the
// world was created from, and sets the frame counter back to zero.
// Worlds created with NewWorld have no scenario and cannot be reset.
func (w *World) Reset() error {
	if w.scenario == nil {
		return errors.New("world was not built from a scenario")
	}

	for _, b := range w.Bodies() {
		w.RemoveBody(b)
	}
	w.frame = 0
	w.addScenarioBodies()

	w.logger.Debug(w.ctx, "World reset",
		"scenario", w.scenario.Name,
		"bodies", len(w.scenario.Bodies),
	)
	return nil
}

func (w *World) addScenarioBodies() {
	for _, bc := range w.scenario.Bodies {
		w.AddBody(entity.New(bc.Options()))
	}
}

// AddBody registers a body with every system that tracks bodies.
func (w *World) AddBody(b *entity.Body) {
	basic := ecs.NewBasic()
	for _, system := range w.ecs.Systems() {
		switch sys := system.(type) {
		case *PhysicsSystem:
			sys.Add(&basic, b)
		}
	}
	w.EventBus.Publish(event.NewBodyEvent(event.BodyAdded, w, uint64(b.ID), w.frame))
}

// RemoveBody unregisters b. It reports false if b was not in the world.
func (w *World) RemoveBody(b *entity.Body) bool {
	for _, e := range w.system.entities {
		if e.body == b {
			w.ecs.RemoveEntity(e.basic)
			w.EventBus.Publish(event.NewBodyEvent(event.BodyRemoved, w, uint64(b.ID), w.frame))
			return true
		}
	}
	return false
}

// Bodies returns the bodies in processing order.
func (w *World) Bodies() []*entity.Body {
	return w.system.bodies()
}

// Frame returns the number of frames stepped so far.
func (w *World) Frame() uint64 {
	return w.frame
}

// Step advances every body by one frame.
func (w *World) Step() {
	w.ecs.Update(1)
}

// Snapshot returns detached copies of every body's state.
func (w *World) Snapshot() []entity.State {
	states := make([]entity.State, 0, len(w.system.entities))
	for _, e := range w.system.entities {
		states = append(states, e.body.Snapshot())
	}
	return states
}

// Run steps the world until opts.Frames have run, the hook fails or ctx is
// cancelled. Cancellation is checked between frames and returned as ctx.Err().
func (w *World) Run(ctx context.Context, opts RunOptions) error {
	w.ctx = ctx
	defer func() { w.ctx = context.Background() }()

	if opts.Frames < 0 {
		return errors.New("frames must not be negative")
	}

	started := time.Now()
	startFrame := w.frame
	w.logger.Info(ctx, "Simulation started",
		"bodies", len(w.system.entities),
		"frames", opts.Frames,
		"pairing", w.Settings.Pairing.String(),
	)
	w.EventBus.Publish(&event.BaseEvent{EventType: event.SimulationStarted, Source: w})

	err := w.loop(ctx, opts)

	w.EventBus.Publish(&event.BaseEvent{EventType: event.SimulationEnded, Source: w})
	args := []any{
		"frames_run", w.frame - startFrame,
		"elapsed", time.Since(started).String(),
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		w.logger.Error(ctx, "Simulation stopped", err, args...)
	} else {
		w.logger.Info(ctx, "Simulation finished", args...)
	}
	return err
}

func (w *World) loop(ctx context.Context, opts RunOptions) error {
	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; opts.Frames == 0 || i < opts.Frames; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		w.Step()

		if opts.Hook != nil {
			if err := opts.Hook(w.frame, w.Snapshot()); err != nil {
				return logging.WrapError(err, "frame hook failed at frame %d", w.frame)
			}
		}
	}
	return nil
}

func (w *World) publishReport(b *entity.Body, report entity.CollisionReport) {
	for _, wall := range report.Walls {
		w.EventBus.Publish(event.NewBoundaryEvent(w, uint64(b.ID), wall.String(), w.frame))
	}
	for _, other := range report.Redirected {
		w.logger.Debug(w.ctx, "Bodies collided",
			"body_a", uint64(b.ID),
			"body_b", uint64(other.ID),
			"frame", w.frame,
		)
		w.EventBus.Publish(event.NewCollisionEvent(w, uint64(b.ID), uint64(other.ID), w.frame))
	}
}
