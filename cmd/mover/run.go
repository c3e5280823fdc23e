// cmd/mover/run.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-mover/pkg/config"
	"github.com/opd-ai/go-mover/pkg/engine"
	"github.com/opd-ai/go-mover/pkg/entity"
	"github.com/opd-ai/go-mover/pkg/event"
	"github.com/opd-ai/go-mover/pkg/logging"
)

type runOptions struct {
	configPath string
	// frames overrides the scenario when non-negative
	frames   int
	trace    bool
	interval time.Duration
}

// traceLine is one frame of --trace output
type traceLine struct {
	Frame  uint64         `json:"frame"`
	Bodies []entity.State `json:"bodies"`
}

type runSummary struct {
	RunID        string         `json:"run_id"`
	Scenario     string         `json:"scenario"`
	Frames       uint64         `json:"frames"`
	Cancelled    bool           `json:"cancelled"`
	Collisions   int            `json:"collisions"`
	BoundaryHits int            `json:"boundary_hits"`
	Diverged     []uint64       `json:"diverged,omitempty"`
	Bodies       []entity.State `json:"bodies"`
}

func newRunCommand(logger *logging.Logger) *cobra.Command {
	opts := runOptions{frames: -1}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario and print a JSON summary",
		Long: "Run loads a scenario (.json, .toml, .yaml), applies MOVER_* environment\n" +
			"overrides and steps it headless. The default scenario is used when the\n" +
			"config file does not exist.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.Context(), opts, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "scenario.yaml", "Path to scenario file")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", -1, "Frames to run, overriding the scenario (0 runs until interrupted)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Write every frame as a JSON line before the summary")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "Real-time delay between frames")

	return cmd
}

func runScenario(ctx context.Context, opts runOptions, out io.Writer, logger *logging.Logger) error {
	runID := logging.GenerateCorrelationID()
	ctx = logging.WithCorrelationID(ctx, runID)

	scenario, err := loadScenario(ctx, opts.configPath, logger)
	if err != nil {
		return err
	}
	if err := config.ApplyEnvironmentOverrides(scenario); err != nil {
		return logging.WrapError(err, "failed to apply environment configuration")
	}
	if opts.frames >= 0 {
		scenario.Frames = opts.frames
	}
	if err := scenario.Validate(); err != nil {
		return logging.WrapError(err, "invalid scenario %q", scenario.Name)
	}

	world, err := engine.FromScenario(scenario, logger.With("scenario", scenario.Name))
	if err != nil {
		return err
	}

	summary := runSummary{RunID: runID, Scenario: scenario.Name}
	world.EventBus.Subscribe(event.BodyCollision, func(event.Event) { summary.Collisions++ })
	world.EventBus.Subscribe(event.BoundaryHit, func(event.Event) { summary.BoundaryHits++ })
	world.EventBus.Subscribe(event.BodyDiverged, func(e event.Event) {
		summary.Diverged = append(summary.Diverged, e.(*event.BodyEvent).BodyID)
	})

	encoder := json.NewEncoder(out)
	runOpts := engine.RunOptions{Frames: scenario.Frames, Interval: opts.interval}
	if opts.trace {
		runOpts.Hook = func(frame uint64, states []entity.State) error {
			return encoder.Encode(traceLine{Frame: frame, Bodies: states})
		}
	}

	err = world.Run(ctx, runOpts)
	switch {
	case errors.Is(err, context.Canceled):
		summary.Cancelled = true
	case err != nil:
		return err
	}

	summary.Frames = world.Frame()
	summary.Bodies = world.Snapshot()
	if err := encoder.Encode(summary); err != nil {
		return logging.WrapError(err, "failed to write summary")
	}
	return nil
}

func loadScenario(ctx context.Context, path string, logger *logging.Logger) (*config.Scenario, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "Scenario file not found, using default scenario",
			"config_path", path,
		)
		return config.DefaultConfig(), nil
	}

	scenario, err := config.LoadConfig(path)
	if err != nil {
		return nil, logging.WrapError(err, "failed to load scenario %s", path)
	}
	logger.Debug(ctx, "Loaded scenario",
		"config_path", path,
		"bodies", len(scenario.Bodies),
	)
	return scenario, nil
}
