// cmd/mover/init.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-mover/pkg/config"
	"github.com/opd-ai/go-mover/pkg/logging"
)

func newInitCommand(logger *logging.Logger) *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default scenario to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeDefaultScenario(path, force); err != nil {
				return err
			}
			logger.Info(cmd.Context(), "Created default scenario file",
				"config_path", path,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "scenario.yaml", "Path to write; the extension selects the format")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func writeDefaultScenario(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return logging.WrapError(err, "failed to create default scenario")
	}
	return nil
}
