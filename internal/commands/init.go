// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/apigen/internal/config"
	"github.com/dacolabs/apigen/internal/prompts"
	"github.com/dacolabs/apigen/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	schema         string
	output         string
	modelName      string
	modelDoc       string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an apigen project",
		Long: `Initialize an apigen project with an apigen.yaml configuration file.
The config records defaults (schema path, output paths, base class naming)
that the generate command picks up when its flags are unset.`,
		Example: `  # Interactive mode
  apigen init

  # Non-interactive
  apigen init --schema runtime_api.json --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Path to the API catalog document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "generated_types.py", "Default output path for generated types")
	cmd.Flags().StringVar(&opts.modelName, "base-class-name", "APIBaseModel", "Base class generated models inherit from")
	cmd.Flags().StringVar(&opts.modelDoc, "base-class-doc", "Auto-generated base model", "Docstring of the base model class")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --schema)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("apigen.yaml already exists; project already initialized")
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
	}

	if opts.nonInteractive {
		if opts.schema == "" {
			return errors.New("non-interactive mode requires --schema")
		}
	} else {
		withClient := false
		if err := prompts.RunInitForm(
			&opts.schema,
			&opts.output,
			&opts.modelName,
			&opts.modelDoc,
			&withClient,
		); err != nil {
			return err
		}
		if withClient {
			if err := prompts.RunInitClientForm(
				&cfg.Client.Output,
				&cfg.Client.ClassName,
				&cfg.Client.Description,
				&cfg.Client.ServiceName,
				&cfg.Client.TypesModule,
			); err != nil {
				return err
			}
		}
	}

	cfg.Schema = opts.schema
	cfg.Output = opts.output
	cfg.Model = config.ModelConfig{Name: opts.modelName, Doc: opts.modelDoc}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
		{Label: "Schema", Value: cfg.Schema},
	}, "Initialization completed")

	return nil
}
