// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dacolabs/apigen/internal/catalog"
	"github.com/dacolabs/apigen/internal/generate/pydantic"
	"github.com/dacolabs/apigen/internal/prompts"
	"github.com/dacolabs/apigen/internal/session"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	output          string
	clientOutput    string
	clientClassName string
	clientDesc      string
	serviceName     string
	typesModule     string
	baseClassImport string
	baseClientClass string
	baseClassName   string
	baseClassDoc    string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <schema-file>",
		Short: "Generate Pydantic type definitions from an API catalog",
		Long: `Generate Pydantic type definitions from a flat API catalog document.

Request field paths use dotted notation with the literal segment N as the array
marker ("Envs.N.Key"). The generator builds one request model tree per action,
a flat response model per action, and one record per DataType struct. A client
module with one method per action can be emitted alongside the types.`,
		Example: `  # Types only
  apigen generate runtime_api.json

  # Types to a specific path
  apigen generate runtime_api.json -o sdk/generated_types.py

  # Types plus client module
  apigen generate runtime_api.json \
    --client-output sdk/client.py \
    --client-class-name RuntimeClient \
    --service-name runtime \
    --types-module sdk.generated_types`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "generated_types.py", "Output path for generated types")
	cmd.Flags().StringVar(&opts.clientOutput, "client-output", "", "Optional output path for the client module")
	cmd.Flags().StringVar(&opts.clientClassName, "client-class-name", "", "Client class name (required with --client-output)")
	cmd.Flags().StringVar(&opts.clientDesc, "client-description", "", "Client class docstring")
	cmd.Flags().StringVar(&opts.serviceName, "service-name", "", "Service name the client dispatches to (required with --client-output)")
	cmd.Flags().StringVar(&opts.typesModule, "types-module", "", "Module path the client imports types from (required with --client-output)")
	cmd.Flags().StringVar(&opts.baseClassImport, "base-class-import", "apigen.client", "Import path of the base client class")
	cmd.Flags().StringVar(&opts.baseClientClass, "base-client-class", "BaseAPIClient", "Base client class name")
	cmd.Flags().StringVar(&opts.baseClassName, "base-class-name", "APIBaseModel", "Base class generated models inherit from")
	cmd.Flags().StringVar(&opts.baseClassDoc, "base-class-doc", "Auto-generated base model", "Docstring of the base model class")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	// The project config is optional for generate: flags alone are enough.
	if ctx, err := session.Load(cmd.Context()); err == nil {
		cmd.SetContext(ctx)
	} else if !errors.Is(err, session.ErrNotInitialized) {
		return err
	}
	applyConfigDefaults(cmd, opts)

	schemaPath := ""
	if len(args) > 0 {
		schemaPath = args[0]
	} else if ctx := session.FromCommand(cmd); ctx != nil && ctx.Config.Schema != "" {
		schemaPath = ctx.Config.Schema
	}
	if schemaPath == "" {
		return errors.New("schema file argument is required")
	}

	if err := validateClientFlags(opts); err != nil {
		return err
	}

	cat, err := catalog.ParseFile(schemaPath)
	if err != nil {
		return err
	}

	types, err := pydantic.GenerateTypes(cat, pydantic.Options{
		BaseModelName: opts.baseClassName,
		BaseModelDoc:  opts.baseClassDoc,
	})
	if err != nil {
		return err
	}

	var client []byte
	if opts.clientOutput != "" {
		client, err = pydantic.GenerateClient(cat, pydantic.ClientOptions{
			ClassName:       opts.clientClassName,
			Description:     opts.clientDesc,
			ServiceName:     opts.serviceName,
			TypesModule:     opts.typesModule,
			BaseClassImport: opts.baseClassImport,
			BaseClassName:   opts.baseClientClass,
		})
		if err != nil {
			return err
		}
	}

	// No partial output: everything is generated before anything is written.
	if err := os.WriteFile(opts.output, types, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write types module: %w", err)
	}
	results := []prompts.ResultField{
		{Label: "Schema", Value: schemaPath},
		{Label: "Types", Value: fmt.Sprintf("%s (%d lines)", opts.output, lineCount(types))},
	}

	if opts.clientOutput != "" {
		if err := os.WriteFile(opts.clientOutput, client, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("failed to write client module: %w", err)
		}
		results = append(results, prompts.ResultField{
			Label: "Client",
			Value: fmt.Sprintf("%s (%d lines)", opts.clientOutput, lineCount(client)),
		})
	}

	prompts.PrintResult(results, "Generation completed")
	return nil
}

// applyConfigDefaults fills unset flags from the project config, when the
// command runs inside an initialized project. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command, opts *generateOptions) {
	ctx := session.FromCommand(cmd)
	if ctx == nil {
		return
	}
	cfg := ctx.Config

	set := func(flag string, target *string, value string) {
		if value != "" && !cmd.Flags().Changed(flag) {
			*target = value
		}
	}

	set("output", &opts.output, cfg.Output)
	set("base-class-name", &opts.baseClassName, cfg.Model.Name)
	set("base-class-doc", &opts.baseClassDoc, cfg.Model.Doc)
	set("client-output", &opts.clientOutput, cfg.Client.Output)
	set("client-class-name", &opts.clientClassName, cfg.Client.ClassName)
	set("client-description", &opts.clientDesc, cfg.Client.Description)
	set("service-name", &opts.serviceName, cfg.Client.ServiceName)
	set("types-module", &opts.typesModule, cfg.Client.TypesModule)
	set("base-class-import", &opts.baseClassImport, cfg.Client.BaseClassImport)
	set("base-client-class", &opts.baseClientClass, cfg.Client.BaseClassName)
}

// validateClientFlags enforces the all-or-nothing client flag contract:
// supplying any of the client generation settings makes the full set
// mandatory. The error names exactly the missing flags.
func validateClientFlags(opts *generateOptions) error {
	required := []struct {
		flag  string
		value string
	}{
		{"--client-output", opts.clientOutput},
		{"--client-class-name", opts.clientClassName},
		{"--service-name", opts.serviceName},
		{"--types-module", opts.typesModule},
	}

	var missing []string
	supplied := false
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.flag)
		} else {
			supplied = true
		}
	}
	if supplied && len(missing) > 0 {
		return fmt.Errorf("incomplete client generation configuration, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func lineCount(b []byte) int {
	return bytes.Count(b, []byte("\n"))
}
