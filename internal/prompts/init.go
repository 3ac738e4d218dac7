// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(schema, output, modelName, modelDoc *string, withClient *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file").
				Description("Path to the API catalog document (JSON or YAML)").
				Validate(requiredValidator("schema file")).
				Value(schema),
			huh.NewInput().
				Title("Types output").
				Description("Path for the generated types module").
				Value(output),
			huh.NewInput().
				Title("Base model class").
				Validate(identifierValidator("base model class")).
				Value(modelName),
			huh.NewInput().
				Title("Base model docstring").
				Value(modelDoc),
			huh.NewConfirm().
				Title("Configure client generation defaults?").
				Value(withClient),
		),
	).WithTheme(Theme()).Run()
}

// RunInitClientForm runs the follow-up form collecting client generation
// defaults. All three of class name, service name and types module are
// required for client generation, so the form insists on them.
func RunInitClientForm(output, className, description, serviceName, typesModule *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Client output").
				Description("Path for the generated client module").
				Validate(requiredValidator("client output")).
				Value(output),
			huh.NewInput().
				Title("Client class name").
				Validate(identifierValidator("client class name")).
				Value(className),
			huh.NewInput().
				Title("Client description").
				Value(description),
			huh.NewInput().
				Title("Service name").
				Validate(requiredValidator("service name")).
				Value(serviceName),
			huh.NewInput().
				Title("Types module").
				Description("Python module path the client imports types from").
				Validate(requiredValidator("types module")).
				Value(typesModule),
		),
	).WithTheme(Theme()).Run()
}
