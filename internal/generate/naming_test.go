// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Name", "name"},
		{"CreateAgent", "create_agent"},
		{"MCPService", "mcp_service"},
		{"ServiceID", "service_id"},
		{"AllowedClients", "allowed_clients"},
		{"OAuth2Token", "o_auth2_token"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.in))
		})
	}
}

func TestToSnakeCase_Idempotent(t *testing.T) {
	inputs := []string{"MCPService", "ServiceID", "CreateAgent", "Envs", "A2BConfig"}
	for _, in := range inputs {
		once := ToSnakeCase(in)
		assert.Equal(t, once, ToSnakeCase(once), "re-applying must not change %q", once)
	}
}

func TestNestedBaseName(t *testing.T) {
	tests := []struct {
		name        string
		path        []string
		arrayObject bool
		want        string
	}{
		{"single segment", []string{"Envs"}, false, "Envs"},
		{"single segment array", []string{"Envs"}, true, "EnvsItem"},
		{"generic suffix stripped", []string{"AuthorizerConfiguration"}, false, "Authorizer"},
		{"multi segment concatenated", []string{"AuthorizerConfiguration", "CustomJwtAuthorizer"}, false, "AuthorizerCustomJwtAuthorizer"},
		{"suffix-only segment kept", []string{"Config"}, false, "Config"},
		{"empty path", nil, false, "NestedModel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NestedBaseName(tt.path, tt.arrayObject))
		})
	}
}

func TestNameRegistry_Qualify(t *testing.T) {
	reg := NewNameRegistry("APIBaseModel")

	first := reg.Qualify("Envs", "CreateAgent")
	assert.Equal(t, "EnvsForCreateAgent", first)

	// Same base and action collides and picks the next numeric suffix.
	second := reg.Qualify("Envs", "CreateAgent")
	assert.Equal(t, "EnvsForCreateAgent2", second)
	third := reg.Qualify("Envs", "CreateAgent")
	assert.Equal(t, "EnvsForCreateAgent3", third)

	assert.True(t, reg.Reserved("EnvsForCreateAgent2"))
	assert.False(t, reg.Reserved("EnvsForDeleteAgent"))
}

func TestNameRegistry_SeedReserved(t *testing.T) {
	reg := NewNameRegistry("APIBaseModel")
	assert.True(t, reg.Reserved("APIBaseModel"))

	// Fresh registries never share state across runs.
	other := NewNameRegistry("APIBaseModel")
	other.Reserve("OnlyHere")
	assert.False(t, reg.Reserved("OnlyHere"))
}
