// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"testing"

	"github.com/dacolabs/apigen/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func field(node *ModelNode, identifier string) *FieldDef {
	for i := range node.Fields {
		if node.Fields[i].Identifier == identifier {
			return &node.Fields[i]
		}
	}
	return nil
}

func nodeByName(g *ModelGraph, name string) *ModelNode {
	if g.Root.Name == name {
		return g.Root
	}
	for _, n := range g.Aux {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func TestBuildModelGraph_ArrayOfObjects(t *testing.T) {
	params := []catalog.Parameter{
		{Name: "Name", Type: 1, Required: 1},
		{Name: "Envs.N.Key", Type: 1},
		{Name: "Envs.N.Value", Type: 1},
	}

	g := BuildModelGraph("CreateAgent", params, NewNameRegistry("APIBaseModel"))

	assert.Equal(t, "CreateAgentRequest", g.Root.Name)
	require.Len(t, g.Aux, 1)

	item := g.Aux[0]
	assert.Equal(t, "EnvsItemForCreateAgent", item.Name)

	key := field(item, "key")
	require.NotNil(t, key)
	assert.Equal(t, Scalar{Name: "str"}, key.Type)
	assert.False(t, key.Required)

	value := field(item, "value")
	require.NotNil(t, value)
	assert.Equal(t, Scalar{Name: "str"}, value.Type)

	name := field(g.Root, "name")
	require.NotNil(t, name)
	assert.Equal(t, Scalar{Name: "str"}, name.Type)
	assert.True(t, name.Required)

	envs := field(g.Root, "envs")
	require.NotNil(t, envs)
	assert.Equal(t, Array{Elem: Named{Name: "EnvsItemForCreateAgent"}}, envs.Type)
	assert.False(t, envs.Required)
}

func TestBuildModelGraph_SimpleArrayUnderNestedNode(t *testing.T) {
	params := []catalog.Parameter{
		{Name: "AuthorizerConfiguration.CustomJwtAuthorizer.AllowedClients.N", Type: 1},
		{Name: "AuthorizerConfiguration.CustomJwtAuthorizer.Issuer", Type: 1, Required: 1},
		{Name: "AuthorizerConfiguration.Mode", Type: 1},
	}

	g := BuildModelGraph("CreateGateway", params, NewNameRegistry("APIBaseModel"))

	outer := nodeByName(g, "AuthorizerForCreateGateway")
	require.NotNil(t, outer, "AuthorizerConfiguration should strip its generic suffix")
	inner := nodeByName(g, "AuthorizerCustomJwtAuthorizerForCreateGateway")
	require.NotNil(t, inner)

	// The simple array lands on the nested node, not a new array-object node.
	allowed := field(inner, "allowed_clients")
	require.NotNil(t, allowed)
	assert.Equal(t, Array{Elem: Scalar{Name: "str"}}, allowed.Type)
	assert.Len(t, g.Aux, 2)

	// Parent-child wiring: outer node holds a plain reference to inner.
	ref := field(outer, "custom_jwt_authorizer")
	require.NotNil(t, ref)
	assert.Equal(t, Named{Name: inner.Name}, ref.Type)

	// Root reference synthesized for the first-level path.
	rootRef := field(g.Root, "authorizer_configuration")
	require.NotNil(t, rootRef)
	assert.Equal(t, Named{Name: outer.Name}, rootRef.Type)
}

func TestBuildModelGraph_MixedMarkerDemotesArrayObject(t *testing.T) {
	// A path with both array-item and plain children is a plain nested
	// object; the marked children become ordinary fields.
	params := []catalog.Parameter{
		{Name: "Spec.N.Kind", Type: 1},
		{Name: "Spec.Replicas", Type: 2},
	}

	g := BuildModelGraph("Deploy", params, NewNameRegistry("APIBaseModel"))

	require.Len(t, g.Aux, 1)
	spec := g.Aux[0]
	assert.Equal(t, "SpecForDeploy", spec.Name, "no Item suffix for demoted paths")

	require.NotNil(t, field(spec, "kind"))
	require.NotNil(t, field(spec, "replicas"))

	rootRef := field(g.Root, "spec")
	require.NotNil(t, rootRef)
	assert.Equal(t, Named{Name: "SpecForDeploy"}, rootRef.Type, "demoted path is referenced unwrapped")
}

func TestBuildModelGraph_RootSimpleArray(t *testing.T) {
	params := []catalog.Parameter{
		{Name: "AllowedClients.N", Type: 1, Required: 1},
	}

	g := BuildModelGraph("UpdatePolicy", params, NewNameRegistry("APIBaseModel"))

	assert.Empty(t, g.Aux)
	f := field(g.Root, "allowed_clients")
	require.NotNil(t, f)
	assert.Equal(t, Array{Elem: Scalar{Name: "str"}}, f.Type)
	assert.True(t, f.Required)
}

func TestBuildModelGraph_Reachability(t *testing.T) {
	tests := []struct {
		name   string
		params []catalog.Parameter
	}{
		{
			name: "mixed field shapes",
			params: []catalog.Parameter{
				{Name: "Name", Type: 1, Required: 1},
				{Name: "Auth.Key.ApiKey", Type: 1},
				{Name: "Envs.N.Key", Type: 1},
				{Name: "Net.Subnets.N", Type: 1},
				{Name: "Net.VpcId", Type: 1},
			},
		},
		{
			name: "owner with only deep array-item fields",
			params: []catalog.Parameter{
				{Name: "Spec.Containers.N.Image", Type: 1},
			},
		},
		{
			name: "owner with only a nested simple array",
			params: []catalog.Parameter{
				{Name: "Auth.AllowedClients.N", Type: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildModelGraph("CreateAgent", tt.params, NewNameRegistry("APIBaseModel"))

			// Walk reference fields from the root; every aux node must
			// be visited.
			byName := map[string]*ModelNode{}
			for _, n := range g.Aux {
				byName[n.Name] = n
			}

			seen := map[string]bool{}
			var walk func(n *ModelNode)
			walk = func(n *ModelNode) {
				for _, f := range n.Fields {
					var named string
					switch ref := f.Type.(type) {
					case Named:
						named = ref.Name
					case Array:
						if inner, ok := ref.Elem.(Named); ok {
							named = inner.Name
						}
					}
					if child, ok := byName[named]; ok && !seen[named] {
						seen[named] = true
						walk(child)
					}
				}
			}
			walk(g.Root)

			for _, n := range g.Aux {
				assert.True(t, seen[n.Name], "node %s unreachable from root", n.Name)
			}
		})
	}
}

func TestBuildModelGraph_SynthesizedRootReferences(t *testing.T) {
	// A first-level owner whose fields are all deeper array items still
	// gets a root reference, unwrapped because the owner itself is a
	// plain nested object.
	g := BuildModelGraph("Deploy", []catalog.Parameter{
		{Name: "Spec.Containers.N.Image", Type: 1},
	}, NewNameRegistry("APIBaseModel"))

	require.Len(t, g.Aux, 2)
	spec := nodeByName(g, "SpecForDeploy")
	require.NotNil(t, spec)
	containers := field(spec, "containers")
	require.NotNil(t, containers)
	assert.Equal(t, Array{Elem: Named{Name: "SpecContainersItemForDeploy"}}, containers.Type)

	rootRef := field(g.Root, "spec")
	require.NotNil(t, rootRef)
	assert.Equal(t, Named{Name: "SpecForDeploy"}, rootRef.Type)

	// Same for an owner carrying only a simple array leaf.
	g = BuildModelGraph("Deploy", []catalog.Parameter{
		{Name: "Auth.AllowedClients.N", Type: 1},
	}, NewNameRegistry("APIBaseModel"))

	require.Len(t, g.Aux, 1)
	auth := g.Aux[0]
	allowed := field(auth, "allowed_clients")
	require.NotNil(t, allowed)
	assert.Equal(t, Array{Elem: Scalar{Name: "str"}}, allowed.Type)

	rootRef = field(g.Root, "auth")
	require.NotNil(t, rootRef)
	assert.Equal(t, Named{Name: auth.Name}, rootRef.Type)
}

func TestBuildModelGraph_DuplicateIdentifiersSkipped(t *testing.T) {
	params := []catalog.Parameter{
		{Name: "Tags.N.Key", Type: 1},
		{Name: "Tags.N.Key", Type: 2},
	}

	g := BuildModelGraph("TagResource", params, NewNameRegistry("APIBaseModel"))

	require.Len(t, g.Aux, 1)
	require.Len(t, g.Aux[0].Fields, 1)
	assert.Equal(t, Scalar{Name: "str"}, g.Aux[0].Fields[0].Type, "first row wins")
}

func TestBuildModelGraph_DeterministicNames(t *testing.T) {
	params := []catalog.Parameter{
		{Name: "B.Field", Type: 1},
		{Name: "A.Field", Type: 1},
		{Name: "C.N.Field", Type: 1},
	}

	build := func() []string {
		g := BuildModelGraph("Op", params, NewNameRegistry("APIBaseModel"))
		names := make([]string, 0, len(g.Aux))
		for _, n := range g.Aux {
			names = append(names, n.Name)
		}
		return names
	}

	first := build()
	assert.Equal(t, []string{"AForOp", "BForOp", "CItemForOp"}, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, build())
	}
}
