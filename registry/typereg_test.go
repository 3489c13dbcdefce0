package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/registry"
)

type pet struct {
	Name string `json:"name" oas:"description=The pet's name"`
	Tag  string `json:"tag,omitempty"`
}

type owner struct {
	Name string `json:"name"`
}

func TestTypeRegistry_Register(t *testing.T) {
	reg := registry.NewTypeRegistry(nil)

	d, err := reg.Register(pet{})
	require.NoError(t, err)
	assert.Equal(t, "pet", d.ID())
	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Has("pet"))

	got, ok := reg.Get("pet")
	require.True(t, ok)
	assert.Same(t, d, got)
}

func TestTypeRegistry_RegisterAgain(t *testing.T) {
	reg := registry.NewTypeRegistry(nil)

	first, err := reg.Register(pet{})
	require.NoError(t, err)

	// Same type again is a no-op returning the existing descriptor.
	second, err := reg.Register(pet{})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, reg.Len())

	// A different type under a taken id is rejected.
	_, err = reg.RegisterAs("pet", owner{})
	require.Error(t, err)
	assert.ErrorIs(t, err, binderrors.ErrConfig)
}

func TestTypeRegistry_RegisterAs(t *testing.T) {
	reg := registry.NewTypeRegistry(nil)

	d, err := reg.RegisterAs("tags", []string{})
	require.NoError(t, err)
	assert.Equal(t, "tags", d.ID())
}

func TestTypeRegistry_Validate(t *testing.T) {
	reg := registry.NewTypeRegistry(nil)
	_, err := reg.Register(pet{})
	require.NoError(t, err)

	obj := map[string]any{"name": "Rex"}
	got, err := reg.Validate("pet", obj)
	require.NoError(t, err)
	assert.Equal(t, obj, got)

	_, err = reg.Validate("pet", map[string]any{"tag": "dog"})
	assert.ErrorIs(t, err, binderrors.ErrValidation)

	got, err = reg.ValidateJSON("pet", []byte(`{"name":"Rex","tag":"dog"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Rex", "tag": "dog"}, got)

	_, err = reg.Validate("unknown", obj)
	assert.ErrorIs(t, err, binderrors.ErrConfig)
}

func TestTypeRegistry_Exports(t *testing.T) {
	reg := registry.NewTypeRegistry(nil)
	_, err := reg.Register(pet{})
	require.NoError(t, err)
	_, err = reg.Register(owner{})
	require.NoError(t, err)

	assert.Equal(t, []string{"owner", "pet"}, reg.IDs())
	assert.Len(t, reg.Schemas(), 2)

	decls := reg.Anthropic()
	require.Len(t, decls, 2)
	assert.Equal(t, "owner", decls[0]["name"])
	assert.Equal(t, "pet", decls[1]["name"])

	tools, err := reg.MCPTools()
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "owner", tools[0].Name)
}
