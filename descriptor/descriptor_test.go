package descriptor_test

import (
	"errors"
	"testing"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/composer"
	"github.com/erraggy/oasbind/descriptor"
	"github.com/erraggy/oasbind/encoder"
	"github.com/erraggy/oasbind/validator"
)

func getUserOperation() descriptor.Operation {
	return descriptor.Operation{
		ID:          "getUser",
		Path:        "/users/{userId}",
		Method:      descriptor.MethodGet,
		Description: "Fetch a user",
		PathMeta: &composer.Meta{Schema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"userId": map[string]any{"type": "integer"}},
			"required":   []any{"userId"},
		}},
		QueryMeta: &composer.Meta{Schema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"filter": map[string]any{"type": "string"}},
		}},
		BodyMeta: &composer.Meta{Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"age":  map[string]any{"type": "integer"},
			},
		}},
	}
}

func TestOperationDescriptor_Schema(t *testing.T) {
	d := descriptor.NewOperationDescriptor(getUserOperation(), validator.New())

	schema := d.Schema()
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, "Fetch a user", schema["description"])

	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, "userId")
	assert.Contains(t, props, "filter")
	assert.Contains(t, props, "requestBody")

	assert.Equal(t, []string{"userId", "requestBody"}, schema["required"])

	// Cached: same map on every access.
	again := d.Schema()
	assert.Equal(t, schema, again)
}

func TestOperationDescriptor_EndToEnd(t *testing.T) {
	d := descriptor.NewOperationDescriptor(getUserOperation(), validator.New())

	req, err := d.Validate(map[string]any{
		"userId":      123,
		"filter":      "active",
		"requestBody": map[string]any{"name": "John", "age": 30},
	})
	require.NoError(t, err)

	assert.Equal(t, "/users/123", req.Path)
	assert.Equal(t, descriptor.MethodGet, req.Method)
	assert.Equal(t, map[string]any{"filter": "active"}, req.Queries)
	assert.Equal(t, "filter=active", req.EncodedQuery)
	assert.Equal(t, map[string]any{"name": "John", "age": 30}, req.Body)
	assert.Nil(t, req.Headers)
	assert.Nil(t, req.Cookies)
	assert.Equal(t, "/users/123?filter=active", req.PathWithQuery())
}

func TestOperationDescriptor_ValidationFailure(t *testing.T) {
	d := descriptor.NewOperationDescriptor(getUserOperation(), validator.New())

	_, err := d.Validate(map[string]any{
		"userId":      "not-a-number",
		"requestBody": map[string]any{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, binderrors.ErrValidation)

	// The validator's structured violation is preserved in the chain.
	var cause *jsonschema.ValidationError
	assert.True(t, errors.As(err, &cause))

	var vErr *binderrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "getUser", vErr.ID)
}

func TestOperationDescriptor_MissingRequiredKey(t *testing.T) {
	d := descriptor.NewOperationDescriptor(getUserOperation(), validator.New())

	_, err := d.Validate(map[string]any{"filter": "active"})
	assert.ErrorIs(t, err, binderrors.ErrValidation)
}

func TestOperationDescriptor_MissingPathParameter(t *testing.T) {
	// An operation whose template references a parameter nobody declared.
	op := descriptor.Operation{
		ID:     "broken",
		Path:   "/users/{userId}",
		Method: descriptor.MethodGet,
	}
	d := descriptor.NewOperationDescriptor(op, validator.New())

	_, err := d.Validate(map[string]any{})
	require.Error(t, err)
	assert.ErrorIs(t, err, binderrors.ErrMissingPathParam)
}

func TestOperationDescriptor_PathEncodings(t *testing.T) {
	op := descriptor.Operation{
		ID:     "listFiles",
		Path:   "/files{ids}",
		Method: descriptor.MethodGet,
		PathMeta: &composer.Meta{
			Schema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"ids": map[string]any{"type": "array"}},
				"required":   []any{"ids"},
			},
			Encodings: map[string]encoder.Encoding{
				"ids": {Style: encoder.StyleMatrix, Explode: true},
			},
		},
	}
	d := descriptor.NewOperationDescriptor(op, validator.New())

	req, err := d.Validate(map[string]any{"ids": []any{3, 4, 5}})
	require.NoError(t, err)
	assert.Equal(t, "/files;ids=3;ids=4;ids=5", req.Path)
}

func TestOperationDescriptor_QueryEncodings(t *testing.T) {
	op := descriptor.Operation{
		ID:     "search",
		Path:   "/search",
		Method: descriptor.MethodGet,
		QueryMeta: &composer.Meta{
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tags": map[string]any{"type": "array"},
					"q":    map[string]any{"type": "string"},
				},
			},
			Encodings: map[string]encoder.Encoding{
				"tags": {Style: encoder.StylePipeDelimited, Explode: false},
			},
		},
	}
	d := descriptor.NewOperationDescriptor(op, validator.New())

	req, err := d.Validate(map[string]any{"q": "go tools", "tags": []any{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "q=go%20tools&tags=a|b", req.EncodedQuery)
	assert.Equal(t, "/search?q=go%20tools&tags=a|b", req.PathWithQuery())
}

func TestOperationDescriptor_CollidingLocations(t *testing.T) {
	// Query collides with path on "id"; query input must arrive nested.
	op := descriptor.Operation{
		ID:     "collide",
		Path:   "/things/{id}",
		Method: descriptor.MethodGet,
		PathMeta: &composer.Meta{Schema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"id": map[string]any{"type": "integer"}},
			"required":   []any{"id"},
		}},
		QueryMeta: &composer.Meta{Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string"},
				"sort": map[string]any{"type": "string"},
			},
		}},
	}
	d := descriptor.NewOperationDescriptor(op, validator.New())

	props := d.Schema()["properties"].(map[string]any)
	assert.Contains(t, props, "id")
	assert.Contains(t, props, "requestQuery")
	assert.NotContains(t, props, "sort")

	req, err := d.Validate(map[string]any{
		"id":           42,
		"requestQuery": map[string]any{"id": "name", "sort": "asc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/things/42", req.Path)
	assert.Equal(t, map[string]any{"id": "name", "sort": "asc"}, req.Queries)
	assert.Equal(t, "id=name&sort=asc", req.EncodedQuery)
}

func TestOperationDescriptor_ValidateJSON(t *testing.T) {
	d := descriptor.NewOperationDescriptor(getUserOperation(), validator.New())

	req, err := d.ValidateJSON([]byte(`{"userId":123,"requestBody":{"name":"John","age":30}}`))
	require.NoError(t, err)
	assert.Equal(t, "/users/123", req.Path)
	assert.Equal(t, "", req.EncodedQuery)
	assert.Equal(t, "/users/123", req.PathWithQuery())

	_, err = d.ValidateJSON([]byte(`not json`))
	assert.ErrorIs(t, err, binderrors.ErrValidation)
}

func TestOperationDescriptor_NoValidator(t *testing.T) {
	d := descriptor.NewOperationDescriptor(getUserOperation(), nil)

	assert.NotNil(t, d.Schema())

	_, err := d.Validate(map[string]any{"userId": 1, "requestBody": map[string]any{}})
	assert.ErrorIs(t, err, binderrors.ErrConfig)
}

func TestMethodValid(t *testing.T) {
	assert.True(t, descriptor.MethodGet.Valid())
	assert.True(t, descriptor.MethodOptions.Valid())
	assert.False(t, descriptor.Method("trace").Valid())
	assert.False(t, descriptor.Method("GET").Valid())
}

func TestTypeDescriptor(t *testing.T) {
	type Pet struct {
		Name string `json:"name"`
		Age  int    `json:"age,omitempty"`
	}

	d, err := descriptor.NewTypeDescriptor(Pet{}, validator.New())
	require.NoError(t, err)
	assert.Equal(t, "Pet", d.ID())

	t.Run("schema", func(t *testing.T) {
		schema := d.Schema()
		assert.Equal(t, "object", schema["type"])
		assert.Contains(t, schema["properties"].(map[string]any), "name")
	})

	t.Run("valid object passes through", func(t *testing.T) {
		obj := map[string]any{"name": "Rex", "age": 3}
		got, err := d.Validate(obj)
		require.NoError(t, err)
		assert.Equal(t, obj, got)
	})

	t.Run("invalid object rejected", func(t *testing.T) {
		_, err := d.Validate(map[string]any{"age": "old"})
		assert.ErrorIs(t, err, binderrors.ErrValidation)
	})

	t.Run("validate json", func(t *testing.T) {
		got, err := d.ValidateJSON([]byte(`{"name":"Rex"}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Rex"}, got)
	})
}

func TestTypeDescriptor_UnnamedTypeNeedsID(t *testing.T) {
	_, err := descriptor.NewTypeDescriptor([]string{}, validator.New())
	assert.ErrorIs(t, err, binderrors.ErrConfig)

	d, err := descriptor.NewNamedTypeDescriptor("tags", []string{}, validator.New())
	require.NoError(t, err)
	assert.Equal(t, "tags", d.ID())
}
