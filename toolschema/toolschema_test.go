package toolschema_test

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbind/composer"
	"github.com/erraggy/oasbind/descriptor"
	"github.com/erraggy/oasbind/toolschema"
	"github.com/erraggy/oasbind/validator"
)

func searchDescriptor() *descriptor.OperationDescriptor {
	op := descriptor.Operation{
		ID:          "search_users",
		Path:        "/users",
		Method:      descriptor.MethodGet,
		Description: "Search for users",
		QueryMeta: &composer.Meta{Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"q": map[string]any{"type": "string", "title": "Query"},
			},
			"required": []any{"q"},
		}},
	}
	return descriptor.NewOperationDescriptor(op, validator.New())
}

func TestOpenAI(t *testing.T) {
	decl := toolschema.OpenAI(searchDescriptor())

	assert.Equal(t, "function", decl["type"])
	fn := decl["function"].(map[string]any)
	assert.Equal(t, "search_users", fn["name"])
	assert.Equal(t, "Search for users", fn["description"])

	params := fn["parameters"].(map[string]any)
	assert.Equal(t, "object", params["type"])
	assert.NotContains(t, params, "description")

	q := params["properties"].(map[string]any)["q"].(map[string]any)
	assert.Equal(t, "string", q["type"])
	assert.NotContains(t, q, "title")
}

func TestAnthropic(t *testing.T) {
	decl := toolschema.Anthropic(searchDescriptor())

	assert.Equal(t, "search_users", decl["name"])
	assert.Equal(t, "Search for users", decl["description"])

	params := decl["input_schema"].(map[string]any)
	assert.Equal(t, "object", params["type"])
	assert.Contains(t, params["properties"], "q")
}

func TestGemini(t *testing.T) {
	decl := toolschema.Gemini(searchDescriptor())

	assert.Equal(t, "search_users", decl["name"])
	assert.Equal(t, "Search for users", decl["description"])
	assert.Contains(t, decl["parameters"].(map[string]any)["properties"], "q")
}

func TestMCPTool(t *testing.T) {
	tool, err := toolschema.MCPTool(searchDescriptor())
	require.NoError(t, err)

	assert.Equal(t, "search_users", tool.Name)
	assert.Equal(t, "Search for users", tool.Description)

	schema, ok := tool.InputSchema.(*jsonschema.Schema)
	require.True(t, ok, "InputSchema should hold a *jsonschema.Schema")
	assert.Equal(t, "object", schema.Type)
	assert.Contains(t, schema.Properties, "q")
	assert.Equal(t, []string{"q"}, schema.Required)
}

func TestWithNameStyle(t *testing.T) {
	d := searchDescriptor()

	tests := []struct {
		style toolschema.NameStyle
		want  string
	}{
		{toolschema.NameVerbatim, "search_users"},
		{toolschema.NamePascal, "SearchUsers"},
		{toolschema.NameCamel, "searchUsers"},
		{toolschema.NameSnake, "search_users"},
		{toolschema.NameKebab, "search-users"},
	}
	for _, tc := range tests {
		t.Run(string(tc.style), func(t *testing.T) {
			decl := toolschema.Anthropic(d, toolschema.WithNameStyle(tc.style))
			assert.Equal(t, tc.want, decl["name"])
		})
	}
}

func TestExportsDoNotMutateCachedSchema(t *testing.T) {
	d := searchDescriptor()
	toolschema.OpenAI(d)
	toolschema.Anthropic(d)

	schema := d.Schema()
	assert.Equal(t, "Search for users", schema["description"])
	q := schema["properties"].(map[string]any)["q"].(map[string]any)
	assert.Equal(t, "Query", q["title"])
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		name  string
		style toolschema.NameStyle
		want  string
	}{
		{"get user by id", toolschema.NameVerbatim, "get_user_by_id"},
		{"users.list", toolschema.NamePascal, "UsersList"},
		{"Pet Store: list pets!", toolschema.NameSnake, "pet_store_list_pets"},
		{"listPets", toolschema.NameKebab, "list-pets"},
		{"", toolschema.NamePascal, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name+"/"+string(tc.style), func(t *testing.T) {
			assert.Equal(t, tc.want, toolschema.FormatName(tc.name, tc.style))
		})
	}
}
