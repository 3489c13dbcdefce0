package toolschema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/descriptor"
	"github.com/erraggy/oasbind/internal/schemautil"
)

type config struct {
	nameStyle NameStyle
}

// Option configures a tool export.
type Option func(*config)

// WithNameStyle recases exported tool names. The default is [NameVerbatim].
func WithNameStyle(style NameStyle) Option {
	return func(c *config) {
		c.nameStyle = style
	}
}

func buildConfig(opts []Option) config {
	cfg := config{nameStyle: NameVerbatim}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// OpenAI returns the descriptor's tool declaration in the OpenAI
// function-calling shape:
//
//	{"type": "function", "function": {"name": ..., "description": ..., "parameters": {...}}}
func OpenAI(d descriptor.Descriptor, opts ...Option) map[string]any {
	cfg := buildConfig(opts)
	name, description, params := split(d, cfg)

	fn := map[string]any{
		"name":       name,
		"parameters": params,
	}
	if description != "" {
		fn["description"] = description
	}
	return map[string]any{
		"type":     "function",
		"function": fn,
	}
}

// Anthropic returns the descriptor's tool declaration in the Anthropic
// tool-use shape:
//
//	{"name": ..., "description": ..., "input_schema": {...}}
func Anthropic(d descriptor.Descriptor, opts ...Option) map[string]any {
	cfg := buildConfig(opts)
	name, description, params := split(d, cfg)

	decl := map[string]any{
		"name":         name,
		"input_schema": params,
	}
	if description != "" {
		decl["description"] = description
	}
	return decl
}

// Gemini returns the descriptor's tool declaration in the Gemini
// function-declaration shape:
//
//	{"name": ..., "description": ..., "parameters": {...}}
func Gemini(d descriptor.Descriptor, opts ...Option) map[string]any {
	cfg := buildConfig(opts)
	name, description, params := split(d, cfg)

	decl := map[string]any{
		"name":       name,
		"parameters": params,
	}
	if description != "" {
		decl["description"] = description
	}
	return decl
}

// MCPTool returns the descriptor as a Model Context Protocol tool. The
// descriptor's schema is converted to a [*jsonschema.Schema], the concrete
// type the SDK expects behind [mcp.Tool.InputSchema]; a schema the SDK
// cannot represent yields a configuration error.
func MCPTool(d descriptor.Descriptor, opts ...Option) (*mcp.Tool, error) {
	cfg := buildConfig(opts)
	name, description, params := split(d, cfg)

	schema, err := sdkSchema(params)
	if err != nil {
		return nil, &binderrors.ConfigError{
			Option:  "schema",
			Message: "cannot convert schema for tool " + d.ID(),
			Cause:   err,
		}
	}
	return &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}, nil
}

// split pulls the tool name, description, and parameter schema out of a
// descriptor. The parameter schema is a deep copy with titles dropped and the
// top-level description hoisted into the declaration.
func split(d descriptor.Descriptor, cfg config) (name, description string, params map[string]any) {
	name = FormatName(d.ID(), cfg.nameStyle)

	// DropTitles deep-copies, so the descriptor's cached schema stays intact.
	params = schemautil.DropTitles(d.Schema())
	if params == nil {
		params = map[string]any{"type": "object", "properties": map[string]any{}}
	}

	if desc, ok := params["description"].(string); ok {
		description = desc
		delete(params, "description")
	}
	return name, description, params
}

// sdkSchema converts an object-shaped schema map into the SDK's typed schema
// through a JSON round trip.
func sdkSchema(params map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}
