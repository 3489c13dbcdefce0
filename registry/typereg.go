package registry

import (
	"reflect"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/descriptor"
	"github.com/erraggy/oasbind/internal/schemautil"
	"github.com/erraggy/oasbind/toolschema"
	"github.com/erraggy/oasbind/validator"
)

// TypeRegistry holds type descriptors keyed by id. Create one with
// [NewTypeRegistry]; the zero value is not usable. Safe for concurrent use.
type TypeRegistry struct {
	sv descriptor.SchemaValidator

	mu          sync.RWMutex
	descriptors map[string]*descriptor.TypeDescriptor
	refs        map[string]reflect.Type
}

// NewTypeRegistry creates an empty type registry. The validator backs every
// registered descriptor; nil selects the validator package's draft 2020-12
// implementation.
func NewTypeRegistry(sv descriptor.SchemaValidator) *TypeRegistry {
	if sv == nil {
		sv = validator.New()
	}
	return &TypeRegistry{
		sv:          sv,
		descriptors: make(map[string]*descriptor.TypeDescriptor),
		refs:        make(map[string]reflect.Type),
	}
}

// Register derives a descriptor from v's type and registers it under the
// type's name. Registering the same type again is a no-op; a different type
// under an already-taken id is a configuration error.
func (r *TypeRegistry) Register(v any) (*descriptor.TypeDescriptor, error) {
	d, err := descriptor.NewTypeDescriptor(v, r.sv)
	if err != nil {
		return nil, err
	}
	return r.store(d, v)
}

// RegisterAs registers a descriptor for v's type under an explicit id, for
// unnamed types or when the type name is not the wanted tool name.
func (r *TypeRegistry) RegisterAs(id string, v any) (*descriptor.TypeDescriptor, error) {
	d, err := descriptor.NewNamedTypeDescriptor(id, v, r.sv)
	if err != nil {
		return nil, err
	}
	return r.store(d, v)
}

func (r *TypeRegistry) store(d *descriptor.TypeDescriptor, v any) (*descriptor.TypeDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := reflect.TypeOf(v)
	if existing, ok := r.refs[d.ID()]; ok {
		if existing != t {
			return nil, &binderrors.ConfigError{
				Option:  "id",
				Value:   d.ID(),
				Message: "a different type is already registered",
			}
		}
		return r.descriptors[d.ID()], nil
	}
	r.descriptors[d.ID()] = d
	r.refs[d.ID()] = t
	return d, nil
}

// Get returns the descriptor registered under id.
func (r *TypeRegistry) Get(id string) (*descriptor.TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[id]
	return d, ok
}

// Has reports whether a descriptor is registered under id.
func (r *TypeRegistry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns the registered ids in lexicographic order.
func (r *TypeRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return schemautil.SortedKeys(r.descriptors)
}

// Len returns the number of registered descriptors.
func (r *TypeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}

// Validate validates obj against the identified type's schema. The object is
// returned unchanged on success.
func (r *TypeRegistry) Validate(id string, obj any) (any, error) {
	d, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return d.Validate(obj)
}

// ValidateJSON validates JSON data against the identified type's schema and
// returns the decoded value.
func (r *TypeRegistry) ValidateJSON(id string, data []byte) (any, error) {
	d, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return d.ValidateJSON(data)
}

func (r *TypeRegistry) lookup(id string) (*descriptor.TypeDescriptor, error) {
	d, ok := r.Get(id)
	if !ok {
		return nil, &binderrors.ConfigError{
			Option:  "id",
			Value:   id,
			Message: "no descriptor registered",
		}
	}
	return d, nil
}

// Schemas returns every descriptor's schema, ordered by id.
func (r *TypeRegistry) Schemas() []map[string]any {
	schemas := make([]map[string]any, 0, r.Len())
	for _, id := range r.IDs() {
		d, _ := r.Get(id)
		schemas = append(schemas, d.Schema())
	}
	return schemas
}

// OpenAI returns every descriptor's tool declaration in the OpenAI
// function-calling shape, ordered by id.
func (r *TypeRegistry) OpenAI(opts ...toolschema.Option) []map[string]any {
	decls := make([]map[string]any, 0, r.Len())
	for _, id := range r.IDs() {
		d, _ := r.Get(id)
		decls = append(decls, toolschema.OpenAI(d, opts...))
	}
	return decls
}

// Anthropic returns every descriptor's tool declaration in the Anthropic
// tool-use shape, ordered by id.
func (r *TypeRegistry) Anthropic(opts ...toolschema.Option) []map[string]any {
	decls := make([]map[string]any, 0, r.Len())
	for _, id := range r.IDs() {
		d, _ := r.Get(id)
		decls = append(decls, toolschema.Anthropic(d, opts...))
	}
	return decls
}

// Gemini returns every descriptor's tool declaration in the Gemini
// function-declaration shape, ordered by id.
func (r *TypeRegistry) Gemini(opts ...toolschema.Option) []map[string]any {
	decls := make([]map[string]any, 0, r.Len())
	for _, id := range r.IDs() {
		d, _ := r.Get(id)
		decls = append(decls, toolschema.Gemini(d, opts...))
	}
	return decls
}

// MCPTools returns every descriptor as a Model Context Protocol tool,
// ordered by id.
func (r *TypeRegistry) MCPTools(opts ...toolschema.Option) ([]*mcp.Tool, error) {
	tools := make([]*mcp.Tool, 0, r.Len())
	for _, id := range r.IDs() {
		d, _ := r.Get(id)
		tool, err := toolschema.MCPTool(d, opts...)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
