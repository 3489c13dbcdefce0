package validator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/erraggy/oasbind/descriptor"
)

// resourceURL is the synthetic location compiled schemas are registered
// under. Composed schemas carry no $id and resolve no external references.
const resourceURL = "oasbind://composed/schema.json"

// Validator compiles object-shaped schema maps into reusable draft 2020-12
// checkers. The zero value is usable; New is provided for symmetry with the
// rest of the library.
type Validator struct{}

// New creates a schema validator.
func New() *Validator {
	return &Validator{}
}

// Compile builds a reusable checker for schema.
func (v *Validator) Compile(schema map[string]any) (descriptor.CompiledSchema, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("validator: schema is not JSON-encodable: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("validator: cannot decode schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceURL, doc); err != nil {
		return nil, fmt.Errorf("validator: cannot register schema: %w", err)
	}
	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("validator: cannot compile schema: %w", err)
	}
	return &compiledSchema{schema: compiled}, nil
}

// compiledSchema adapts a compiled jsonschema.Schema to the
// descriptor.CompiledSchema interface.
type compiledSchema struct {
	schema *jsonschema.Schema
}

// Validate checks obj against the compiled schema. The object is normalized
// through a JSON round-trip first; the returned error is the validator's
// structured *jsonschema.ValidationError, unchanged.
func (c *compiledSchema) Validate(obj any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("validator: object is not JSON-encodable: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("validator: cannot decode object: %w", err)
	}
	return c.schema.Validate(instance)
}
