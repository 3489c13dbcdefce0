package descriptor

import (
	"encoding/json"
	"sync"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/reflector"
)

// TypeDescriptor validates objects against the derived schema of a Go type.
// Create one with [NewTypeDescriptor] or [NewNamedTypeDescriptor]. Safe for
// concurrent use.
type TypeDescriptor struct {
	id     string
	ref    any
	schema map[string]any
	sv     SchemaValidator

	compileOnce sync.Once
	compiled    CompiledSchema
	compileErr  error
}

// NewTypeDescriptor derives a schema for the type of v and returns a
// descriptor identified by the type's name. Unnamed types need
// [NewNamedTypeDescriptor].
func NewTypeDescriptor(v any, sv SchemaValidator) (*TypeDescriptor, error) {
	id := reflector.TypeName(v)
	if id == "" {
		return nil, &binderrors.ConfigError{
			Option:  "type",
			Message: "unnamed type needs an explicit descriptor id",
		}
	}
	return NewNamedTypeDescriptor(id, v, sv)
}

// NewNamedTypeDescriptor derives a schema for the type of v and returns a
// descriptor with the given id.
func NewNamedTypeDescriptor(id string, v any, sv SchemaValidator) (*TypeDescriptor, error) {
	schema, err := reflector.SchemaFor(v)
	if err != nil {
		return nil, err
	}
	return &TypeDescriptor{id: id, ref: v, schema: schema, sv: sv}, nil
}

// ID identifies the described type.
func (d *TypeDescriptor) ID() string {
	return d.id
}

// Ref returns the value the descriptor was derived from.
func (d *TypeDescriptor) Ref() any {
	return d.ref
}

// Schema returns the derived JSON schema. Callers must not mutate the
// returned map.
func (d *TypeDescriptor) Schema() map[string]any {
	return d.schema
}

// Validate checks obj against the type's schema and returns it unchanged on
// success.
func (d *TypeDescriptor) Validate(obj any) (any, error) {
	d.compileOnce.Do(func() {
		if d.sv == nil {
			d.compileErr = &binderrors.ConfigError{
				Option:  "SchemaValidator",
				Message: "no schema validator configured",
			}
			return
		}
		compiled, err := d.sv.Compile(d.schema)
		if err != nil {
			d.compileErr = &binderrors.ConfigError{
				Option:  "schema",
				Message: "cannot compile schema for " + d.id,
				Cause:   err,
			}
			return
		}
		d.compiled = compiled
	})
	if d.compileErr != nil {
		return nil, d.compileErr
	}
	if err := d.compiled.Validate(obj); err != nil {
		return nil, &binderrors.ValidationError{ID: d.id, Cause: err}
	}
	return obj, nil
}

// ValidateJSON decodes data as JSON and validates it like
// [TypeDescriptor.Validate].
func (d *TypeDescriptor) ValidateJSON(data []byte) (any, error) {
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &binderrors.ValidationError{
			ID:      d.id,
			Message: "input is not valid JSON",
			Cause:   err,
		}
	}
	return d.Validate(obj)
}
