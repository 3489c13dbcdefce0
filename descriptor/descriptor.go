package descriptor

import (
	"encoding/json"
	"maps"
	"sync"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/composer"
	"github.com/erraggy/oasbind/encoder"
)

// Descriptor is the surface shared by operation and type descriptors:
// an identifier and a JSON schema for the objects the descriptor accepts.
type Descriptor interface {
	// ID identifies the described operation or type.
	ID() string
	// Schema returns the JSON schema as an object-shaped map. The returned
	// map is cached; callers must not mutate it.
	Schema() map[string]any
}

// SchemaValidator compiles schemas into reusable object checkers. It is the
// capability interface for the external JSON Schema validation collaborator;
// the validator package supplies a draft-2020-12 implementation.
type SchemaValidator interface {
	Compile(schema map[string]any) (CompiledSchema, error)
}

// CompiledSchema validates candidate objects against one compiled schema.
type CompiledSchema interface {
	// Validate returns nil when obj conforms to the schema, or the
	// validator's structured violation error otherwise.
	Validate(obj any) error
}

// OperationDescriptor composes, caches, and applies the request schema of a
// single operation. Create one with [NewOperationDescriptor]; the zero value
// is not usable. Safe for concurrent use.
type OperationDescriptor struct {
	op Operation
	sv SchemaValidator

	composeOnce sync.Once
	schema      map[string]any
	keyLoc      map[string]composer.Location

	compileOnce sync.Once
	compiled    CompiledSchema
	compileErr  error
}

// NewOperationDescriptor creates a descriptor for op. The validator backs
// Validate and ValidateJSON; a nil validator leaves Schema usable but makes
// every validation call fail with a configuration error.
func NewOperationDescriptor(op Operation, sv SchemaValidator) *OperationDescriptor {
	return &OperationDescriptor{op: op, sv: sv}
}

// ID identifies the described operation.
func (d *OperationDescriptor) ID() string {
	return d.op.ID
}

// Operation returns the described operation.
func (d *OperationDescriptor) Operation() Operation {
	return d.op
}

// Schema returns the composed JSON schema for the operation.
//
// The schema is composed on first access and cached for subsequent calls.
// Callers must not mutate the returned map.
func (d *OperationDescriptor) Schema() map[string]any {
	d.composeOnce.Do(func() {
		result := composer.Compose(d.op.metas())
		schema := map[string]any{
			"type":       "object",
			"properties": result.Properties,
		}
		if d.op.Description != "" {
			schema["description"] = d.op.Description
		}
		if len(result.Required) > 0 {
			schema["required"] = result.Required
		}
		d.schema = schema
		d.keyLoc = result.KeyLocations
	})
	return d.schema
}

// Validate checks obj against the operation's composed schema and, on
// success, builds the encoded request model from it.
//
// Validation failures surface as a [binderrors.ValidationError] carrying the
// validator's structured violation unchanged.
func (d *OperationDescriptor) Validate(obj map[string]any) (*RequestModel, error) {
	d.compileOnce.Do(func() {
		if d.sv == nil {
			d.compileErr = &binderrors.ConfigError{
				Option:  "SchemaValidator",
				Message: "no schema validator configured",
			}
			return
		}
		compiled, err := d.sv.Compile(d.Schema())
		if err != nil {
			d.compileErr = &binderrors.ConfigError{
				Option:  "schema",
				Message: "cannot compile composed schema for " + d.op.ID,
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
		return nil, &binderrors.ValidationError{ID: d.op.ID, Cause: err}
	}
	return d.buildRequestModel(obj)
}

// ValidateJSON decodes data as a JSON object and validates it like
// [OperationDescriptor.Validate].
func (d *OperationDescriptor) ValidateJSON(data []byte) (*RequestModel, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &binderrors.ValidationError{
			ID:      d.op.ID,
			Message: "input is not a JSON object",
			Cause:   err,
		}
	}
	return d.Validate(obj)
}

// buildRequestModel redistributes a validated flat object into per-location
// buckets and encodes the path and query.
func (d *OperationDescriptor) buildRequestModel(obj map[string]any) (*RequestModel, error) {
	buckets := make(map[composer.Location]map[string]any, len(composer.Order))
	bucket := func(loc composer.Location) map[string]any {
		if buckets[loc] == nil {
			buckets[loc] = make(map[string]any)
		}
		return buckets[loc]
	}

	for key, value := range obj {
		if loc, ok := composer.ReservedKeyOwner(key); ok {
			// Reserved keys arrive as nested objects; merge their fields
			// into the location's bucket.
			if nested, ok := value.(map[string]any); ok {
				maps.Copy(bucket(loc), nested)
			}
			continue
		}
		if loc, ok := d.keyLoc[key]; ok {
			bucket(loc)[key] = value
		}
		// Keys with no mapping cannot occur in an object that passed
		// validation; they are dropped.
	}

	path, err := encoder.FormatPath(d.op.Path, buckets[composer.LocationPath], metaEncodings(d.op.PathMeta))
	if err != nil {
		return nil, err
	}

	var encodedQuery string
	queries := buckets[composer.LocationQuery]
	if len(queries) > 0 {
		encodedQuery, err = encoder.FormatQuery(queries, metaEncodings(d.op.QueryMeta))
		if err != nil {
			return nil, err
		}
	}

	return &RequestModel{
		Path:         path,
		Method:       d.op.Method,
		Queries:      emptyAsNil(queries),
		EncodedQuery: encodedQuery,
		Headers:      emptyAsNil(buckets[composer.LocationHeader]),
		Cookies:      emptyAsNil(buckets[composer.LocationCookie]),
		Body:         emptyAsNil(buckets[composer.LocationBody]),
	}, nil
}

func metaEncodings(meta *composer.Meta) map[string]encoder.Encoding {
	if meta == nil {
		return nil
	}
	return meta.Encodings
}

func emptyAsNil(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}
