// Package reflector derives JSON schema fragments from Go types.
//
// It is the type-introspection collaborator consumed by descriptor type
// registration: given a Go value, [SchemaFor] produces an object-shaped
// schema map describing its JSON form.
//
//	type User struct {
//		Name string `json:"name" oas:"description=Display name"`
//		Age  int    `json:"age,omitempty"`
//	}
//
//	schema, err := reflector.SchemaFor(User{})
//	// {"type":"object","properties":{"name":{...},"age":{...}},"required":["name"]}
//
// Struct fields follow encoding/json conventions: the json tag controls the
// property name, "-" skips the field, omitempty and pointer types make it
// optional. The oas tag supplies schema metadata (description, required).
// time.Time and uuid.UUID map to string schemas with the matching formats.
// Pointer types become nullable via a type array.
//
// The reflector does not emit $ref and therefore rejects recursive types
// once nesting exceeds a fixed depth.
package reflector
