// Package validator implements the descriptor.SchemaValidator capability
// with JSON Schema draft 2020-12 semantics.
//
// The implementation is backed by github.com/santhosh-tekuri/jsonschema.
// Compiled schemas are reusable and safe for concurrent validation, so a
// descriptor compiles its composed schema once and validates every input
// against the same compiled form.
//
//	sv := validator.New()
//	d := descriptor.NewOperationDescriptor(op, sv)
//
// Candidate objects are normalized through a JSON round-trip before
// validation, so Go-native values (int vs float64, typed slices) validate by
// their JSON wire shape rather than their in-memory type.
//
// Validation failures return the library's *jsonschema.ValidationError
// untouched; descriptors wrap it in a binderrors.ValidationError without
// discarding the structured violation detail.
package validator
