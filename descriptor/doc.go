// Package descriptor builds validating descriptors for OpenAPI operations
// and Go types.
//
// An [OperationDescriptor] wraps one [Operation]: it composes the operation's
// per-location parameter schemas into a single object schema (lazily, cached
// for the descriptor's lifetime), validates caller-supplied objects against
// it through a pluggable [SchemaValidator], and redistributes a validated
// flat object back into an encoded [RequestModel] - substituted path, encoded
// query string, and raw header/cookie/body maps.
//
//	d := descriptor.NewOperationDescriptor(op, validator.New())
//	req, err := d.Validate(map[string]any{
//		"userId":      123,
//		"filter":      "active",
//		"requestBody": map[string]any{"name": "John", "age": 30},
//	})
//	if err != nil {
//		var vErr *binderrors.ValidationError
//		if errors.As(err, &vErr) {
//			// vErr.Cause carries the validator's structured violations
//		}
//		return err
//	}
//	fmt.Println(req.PathWithQuery()) // /users/123?filter=active
//
// A [TypeDescriptor] plays the same role for a plain Go type: its schema is
// derived by the reflector package and validated objects are returned as-is.
//
// Descriptors are safe for concurrent use. Composition and validator
// compilation happen once per descriptor; every Validate call builds a fresh
// RequestModel and shares no mutable state with other calls.
package descriptor
