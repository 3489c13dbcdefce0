// Package oasbind turns OpenAPI operations into single JSON Schemas and
// validated objects back into fully encoded HTTP requests.
//
// oasbind is built around two engines: the schema composer, which merges the
// five OpenAPI parameter locations (path, query, header, cookie, body) of an
// operation into one object schema while resolving name collisions, and the
// parameter encoders, which serialize values according to the OpenAPI 3
// style/explode rules when building the request back out of a validated
// object.
//
// # Overview
//
// The library consists of the following packages:
//
//   - descriptor: Operation and type descriptors - compose, validate, build requests
//   - composer: Merge per-location schema fragments into one request schema
//   - encoder: OpenAPI 3 path and query parameter style encoding
//   - validator: JSON Schema draft 2020-12 validation of candidate objects
//   - reflector: Derive schema fragments from Go types
//   - registry: Load OpenAPI 3.x documents and look up operation descriptors
//   - toolschema: Export descriptors as OpenAI/Anthropic/Gemini/MCP tool schemas
//   - binderrors: Structured error types shared by all packages
//
// # Quick Start
//
// Load an OpenAPI 3.x document and build a request from a flat object:
//
//	reg, err := registry.Load(registry.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	req, err := reg.Validate("getUser", map[string]any{
//		"userId": 123,
//		"filter": "active",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(req.Method, req.PathWithQuery())
//
// Or describe a single operation directly:
//
//	op := descriptor.Operation{
//		ID:     "getUser",
//		Path:   "/users/{userId}",
//		Method: descriptor.MethodGet,
//		PathMeta: &composer.Meta{Schema: map[string]any{
//			"type":       "object",
//			"properties": map[string]any{"userId": map[string]any{"type": "integer"}},
//			"required":   []any{"userId"},
//		}},
//	}
//	d := descriptor.NewOperationDescriptor(op, validator.New())
//	req, err := d.Validate(map[string]any{"userId": 123})
//
// # Error Handling
//
// All packages report failures through the structured error types in
// [github.com/erraggy/oasbind/binderrors], usable with errors.Is and
// errors.As.
package oasbind
