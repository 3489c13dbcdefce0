// Package composer merges the per-location parameter schemas of an OpenAPI
// operation into one object schema suitable for validating a single flat
// request object.
//
// An operation describes up to five parameter locations: path, query, header,
// cookie, and body. Each location owns a reserved key in the composed schema
// (requestPath, requestQuery, requestHeader, requestCookie, requestBody).
// Composition prefers flattening a location's parameters into top-level
// properties so callers can supply a flat object:
//
//	{"userId": 123, "filter": "active"}
//
// rather than:
//
//	{"requestPath": {"userId": 123}, "requestQuery": {"filter": "active"}}
//
// Flattening falls back to nesting the whole location under its reserved key
// when any of its parameter names collides with a reserved key or with a name
// already claimed by an earlier location. Locations are processed in the
// fixed order path, query, header, cookie, body; later locations yield to
// earlier ones. The body is never flattened: when declared it always appears
// as a nested required requestBody property.
//
// Besides the schema pieces, [Compose] reports which location claimed each
// flattened key. That map is what lets a request builder redistribute a
// validated flat object back into its HTTP components.
//
// Composition is pure and deterministic: the same metas always produce the
// same result, and the produced property keys partition exactly across
// locations with no duplicate ownership.
package composer
