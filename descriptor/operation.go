package descriptor

import "github.com/erraggy/oasbind/composer"

// Method is a lower-cased HTTP request method supported by OpenAPI 3
// operations.
type Method string

// Supported request methods.
const (
	MethodGet     Method = "get"
	MethodPost    Method = "post"
	MethodPut     Method = "put"
	MethodDelete  Method = "delete"
	MethodPatch   Method = "patch"
	MethodHead    Method = "head"
	MethodOptions Method = "options"
)

// Methods lists every supported request method.
var Methods = []Method{
	MethodGet, MethodPost, MethodPut, MethodDelete,
	MethodPatch, MethodHead, MethodOptions,
}

// Valid reports whether m is one of the supported request methods.
func (m Method) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// Operation describes one OpenAPI operation: its path template, method, and
// the declared parameters of each location. Operations are plain values;
// construct one and hand it to [NewOperationDescriptor]. The descriptor
// treats it as read-only from then on.
type Operation struct {
	// ID is the operation identifier (the OpenAPI operationId).
	ID string
	// Path is the path template, containing {name} placeholders.
	Path string
	// Method is the lower-cased HTTP method.
	Method Method
	// Description documents the operation (OpenAPI summary or description).
	Description string

	// PathMeta declares the path parameters, with encodings.
	PathMeta *composer.Meta
	// QueryMeta declares the query parameters, with encodings.
	QueryMeta *composer.Meta
	// HeaderMeta declares the header parameters.
	HeaderMeta *composer.Meta
	// CookieMeta declares the cookie parameters.
	CookieMeta *composer.Meta
	// BodyMeta declares the request body schema.
	BodyMeta *composer.Meta
	// BodyRequired records whether the document marked the request body
	// required.
	BodyRequired bool
}

// metas assembles the per-location meta map in composition shape.
func (op *Operation) metas() map[composer.Location]*composer.Meta {
	return map[composer.Location]*composer.Meta{
		composer.LocationPath:   op.PathMeta,
		composer.LocationQuery:  op.QueryMeta,
		composer.LocationHeader: op.HeaderMeta,
		composer.LocationCookie: op.CookieMeta,
		composer.LocationBody:   op.BodyMeta,
	}
}
