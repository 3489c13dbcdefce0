package descriptor

// RequestModel is the encoded request produced by a descriptor from a
// validated object. It is a value object: built fresh per validation and
// never mutated afterwards. Consumption by an HTTP transport is up to the
// caller; this library performs no I/O.
type RequestModel struct {
	// Path is the path template with every placeholder substituted and
	// style-encoded. Never percent-encoded.
	Path string `json:"path"`
	// Method is the request method.
	Method Method `json:"method"`
	// Queries holds the raw query parameter values, nil when none.
	Queries map[string]any `json:"queries,omitempty"`
	// EncodedQuery is the style-encoded, percent-escaped query string,
	// empty when there are no query parameters.
	EncodedQuery string `json:"encoded_query,omitempty"`
	// Headers holds the raw header values, nil when none.
	Headers map[string]any `json:"headers,omitempty"`
	// Cookies holds the raw cookie values, nil when none.
	Cookies map[string]any `json:"cookies,omitempty"`
	// Body holds the raw request body mapping, nil when none.
	Body map[string]any `json:"body,omitempty"`
}

// PathWithQuery returns the canonical request-line string: the path alone
// when there is no encoded query, otherwise path?query.
func (m *RequestModel) PathWithQuery() string {
	if m.EncodedQuery == "" {
		return m.Path
	}
	return m.Path + "?" + m.EncodedQuery
}
