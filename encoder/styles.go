package encoder

// Path parameter serialization styles defined by OpenAPI 3.
const (
	StyleSimple = "simple"
	StyleLabel  = "label"
	StyleMatrix = "matrix"
)

// Query parameter serialization styles defined by OpenAPI 3.
const (
	StyleForm           = "form"
	StyleSpaceDelimited = "spaceDelimited"
	StylePipeDelimited  = "pipeDelimited"
	StyleDeepObject     = "deepObject"
)

// Defaults applied when a parameter declares no encoding.
// OpenAPI 3 defaults path parameters to simple/false and query parameters
// to form/true.
const (
	DefaultPathStyle  = StyleSimple
	DefaultQueryStyle = StyleForm
)

// Encoding pairs a serialization style with its explode flag for one
// parameter. The zero value means "use the location defaults".
type Encoding struct {
	// Style is the serialization style name. Empty selects the location default.
	Style string
	// Explode controls whether composite values are serialized as repeated
	// parameters/segments or as a single delimited value.
	Explode bool
}
