package composer

import (
	"github.com/erraggy/oasbind/encoder"
	"github.com/erraggy/oasbind/internal/schemautil"
)

// Location identifies one of the five OpenAPI parameter origins.
type Location string

// The five parameter locations, in composition order.
const (
	LocationPath   Location = "path"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
	LocationBody   Location = "body"
)

// Order is the fixed composition order. Later locations yield to earlier
// ones when flattened names collide.
var Order = []Location{LocationPath, LocationQuery, LocationHeader, LocationCookie, LocationBody}

// reservedKeys maps each location to the composed-schema property key it
// owns when nested.
var reservedKeys = map[Location]string{
	LocationPath:   "requestPath",
	LocationQuery:  "requestQuery",
	LocationHeader: "requestHeader",
	LocationCookie: "requestCookie",
	LocationBody:   "requestBody",
}

// reservedOwners is the inverse of reservedKeys.
var reservedOwners = func() map[string]Location {
	m := make(map[string]Location, len(reservedKeys))
	for loc, key := range reservedKeys {
		m[key] = loc
	}
	return m
}()

// ReservedKey returns the composed-schema property key the location owns
// when its parameters are nested instead of flattened.
func (l Location) ReservedKey() string {
	return reservedKeys[l]
}

// ReservedKeyOwner reports which location owns key as its reserved nested
// property, if any.
func ReservedKeyOwner(key string) (Location, bool) {
	loc, ok := reservedOwners[key]
	return loc, ok
}

// Meta describes the declared parameters of one location: an object-shaped
// JSON schema fragment plus, for path and query locations only, the declared
// style/explode encoding per parameter name.
type Meta struct {
	// Schema is the object schema fragment describing this location's parameters.
	Schema map[string]any
	// Encodings maps parameter names to their declared serialization style.
	// Only path and query locations carry encodings.
	Encodings map[string]encoder.Encoding
}

// Result is the outcome of composing an operation's location metas.
type Result struct {
	// Properties holds the composed schema's property fragments.
	Properties map[string]any
	// Required lists the required property keys in composition order.
	Required []string
	// KeyLocations records which location claimed each flattened key.
	// Nested reserved keys are not listed; Location.ReservedKey covers those.
	KeyLocations map[string]Location
}

// Compose merges the given location metas into one set of schema properties.
//
// Per location, in the fixed [Order]: the body is always nested under
// requestBody and marked required; any other location is flattened into
// top-level properties unless one of its parameter names is a reserved key or
// is already claimed by a different location, in which case the entire
// location nests under its reserved key and any keys it had already claimed
// are retracted. Metas without an object schema are skipped. Fragments are
// referenced, not copied.
func Compose(metas map[Location]*Meta) Result {
	b := &builder{
		properties: make(map[string]any),
		keyLoc:     make(map[string]Location),
		nested:     make(map[Location]bool),
	}

	for _, loc := range Order {
		meta := metas[loc]
		if meta == nil || len(meta.Schema) == 0 {
			continue
		}
		props := schemautil.Properties(meta.Schema)

		if loc == LocationBody {
			if props == nil {
				props = map[string]any{}
			}
			// The body is always a single nested object property.
			b.properties[loc.ReservedKey()] = map[string]any{
				"type":       "object",
				"properties": props,
			}
			b.nested[loc] = true
			b.required = append(b.required, loc.ReservedKey())
			continue
		}

		if b.flatten(props, loc) {
			b.required = append(b.required, schemautil.RequiredKeys(meta.Schema)...)
		} else {
			b.properties[loc.ReservedKey()] = meta.Schema
			b.required = append(b.required, loc.ReservedKey())
		}
	}

	// Retract partially flattened keys of every nested location.
	for _, loc := range Order {
		if loc == LocationBody || !b.nested[loc] {
			continue
		}
		for key, owner := range b.keyLoc {
			if owner == loc {
				delete(b.properties, key)
				delete(b.keyLoc, key)
			}
		}
	}

	return Result{Properties: b.properties, Required: b.required, KeyLocations: b.keyLoc}
}

// builder accumulates composition state across the two passes.
type builder struct {
	properties map[string]any
	required   []string
	keyLoc     map[string]Location
	nested     map[Location]bool
}

// flatten attempts to claim every property of props for loc at the top
// level. It reports false after marking the location nested if any key is
// reserved or already claimed by a different location; keys claimed before
// the abort stay recorded and are retracted in the second pass.
func (b *builder) flatten(props map[string]any, loc Location) bool {
	for _, key := range schemautil.SortedKeys(props) {
		if _, reserved := reservedOwners[key]; reserved {
			b.nested[loc] = true
			return false
		}
		if _, exists := b.properties[key]; exists {
			if b.keyLoc[key] != loc {
				b.nested[loc] = true
				return false
			}
			continue
		}
		b.properties[key] = props[key]
		b.keyLoc[key] = loc
	}
	return true
}
