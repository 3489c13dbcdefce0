package reflector

import (
	"reflect"
	"strings"
	"time"

	"github.com/erraggy/oasbind/binderrors"
)

// maxDepth bounds schema nesting. The reflector emits no $ref, so a
// recursive type would otherwise expand forever.
const maxDepth = 32

// SchemaFor derives a JSON schema fragment from the type of v.
func SchemaFor(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	return schemaForType(reflect.TypeOf(v), 0)
}

// TypeName returns the declared name of v's type, dereferencing pointers.
// Anonymous and unnamed composite types yield an empty string.
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func schemaForType(t reflect.Type, depth int) (map[string]any, error) {
	if depth > maxDepth {
		return nil, &binderrors.ConfigError{
			Option:  "type",
			Value:   t.String(),
			Message: "schema nesting exceeds maximum depth (recursive type?)",
		}
	}

	isPointer := false
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		isPointer = true
	}

	if special := specialTypeSchema(t); special != nil {
		if isPointer {
			markNullable(special)
		}
		return special, nil
	}

	var schema map[string]any
	var err error
	switch t.Kind() {
	case reflect.Struct:
		schema, err = structSchema(t, depth)

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			// []byte marshals to a base64 string.
			schema = map[string]any{"type": "string", "format": "byte"}
			break
		}
		var items map[string]any
		items, err = schemaForType(t.Elem(), depth+1)
		if err == nil {
			schema = map[string]any{"type": "array", "items": items}
		}

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, &binderrors.ConfigError{
				Option:  "type",
				Value:   t.String(),
				Message: "map keys must be strings to derive an object schema",
			}
		}
		schema = map[string]any{"type": "object"}
		if t.Elem().Kind() != reflect.Interface {
			var additional map[string]any
			additional, err = schemaForType(t.Elem(), depth+1)
			if err == nil {
				schema["additionalProperties"] = additional
			}
		}

	case reflect.Interface:
		schema = map[string]any{}

	case reflect.Bool:
		schema = map[string]any{"type": "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema = map[string]any{"type": "integer"}

	case reflect.Float32, reflect.Float64:
		schema = map[string]any{"type": "number"}

	case reflect.String:
		schema = map[string]any{"type": "string"}

	default:
		return nil, &binderrors.ConfigError{
			Option:  "type",
			Value:   t.String(),
			Message: "kind " + t.Kind().String() + " has no JSON schema form",
		}
	}
	if err != nil {
		return nil, err
	}

	if isPointer {
		markNullable(schema)
	}
	return schema, nil
}

// specialTypeSchema handles types with a fixed JSON wire form.
func specialTypeSchema(t reflect.Type) map[string]any {
	if t == reflect.TypeOf(time.Time{}) {
		return map[string]any{"type": "string", "format": "date-time"}
	}
	// Matched by name to avoid importing the uuid package.
	if t.String() == "uuid.UUID" {
		return map[string]any{"type": "string", "format": "uuid"}
	}
	return nil
}

func structSchema(t reflect.Type, depth int) (map[string]any, error) {
	properties := make(map[string]any)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, opts := parseJSONTag(field.Tag.Get("json"))
		if name == "-" {
			continue
		}

		// Untagged embedded structs flatten into the parent object,
		// matching encoding/json: exported fields promote even when the
		// embedded struct type itself is unexported.
		if field.Anonymous && name == "" {
			embedded := field.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && specialTypeSchema(embedded) == nil {
				nested, err := structSchema(embedded, depth+1)
				if err != nil {
					return nil, err
				}
				for k, v := range nested["properties"].(map[string]any) {
					if _, exists := properties[k]; !exists {
						properties[k] = v
					}
				}
				required = append(required, requiredOf(nested)...)
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		fieldSchema, err := schemaForType(field.Type, depth+1)
		if err != nil {
			return nil, err
		}

		oas := parseOASTag(field.Tag.Get("oas"))
		if desc, ok := oas["description"]; ok {
			fieldSchema["description"] = desc
		}
		properties[name] = fieldSchema

		if isFieldRequired(field, opts, oas) {
			required = append(required, name)
		}
	}

	schema := map[string]any{"type": "object", "properties": properties}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema, nil
}

// isFieldRequired determines if a struct field should be marked as required.
// Rules:
//  1. Non-pointer fields without omitempty are required
//  2. Fields with oas:"required=true" are explicitly required
//  3. Fields with oas:"required=false" are explicitly optional
//  4. Pointer fields are optional by default
func isFieldRequired(field reflect.StructField, jsonOpts []string, oas map[string]string) bool {
	if val, ok := oas["required"]; ok {
		return val == "true"
	}
	if field.Type.Kind() == reflect.Pointer {
		return false
	}
	for _, opt := range jsonOpts {
		if opt == "omitempty" {
			return false
		}
	}
	return true
}

// parseJSONTag parses a struct field's json tag.
// Returns the field name and options (like "omitempty").
func parseJSONTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if len(parts) > 1 {
		opts = parts[1:]
	}
	return name, opts
}

// parseOASTag parses the oas tag's comma-separated key=value pairs.
// Supports formats like: oas:"description=User ID,required=true"
func parseOASTag(tag string) map[string]string {
	if tag == "" {
		return nil
	}
	result := make(map[string]string)
	for _, part := range strings.Split(tag, ",") {
		key, value, found := strings.Cut(part, "=")
		if found {
			result[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return result
}

func requiredOf(schema map[string]any) []string {
	req, _ := schema["required"].([]string)
	return req
}

// markNullable widens a schema's type to admit null, the draft 2020-12
// expression of pointer types.
func markNullable(schema map[string]any) {
	if t, ok := schema["type"].(string); ok {
		schema["type"] = []any{t, "null"}
	}
}
