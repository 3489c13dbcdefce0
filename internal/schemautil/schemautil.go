// Package schemautil provides utilities for working with JSON-schema-shaped
// map fragments.
//
// This package centralizes the type assertion patterns for reading schema
// fragments decoded from JSON or YAML documents, where every object is a
// map[string]any and every array is a []any.
package schemautil

import "sort"

// Properties returns the "properties" member of an object schema fragment.
// Returns nil if the fragment is nil or has no object-shaped properties.
func Properties(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		return props
	}
	return nil
}

// RequiredKeys returns the "required" member of an object schema fragment,
// handling both []any (decoded documents) and []string (hand-built fragments)
// representations.
func RequiredKeys(schema map[string]any) []string {
	if schema == nil {
		return nil
	}
	switch req := schema["required"].(type) {
	case []string:
		return req
	case []any:
		result := make([]string, 0, len(req))
		for _, v := range req {
			if s, ok := v.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// SortedKeys returns the keys of m in lexicographic order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DeepCopy returns a recursive copy of a JSON-shaped value. Maps and slices
// are copied; scalars are returned as-is.
func DeepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = DeepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = DeepCopy(item)
		}
		return out
	}
	return v
}

// DropTitles returns a deep copy of a schema fragment with every "title"
// member removed, at any nesting depth. Function-calling providers reject or
// ignore titles, so exported schemas strip them.
func DropTitles(schema map[string]any) map[string]any {
	out, _ := dropTitles(schema).(map[string]any)
	return out
}

func dropTitles(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if k == "title" {
				continue
			}
			out[k] = dropTitles(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = dropTitles(item)
		}
		return out
	}
	return v
}
