package encoder

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// toStr renders a single value for embedding in an encoded parameter.
// Composite values (arrays, objects) are rendered as compact JSON text.
// Booleans and null render as the literals "True"/"False"/"None" - the
// observable stringification contract inherited by existing callers.
func toStr(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	}
	if arr, ok := asSlice(v); ok {
		data, err := json.Marshal(arr)
		if err == nil {
			return string(data)
		}
	}
	if obj, ok := asMap(v); ok {
		data, err := json.Marshal(obj)
		if err == nil {
			return string(data)
		}
	}
	return fmt.Sprintf("%v", v)
}

// asSlice reports whether v is array-shaped and normalizes it to []any.
// Decoded JSON/YAML produces []any directly; the reflect fallback admits
// typed Go slices like []int or []string. Byte slices stay primitive.
func asSlice(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []byte:
		return nil, false
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asMap reports whether v is object-shaped and normalizes it to
// map[string]any. The reflect fallback admits typed Go maps with string keys.
func asMap(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	for _, key := range rv.MapKeys() {
		out[key.String()] = rv.MapIndex(key).Interface()
	}
	return out, true
}

// percentEncode escapes every byte outside the RFC 3986 unreserved set,
// keeping '/' raw, with uppercase hex digits and UTF-8 byte expansion.
// Neither url.QueryEscape (space becomes '+') nor url.PathEscape (sub-delims
// like ',' and ';' stay raw) produces this exact output.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
