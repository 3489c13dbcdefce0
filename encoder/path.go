package encoder

import (
	"strings"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/internal/schemautil"
)

// EncodePathParam encodes a single path parameter value according to the
// given style and explode flag. An empty style selects [DefaultPathStyle].
//
// The parameter name is only rendered for the matrix style (and as object
// keys); the output is never percent-encoded.
func EncodePathParam(name string, value any, style string, explode bool) (string, error) {
	if style == "" {
		style = DefaultPathStyle
	}
	switch style {
	case StyleSimple, StyleLabel, StyleMatrix:
	default:
		return "", &binderrors.StyleError{Style: style, Location: "path"}
	}

	var body string
	switch {
	case isArrayValue(value):
		arr, _ := asSlice(value)
		body = encodePathArray(name, arr, style, explode)
	case isObjectValue(value):
		obj, _ := asMap(value)
		body = encodePathObject(name, obj, style, explode)
	default:
		body = toStr(value)
		if style == StyleMatrix {
			body = name + "=" + body
		}
	}

	switch style {
	case StyleLabel:
		return "." + body, nil
	case StyleMatrix:
		return ";" + body, nil
	default:
		return body, nil
	}
}

func encodePathArray(name string, arr []any, style string, explode bool) string {
	items := make([]string, len(arr))
	for i, v := range arr {
		items[i] = toStr(v)
	}
	switch style {
	case StyleLabel:
		if explode {
			return strings.Join(items, ".")
		}
		return strings.Join(items, ",")
	case StyleMatrix:
		if explode {
			segments := make([]string, len(items))
			for i, item := range items {
				segments[i] = name + "=" + item
			}
			return strings.Join(segments, ";")
		}
		return name + "=" + strings.Join(items, ",")
	default: // simple
		return strings.Join(items, ",")
	}
}

func encodePathObject(name string, obj map[string]any, style string, explode bool) string {
	join := func(sep, kvSep string) string {
		pairs := make([]string, 0, len(obj))
		for _, k := range schemautil.SortedKeys(obj) {
			pairs = append(pairs, k+kvSep+toStr(obj[k]))
		}
		return strings.Join(pairs, sep)
	}
	switch style {
	case StyleLabel:
		if explode {
			return join(".", "=")
		}
		return join(",", ",")
	case StyleMatrix:
		if explode {
			return join(";", "=")
		}
		return name + "=" + join(",", ",")
	default: // simple
		if explode {
			return join(",", "=")
		}
		return join(",", ",")
	}
}

func isArrayValue(v any) bool {
	_, ok := asSlice(v)
	return ok
}

func isObjectValue(v any) bool {
	_, ok := asMap(v)
	return ok
}
