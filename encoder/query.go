package encoder

import (
	"strings"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/internal/schemautil"
)

// EncodeQueryParam encodes a single query parameter value according to the
// given style and explode flag. An empty style selects [DefaultQueryStyle].
//
// Unlike path encoding, every emitted value is percent-encoded.
// spaceDelimited and pipeDelimited accept only array values; deepObject
// accepts only object values with explode=true.
func EncodeQueryParam(name string, value any, style string, explode bool) (string, error) {
	if style == "" {
		style = DefaultQueryStyle
	}

	switch style {
	case StyleForm:
		return encodeQueryForm(name, value, explode), nil

	case StyleSpaceDelimited, StylePipeDelimited:
		arr, ok := asSlice(value)
		if !ok {
			return "", &binderrors.EncodingError{
				Name:    name,
				Style:   style,
				Explode: explode,
				Message: style + " style only supports array values",
			}
		}
		if explode {
			return joinExploded(name, arr), nil
		}
		delimiter := "%20"
		if style == StylePipeDelimited {
			delimiter = "|"
		}
		items := make([]string, len(arr))
		for i, v := range arr {
			items[i] = percentEncode(toStr(v))
		}
		return name + "=" + strings.Join(items, delimiter), nil

	case StyleDeepObject:
		obj, ok := asMap(value)
		if !ok || !explode {
			return "", &binderrors.EncodingError{
				Name:    name,
				Style:   style,
				Explode: explode,
				Message: "deepObject style only supports object values with explode=true",
			}
		}
		pairs := make([]string, 0, len(obj))
		for _, k := range schemautil.SortedKeys(obj) {
			pairs = append(pairs, name+"["+percentEncode(k)+"]="+percentEncode(toStr(obj[k])))
		}
		return strings.Join(pairs, "&"), nil

	default:
		return "", &binderrors.StyleError{Style: style, Location: "query"}
	}
}

func encodeQueryForm(name string, value any, explode bool) string {
	if arr, ok := asSlice(value); ok {
		if explode {
			return joinExploded(name, arr)
		}
		items := make([]string, len(arr))
		for i, v := range arr {
			items[i] = percentEncode(toStr(v))
		}
		return name + "=" + strings.Join(items, ",")
	}
	if obj, ok := asMap(value); ok {
		if explode {
			pairs := make([]string, 0, len(obj))
			for _, k := range schemautil.SortedKeys(obj) {
				pairs = append(pairs, k+"="+percentEncode(toStr(obj[k])))
			}
			return strings.Join(pairs, "&")
		}
		pairs := make([]string, 0, len(obj))
		for _, k := range schemautil.SortedKeys(obj) {
			pairs = append(pairs, k+","+percentEncode(toStr(obj[k])))
		}
		return name + "=" + strings.Join(pairs, ",")
	}
	return name + "=" + percentEncode(toStr(value))
}

// joinExploded renders the shared explode form name=v1&name=v2&...
func joinExploded(name string, arr []any) string {
	segments := make([]string, len(arr))
	for i, v := range arr {
		segments[i] = name + "=" + percentEncode(toStr(v))
	}
	return strings.Join(segments, "&")
}
