package encoder

import (
	"regexp"
	"strings"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/internal/schemautil"
)

// placeholderPattern matches named {placeholder} segments in a path template.
var placeholderPattern = regexp.MustCompile(`\{([^/{}]+)\}`)

// FormatPath substitutes the named placeholders of a path template with
// encoded parameter values. Each parameter's style and explode flag are
// resolved from encodings, defaulting to simple/false.
//
// Every placeholder the template references must have a value in params; a
// miss is a [binderrors.PathParamError]. Params with no matching placeholder
// are ignored.
func FormatPath(template string, params map[string]any, encodings map[string]Encoding) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))
	prev := 0
	for _, m := range matches {
		name := template[m[2]:m[3]]
		value, ok := params[name]
		if !ok {
			return "", &binderrors.PathParamError{Template: template, Name: name}
		}
		encoded, err := EncodePathParam(name, value, encodings[name].Style, encodings[name].Explode)
		if err != nil {
			return "", err
		}
		b.WriteString(template[prev:m[0]])
		b.WriteString(encoded)
		prev = m[1]
	}
	b.WriteString(template[prev:])
	return b.String(), nil
}

// FormatQuery encodes every parameter and joins the non-empty fragments with
// '&'. Parameters without an encodings entry default to form/true; parameters
// are emitted in lexicographic name order for deterministic output. An empty
// parameter set yields an empty string.
func FormatQuery(params map[string]any, encodings map[string]Encoding) (string, error) {
	fragments := make([]string, 0, len(params))
	for _, name := range schemautil.SortedKeys(params) {
		style, explode := DefaultQueryStyle, true
		if enc, ok := encodings[name]; ok {
			style, explode = enc.Style, enc.Explode
		}
		fragment, err := EncodeQueryParam(name, params[name], style, explode)
		if err != nil {
			return "", err
		}
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, "&"), nil
}
