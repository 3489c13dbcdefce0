package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/composer"
	"github.com/erraggy/oasbind/descriptor"
	"github.com/erraggy/oasbind/encoder"
	"github.com/erraggy/oasbind/internal/schemautil"
	"github.com/erraggy/oasbind/toolschema"
	"github.com/erraggy/oasbind/validator"
)

// Registry holds the operation descriptors built from one OpenAPI document.
// Create one with [Load]; the zero value is empty. Safe for concurrent use
// once loaded.
type Registry struct {
	descriptors map[string]*descriptor.OperationDescriptor
	ids         []string
}

// Load builds a registry from an OpenAPI 3.x document. The document comes
// from exactly one of [WithFilePath], [WithReader], or [WithDocument].
//
// Operations without an operationId are skipped. Operation ids have spaces
// replaced with underscores; the normalized id keys the registry.
func Load(opts ...Option) (*Registry, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	doc, err := loadDocument(cfg)
	if err != nil {
		return nil, err
	}
	if err := checkDocument(doc); err != nil {
		return nil, err
	}

	sv := cfg.sv
	if sv == nil {
		sv = validator.New()
	}

	loader := &docLoader{
		includeHeaders: cfg.includeHeaders,
		includeCookies: cfg.includeCookies,
	}
	descriptors, err := loader.load(doc, sv)
	if err != nil {
		return nil, err
	}

	return &Registry{
		descriptors: descriptors,
		ids:         schemautil.SortedKeys(descriptors),
	}, nil
}

// loadDocument resolves the configured source to a decoded document.
func loadDocument(cfg *config) (map[string]any, error) {
	sources := 0
	if cfg.filePath != "" {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.document != nil {
		sources++
	}
	if sources != 1 {
		return nil, &binderrors.ConfigError{
			Option:  "document source",
			Message: "exactly one of WithFilePath, WithReader, or WithDocument must be set",
		}
	}

	if cfg.document != nil {
		return cfg.document, nil
	}

	var content []byte
	var err error
	switch {
	case cfg.filePath != "":
		content, err = os.ReadFile(cfg.filePath)
		if err != nil {
			return nil, &binderrors.ConfigError{
				Option:  "WithFilePath",
				Value:   cfg.filePath,
				Message: "cannot read document",
				Cause:   err,
			}
		}
	default:
		content, err = io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &binderrors.ConfigError{
				Option:  "WithReader",
				Message: "cannot read document",
				Cause:   err,
			}
		}
	}
	return decodeDocument(content)
}

// decodeDocument decodes JSON or YAML content, sniffing the format from the
// first non-space byte.
func decodeDocument(content []byte) (map[string]any, error) {
	var doc map[string]any
	if strings.HasPrefix(strings.TrimSpace(string(content)), "{") {
		if err := json.Unmarshal(content, &doc); err != nil {
			return nil, &binderrors.ConfigError{
				Option:  "document",
				Message: "invalid JSON document",
				Cause:   err,
			}
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &binderrors.ConfigError{
			Option:  "document",
			Message: "invalid YAML document",
			Cause:   err,
		}
	}
	return doc, nil
}

// checkDocument verifies the document is a supported, ref-resolved OpenAPI
// 3.x document.
func checkDocument(doc map[string]any) error {
	version, ok := doc["openapi"].(string)
	if !ok {
		return &binderrors.ConfigError{
			Option:  "document",
			Message: "not an OpenAPI document: missing openapi version",
		}
	}
	if !strings.HasPrefix(version, "3.") {
		return &binderrors.ConfigError{
			Option:  "document",
			Value:   version,
			Message: "only OpenAPI 3.x is supported",
		}
	}
	if _, ok := doc["paths"].(map[string]any); !ok {
		return &binderrors.ConfigError{
			Option:  "document",
			Message: "not an OpenAPI document: missing paths",
		}
	}
	if loc := findRef(doc, "#"); loc != "" {
		return &binderrors.ConfigError{
			Option:  "document",
			Value:   loc,
			Message: "document contains unresolved $ref; resolve references before loading",
		}
	}
	return nil
}

// findRef returns the location of the first $ref key found in the document,
// or "" when there is none. Locations are JSON-pointer-ish, for error
// messages only.
func findRef(v any, at string) string {
	switch val := v.(type) {
	case map[string]any:
		if _, ok := val["$ref"]; ok {
			return at + "/$ref"
		}
		for _, k := range schemautil.SortedKeys(val) {
			if loc := findRef(val[k], at+"/"+k); loc != "" {
				return loc
			}
		}
	case []any:
		for i, item := range val {
			if loc := findRef(item, fmt.Sprintf("%s/%d", at, i)); loc != "" {
				return loc
			}
		}
	}
	return ""
}

// docLoader walks a checked document and builds descriptors.
type docLoader struct {
	includeHeaders bool
	includeCookies bool
}

func (l *docLoader) load(doc map[string]any, sv descriptor.SchemaValidator) (map[string]*descriptor.OperationDescriptor, error) {
	descriptors := make(map[string]*descriptor.OperationDescriptor)

	paths := doc["paths"].(map[string]any)
	for _, path := range schemautil.SortedKeys(paths) {
		pathItem, ok := paths[path].(map[string]any)
		if !ok {
			continue
		}
		for _, method := range descriptor.Methods {
			opDoc, ok := pathItem[string(method)].(map[string]any)
			if !ok {
				continue
			}
			op, ok, err := l.buildOperation(path, method, opDoc)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if _, exists := descriptors[op.ID]; exists {
				return nil, &binderrors.ConfigError{
					Option:  "operationId",
					Value:   op.ID,
					Message: "duplicate operation id",
				}
			}
			descriptors[op.ID] = descriptor.NewOperationDescriptor(op, sv)
		}
	}
	return descriptors, nil
}

// buildOperation builds an Operation from one path+method entry. Operations
// without an operationId report ok=false and are skipped.
func (l *docLoader) buildOperation(path string, method descriptor.Method, opDoc map[string]any) (descriptor.Operation, bool, error) {
	id, _ := opDoc["operationId"].(string)
	if id == "" {
		return descriptor.Operation{}, false, nil
	}
	id = strings.ReplaceAll(id, " ", "_")

	metas, err := l.processParameters(path, opDoc)
	if err != nil {
		return descriptor.Operation{}, false, err
	}
	bodyMeta, bodyRequired := processRequestBody(opDoc)

	description, _ := opDoc["summary"].(string)
	if description == "" {
		description, _ = opDoc["description"].(string)
	}

	return descriptor.Operation{
		ID:           id,
		Path:         path,
		Method:       method,
		Description:  description,
		PathMeta:     metas[composer.LocationPath],
		QueryMeta:    metas[composer.LocationQuery],
		HeaderMeta:   metas[composer.LocationHeader],
		CookieMeta:   metas[composer.LocationCookie],
		BodyMeta:     bodyMeta,
		BodyRequired: bodyRequired,
	}, true, nil
}

// paramBucket accumulates one location's parameters while walking an
// operation's parameter list.
type paramBucket struct {
	props     map[string]any
	encodings map[string]encoder.Encoding
	required  []string
}

func (l *docLoader) processParameters(path string, opDoc map[string]any) (map[composer.Location]*composer.Meta, error) {
	buckets := map[composer.Location]*paramBucket{
		composer.LocationPath:   {props: map[string]any{}, encodings: map[string]encoder.Encoding{}},
		composer.LocationQuery:  {props: map[string]any{}, encodings: map[string]encoder.Encoding{}},
		composer.LocationHeader: {props: map[string]any{}},
		composer.LocationCookie: {props: map[string]any{}},
	}

	params, _ := opDoc["parameters"].([]any)
	for i, raw := range params {
		param, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, _ := param["name"].(string)
		in, _ := param["in"].(string)
		loc := composer.Location(in)
		bucket, known := buckets[loc]
		if name == "" || !known {
			return nil, &binderrors.ConfigError{
				Option:  "parameter",
				Value:   fmt.Sprintf("%s parameters[%d]", path, i),
				Message: "parameter needs a name and a location of path, query, header, or cookie",
			}
		}
		if (loc == composer.LocationHeader && !l.includeHeaders) ||
			(loc == composer.LocationCookie && !l.includeCookies) {
			continue
		}
		processParameter(name, loc, param, bucket)
	}

	return map[composer.Location]*composer.Meta{
		composer.LocationPath:   buckets[composer.LocationPath].meta(),
		composer.LocationQuery:  buckets[composer.LocationQuery].meta(),
		composer.LocationHeader: buckets[composer.LocationHeader].meta(),
		composer.LocationCookie: buckets[composer.LocationCookie].meta(),
	}, nil
}

// processParameter records one parameter's schema, required flag, and (for
// path and query locations) its encoding.
func processParameter(name string, loc composer.Location, param map[string]any, bucket *paramBucket) {
	var schema map[string]any
	if s, ok := param["schema"].(map[string]any); ok {
		// Copied so that merging the description leaves the document intact.
		schema, _ = schemautil.DeepCopy(s).(map[string]any)
	}
	if schema == nil {
		schema = map[string]any{}
	}
	if desc, ok := param["description"].(string); ok && desc != "" {
		if _, exists := schema["description"]; !exists {
			schema["description"] = desc
		}
	}
	bucket.props[name] = schema

	if bucket.encodings != nil {
		style, _ := param["style"].(string)
		if style == "" {
			style = encoder.DefaultQueryStyle
			if loc == composer.LocationPath {
				style = encoder.DefaultPathStyle
			}
		}
		explode, _ := param["explode"].(bool)
		bucket.encodings[name] = encoder.Encoding{Style: style, Explode: explode}
	}

	if required, _ := param["required"].(bool); required {
		bucket.required = append(bucket.required, name)
	}
}

// meta converts the bucket to a composer meta, or nil when the bucket
// collected no parameters.
func (b *paramBucket) meta() *composer.Meta {
	if len(b.props) == 0 {
		return nil
	}
	schema := map[string]any{
		"type":       "object",
		"properties": b.props,
	}
	if len(b.required) > 0 {
		schema["required"] = b.required
	}
	return &composer.Meta{Schema: schema, Encodings: b.encodings}
}

// processRequestBody extracts the body schema from an operation's
// requestBody. The first media type's schema wins, preferring
// application/json when present; a body without a schema falls back to an
// open object.
func processRequestBody(opDoc map[string]any) (*composer.Meta, bool) {
	body, ok := opDoc["requestBody"].(map[string]any)
	if !ok || len(body) == 0 {
		return nil, false
	}

	var media map[string]any
	if content, ok := body["content"].(map[string]any); ok && len(content) > 0 {
		key := "application/json"
		if _, ok := content[key]; !ok {
			key = schemautil.SortedKeys(content)[0]
		}
		media, _ = content[key].(map[string]any)
	}

	var schema map[string]any
	if s, ok := media["schema"].(map[string]any); ok {
		schema, _ = schemautil.DeepCopy(s).(map[string]any)
	}
	if schema == nil {
		schema = map[string]any{"type": "object", "additionalProperties": true}
	}
	if desc, ok := body["description"].(string); ok && desc != "" {
		if _, exists := schema["description"]; !exists {
			schema["description"] = desc
		}
	}

	required, _ := body["required"].(bool)
	return &composer.Meta{Schema: schema}, required
}

// Get returns the descriptor registered under id.
func (r *Registry) Get(id string) (*descriptor.OperationDescriptor, bool) {
	d, ok := r.descriptors[id]
	return d, ok
}

// Has reports whether a descriptor is registered under id.
func (r *Registry) Has(id string) bool {
	_, ok := r.descriptors[id]
	return ok
}

// IDs returns the registered ids in lexicographic order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Validate validates obj against the identified operation's schema and
// builds its request model.
func (r *Registry) Validate(id string, obj map[string]any) (*descriptor.RequestModel, error) {
	d, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return d.Validate(obj)
}

// ValidateJSON validates JSON data against the identified operation's schema
// and builds its request model.
func (r *Registry) ValidateJSON(id string, data []byte) (*descriptor.RequestModel, error) {
	d, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return d.ValidateJSON(data)
}

func (r *Registry) lookup(id string) (*descriptor.OperationDescriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return nil, &binderrors.ConfigError{
			Option:  "id",
			Value:   id,
			Message: "no descriptor registered",
		}
	}
	return d, nil
}

// Schemas returns every descriptor's composed schema, ordered by id.
func (r *Registry) Schemas() []map[string]any {
	schemas := make([]map[string]any, 0, len(r.ids))
	for _, id := range r.ids {
		schemas = append(schemas, r.descriptors[id].Schema())
	}
	return schemas
}

// OpenAI returns every descriptor's tool declaration in the OpenAI
// function-calling shape, ordered by id.
func (r *Registry) OpenAI(opts ...toolschema.Option) []map[string]any {
	decls := make([]map[string]any, 0, len(r.ids))
	for _, id := range r.ids {
		decls = append(decls, toolschema.OpenAI(r.descriptors[id], opts...))
	}
	return decls
}

// Anthropic returns every descriptor's tool declaration in the Anthropic
// tool-use shape, ordered by id.
func (r *Registry) Anthropic(opts ...toolschema.Option) []map[string]any {
	decls := make([]map[string]any, 0, len(r.ids))
	for _, id := range r.ids {
		decls = append(decls, toolschema.Anthropic(r.descriptors[id], opts...))
	}
	return decls
}

// Gemini returns every descriptor's tool declaration in the Gemini
// function-declaration shape, ordered by id.
func (r *Registry) Gemini(opts ...toolschema.Option) []map[string]any {
	decls := make([]map[string]any, 0, len(r.ids))
	for _, id := range r.ids {
		decls = append(decls, toolschema.Gemini(r.descriptors[id], opts...))
	}
	return decls
}

// MCPTools returns every descriptor as a Model Context Protocol tool,
// ordered by id.
func (r *Registry) MCPTools(opts ...toolschema.Option) ([]*mcp.Tool, error) {
	tools := make([]*mcp.Tool, 0, len(r.ids))
	for _, id := range r.ids {
		tool, err := toolschema.MCPTool(r.descriptors[id], opts...)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
