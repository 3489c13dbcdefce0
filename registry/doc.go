// Package registry builds descriptor collections from OpenAPI 3.x documents
// and from Go types.
//
// [Load] walks a document's paths and turns every operation that carries an
// operationId into an [descriptor.OperationDescriptor], capturing each
// parameter's location, schema, style, and explode flag along the way:
//
//	reg, err := registry.Load(registry.WithFilePath("petstore.yaml"))
//	if err != nil {
//		return err
//	}
//	req, err := reg.Validate("getUser", map[string]any{"userId": 123})
//
// Documents may be supplied as a file path, an io.Reader, or an
// already-decoded map, in JSON or YAML. Reference resolution is out of scope:
// documents must arrive with $ref already expanded, and Load rejects any that
// have not been.
//
// Header and cookie parameters are skipped by default since LLM-facing tools
// rarely want models choosing them; opt in with [WithIncludeHeaders] and
// [WithIncludeCookies].
//
// [TypeRegistry] is the equivalent collection for Go types, backed by
// [descriptor.TypeDescriptor]. Both registries export their descriptors in
// provider tool-declaration shapes through the toolschema package, and
// [Registry.ServeMCP] serves a registry's operations over the Model Context
// Protocol.
package registry
