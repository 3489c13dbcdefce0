// Package toolschema exports descriptor schemas in the tool-declaration
// shapes expected by LLM providers.
//
// Every descriptor carries a JSON schema describing the objects it accepts,
// but each provider wraps that schema differently: OpenAI nests it under a
// "function" envelope, Anthropic calls it "input_schema", Gemini calls it
// "parameters", and MCP servers want an [mcp.Tool]. The functions in this
// package take any [descriptor.Descriptor] and produce those shapes without
// mutating the descriptor's cached schema.
//
//	d := descriptor.NewOperationDescriptor(op, validator.New())
//	decl := toolschema.OpenAI(d)
//	tool, err := toolschema.MCPTool(d)
//
// Provider tool names are often restricted to [A-Za-z0-9_-]; descriptor IDs
// taken from OpenAPI operationIds may contain characters outside that set.
// Exports sanitize names and, via [WithNameStyle], can recase them:
//
//	toolschema.OpenAI(d, toolschema.WithNameStyle(toolschema.NameSnake))
package toolschema
