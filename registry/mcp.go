package registry

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasbind"
	"github.com/erraggy/oasbind/descriptor"
	"github.com/erraggy/oasbind/toolschema"
)

// ServeMCP serves the registry's operations as Model Context Protocol tools
// over stdio. Each tool validates its arguments against the operation's
// composed schema and returns the encoded request model as JSON; the caller
// performs the actual HTTP exchange. Blocks until the client disconnects or
// ctx is cancelled.
func (r *Registry) ServeMCP(ctx context.Context, opts ...toolschema.Option) error {
	server, err := r.MCPServer(opts...)
	if err != nil {
		return err
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer builds the MCP server serving the registry's operations, for
// callers that want a transport other than stdio.
func (r *Registry) MCPServer(opts ...toolschema.Option) (*mcp.Server, error) {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasbind", Version: oasbind.Version()},
		nil,
	)
	for _, id := range r.ids {
		d := r.descriptors[id]
		tool, err := toolschema.MCPTool(d, opts...)
		if err != nil {
			return nil, err
		}
		server.AddTool(tool, operationHandler(d))
	}
	return server, nil
}

// operationHandler adapts one operation descriptor to an MCP tool handler.
func operationHandler(d *descriptor.OperationDescriptor) mcp.ToolHandler {
	return func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if len(args) == 0 {
			args = []byte("{}")
		}
		model, err := d.ValidateJSON(args)
		if err != nil {
			return errResult(err), nil
		}
		data, err := json.Marshal(model)
		if err != nil {
			return errResult(err), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	}
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
