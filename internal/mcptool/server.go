// Package mcptool is the tool-calling RPC adapter: it registers one MCP
// tool per store operation plus read-only config/health resources.
package mcptool

import (
	"encoding/json"
	"fmt"

	"demo-api/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "Demo Users MCP Server"
const serverVersion = "1.0.0"

// NewServer builds the MCP server over the given store.
func NewServer(svc store.API) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithInstructions(
			"This MCP server provides access to Users, Posts, and Tags data "+
				"through tools and resources. Use tools for data modifications "+
				"and resources for read-only access.",
		),
	)
	registerTools(s, svc)
	registerResources(s, svc)
	return s
}

// argID reads an integer identifier argument.
func argID(args map[string]any, key string) (uint, error) {
	v, ok := args[key].(float64)
	if !ok || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return uint(v), nil
}

func argBool(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// decodeArg re-encodes a nested argument object into the target payload
// shape. The JSON round trip keeps absent and null fields apart, which
// the partial-update payloads rely on.
func decodeArg[T any](args map[string]any, key string) (*T, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%s is required", key)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &out, nil
}

// jsonResult marshals a value into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
