package mcptool

import (
	"context"
	"encoding/json"

	"demo-api/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(s *server.MCPServer, svc store.API) {
	s.AddResource(
		mcp.NewResource(
			"data://config",
			"Server Configuration",
			mcp.WithResourceDescription("Server configuration and available capabilities."),
			mcp.WithMIMEType("application/json"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			cfg := map[string]any{
				"server_name": serverName,
				"version":     serverVersion,
				"database":    "PostgreSQL",
				"entities":    []string{"users", "posts", "tags"},
				"tools": []string{
					"reset_database",
					"create_user", "get_user", "update_user", "delete_user", "search_users",
					"create_post", "get_post", "update_post", "delete_post", "search_posts",
					"get_tag", "get_all_tags",
				},
			}
			b, err := json.Marshal(cfg)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(b),
				},
			}, nil
		})

	s.AddResource(
		mcp.NewResource(
			"data://health",
			"Health Status",
			mcp.WithResourceDescription("Current health of the server and its database connection."),
			mcp.WithMIMEType("application/json"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			status := map[string]any{
				"status":   "healthy",
				"database": "connected",
			}
			if _, err := svc.GetAllTags(false); err != nil {
				status["status"] = "unhealthy"
				status["database"] = err.Error()
			}
			b, err := json.Marshal(status)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(b),
				},
			}, nil
		})
}
