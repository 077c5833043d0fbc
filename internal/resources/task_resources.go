// Package resources registers readable MCP resources for tasklight.
package resources

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tasklight/tasklight/internal/dispatch"
	"github.com/tasklight/tasklight/internal/server"
)

// RegisterTaskResources registers the default task list resource.
// Reading it returns the full task list as JSON.
func RegisterTaskResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if sc.Dispatcher() == nil {
		return errors.New("server context has no dispatcher")
	}

	taskListResource := mcp.NewResource(
		dispatch.DefaultListURI,
		"Default Task List",
		mcp.WithResourceDescription("All tasks on the default Google Tasks list"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(taskListResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleTaskList(ctx, request, sc)
	})

	return nil
}

// handleTaskList serves the default task list contents.
func handleTaskList(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	text, derr := sc.Dispatcher().ReadResource(ctx, request.Params.URI)
	if derr != nil {
		return nil, derr
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}
