// Package task_tools registers the task catalog as MCP tools.
package task_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tasklight/tasklight/internal/dispatch"
	"github.com/tasklight/tasklight/internal/server"
	"github.com/tasklight/tasklight/internal/tools/common"
)

// makeHandler builds a tool handler that routes the raw arguments through
// the dispatcher for the given catalog operation.
func makeHandler(op string, sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		text, derr := sc.Dispatcher().Dispatch(ctx, op, args)
		if derr != nil {
			return mcp.NewToolResultError(derr.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// RegisterTaskTools registers all task tools with the MCP server
func RegisterTaskTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if sc.Dispatcher() == nil {
		return fmt.Errorf("server context has no dispatcher")
	}

	// Create task tool
	createTaskTool := mcp.NewTool(dispatch.OpCreateTask,
		mcp.WithDescription("Create a new task on the default task list"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the new task"),
		),
		mcp.WithString("notes",
			mcp.Description("Notes or description for the task"),
		),
	)
	s.AddTool(createTaskTool, common.InstrumentedToolHandler(
		dispatch.OpCreateTask, "insert", sc, makeHandler(dispatch.OpCreateTask, sc)))

	// List tasks tool
	listTasksTool := mcp.NewTool(dispatch.OpListTasks,
		mcp.WithDescription("List all tasks on the default task list, including completed ones"),
	)
	s.AddTool(listTasksTool, common.InstrumentedToolHandler(
		dispatch.OpListTasks, "list", sc, makeHandler(dispatch.OpListTasks, sc)))

	// Delete task tool
	deleteTaskTool := mcp.NewTool(dispatch.OpDeleteTask,
		mcp.WithDescription("Delete a task from the default task list"),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to delete"),
		),
	)
	s.AddTool(deleteTaskTool, common.InstrumentedToolHandler(
		dispatch.OpDeleteTask, "delete", sc, makeHandler(dispatch.OpDeleteTask, sc)))

	// Complete task tool
	completeTaskTool := mcp.NewTool(dispatch.OpCompleteTask,
		mcp.WithDescription("Set the completion status of a task on the default task list"),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("New status: 'needsAction' or 'completed'"),
		),
	)
	s.AddTool(completeTaskTool, common.InstrumentedToolHandler(
		dispatch.OpCompleteTask, "patch", sc, makeHandler(dispatch.OpCompleteTask, sc)))

	return nil
}
