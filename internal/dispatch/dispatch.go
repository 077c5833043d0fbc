// Package dispatch routes catalog operations to the remote task service.
// All argument validation happens here, before any remote call is made,
// and every failure is classified as an Error kind.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tasklight/tasklight/internal/gtasks"
	"github.com/tasklight/tasklight/internal/logging"
)

// Operation names in the catalog.
const (
	OpCreateTask   = "create_task"
	OpListTasks    = "list_tasks"
	OpDeleteTask   = "delete_task"
	OpCompleteTask = "complete_task"
)

// DefaultListURI identifies the default task list resource.
const DefaultListURI = "tasks://default"

// Dispatcher validates arguments and forwards catalog operations to the
// task service.
type Dispatcher struct {
	svc    gtasks.Service
	logger logging.Logger
}

// New creates a dispatcher over the given task service.
func New(svc gtasks.Service, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Dispatcher{svc: svc, logger: logger}
}

// Dispatch routes a named operation with raw arguments to its handler and
// returns the textual result. Unknown names fail with method-not-found.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]interface{}) (string, *Error) {
	switch name {
	case OpCreateTask:
		parsed, argErr := parseCreateTaskArgs(args)
		if argErr != nil {
			return "", argErr
		}
		return d.CreateTask(ctx, parsed)
	case OpListTasks:
		return d.ListTasks(ctx)
	case OpDeleteTask:
		parsed, argErr := parseDeleteTaskArgs(args)
		if argErr != nil {
			return "", argErr
		}
		return d.DeleteTask(ctx, parsed)
	case OpCompleteTask:
		parsed, argErr := parseCompleteTaskArgs(args)
		if argErr != nil {
			return "", argErr
		}
		return d.CompleteTask(ctx, parsed)
	default:
		return "", methodNotFound(name)
	}
}

// CreateTask inserts a new task and returns it as JSON.
func (d *Dispatcher) CreateTask(ctx context.Context, args CreateTaskArgs) (string, *Error) {
	task, err := d.svc.Insert(ctx, args.Title, args.Notes)
	if err != nil {
		d.logger.Error("create task failed", logging.KeyError, err)
		return "", internalErr("failed to create task", err)
	}
	d.logger.Info("task created", logging.KeyTaskID, task.ID)
	return marshalResult(task)
}

// ListTasks returns all tasks on the default list as JSON.
func (d *Dispatcher) ListTasks(ctx context.Context) (string, *Error) {
	tasks, err := d.svc.List(ctx)
	if err != nil {
		d.logger.Error("list tasks failed", logging.KeyError, err)
		return "", internalErr("failed to list tasks", err)
	}
	return marshalResult(tasks)
}

// DeleteTask removes a task and returns a confirmation message.
func (d *Dispatcher) DeleteTask(ctx context.Context, args DeleteTaskArgs) (string, *Error) {
	if err := d.svc.Delete(ctx, args.TaskID); err != nil {
		d.logger.Error("delete task failed", logging.KeyTaskID, args.TaskID, logging.KeyError, err)
		return "", internalErr("failed to delete task", err)
	}
	d.logger.Info("task deleted", logging.KeyTaskID, args.TaskID)
	return fmt.Sprintf("Task %s deleted successfully", args.TaskID), nil
}

// CompleteTask sets a task's completion status and returns the updated
// task as JSON.
func (d *Dispatcher) CompleteTask(ctx context.Context, args CompleteTaskArgs) (string, *Error) {
	task, err := d.svc.Patch(ctx, args.TaskID, args.Status)
	if err != nil {
		d.logger.Error("complete task failed", logging.KeyTaskID, args.TaskID, logging.KeyError, err)
		return "", internalErr("failed to update task status", err)
	}
	d.logger.Info("task status updated", logging.KeyTaskID, args.TaskID, logging.KeyStatus, args.Status)
	return marshalResult(task)
}

// ReadResource serves the readable resources. Only the default task list
// URI is known; anything else is an invalid request.
func (d *Dispatcher) ReadResource(ctx context.Context, uri string) (string, *Error) {
	if uri != DefaultListURI {
		return "", invalidRequest("unknown resource %q", uri)
	}
	tasks, err := d.svc.List(ctx)
	if err != nil {
		d.logger.Error("read task list resource failed", logging.KeyError, err)
		return "", internalErr("failed to read task list", err)
	}
	return marshalResult(tasks)
}

func marshalResult(v interface{}) (string, *Error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", internalErr("failed to marshal result", err)
	}
	return string(data), nil
}
