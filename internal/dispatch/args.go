package dispatch

import (
	"github.com/tasklight/tasklight/internal/gtasks"
)

// CreateTaskArgs are the arguments for the create_task operation.
type CreateTaskArgs struct {
	Title string
	Notes string
}

// DeleteTaskArgs are the arguments for the delete_task operation.
type DeleteTaskArgs struct {
	TaskID string
}

// CompleteTaskArgs are the arguments for the complete_task operation.
type CompleteTaskArgs struct {
	TaskID string
	Status string
}

// stringArg extracts a string-typed argument. It distinguishes absence
// from wrong type so callers can report each with its own message.
func stringArg(args map[string]interface{}, key string) (value string, present bool, err *Error) {
	raw, ok := args[key]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, invalidParams("%s must be a string", key)
	}
	return s, true, nil
}

// taskIDArg extracts the taskId argument shared by delete_task and
// complete_task, keeping the "taskId required" wording identical across
// both operations.
func taskIDArg(args map[string]interface{}) (string, *Error) {
	taskID, present, argErr := stringArg(args, "taskId")
	if argErr != nil {
		return "", argErr
	}
	if !present || taskID == "" {
		return "", invalidParams("taskId is required")
	}
	return taskID, nil
}

func parseCreateTaskArgs(args map[string]interface{}) (CreateTaskArgs, *Error) {
	if args == nil {
		return CreateTaskArgs{}, invalidParams("arguments must be an object")
	}
	title, present, argErr := stringArg(args, "title")
	if argErr != nil {
		return CreateTaskArgs{}, argErr
	}
	if !present || title == "" {
		return CreateTaskArgs{}, invalidParams("title is required")
	}
	notes, _, argErr := stringArg(args, "notes")
	if argErr != nil {
		return CreateTaskArgs{}, argErr
	}
	return CreateTaskArgs{Title: title, Notes: notes}, nil
}

func parseDeleteTaskArgs(args map[string]interface{}) (DeleteTaskArgs, *Error) {
	if args == nil {
		return DeleteTaskArgs{}, invalidParams("arguments must be an object")
	}
	taskID, argErr := taskIDArg(args)
	if argErr != nil {
		return DeleteTaskArgs{}, argErr
	}
	return DeleteTaskArgs{TaskID: taskID}, nil
}

func parseCompleteTaskArgs(args map[string]interface{}) (CompleteTaskArgs, *Error) {
	if args == nil {
		return CompleteTaskArgs{}, invalidParams("arguments must be an object")
	}
	taskID, argErr := taskIDArg(args)
	if argErr != nil {
		return CompleteTaskArgs{}, argErr
	}
	status, present, argErr := stringArg(args, "status")
	if argErr != nil {
		return CompleteTaskArgs{}, argErr
	}
	if !present || status == "" {
		return CompleteTaskArgs{}, invalidParams("status is required")
	}
	if status != gtasks.StatusNeedsAction && status != gtasks.StatusCompleted {
		return CompleteTaskArgs{}, invalidParams(
			"status must be %q or %q", gtasks.StatusNeedsAction, gtasks.StatusCompleted)
	}
	return CompleteTaskArgs{TaskID: taskID, Status: status}, nil
}
