package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklight/tasklight/internal/gtasks"
)

func TestParseCreateTaskArgs(t *testing.T) {
	args, derr := parseCreateTaskArgs(map[string]interface{}{
		"title": "Buy milk",
		"notes": "2 liters",
	})

	require.Nil(t, derr)
	assert.Equal(t, CreateTaskArgs{Title: "Buy milk", Notes: "2 liters"}, args)
}

func TestParseCreateTaskArgs_IgnoresUnknownKeys(t *testing.T) {
	args, derr := parseCreateTaskArgs(map[string]interface{}{
		"title": "Buy milk",
		"due":   "2026-01-01",
	})

	require.Nil(t, derr)
	assert.Equal(t, "Buy milk", args.Title)
}

func TestParseDeleteTaskArgs(t *testing.T) {
	args, derr := parseDeleteTaskArgs(map[string]interface{}{"taskId": "t1"})

	require.Nil(t, derr)
	assert.Equal(t, "t1", args.TaskID)
}

func TestParseCompleteTaskArgs(t *testing.T) {
	args, derr := parseCompleteTaskArgs(map[string]interface{}{
		"taskId": "t1",
		"status": gtasks.StatusNeedsAction,
	})

	require.Nil(t, derr)
	assert.Equal(t, CompleteTaskArgs{TaskID: "t1", Status: gtasks.StatusNeedsAction}, args)
}

func TestTaskIDArg_SharedMessage(t *testing.T) {
	// delete_task and complete_task report the same wording for a
	// missing taskId.
	_, delErr := parseDeleteTaskArgs(map[string]interface{}{})
	_, compErr := parseCompleteTaskArgs(map[string]interface{}{"status": gtasks.StatusCompleted})

	require.NotNil(t, delErr)
	require.NotNil(t, compErr)
	assert.Equal(t, delErr.Message, compErr.Message)
	assert.Equal(t, "taskId is required", delErr.Message)
}

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{
		"title": "ok",
		"count": float64(3),
	}

	value, present, derr := stringArg(args, "title")
	require.Nil(t, derr)
	assert.True(t, present)
	assert.Equal(t, "ok", value)

	_, present, derr = stringArg(args, "missing")
	require.Nil(t, derr)
	assert.False(t, present)

	_, present, derr = stringArg(args, "count")
	assert.True(t, present)
	require.NotNil(t, derr)
	assert.Equal(t, KindInvalidParams, derr.Kind)
	assert.Equal(t, "count must be a string", derr.Message)
}
