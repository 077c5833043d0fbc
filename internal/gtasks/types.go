package gtasks

import "google.golang.org/api/tasks/v1"

// DefaultListID addresses the authenticated user's default task list.
const DefaultListID = "@default"

// Task status values accepted by the Tasks API.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Task represents a single task. Timestamps and positions are carried as
// the verbatim strings returned by the API.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
	Due       string `json:"due,omitempty"`
	Completed string `json:"completed,omitempty"`
	Updated   string `json:"updated,omitempty"`
	Position  string `json:"position,omitempty"`
}

// toTask converts an API task to our internal representation.
func toTask(t *tasks.Task) Task {
	if t == nil {
		return Task{}
	}
	task := Task{
		ID:       t.Id,
		Title:    t.Title,
		Notes:    t.Notes,
		Status:   t.Status,
		Due:      t.Due,
		Updated:  t.Updated,
		Position: t.Position,
	}
	if t.Completed != nil {
		task.Completed = *t.Completed
	}
	return task
}

// toTaskSlice converts a list response to internal tasks, skipping nil
// entries.
func toTaskSlice(items []*tasks.Task) []Task {
	result := make([]Task, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		result = append(result, toTask(item))
	}
	return result
}
