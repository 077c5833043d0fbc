// Package testutil provides an in-memory task service for tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/tasklight/tasklight/internal/gtasks"
)

// FakeService is an in-memory gtasks.Service. Error fields inject failures
// per method, and Calls counts every remote invocation so tests can assert
// that validation failures never reach the backend.
type FakeService struct {
	mu     sync.Mutex
	tasks  []gtasks.Task
	nextID int

	// Calls counts all service method invocations.
	Calls int

	// Per-method error injection.
	ListErr   error
	InsertErr error
	DeleteErr error
	PatchErr  error
}

// NewFakeService returns an empty in-memory service.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// Seed adds tasks directly, bypassing call counting.
func (f *FakeService) Seed(tasks ...gtasks.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, tasks...)
	f.nextID += len(tasks)
}

// Tasks returns a copy of the current task list.
func (f *FakeService) Tasks() []gtasks.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]gtasks.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// CallCount returns the number of service method invocations so far.
func (f *FakeService) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}

func (f *FakeService) List(_ context.Context) ([]gtasks.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]gtasks.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *FakeService) Insert(_ context.Context, title, notes string) (*gtasks.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.InsertErr != nil {
		return nil, f.InsertErr
	}
	task := gtasks.Task{
		ID:     fmt.Sprintf("task-%d", f.nextID),
		Title:  title,
		Notes:  notes,
		Status: gtasks.StatusNeedsAction,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return &task, nil
}

func (f *FakeService) Delete(_ context.Context, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i, task := range f.tasks {
		if task.ID == taskID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task not found: %s", taskID)
}

func (f *FakeService) Patch(_ context.Context, taskID, status string) (*gtasks.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.PatchErr != nil {
		return nil, f.PatchErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == taskID {
			f.tasks[i].Status = status
			task := f.tasks[i]
			return &task, nil
		}
	}
	return nil, fmt.Errorf("task not found: %s", taskID)
}
