// Package gtasks wraps the Google Tasks API for the default task list.
package gtasks

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"

	"github.com/tasklight/tasklight/internal/config"
)

// Service is the remote task operations the dispatcher depends on. It is
// satisfied by Client and by test fakes.
type Service interface {
	List(ctx context.Context) ([]Task, error)
	Insert(ctx context.Context, title, notes string) (*Task, error)
	Delete(ctx context.Context, taskID string) error
	Patch(ctx context.Context, taskID, status string) (*Task, error)
}

// Client talks to the Google Tasks API, scoped to the default task list.
type Client struct {
	svc *tasks.Service
}

// NewClient creates a Tasks client authenticated with the given
// credentials.
func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(cfg.HTTPClient(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// NewClientWithHTTPClient creates a client over the provided HTTP client.
// Used in tests to point the service at a local server.
func NewClientWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	allOpts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// List returns all tasks on the default list, including completed ones.
func (c *Client) List(ctx context.Context) ([]Task, error) {
	result, err := c.svc.Tasks.List(DefaultListID).
		ShowCompleted(true).
		ShowHidden(true).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return toTaskSlice(result.Items), nil
}

// Insert creates a new task on the default list.
func (c *Client) Insert(ctx context.Context, title, notes string) (*Task, error) {
	task := &tasks.Task{
		Title:  title,
		Notes:  notes,
		Status: StatusNeedsAction,
	}
	created, err := c.svc.Tasks.Insert(DefaultListID, task).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	result := toTask(created)
	return &result, nil
}

// Delete removes a task from the default list.
func (c *Client) Delete(ctx context.Context, taskID string) error {
	if err := c.svc.Tasks.Delete(DefaultListID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Patch updates the status of a task on the default list.
func (c *Client) Patch(ctx context.Context, taskID, status string) (*Task, error) {
	patch := &tasks.Task{Status: status}
	updated, err := c.svc.Tasks.Patch(DefaultListID, taskID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch task: %w", err)
	}
	result := toTask(updated)
	return &result, nil
}
