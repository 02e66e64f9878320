package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aturzone/go-front-connect/internal/models"
)

// TasksService covers the cross-user /tasks endpoints: search, statistics
// and attribute filtering. Per-user task CRUD lives on UsersService.
type TasksService struct {
	c *Client
}

// Tasks returns the task query surface.
func (c *Client) Tasks() *TasksService {
	return &TasksService{c: c}
}

// TaskFilter narrows a Filter call. Zero-valued fields are omitted from the
// query string.
type TaskFilter struct {
	// Done filters by completion state when non-nil.
	Done *bool
	// Priority filters by the backend's priority label.
	Priority string
	// DueBefore filters tasks due before an RFC 3339 timestamp.
	DueBefore string
}

func (f TaskFilter) query() string {
	q := url.Values{}
	if f.Done != nil {
		q.Set("done", strconv.FormatBool(*f.Done))
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if f.DueBefore != "" {
		q.Set("dueBefore", f.DueBefore)
	}
	return q.Encode()
}

// Search runs a full-text task search.
func (s *TasksService) Search(ctx context.Context, query string) ([]models.Task, error) {
	var resp models.TasksResponse
	path := "/tasks/search?q=" + url.QueryEscape(query)
	if err := s.c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// Stats fetches the aggregate task counters.
func (s *TasksService) Stats(ctx context.Context) (*models.TaskStats, error) {
	var stats models.TaskStats
	if err := s.c.do(ctx, http.MethodGet, "/tasks/stats", nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Filter lists tasks matching the given attribute filter.
func (s *TasksService) Filter(ctx context.Context, f TaskFilter) ([]models.Task, error) {
	var resp models.TasksResponse
	path := "/tasks/filter"
	if q := f.query(); q != "" {
		path += "?" + q
	}
	if err := s.c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}
