package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aturzone/go-front-connect/internal/models"
)

// UsersService covers the /users endpoint family, including per-user tasks.
type UsersService struct {
	c *Client
}

// Users returns the user management surface.
func (c *Client) Users() *UsersService {
	return &UsersService{c: c}
}

// List returns every user visible to the current secret.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	var resp models.UsersResponse
	if err := s.c.do(ctx, http.MethodGet, "/users", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Get fetches a single user.
func (s *UsersService) Get(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &u, true); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create registers a new user and returns the stored record.
func (s *UsersService) Create(ctx context.Context, u models.User) (*models.User, error) {
	var created models.User
	if err := s.c.do(ctx, http.MethodPost, "/users", u, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a user record.
func (s *UsersService) Update(ctx context.Context, id int64, u models.User) (*models.User, error) {
	var updated models.User
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), u, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user. The backend answers with an empty body.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, true)
}

// Tasks lists the tasks owned by a user.
func (s *UsersService) Tasks(ctx context.Context, id int64) ([]models.Task, error) {
	var resp models.TasksResponse
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/tasks", id), nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CreateTask adds a task to a user.
func (s *UsersService) CreateTask(ctx context.Context, id int64, t models.Task) (*models.Task, error) {
	var created models.Task
	if err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/tasks", id), t, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// Task fetches one task of a user.
func (s *UsersService) Task(ctx context.Context, id, taskID int64) (*models.Task, error) {
	var t models.Task
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/tasks/%d", id, taskID), nil, &t, true); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask replaces one task of a user.
func (s *UsersService) UpdateTask(ctx context.Context, id, taskID int64, t models.Task) (*models.Task, error) {
	var updated models.Task
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/tasks/%d", id, taskID), t, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes one task of a user.
func (s *UsersService) DeleteTask(ctx context.Context, id, taskID int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/tasks/%d", id, taskID), nil, nil, true)
}
