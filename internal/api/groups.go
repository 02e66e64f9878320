package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aturzone/go-front-connect/internal/models"
)

// GroupsService covers the /groups endpoint family.
type GroupsService struct {
	c *Client
}

// Groups returns the group management surface.
func (c *Client) Groups() *GroupsService {
	return &GroupsService{c: c}
}

// List returns every group visible to the current secret.
func (s *GroupsService) List(ctx context.Context) ([]models.Group, error) {
	var resp models.GroupsResponse
	if err := s.c.do(ctx, http.MethodGet, "/groups", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

// Get fetches a single group.
func (s *GroupsService) Get(ctx context.Context, id int64) (*models.Group, error) {
	var g models.Group
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/groups/%d", id), nil, &g, true); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create registers a new group and returns the stored record.
func (s *GroupsService) Create(ctx context.Context, g models.Group) (*models.Group, error) {
	var created models.Group
	if err := s.c.do(ctx, http.MethodPost, "/groups", g, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a group record.
func (s *GroupsService) Update(ctx context.Context, id int64, g models.Group) (*models.Group, error) {
	var updated models.Group
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/groups/%d", id), g, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a group. The backend answers with an empty body.
func (s *GroupsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d", id), nil, nil, true)
}
