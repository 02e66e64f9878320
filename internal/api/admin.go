package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aturzone/go-front-connect/internal/models"
)

// SyncAction selects what /admin/sync does.
type SyncAction string

const (
	// SyncForce pushes the backend's working state to its peers immediately.
	SyncForce SyncAction = "force"
	// SyncRestore restores the backend state from the last backup.
	SyncRestore SyncAction = "restore"
	// SyncBackup writes a new backup of the backend state.
	SyncBackup SyncAction = "backup"
)

// AdminService covers the /admin maintenance endpoints. The backend only
// honors these with the owner secret; the console additionally hides them
// from non-owner roles.
type AdminService struct {
	c *Client
}

// Admin returns the administrative surface.
func (c *Client) Admin() *AdminService {
	return &AdminService{c: c}
}

// Sync triggers a maintenance action. Unknown actions are rejected before
// any network attempt.
func (s *AdminService) Sync(ctx context.Context, action SyncAction) (*models.SyncResult, error) {
	switch action {
	case SyncForce, SyncRestore, SyncBackup:
	default:
		return nil, fmt.Errorf("unknown sync action %q", action)
	}
	var result models.SyncResult
	path := "/admin/sync?action=" + string(action)
	if err := s.c.do(ctx, http.MethodPost, path, nil, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// Status fetches the backend's runtime status.
func (s *AdminService) Status(ctx context.Context) (*models.AdminStatus, error) {
	var status models.AdminStatus
	if err := s.c.do(ctx, http.MethodGet, "/admin/status", nil, &status, true); err != nil {
		return nil, err
	}
	return &status, nil
}

// Stats fetches backend-wide entity counters.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := s.c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}
