// Package models defines the wire schemas exchanged with the task backend.
package models

// User represents an operator-visible account on the backend.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `json:"id"`
	// Name is the display name of the user.
	Name string `json:"name"`
	// Email is the contact address of the user.
	Email string `json:"email"`
	// GroupID is the group the user belongs to, 0 when unassigned.
	GroupID int64 `json:"groupId,omitempty"`
}

// Group represents a collection of users managed together.
type Group struct {
	// ID is the unique identifier for the group.
	ID int64 `json:"id"`
	// Name is the display name of the group.
	Name string `json:"name"`
	// Description holds an optional free-form note about the group.
	Description string `json:"description,omitempty"`
}

// Task holds a single unit of work owned by a user.
type Task struct {
	// ID is the unique identifier for the task.
	ID int64 `json:"id"`
	// UserID is the owner of the task.
	UserID int64 `json:"userId"`
	// Title is the short summary of the task.
	Title string `json:"title"`
	// Description holds the longer body of the task.
	Description string `json:"description,omitempty"`
	// Done reports whether the task is completed.
	Done bool `json:"done"`
	// Priority is the backend-defined priority label ("low", "medium", "high").
	Priority string `json:"priority,omitempty"`
	// DueDate is the RFC 3339 due date, empty when none is set.
	DueDate string `json:"dueDate,omitempty"`
}

// TaskStats aggregates task counters for the dashboard view.
type TaskStats struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Pending int `json:"pending"`
	Overdue int `json:"overdue"`
}

// UsersResponse wraps the user listing endpoint's body.
type UsersResponse struct {
	Users []User `json:"users"`
}

// GroupsResponse wraps the group listing endpoint's body.
type GroupsResponse struct {
	Groups []Group `json:"groups"`
}

// TasksResponse wraps every endpoint that returns a task collection.
type TasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// SyncResult reports the outcome of an administrative sync action.
type SyncResult struct {
	// Action echoes the requested action ("force", "restore", "backup").
	Action string `json:"action"`
	// Status is the backend's outcome label, e.g. "ok" or "started".
	Status string `json:"status"`
	// Message holds an optional human-readable detail line.
	Message string `json:"message,omitempty"`
}

// AdminStatus describes the backend's self-reported runtime state.
type AdminStatus struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// AdminStats aggregates backend-wide entity counters.
type AdminStats struct {
	Users  int `json:"users"`
	Groups int `json:"groups"`
	Tasks  int `json:"tasks"`
}

// HealthStatus is the body of the unauthenticated health probe.
type HealthStatus struct {
	Status string `json:"status"`
}
