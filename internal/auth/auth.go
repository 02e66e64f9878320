// Package auth provides durable persistence of the operator's locally
// asserted identity and the role predicates the console uses to gate
// visibility. The predicates are advisory only: the backend re-checks
// authorization on every request from the secret header, so nothing here is
// a security boundary.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// identityFile is the fixed name of the persisted identity record.
const identityFile = "identity.json"

// Role identifies the operator's access tier. The set is closed; any other
// value ranks below every known role and fails all predicates.
type Role string

const (
	// RoleOwner has unrestricted visibility across users, groups and tasks.
	RoleOwner Role = "owner"
	// RoleGroupAdmin manages a single group's membership and tasks.
	RoleGroupAdmin Role = "group-admin"
	// RoleUser sees only their own tasks.
	RoleUser Role = "user"
)

// rank places roles on the fixed total order owner > group-admin > user.
// Unknown roles rank 0 so every comparison against them fails closed.
func (r Role) rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleGroupAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is one of the three defined roles.
func (r Role) Valid() bool {
	return r.rank() > 0
}

// Identity is the locally recorded actor. It is not a verified session:
// the backend validates the accompanying secret independently per request.
type Identity struct {
	// Role selects which secret the dispatcher attaches and which views
	// the console renders.
	Role Role `json:"role"`

	// UserID is meaningful only when Role is "user".
	UserID int64 `json:"userId,omitempty"`

	// GroupID is meaningful only when Role is "group-admin".
	GroupID int64 `json:"groupId,omitempty"`

	// Email is display-only.
	Email string `json:"email,omitempty"`
}

// Store persists a single Identity record as a JSON file, independent of
// the connection settings record.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, identityFile)
}

// Read returns the stored identity, or nil when no record exists or the
// persisted bytes are not valid JSON. Corruption reads as absence.
func (s *Store) Read() *Identity {
	buf, err := os.ReadFile(s.path())
	if err != nil {
		return nil
	}
	var id Identity
	if err := json.Unmarshal(buf, &id); err != nil {
		return nil
	}
	return &id
}

// Write replaces the stored record wholesale.
func (s *Store) Write(id Identity) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	buf, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := os.WriteFile(s.path(), buf, 0o600); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	return nil
}

// Clear removes the stored record.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear identity: %w", err)
	}
	return nil
}

// HasExactRole reports whether the stored role equals r. There is no
// hierarchy here; owner does not satisfy HasExactRole(RoleUser).
func (s *Store) HasExactRole(r Role) bool {
	id := s.Read()
	return id != nil && id.Role == r
}

// HasRoleAtLeast reports whether the stored role ranks at or above r on the
// order owner > group-admin > user. With no identity stored it is false for
// every argument.
func (s *Store) HasRoleAtLeast(r Role) bool {
	id := s.Read()
	if id == nil {
		return false
	}
	return id.Role.rank() >= r.rank() && id.Role.rank() > 0
}

// IsOwner reports whether the stored role is exactly owner.
func (s *Store) IsOwner() bool {
	return s.HasExactRole(RoleOwner)
}

// IsGroupAdmin reports whether the stored role is exactly group-admin.
func (s *Store) IsGroupAdmin() bool {
	return s.HasExactRole(RoleGroupAdmin)
}

// IsUser reports whether the stored role is exactly user.
func (s *Store) IsUser() bool {
	return s.HasExactRole(RoleUser)
}

// CanManageGroup reports whether the stored identity may manage groupID:
// owners manage every group, a group-admin manages only the group recorded
// in their identity. Everything else is denied, including an absent
// identity.
func (s *Store) CanManageGroup(groupID int64) bool {
	id := s.Read()
	if id == nil {
		return false
	}
	switch id.Role {
	case RoleOwner:
		return true
	case RoleGroupAdmin:
		return id.GroupID != 0 && id.GroupID == groupID
	default:
		return false
	}
}
