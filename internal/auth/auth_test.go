package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, id *Identity) *Store {
	t.Helper()
	s := NewStore(t.TempDir())
	if id != nil {
		require.NoError(t, s.Write(*id))
	}
	return s
}

func TestReadWriteRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	want := Identity{Role: RoleGroupAdmin, GroupID: 7, Email: "admin@example.com"}
	require.NoError(t, s.Write(want))

	got := s.Read()
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestReadMissingAndMalformed(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.Nil(t, s.Read())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, identityFile), []byte("]["), 0o600))
	assert.Nil(t, NewStore(dir).Read(), "malformed identity must read as absent")
}

func TestClear(t *testing.T) {
	s := newStore(t, &Identity{Role: RoleUser, UserID: 1})
	require.NoError(t, s.Clear())
	assert.Nil(t, s.Read())
	require.NoError(t, s.Clear())
}

func TestHasRoleAtLeast(t *testing.T) {
	tests := []struct {
		stored                 *Identity
		user, groupAdmin, owner bool
	}{
		{&Identity{Role: RoleOwner}, true, true, true},
		{&Identity{Role: RoleGroupAdmin}, true, true, false},
		{&Identity{Role: RoleUser}, true, false, false},
		{&Identity{Role: "superuser"}, false, false, false},
		{nil, false, false, false},
	}
	for _, tt := range tests {
		name := "absent"
		if tt.stored != nil {
			name = string(tt.stored.Role)
		}
		t.Run(name, func(t *testing.T) {
			s := newStore(t, tt.stored)
			assert.Equal(t, tt.user, s.HasRoleAtLeast(RoleUser))
			assert.Equal(t, tt.groupAdmin, s.HasRoleAtLeast(RoleGroupAdmin))
			assert.Equal(t, tt.owner, s.HasRoleAtLeast(RoleOwner))
		})
	}
}

func TestExactRolePredicates(t *testing.T) {
	s := newStore(t, &Identity{Role: RoleOwner})
	assert.True(t, s.IsOwner())
	assert.False(t, s.IsGroupAdmin())
	assert.False(t, s.IsUser())
	assert.False(t, s.HasExactRole(RoleUser), "no hierarchy in exact match")

	empty := newStore(t, nil)
	assert.False(t, empty.IsOwner())
	assert.False(t, empty.IsGroupAdmin())
	assert.False(t, empty.IsUser())
}

func TestCanManageGroup(t *testing.T) {
	tests := []struct {
		name   string
		stored *Identity
		want   bool
	}{
		{"owner manages any group", &Identity{Role: RoleOwner, GroupID: 99}, true},
		{"owner without group id", &Identity{Role: RoleOwner}, true},
		{"group-admin of same group", &Identity{Role: RoleGroupAdmin, GroupID: 5}, true},
		{"group-admin of other group", &Identity{Role: RoleGroupAdmin, GroupID: 6}, false},
		{"group-admin without group id", &Identity{Role: RoleGroupAdmin}, false},
		{"plain user", &Identity{Role: RoleUser, UserID: 5}, false},
		{"absent identity", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, tt.stored)
			assert.Equal(t, tt.want, s.CanManageGroup(5))
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleGroupAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
}
