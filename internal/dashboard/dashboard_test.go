package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aturzone/go-front-connect/internal/api"
	"github.com/aturzone/go-front-connect/internal/auth"
	"github.com/aturzone/go-front-connect/internal/config"
	"github.com/aturzone/go-front-connect/internal/models"
)

type backendOpts struct {
	statsFail  bool
	usersFail  bool
	groupsFail bool
}

func newLoader(t *testing.T, id auth.Identity, opts backendOpts) *Loader {
	t.Helper()

	r := chi.NewRouter()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	r.Get("/tasks/stats", func(w http.ResponseWriter, req *http.Request) {
		if opts.statsFail {
			http.Error(w, "stats backend down", http.StatusBadGateway)
			return
		}
		writeJSON(w, models.TaskStats{Total: 9, Done: 3, Pending: 6})
	})
	r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
		if opts.usersFail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		writeJSON(w, models.UsersResponse{Users: []models.User{
			{ID: 1, Name: "alice", GroupID: 5},
			{ID: 2, Name: "bob", GroupID: 6},
		}})
	})
	r.Get("/groups", func(w http.ResponseWriter, req *http.Request) {
		if opts.groupsFail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		writeJSON(w, models.GroupsResponse{Groups: []models.Group{{ID: 5, Name: "ops"}, {ID: 6, Name: "dev"}}})
	})
	r.Get("/groups/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, models.Group{ID: 5, Name: "ops"})
	})
	r.Get("/users/{id}/tasks", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, models.TasksResponse{Tasks: []models.Task{{ID: 7, UserID: 2, Title: "own task"}}})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	settings := config.NewStore(dir)
	identity := auth.NewStore(dir)
	require.NoError(t, settings.Write(config.Settings{BaseURL: srv.URL, OwnerPassword: "p1", UserPassword: "p2"}))
	require.NoError(t, identity.Write(id))

	client := api.New(settings, identity, srv.Client(), nil)
	return NewLoader(client, identity, nil)
}

func TestOwnerLoad(t *testing.T) {
	l := newLoader(t, auth.Identity{Role: auth.RoleOwner}, backendOpts{})

	sum, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, sum.Users, 2)
	assert.Len(t, sum.Groups, 2)
	assert.Equal(t, 9, sum.Stats.Total)
	assert.Empty(t, sum.Tasks)
}

func TestStatsFailureIsNonFatal(t *testing.T) {
	l := newLoader(t, auth.Identity{Role: auth.RoleOwner}, backendOpts{statsFail: true})

	sum, err := l.Load(context.Background())
	require.NoError(t, err, "a failing stats call must not fail the load")
	assert.Len(t, sum.Users, 2)
	assert.Equal(t, models.TaskStats{}, sum.Stats)
}

func TestUsersFailureIsFatalButPartial(t *testing.T) {
	l := newLoader(t, auth.Identity{Role: auth.RoleOwner}, backendOpts{usersFail: true})

	sum, err := l.Load(context.Background())
	require.Error(t, err)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	// The sibling calls are not cancelled by the failure.
	assert.Len(t, sum.Groups, 2)
	assert.Equal(t, 9, sum.Stats.Total)
}

func TestGroupAdminLoadIsScoped(t *testing.T) {
	l := newLoader(t, auth.Identity{Role: auth.RoleGroupAdmin, GroupID: 5}, backendOpts{})

	sum, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, sum.Groups, 1)
	assert.Equal(t, int64(5), sum.Groups[0].ID)
	require.Len(t, sum.Users, 1, "only the admin's own group members are shown")
	assert.Equal(t, "alice", sum.Users[0].Name)
}

func TestUserLoadOwnTasksOnly(t *testing.T) {
	l := newLoader(t, auth.Identity{Role: auth.RoleUser, UserID: 2}, backendOpts{})

	sum, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, sum.Tasks, 1)
	assert.Equal(t, "own task", sum.Tasks[0].Title)
	assert.Empty(t, sum.Users)
	assert.Empty(t, sum.Groups)
}
