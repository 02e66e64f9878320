// Package dashboard aggregates the data behind the console's landing view.
// It fans out the independent backend reads concurrently and tolerates the
// statistics call failing without blocking the rest of the load.
package dashboard

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/aturzone/go-front-connect/internal/api"
	"github.com/aturzone/go-front-connect/internal/auth"
	"github.com/aturzone/go-front-connect/internal/models"
)

// Summary is the role-scoped landing view data. Fields outside the current
// role's visibility stay empty.
type Summary struct {
	// Users is filled for owners and group-admins.
	Users []models.User
	// Groups is filled for owners; for a group-admin it holds only their
	// own group.
	Groups []models.Group
	// Tasks is filled for the user role: their own tasks.
	Tasks []models.Task
	// Stats holds the aggregate counters, zero when the stats call failed.
	Stats models.TaskStats
}

// Loader builds Summaries. It consults the identity store to decide which
// calls a role is entitled to see; the backend still enforces scope on its
// side through the secret header.
type Loader struct {
	api      *api.Client
	identity *auth.Store
	log      *zap.Logger
}

// NewLoader constructs a Loader. log may be nil.
func NewLoader(client *api.Client, identity *auth.Store, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{api: client, identity: identity, log: log}
}

// Load fetches the landing view data for the stored identity. All calls run
// concurrently with no ordering guarantee; each failure is isolated. A
// failed stats call degrades to zero counters with a warning, any other
// failure is returned (first one wins) alongside whatever partial data
// arrived.
func (l *Loader) Load(ctx context.Context) (*Summary, error) {
	sum := &Summary{}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() {
		stats, err := l.api.Tasks().Stats(ctx)
		if err != nil {
			// Statistics are decoration; the rest of the view still loads.
			l.log.Warn("task stats unavailable", zap.Error(err))
			return
		}
		mu.Lock()
		sum.Stats = *stats
		mu.Unlock()
	})

	ident := l.identity.Read()
	switch {
	case l.identity.IsOwner():
		run(func() {
			users, err := l.api.Users().List(ctx)
			if err != nil {
				fail(err)
				return
			}
			mu.Lock()
			sum.Users = users
			mu.Unlock()
		})
		run(func() {
			groups, err := l.api.Groups().List(ctx)
			if err != nil {
				fail(err)
				return
			}
			mu.Lock()
			sum.Groups = groups
			mu.Unlock()
		})
	case l.identity.IsGroupAdmin() && ident != nil:
		groupID := ident.GroupID
		run(func() {
			group, err := l.api.Groups().Get(ctx, groupID)
			if err != nil {
				fail(err)
				return
			}
			mu.Lock()
			sum.Groups = []models.Group{*group}
			mu.Unlock()
		})
		run(func() {
			users, err := l.api.Users().List(ctx)
			if err != nil {
				fail(err)
				return
			}
			scoped := users[:0:0]
			for _, u := range users {
				if u.GroupID == groupID {
					scoped = append(scoped, u)
				}
			}
			mu.Lock()
			sum.Users = scoped
			mu.Unlock()
		})
	case ident != nil && ident.UserID != 0:
		userID := ident.UserID
		run(func() {
			tasks, err := l.api.Users().Tasks(ctx, userID)
			if err != nil {
				fail(err)
				return
			}
			mu.Lock()
			sum.Tasks = tasks
			mu.Unlock()
		})
	}

	wg.Wait()
	return sum, firstErr
}
