// Package state is the terminal client's single source of truth: an
// in-memory cache of the todo list plus a loading flag and an error message.
// Every transition is published to subscribers so the presentation layer can
// re-render without polling.
//
// The store never talks to the network directly; all remote work goes
// through a [ports.TodoAPI]. Mutations patch the cache from the server's
// response rather than refetching the whole list.
package state

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/ybrd/todo/internal/domain/todo"
	"github.com/ybrd/todo/internal/ports"
)

// Snapshot is an immutable view of the store at one point in time. The Todos
// slice is a copy; subscribers may keep it without racing the store.
type Snapshot struct {
	Todos   []todo.Todo
	Loading bool
	Err     string
}

// Listener receives a snapshot after every state transition. Listeners are
// invoked synchronously in registration order, outside the store's lock.
type Listener func(Snapshot)

// Store caches the last-fetched collection and republishes state to
// observers after every transition.
//
// Fetch drives the loading/error lifecycle. Mutations (Add, Edit, Toggle,
// Remove) patch the cache on success; on failure they surface the error
// message but leave the cached list untouched, so the UI keeps showing the
// last known good state.
type Store struct {
	api    ports.TodoAPI
	logger *slog.Logger

	mu        sync.Mutex
	todos     []todo.Todo
	loading   bool
	errMsg    string
	listeners []Listener
}

// New creates an empty store backed by the given API client.
func New(api ports.TodoAPI, logger *slog.Logger) *Store {
	return &Store{
		api:    api,
		logger: logger,
	}
}

// Subscribe registers a listener and immediately delivers the current
// snapshot so new observers do not miss state that predates them.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	fn(snap)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Fetch replaces the cache with the server's collection.
//
// It publishes twice: once entering the loading state (error cleared) and
// once leaving it. On failure the previous cache is kept and the error
// message is set; a later successful Fetch clears it.
func (s *Store) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.publish()

	todos, err := s.api.ListTodos(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = userMessage(err)
		s.logger.ErrorContext(ctx, "fetch failed", slog.Any("error", err))
	} else {
		s.todos = todos
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.publish()
}

// Add creates a todo from the draft and appends the server's record, with
// its assigned id, to the cache.
func (s *Store) Add(ctx context.Context, draft todo.Draft) {
	created, err := s.api.CreateTodo(ctx, draft)
	if err != nil {
		s.fail(ctx, "add failed", err)
		return
	}

	s.mu.Lock()
	s.todos = append(s.todos, *created)
	s.errMsg = ""
	s.mu.Unlock()
	s.publish()
}

// Edit sends the record's full desired state to the server and replaces the
// cached record with the same id. A record absent from the cache is still
// updated on the server but causes no cache change.
func (s *Store) Edit(ctx context.Context, t todo.Todo) {
	updated, err := s.api.UpdateTodo(ctx, t.ID, &t)
	if err != nil {
		s.fail(ctx, "edit failed", err)
		return
	}

	s.mu.Lock()
	for i := range s.todos {
		if s.todos[i].ID == updated.ID {
			s.todos[i] = *updated
			break
		}
	}
	s.errMsg = ""
	s.mu.Unlock()
	s.publish()
}

// Toggle flips the completed flag of the cached record with the given id and
// pushes the result to the server as a wholesale update. Unknown ids are
// ignored.
func (s *Store) Toggle(ctx context.Context, id int64) {
	s.mu.Lock()
	var target *todo.Todo
	for i := range s.todos {
		if s.todos[i].ID == id {
			copied := s.todos[i]
			target = &copied
			break
		}
	}
	s.mu.Unlock()

	if target == nil {
		return
	}

	target.Completed = !target.Completed
	s.Edit(ctx, *target)
}

// Remove deletes the record on the server and drops it from the cache.
func (s *Store) Remove(ctx context.Context, id int64) {
	if err := s.api.DeleteTodo(ctx, id); err != nil {
		s.fail(ctx, "remove failed", err)
		return
	}

	s.mu.Lock()
	s.todos = slices.DeleteFunc(s.todos, func(t todo.Todo) bool {
		return t.ID == id
	})
	s.errMsg = ""
	s.mu.Unlock()
	s.publish()
}

// fail records a mutation failure: the cache stays as it was, the error
// message becomes visible, and the full error is logged.
func (s *Store) fail(ctx context.Context, op string, err error) {
	s.logger.ErrorContext(ctx, op, slog.Any("error", err))

	s.mu.Lock()
	s.errMsg = userMessage(err)
	s.mu.Unlock()
	s.publish()
}

// publish delivers the current snapshot to all listeners, outside the lock.
func (s *Store) publish() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Todos:   slices.Clone(s.todos),
		Loading: s.loading,
		Err:     s.errMsg,
	}
}

// userMessage strips the leading per-operation wrapper ("load failed: ",
// "create failed: ", ...) so the UI shows the cause, not the plumbing.
func userMessage(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, "failed: "); ok {
		return rest
	}
	return msg
}
