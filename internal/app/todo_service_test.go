package app_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ybrd/todo/internal/app"
	"github.com/ybrd/todo/internal/domain"
	"github.com/ybrd/todo/internal/domain/todo"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// stubStore is a hand-written ports.TodoStore for service tests. Each field
// overrides one operation; unset operations fail the test if called.
type stubStore struct {
	t *testing.T

	listFn   func(ctx context.Context) ([]todo.Todo, error)
	getFn    func(ctx context.Context, id int64) (*todo.Todo, error)
	createFn func(ctx context.Context, draft todo.Draft) (*todo.Todo, error)
	updateFn func(ctx context.Context, id int64, item *todo.Todo) (*todo.Todo, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubStore) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	if s.listFn == nil {
		s.t.Fatal("unexpected ListTodos call")
	}
	return s.listFn(ctx)
}

func (s *stubStore) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	if s.getFn == nil {
		s.t.Fatal("unexpected GetTodo call")
	}
	return s.getFn(ctx, id)
}

func (s *stubStore) CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error) {
	if s.createFn == nil {
		s.t.Fatal("unexpected CreateTodo call")
	}
	return s.createFn(ctx, draft)
}

func (s *stubStore) UpdateTodo(ctx context.Context, id int64, item *todo.Todo) (*todo.Todo, error) {
	if s.updateFn == nil {
		s.t.Fatal("unexpected UpdateTodo call")
	}
	return s.updateFn(ctx, id, item)
}

func (s *stubStore) DeleteTodo(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		s.t.Fatal("unexpected DeleteTodo call")
	}
	return s.deleteFn(ctx, id)
}

func newService(t *testing.T, store *stubStore) *app.TodoService {
	t.Helper()
	store.t = t
	return app.NewTodoService(store, slog.New(slog.DiscardHandler))
}

func TestListTodos(t *testing.T) {
	t.Parallel()

	want := []todo.Todo{{ID: 1, Title: "Buy milk", CreatedAt: testTime}}
	svc := newService(t, &stubStore{
		listFn: func(context.Context) ([]todo.Todo, error) { return want, nil },
	})

	got, err := svc.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Buy milk" {
		t.Errorf("ListTodos() = %+v, want %+v", got, want)
	}
}

func TestCreateTodo_AssignsServerFields(t *testing.T) {
	t.Parallel()

	svc := newService(t, &stubStore{
		createFn: func(_ context.Context, draft todo.Draft) (*todo.Todo, error) {
			return &todo.Todo{
				ID:          7,
				Title:       draft.Title,
				Description: draft.Description,
				Completed:   false,
				CreatedAt:   testTime,
			}, nil
		},
	})

	created, err := svc.CreateTodo(context.Background(), todo.Draft{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("created.ID = 0, want server-assigned id")
	}
	if created.Completed {
		t.Error("created.Completed = true, want false")
	}
	if created.CreatedAt.IsZero() {
		t.Error("created.CreatedAt is zero")
	}
	if created.Updated() {
		t.Error("created.UpdatedAt set on a fresh record")
	}
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	t.Parallel()

	// No createFn: the store must not be reached.
	svc := newService(t, &stubStore{})

	_, err := svc.CreateTodo(context.Background(), todo.Draft{Description: "no title"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateTodo() error = %v, want ErrValidation", err)
	}
}

func TestUpdateTodo_PreservesIdentity(t *testing.T) {
	t.Parallel()

	svc := newService(t, &stubStore{
		updateFn: func(_ context.Context, id int64, item *todo.Todo) (*todo.Todo, error) {
			return &todo.Todo{
				ID:          id,
				Title:       item.Title,
				Description: item.Description,
				Completed:   item.Completed,
				CreatedAt:   testTime,
				UpdatedAt:   testTime.Add(time.Hour),
			}, nil
		},
	})

	updated, err := svc.UpdateTodo(context.Background(), 7, &todo.Todo{Title: "Buy milk", Completed: true})
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if updated.ID != 7 {
		t.Errorf("updated.ID = %d, want 7", updated.ID)
	}
	if !updated.CreatedAt.Equal(testTime) {
		t.Errorf("updated.CreatedAt = %v, want unchanged %v", updated.CreatedAt, testTime)
	}
	if !updated.Updated() {
		t.Error("updated.UpdatedAt not stamped")
	}
}

func TestUpdateTodo_MissingTitle(t *testing.T) {
	t.Parallel()

	svc := newService(t, &stubStore{})

	_, err := svc.UpdateTodo(context.Background(), 7, &todo.Todo{Title: "  "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateTodo() error = %v, want ErrValidation", err)
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := newService(t, &stubStore{
		updateFn: func(context.Context, int64, *todo.Todo) (*todo.Todo, error) {
			return nil, domain.ErrNotFound
		},
	})

	_, err := svc.UpdateTodo(context.Background(), 9999, &todo.Todo{Title: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateTodo() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := newService(t, &stubStore{
		deleteFn: func(context.Context, int64) error { return domain.ErrNotFound },
	})

	if err := svc.DeleteTodo(context.Background(), 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteTodo() error = %v, want ErrNotFound", err)
	}
}
