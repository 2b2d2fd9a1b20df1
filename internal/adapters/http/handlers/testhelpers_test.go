package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ybrd/todo/internal/domain/todo"
)

// stubService is a hand-written ports.TodoService stub. Unset operations
// fail the test when called.
type stubService struct {
	t        *testing.T
	listFn   func(ctx context.Context) ([]todo.Todo, error)
	getFn    func(ctx context.Context, id int64) (*todo.Todo, error)
	createFn func(ctx context.Context, draft todo.Draft) (*todo.Todo, error)
	updateFn func(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	if s.listFn == nil {
		s.t.Fatal("unexpected ListTodos call")
	}
	return s.listFn(ctx)
}

func (s *stubService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	if s.getFn == nil {
		s.t.Fatal("unexpected GetTodo call")
	}
	return s.getFn(ctx, id)
}

func (s *stubService) CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error) {
	if s.createFn == nil {
		s.t.Fatal("unexpected CreateTodo call")
	}
	return s.createFn(ctx, draft)
}

func (s *stubService) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	if s.updateFn == nil {
		s.t.Fatal("unexpected UpdateTodo call")
	}
	return s.updateFn(ctx, id, t)
}

func (s *stubService) DeleteTodo(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		s.t.Fatal("unexpected DeleteTodo call")
	}
	return s.deleteFn(ctx, id)
}

// jsonBody marshals v into a request body reader.
func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling body: %v", err)
	}
	return bytes.NewReader(b)
}

// withChiParams attaches chi URL params to the request context so handlers
// can read them outside a router.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// requireStatus fails the test when the recorded status differs.
func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, want, w.Body.String())
	}
}

// decodeJSON unmarshals the response body into dst.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response: %v\n%s", err, w.Body.String())
	}
}
