package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ybrd/todo/internal/adapters/http/dto"
	"github.com/ybrd/todo/internal/adapters/http/handlers"
	"github.com/ybrd/todo/internal/domain"
	"github.com/ybrd/todo/internal/domain/todo"
)

var testCreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestListTodos(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, listFn: func(context.Context) ([]todo.Todo, error) {
		return []todo.Todo{
			{ID: 1, Title: "first", CreatedAt: testCreatedAt},
			{ID: 2, Title: "second", Completed: true, CreatedAt: testCreatedAt},
		}, nil
	}}
	h := handlers.NewTodoHandler(svc)

	w := httptest.NewRecorder()
	h.ListTodos(w, httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))

	requireStatus(t, w, http.StatusOK)

	// The list contract is a bare JSON array, not a wrapper object.
	var got []dto.TodoResponse
	decodeJSON(t, w, &got)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("order = [%d %d], want insertion order [1 2]", got[0].ID, got[1].ID)
	}
}

func TestListTodos_Empty(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, listFn: func(context.Context) ([]todo.Todo, error) {
		return []todo.Todo{}, nil
	}}
	h := handlers.NewTodoHandler(svc)

	w := httptest.NewRecorder()
	h.ListTodos(w, httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))

	requireStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestGetTodo(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, getFn: func(_ context.Context, id int64) (*todo.Todo, error) {
		if id != 4 {
			t.Errorf("id = %d, want 4", id)
		}
		return &todo.Todo{ID: 4, Title: "found", CreatedAt: testCreatedAt}, nil
	}}
	h := handlers.NewTodoHandler(svc)

	r := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/todos/4", nil), map[string]string{"id": "4"})
	w := httptest.NewRecorder()
	h.GetTodo(w, r)

	requireStatus(t, w, http.StatusOK)

	var got dto.TodoResponse
	decodeJSON(t, w, &got)
	if got.ID != 4 || got.Title != "found" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestGetTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, getFn: func(_ context.Context, id int64) (*todo.Todo, error) {
		return nil, domain.ErrNotFound
	}}
	h := handlers.NewTodoHandler(svc)

	r := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/todos/99", nil), map[string]string{"id": "99"})
	w := httptest.NewRecorder()
	h.GetTodo(w, r)

	requireStatus(t, w, http.StatusNotFound)
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGetTodo_MalformedID(t *testing.T) {
	t.Parallel()

	h := handlers.NewTodoHandler(&stubService{t: t})

	r := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/todos/abc", nil), map[string]string{"id": "abc"})
	w := httptest.NewRecorder()
	h.GetTodo(w, r)

	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreateTodo(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, createFn: func(_ context.Context, draft todo.Draft) (*todo.Todo, error) {
		if draft.Title != "buy milk" {
			t.Errorf("draft title = %q", draft.Title)
		}
		return &todo.Todo{ID: 10, Title: draft.Title, Description: draft.Description, CreatedAt: testCreatedAt}, nil
	}}
	h := handlers.NewTodoHandler(svc)

	body := jsonBody(t, dto.CreateTodoRequest{Title: "buy milk", Description: "2 liters"})
	w := httptest.NewRecorder()
	h.CreateTodo(w, httptest.NewRequest(http.MethodPost, "/api/v1/todos", body))

	requireStatus(t, w, http.StatusCreated)

	var got dto.TodoResponse
	decodeJSON(t, w, &got)
	if got.ID != 10 || got.Completed {
		t.Errorf("unexpected body: %+v", got)
	}
	if got.UpdatedAt != "" {
		t.Errorf("fresh todo should have no updated_at, got %q", got.UpdatedAt)
	}
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	t.Parallel()

	// Service must not be reached on validation failure.
	h := handlers.NewTodoHandler(&stubService{t: t})

	body := jsonBody(t, dto.CreateTodoRequest{Description: "no title"})
	w := httptest.NewRecorder()
	h.CreateTodo(w, httptest.NewRequest(http.MethodPost, "/api/v1/todos", body))

	requireStatus(t, w, http.StatusBadRequest)

	var resp dto.ErrorResponse
	decodeJSON(t, w, &resp)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.title" {
		t.Errorf("unexpected validation details: %+v", resp.Errors)
	}
}

func TestCreateTodo_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := handlers.NewTodoHandler(&stubService{t: t})

	w := httptest.NewRecorder()
	h.CreateTodo(w, httptest.NewRequest(http.MethodPost, "/api/v1/todos", strings.NewReader("{not json")))

	requireStatus(t, w, http.StatusBadRequest)
}

func TestUpdateTodo(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, updateFn: func(_ context.Context, id int64, in *todo.Todo) (*todo.Todo, error) {
		if id != 4 {
			t.Errorf("id = %d, want 4", id)
		}
		if in.Description != "" {
			t.Errorf("description = %q, want cleared by wholesale replacement", in.Description)
		}
		return &todo.Todo{
			ID: 4, Title: in.Title, Completed: in.Completed,
			CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt.Add(time.Hour),
		}, nil
	}}
	h := handlers.NewTodoHandler(svc)

	body := jsonBody(t, dto.UpdateTodoRequest{Title: "renamed", Completed: true})
	r := withChiParams(httptest.NewRequest(http.MethodPut, "/api/v1/todos/4", body), map[string]string{"id": "4"})
	w := httptest.NewRecorder()
	h.UpdateTodo(w, r)

	requireStatus(t, w, http.StatusOK)

	var got dto.TodoResponse
	decodeJSON(t, w, &got)
	if got.Title != "renamed" || !got.Completed {
		t.Errorf("unexpected body: %+v", got)
	}
	if got.UpdatedAt == "" {
		t.Error("updated todo should include updated_at")
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, updateFn: func(context.Context, int64, *todo.Todo) (*todo.Todo, error) {
		return nil, domain.ErrNotFound
	}}
	h := handlers.NewTodoHandler(svc)

	body := jsonBody(t, dto.UpdateTodoRequest{Title: "ghost"})
	r := withChiParams(httptest.NewRequest(http.MethodPut, "/api/v1/todos/99", body), map[string]string{"id": "99"})
	w := httptest.NewRecorder()
	h.UpdateTodo(w, r)

	requireStatus(t, w, http.StatusNotFound)
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, deleteFn: func(_ context.Context, id int64) error {
		if id != 4 {
			t.Errorf("id = %d, want 4", id)
		}
		return nil
	}}
	h := handlers.NewTodoHandler(svc)

	r := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/todos/4", nil), map[string]string{"id": "4"})
	w := httptest.NewRecorder()
	h.DeleteTodo(w, r)

	// Success is 200 with an empty body.
	requireStatus(t, w, http.StatusOK)
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := &stubService{t: t, deleteFn: func(context.Context, int64) error {
		return domain.ErrNotFound
	}}
	h := handlers.NewTodoHandler(svc)

	r := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/todos/99", nil), map[string]string{"id": "99"})
	w := httptest.NewRecorder()
	h.DeleteTodo(w, r)

	requireStatus(t, w, http.StatusNotFound)
}
