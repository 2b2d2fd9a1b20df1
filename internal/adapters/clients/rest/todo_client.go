package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ybrd/todo/internal/domain/todo"
	"github.com/ybrd/todo/internal/platform/httpclient"
	"github.com/ybrd/todo/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoAPI = (*TodoClient)(nil)

// Failure prefixes per operation. The state holder surfaces these verbatim
// to the user, so they read as plain English.
const (
	msgLoadFailed   = "load failed"
	msgCreateFailed = "create failed"
	msgUpdateFailed = "update failed"
	msgDeleteFailed = "delete failed"
)

// TodoClient is the outbound adapter for the todo server's REST API,
// implementing [ports.TodoAPI]. Each call is bounded by the underlying
// client's timeout; failures come back as domain errors wrapped with an
// operation prefix.
type TodoClient struct {
	req    *Requester
	logger *slog.Logger
	now    func() time.Time
}

// NewTodoClient creates a TodoClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point at the server root
// (e.g. "http://localhost:8080").
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{
		req:    NewRequester(client, logger),
		logger: logger,
		now:    time.Now,
	}
}

// ListTodos fetches the full collection from GET /api/v1/todos. The server
// returns a bare JSON array; records with unusable timestamps are repaired
// rather than dropped.
func (c *TodoClient) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var dtos []todoDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v1/todos", http.StatusOK, nil, &dtos); err != nil {
		return nil, fmt.Errorf("%s: %w", msgLoadFailed, err)
	}

	todos := make([]todo.Todo, len(dtos))
	for i := range dtos {
		todos[i] = dtos[i].toDomain(c.now)
	}
	return todos, nil
}

// GetTodo fetches a single todo from GET /api/v1/todos/{id}.
// Returns domain.ErrNotFound (wrapped) for a 404.
func (c *TodoClient) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	path := fmt.Sprintf("/api/v1/todos/%d", id)

	var dto todoDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, fmt.Errorf("%s: %w", msgLoadFailed, err)
	}
	result := dto.toDomain(c.now)
	return &result, nil
}

// CreateTodo posts a new record to POST /api/v1/todos and returns the
// created record with its server-assigned id.
func (c *TodoClient) CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error) {
	reqDTO := createRequestDTO{Title: draft.Title, Description: draft.Description}

	var respDTO todoDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/todos", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, fmt.Errorf("%s: %w", msgCreateFailed, err)
	}
	result := respDTO.toDomain(c.now)
	return &result, nil
}

// UpdateTodo puts the full desired state to PUT /api/v1/todos/{id} and
// returns the updated record. Returns domain.ErrNotFound (wrapped) for a
// 404.
func (c *TodoClient) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	path := fmt.Sprintf("/api/v1/todos/%d", id)
	reqDTO := updateRequestDTO{Title: t.Title, Description: t.Description, Completed: t.Completed}

	var respDTO todoDTO
	if err := c.req.Do(ctx, http.MethodPut, path, http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, fmt.Errorf("%s: %w", msgUpdateFailed, err)
	}
	result := respDTO.toDomain(c.now)
	return &result, nil
}

// DeleteTodo deletes a record via DELETE /api/v1/todos/{id}. A successful
// delete returns 200 with no body.
func (c *TodoClient) DeleteTodo(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/todos/%d", id)
	if err := c.req.Do(ctx, http.MethodDelete, path, http.StatusOK, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", msgDeleteFailed, err)
	}
	return nil
}
