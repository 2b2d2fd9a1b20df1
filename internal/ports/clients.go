package ports

import (
	"context"

	"github.com/ybrd/todo/internal/domain/todo"
)

// TodoAPI defines the client port for the remote todo API. Implemented by
// the REST adapter; called by the client-side state holder.
//
// Every method is bounded by the client's fixed timeout. Failures are
// normalized: domain.ErrTimeout when the time budget is exceeded (the server
// may be unreachable), domain.ErrNotFound for 404s, domain.ErrValidation for
// rejected payloads, and domain.ErrUnavailable for server errors. Each
// method additionally wraps failures with an operation tag ("load failed",
// "create failed", "update failed", "delete failed").
type TodoAPI interface {
	// ListTodos fetches the full collection.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo fetches a single todo by id.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo posts a record without an id and returns the created
	// record with the server-assigned id.
	CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error)

	// UpdateTodo puts the full desired state of the record (title,
	// description, completed) and returns the updated record.
	UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// DeleteTodo deletes a record; no body is expected on success.
	DeleteTodo(ctx context.Context, id int64) error
}
