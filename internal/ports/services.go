package ports

import (
	"context"

	"github.com/ybrd/todo/internal/domain/todo"
)

// TodoService defines the service port for todo operations. Implemented by
// the application layer; called by inbound HTTP handlers. The service adds
// validation and logging on top of the store; it contains no HTTP concerns.
type TodoService interface {
	// ListTodos returns all todos in insertion order.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by id.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo validates the draft and creates a new todo, returning the
	// record with server-assigned fields (id, createdAt, completed=false).
	// Returns domain.ErrValidation if the title is missing.
	CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error)

	// UpdateTodo validates and replaces the mutable fields of an existing
	// todo, returning the updated record with updatedAt stamped.
	// Returns domain.ErrNotFound if the todo does not exist and
	// domain.ErrValidation if the title is missing.
	UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// DeleteTodo permanently removes a todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
