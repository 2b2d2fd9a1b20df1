package ports

import (
	"context"

	"github.com/ybrd/todo/internal/domain/todo"
)

// TodoStore is the server-side persistence port. Implemented by the SQLite
// adapter; called by the application layer.
//
// The store is the authority for identity and timestamps: Create assigns a
// unique id (never reused after deletion), sets completed=false and stamps
// createdAt; Update stamps updatedAt and preserves id and createdAt.
type TodoStore interface {
	// ListTodos returns all records in insertion order (ascending id).
	// Returns an empty slice when no records exist.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single record by id.
	// Returns domain.ErrNotFound if the id does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo persists a new record from the draft and returns it with
	// server-assigned fields populated.
	CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error)

	// UpdateTodo overwrites title, description and completed wholesale
	// (not a sparse patch), stamps updatedAt, and returns the full record.
	// Returns domain.ErrNotFound if the id does not exist.
	UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// DeleteTodo permanently removes a record.
	// Returns domain.ErrNotFound if the id does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
