// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/ybrd/todo/internal/domain/todo"
	"github.com/ybrd/todo/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService over the store port. It enforces
// validation (title required) before writes, adds structured logging, and
// contains no persistence or HTTP concerns.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService backed by the given store.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// ListTodos returns all todos in insertion order.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	todos, err := s.store.ListTodos(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return todos, nil
}

// GetTodo returns a single todo by id.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	t, err := s.store.GetTodo(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// CreateTodo validates the draft and persists a new todo. The store assigns
// id and createdAt and sets completed=false.
func (s *TodoService) CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.CreateTodo(ctx, draft)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo created", slog.Int64("todo_id", created.ID))
	return created, nil
}

// UpdateTodo validates and replaces the mutable fields of an existing todo.
// Full replacement semantics: title, description and completed are all
// overwritten with the given values; updatedAt is stamped by the store.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateTodo(ctx, id, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo updated", slog.Int64("todo_id", id))
	return updated, nil
}

// DeleteTodo permanently removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.store.DeleteTodo(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "todo deleted", slog.Int64("todo_id", id))
	return nil
}
