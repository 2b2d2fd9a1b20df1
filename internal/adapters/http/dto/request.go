package dto

import (
	"strings"

	"github.com/ybrd/todo/internal/domain"
	"github.com/ybrd/todo/internal/domain/todo"
)

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDraft converts the request to a domain draft.
func (r *CreateTodoRequest) ToDraft() todo.Draft {
	return todo.Draft{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
	}
}

// UpdateTodoRequest represents the JSON body for replacing a todo. Updates
// are wholesale: every mutable field is taken from the request, so an absent
// description clears the stored one.
type UpdateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToTodo converts the request to a domain Todo carrying the replacement
// field values. ID and timestamps are owned by the service and store.
func (r *UpdateTodoRequest) ToTodo() todo.Todo {
	return todo.Todo{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Completed:   r.Completed,
	}
}
