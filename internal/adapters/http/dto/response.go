// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter.
package dto

import (
	"time"

	"github.com/ybrd/todo/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses. Timestamps are
// RFC 3339 in UTC; description and updated_at are omitted when empty so a
// never-updated todo serializes without an updated_at field.
type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.Updated() {
		resp.UpdatedAt = t.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// ToTodoListResponse converts domain todos to the list payload. The list
// endpoint returns a bare JSON array; an empty list serializes as [] rather
// than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}
