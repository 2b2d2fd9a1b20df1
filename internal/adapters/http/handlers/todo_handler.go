// Package handlers provides the HTTP request handlers for the todo API and
// the health endpoints.
package handlers

import (
	"net/http"

	"github.com/ybrd/todo/internal/adapters/http/dto"
	"github.com/ybrd/todo/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /api/v1/todos. The response body is a bare JSON
// array in insertion order.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.ListTodos(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.service.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateTodo(r.Context(), req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// UpdateTodo handles PUT /api/v1/todos/{id}. The update is a wholesale
// replacement of the todo's mutable fields.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	replacement := req.ToTodo()
	updated, err := h.service.UpdateTodo(r.Context(), id, &replacement)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}. A successful delete returns
// 200 with an empty body.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
