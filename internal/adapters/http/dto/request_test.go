package dto_test

import (
	"errors"
	"testing"

	"github.com/ybrd/todo/internal/adapters/http/dto"
	"github.com/ybrd/todo/internal/domain"
)

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.CreateTodoRequest
		wantErr bool
	}{
		{name: "valid", req: dto.CreateTodoRequest{Title: "buy milk"}},
		{name: "valid with description", req: dto.CreateTodoRequest{Title: "buy milk", Description: "2 liters"}},
		{name: "missing title", req: dto.CreateTodoRequest{Description: "orphan"}, wantErr: true},
		{name: "whitespace title", req: dto.CreateTodoRequest{Title: "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("Validate() = %v, want ErrValidation", err)
				}
				var verr *domain.ValidationError
				if !errors.As(err, &verr) || verr.Fields["title"] == "" {
					t.Errorf("want title field detail, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreateTodoRequest_ToDraftTrimsTitle(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{Title: "  buy milk  ", Description: "2 liters"}

	draft := req.ToDraft()
	if draft.Title != "buy milk" {
		t.Errorf("Title = %q, want trimmed", draft.Title)
	}
	if draft.Description != "2 liters" {
		t.Errorf("Description = %q", draft.Description)
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.UpdateTodoRequest{Title: "keep", Completed: true}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := dto.UpdateTodoRequest{Completed: true}
	if err := missing.Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Validate() = %v, want ErrValidation", err)
	}
}

func TestUpdateTodoRequest_ToTodoIsWholesale(t *testing.T) {
	t.Parallel()

	// An absent description carries through as empty, clearing any stored one.
	req := dto.UpdateTodoRequest{Title: "new title", Completed: true}

	todo := req.ToTodo()
	if todo.Title != "new title" || todo.Description != "" || !todo.Completed {
		t.Errorf("unexpected todo: %+v", todo)
	}
	if todo.ID != 0 {
		t.Errorf("ID = %d, want 0 (set by handler)", todo.ID)
	}
}
