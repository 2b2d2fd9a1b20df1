// Package todo defines the Todo entity, the single record type the
// application persists and displays.
package todo

import (
	"strings"
	"time"

	"github.com/ybrd/todo/internal/domain"
)

// Todo is a single task item. ID and CreatedAt are assigned by the server on
// creation and never change afterwards. UpdatedAt is zero until the first
// successful update. Description may be empty, which serializes as absent.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft holds the caller-supplied fields for a create request. Everything
// else (id, completed=false, createdAt) is assigned server-side.
type Draft struct {
	Title       string
	Description string
}

// Validate checks business rules for the Todo entity. Title is the only
// required field. Returns a *domain.ValidationError (wrapping
// domain.ErrValidation) with per-field details, or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks that the draft carries a non-empty title.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	}
	return nil
}

// Updated reports whether the record has been modified since creation.
func (t *Todo) Updated() bool {
	return !t.UpdatedAt.IsZero()
}
