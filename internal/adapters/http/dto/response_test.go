package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ybrd/todo/internal/adapters/http/dto"
	"github.com/ybrd/todo/internal/domain/todo"
)

func TestToTodoResponse_Complete(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)

	resp := dto.ToTodoResponse(&todo.Todo{
		ID:          7,
		Title:       "write report",
		Description: "quarterly numbers",
		Completed:   true,
		CreatedAt:   created,
		UpdatedAt:   updated,
	})

	if resp.ID != 7 || resp.Title != "write report" || !resp.Completed {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.CreatedAt != "2026-03-01T10:00:00Z" {
		t.Errorf("CreatedAt = %q, want RFC 3339 UTC", resp.CreatedAt)
	}
	if resp.UpdatedAt != "2026-03-02T11:30:00Z" {
		t.Errorf("UpdatedAt = %q, want RFC 3339 UTC", resp.UpdatedAt)
	}
}

func TestToTodoResponse_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	resp := dto.ToTodoResponse(&todo.Todo{
		ID:        1,
		Title:     "minimal",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(b)
	if strings.Contains(s, "updated_at") {
		t.Errorf("never-updated todo should omit updated_at: %s", s)
	}
	if strings.Contains(s, "description") {
		t.Errorf("empty description should be omitted: %s", s)
	}
	if !strings.Contains(s, `"completed":false`) {
		t.Errorf("completed must always be present: %s", s)
	}
}

func TestToTodoListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToTodoListResponse(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("empty list = %s, want []", b)
	}
}

func TestToTodoListResponse_NonUTCTimestampNormalized(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	resp := dto.ToTodoListResponse([]todo.Todo{{
		ID:        1,
		Title:     "tz",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, loc),
	}})

	if resp[0].CreatedAt != "2026-03-01T10:00:00Z" {
		t.Errorf("CreatedAt = %q, want UTC normalization", resp[0].CreatedAt)
	}
}
