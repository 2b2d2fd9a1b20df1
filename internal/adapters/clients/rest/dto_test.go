package rest

import (
	"encoding/json"
	"testing"
	"time"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func decodeDTO(t *testing.T, raw string) todoDTO {
	t.Helper()
	var d todoDTO
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return d
}

func TestTodoDTO_Decode(t *testing.T) {
	t.Parallel()

	d := decodeDTO(t, `{"id":4,"title":"buy milk","description":"2 liters","completed":true,"created_at":"2026-03-01T10:00:00Z","updated_at":"2026-03-01T11:00:00Z"}`)

	if d.ID != 4 || d.Title != "buy milk" || !d.Completed {
		t.Errorf("unexpected dto: %+v", d)
	}
	if d.CreatedAt.Hour() != 10 || d.UpdatedAt.Hour() != 11 {
		t.Errorf("timestamps wrong: %+v", d)
	}
}

func TestTodoDTO_CamelCaseTimestamps(t *testing.T) {
	t.Parallel()

	d := decodeDTO(t, `{"id":1,"title":"x","createdAt":"2026-03-01T10:00:00Z","updatedAt":"2026-03-01T11:00:00Z"}`)

	if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
		t.Errorf("camelCase timestamps not accepted: %+v", d)
	}
}

func TestTodoDTO_SnakeCaseWinsOverCamel(t *testing.T) {
	t.Parallel()

	d := decodeDTO(t, `{"id":1,"title":"x","created_at":"2026-03-01T10:00:00Z","createdAt":"2020-01-01T00:00:00Z"}`)

	if d.CreatedAt.Year() != 2026 {
		t.Errorf("CreatedAt = %v, want snake_case value", d.CreatedAt)
	}
}

func TestTodoDTO_IDCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{name: "integer", raw: `{"id":7,"title":"x"}`, want: 7},
		{name: "float", raw: `{"id":7.0,"title":"x"}`, want: 7},
		{name: "numeric string", raw: `{"id":"7","title":"x"}`, want: 7},
		{name: "non-numeric string", raw: `{"id":"abc","title":"x"}`, want: 0},
		{name: "null", raw: `{"id":null,"title":"x"}`, want: 0},
		{name: "missing", raw: `{"title":"x"}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if d := decodeDTO(t, tt.raw); d.ID != tt.want {
				t.Errorf("ID = %d, want %d", d.ID, tt.want)
			}
		})
	}
}

func TestTodoDTO_ToDomain_CreatedAtFallback(t *testing.T) {
	t.Parallel()

	d := decodeDTO(t, `{"id":1,"title":"x","created_at":"garbage"}`)

	got := d.toDomain(fixedNow)
	if !got.CreatedAt.Equal(fixedNow()) {
		t.Errorf("CreatedAt = %v, want fallback to now", got.CreatedAt)
	}
	// updated_at has no fallback; absent stays absent.
	if got.Updated() {
		t.Errorf("UpdatedAt = %v, want absent", got.UpdatedAt)
	}
}

func TestTodoDTO_ToDomain_UnparseableUpdatedAtStaysAbsent(t *testing.T) {
	t.Parallel()

	d := decodeDTO(t, `{"id":1,"title":"x","created_at":"2026-03-01T10:00:00Z","updated_at":"not-a-time"}`)

	if got := d.toDomain(fixedNow); got.Updated() {
		t.Errorf("UpdatedAt = %v, want absent", got.UpdatedAt)
	}
}
