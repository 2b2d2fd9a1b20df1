package rest

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ybrd/todo/internal/domain/todo"
)

// todoDTO is the wire representation of a todo, decoded tolerantly: servers
// in the wild disagree on timestamp key casing and id types, and a malformed
// record should degrade gracefully rather than fail the whole response.
//
// Decoding rules:
//   - id: accepts a JSON number (int or float, truncated) or a numeric
//     string; anything else leaves the id absent (zero).
//   - created_at/createdAt and updated_at/updatedAt are both accepted, with
//     the snake_case key winning when both are present.
//   - unparseable created_at falls back to the decode time so ordering stays
//     stable; unparseable updated_at stays absent.
type todoDTO struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// createRequestDTO is the wire payload for POST /api/v1/todos.
type createRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// updateRequestDTO is the wire payload for PUT /api/v1/todos/{id}. The
// description is always sent, empty or not, because updates are wholesale.
type updateRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (d *todoDTO) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID           json.RawMessage `json:"id"`
		Title        string          `json:"title"`
		Description  string          `json:"description"`
		Completed    bool            `json:"completed"`
		CreatedSnake string          `json:"created_at"`
		CreatedCamel string          `json:"createdAt"`
		UpdatedSnake string          `json:"updated_at"`
		UpdatedCamel string          `json:"updatedAt"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	d.ID = coerceID(raw.ID)
	d.Title = raw.Title
	d.Description = raw.Description
	d.Completed = raw.Completed
	d.CreatedAt = parseTime(firstNonEmpty(raw.CreatedSnake, raw.CreatedCamel))
	d.UpdatedAt = parseTime(firstNonEmpty(raw.UpdatedSnake, raw.UpdatedCamel))

	return nil
}

// toDomain converts the DTO to a domain Todo. A missing or unparseable
// created_at is replaced with now so the record still sorts and displays.
func (d *todoDTO) toDomain(now func() time.Time) todo.Todo {
	t := todo.Todo{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now().UTC()
	}
	return t
}

// coerceID extracts an int64 id from a raw JSON value. Numbers are accepted
// directly (floats truncated); numeric strings are parsed. Anything else
// yields zero, meaning absent.
func coerceID(raw json.RawMessage) int64 {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}

	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// parseTime parses an RFC 3339 timestamp, returning the zero time on
// failure. Fractional seconds are accepted.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
