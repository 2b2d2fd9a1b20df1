// Package sqlite implements the todo store on an embedded SQLite database
// via database/sql. It is the authority for record identity and timestamps:
// ids come from an AUTOINCREMENT column (never reused after deletion),
// created_at is stamped once on insert, and updated_at stays NULL until the
// first update.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/ybrd/todo/internal/domain"
	"github.com/ybrd/todo/internal/domain/todo"
	"github.com/ybrd/todo/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// schema creates the todos table. AUTOINCREMENT guarantees monotonically
// increasing ids so a deleted id is never handed out again.
const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT    NOT NULL,
	description TEXT    NOT NULL DEFAULT '',
	completed   INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT    NOT NULL,
	updated_at  TEXT
);`

// timeLayout is the storage format for timestamps (UTC, nanosecond precision).
const timeLayout = time.RFC3339Nano

// Store is a SQLite-backed implementation of ports.TodoStore.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if necessary) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral in-process database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// surprises under the default journal mode.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// ListTodos returns all records ordered by id (insertion order). Returns an
// empty slice when the table is empty.
func (s *Store) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, completed, created_at, updated_at
		 FROM todos ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	todos := []todo.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}

	return todos, nil
}

// GetTodo returns a single record by id, or domain.ErrNotFound.
func (s *Store) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, completed, created_at, updated_at
		 FROM todos WHERE id = ?`, id)

	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// CreateTodo inserts a new record. The store assigns the id, sets
// completed=false and stamps created_at; updated_at stays NULL.
func (s *Store) CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error) {
	createdAt := s.now().UTC()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (title, description, completed, created_at)
		 VALUES (?, ?, 0, ?)`,
		draft.Title, draft.Description, createdAt.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}

	return &todo.Todo{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Completed:   false,
		CreatedAt:   createdAt,
	}, nil
}

// UpdateTodo overwrites title, description and completed wholesale and stamps
// updated_at. id and created_at are preserved. Returns domain.ErrNotFound if
// no row matches.
func (s *Store) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	updatedAt := s.now().UTC()

	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, t.Completed, updatedAt.Format(timeLayout), id)
	if err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reading rows affected: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	return s.GetTodo(ctx, id)
}

// DeleteTodo permanently removes a record. Returns domain.ErrNotFound if no
// row matches.
func (s *Store) DeleteTodo(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTodo reads one row into a Todo, converting the stored timestamp
// strings back to time.Time. A NULL updated_at maps to the zero time.
func scanTodo(row scanner) (*todo.Todo, error) {
	var (
		t         todo.Todo
		createdAt string
		updatedAt sql.NullString
	)

	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning todo: %w", err)
	}

	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	t.CreatedAt = parsed

	if updatedAt.Valid {
		parsed, err := time.Parse(timeLayout, updatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing updated_at %q: %w", updatedAt.String, err)
		}
		t.UpdatedAt = parsed
	}

	return &t, nil
}
