package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"subcast/internal/annotation"
	"subcast/internal/characters"
	"subcast/internal/config"
)

// ErrNotFound is returned when no session exists for the requested filename.
var ErrNotFound = errors.New("session not found")

// Store manages session persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Summary describes one saved session without its full state payload.
type Summary struct {
	ID             string
	Filename       string
	LineCount      int
	AnnotatedCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Open initializes or connects to the session database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "sessions.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save upserts a session keyed by its filename, stamping the state with the
// save time. The undo and redo stacks ride along so history survives across
// invocations.
func (s *Store) Save(ctx context.Context, state *annotation.State, history *annotation.History) error {
	if state == nil {
		return errors.New("state is nil")
	}
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	state.LastSaved = now.Format(time.RFC3339)

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	undoJSON, redoJSON := []byte("[]"), []byte("[]")
	if history != nil {
		if undoJSON, err = json.Marshal(history.UndoStack()); err != nil {
			return fmt.Errorf("marshal undo stack: %w", err)
		}
		if redoJSON, err = json.Marshal(history.RedoStack()); err != nil {
			return fmt.Errorf("marshal redo stack: %w", err)
		}
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (
            id, filename, state_json, undo_json, redo_json,
            line_count, annotated_count, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(filename) DO UPDATE SET
            state_json = excluded.state_json,
            undo_json = excluded.undo_json,
            redo_json = excluded.redo_json,
            line_count = excluded.line_count,
            annotated_count = excluded.annotated_count,
            updated_at = excluded.updated_at`,
		uuid.NewString(),
		state.Filename,
		string(stateJSON),
		string(undoJSON),
		string(redoJSON),
		len(state.Subtitles),
		state.AnnotatedCount(),
		timestamp,
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load restores a session and its history. The state passes through
// Normalize so sessions saved by older builds pick up missing fields.
func (s *Store) Load(ctx context.Context, filename string) (*annotation.State, *annotation.History, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT state_json, undo_json, redo_json FROM sessions WHERE filename = ?`,
		filename,
	)

	var stateJSON, undoJSON, redoJSON string
	if err := row.Scan(&stateJSON, &undoJSON, &redoJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, nil, fmt.Errorf("load session: %w", err)
	}

	state := new(annotation.State)
	if err := json.Unmarshal([]byte(stateJSON), state); err != nil {
		return nil, nil, fmt.Errorf("decode session %q: %w", filename, err)
	}
	state.Normalize()

	var undo, redo []*annotation.State
	if err := json.Unmarshal([]byte(undoJSON), &undo); err != nil {
		return nil, nil, fmt.Errorf("decode undo stack for %q: %w", filename, err)
	}
	if err := json.Unmarshal([]byte(redoJSON), &redo); err != nil {
		return nil, nil, fmt.Errorf("decode redo stack for %q: %w", filename, err)
	}
	for _, snapshot := range undo {
		snapshot.Normalize()
	}
	for _, snapshot := range redo {
		snapshot.Normalize()
	}

	history := new(annotation.History)
	history.Restore(undo, redo)
	return state, history, nil
}

// List returns summaries of all saved sessions, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, filename, line_count, annotated_count, created_at, updated_at
         FROM sessions ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			summary    Summary
			createdRaw string
			updatedRaw string
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.Filename,
			&summary.LineCount,
			&summary.AnnotatedCount,
			&createdRaw,
			&updatedRaw,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
			summary.CreatedAt = created
		}
		if updated, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
			summary.UpdatedAt = updated
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Delete removes a saved session by filename.
func (s *Store) Delete(ctx context.Context, filename string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE filename = ?`, filename)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// SaveCharacterList stores the global character list, replacing any
// previous one.
func (s *Store) SaveCharacterList(ctx context.Context, list []characters.ListEntry) error {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal character list: %w", err)
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO character_list (id, list_json, updated_at) VALUES (1, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
            list_json = excluded.list_json,
            updated_at = excluded.updated_at`,
		string(listJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save character list: %w", err)
	}
	return nil
}

// LoadCharacterList returns the stored global character list, or nil when
// none has been saved.
func (s *Store) LoadCharacterList(ctx context.Context) ([]characters.ListEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT list_json FROM character_list WHERE id = 1`)

	var listJSON string
	if err := row.Scan(&listJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load character list: %w", err)
	}

	var list []characters.ListEntry
	if err := json.Unmarshal([]byte(listJSON), &list); err != nil {
		return nil, fmt.Errorf("decode character list: %w", err)
	}
	return list, nil
}
