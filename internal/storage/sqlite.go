// Package storage provides SQLite-based persistence for playtest traces.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/pointvale/stagehand/internal/runtime"
)

// Store manages the SQLite database connection for trace persistence.
type Store struct {
	db *sql.DB
}

// Session is one recorded playthrough of a project.
type Session struct {
	ID        string
	Project   string
	Scene     string // scene the session started in
	StartedAt time.Time
}

// TraceEvent is one recorded runtime event within a session.
type TraceEvent struct {
	ID        int64
	SessionID string
	Kind      string
	Scene     string
	Detail    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			project TEXT NOT NULL,
			start_scene TEXT NOT NULL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_project ON sessions(project);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			scene TEXT,
			detail TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(session_id, kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginSession registers a new playthrough and returns a recorder that can
// be wired into the runtime as its event sink.
func (s *Store) BeginSession(project, startScene string) (*Recorder, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, project, start_scene) VALUES (?, ?, ?)",
		id, project, startScene,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin session: %w", err)
	}
	return &Recorder{store: s, sessionID: id}, nil
}

// RecentSessions retrieves the most recently started sessions.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, project, start_scene, started_at
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var startedAt any
		if err := rows.Scan(&sess.ID, &sess.Project, &sess.Scene, &startedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = scanTime(startedAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionEvents retrieves every event of a session in recording order.
func (s *Store) SessionEvents(sessionID string) ([]TraceEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, kind, scene, detail, created_at
		 FROM events
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []TraceEvent
	for rows.Next() {
		var e TraceEvent
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &e.Scene, &e.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = scanTime(createdAt)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return events, nil
}

// ClearSessions deletes every session and its events.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM events"); err != nil {
		return fmt.Errorf("storage: cannot clear events: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// scanTime handles the datetime column arriving as either time.Time or the
// driver's string form.
func scanTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Recorder appends runtime events to one session's trace.
type Recorder struct {
	store     *Store
	sessionID string
}

var _ runtime.EventSink = (*Recorder)(nil)

// SessionID returns the id of the session being recorded.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Record stores one event. Trace recording is best effort; a failed insert
// never interrupts play.
func (r *Recorder) Record(e runtime.Event) {
	r.store.db.Exec(
		"INSERT INTO events (session_id, kind, scene, detail) VALUES (?, ?, ?, ?)",
		r.sessionID, e.Kind, e.Scene, e.Detail,
	)
}
