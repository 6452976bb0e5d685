// Package pins persists the per-feed sets of user-pinned item keys.
package pins

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/clubdeck/clubdeck/internal/logging"
)

// Store handles pin persistence in SQLite. Not an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
//
// The in-memory sets are authoritative for the session: a failed write is
// logged and swallowed, and stale keys for since-vanished items stay in the
// table harmlessly until overwritten.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	sets map[string]map[string]bool // namespace -> pinned keys
}

// Open creates a Store backed by the database at dbPath.
// Creates the pins table if it doesn't exist.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS pins (
		namespace TEXT NOT NULL,
		key TEXT NOT NULL,
		PRIMARY KEY (namespace, key)
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db, sets: make(map[string]map[string]bool)}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Load reads the persisted set for a namespace. Read failures are logged
// and produce an empty set; the screen still works, pins just reset.
func (s *Store) Load(ns string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.sets[ns]; ok {
		return copySet(set)
	}

	set := make(map[string]bool)
	rows, err := s.db.Query("SELECT key FROM pins WHERE namespace = ?", ns)
	if err != nil {
		logging.Warn("loading pins failed", "namespace", ns, "err", err)
		s.sets[ns] = set
		return copySet(set)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			logging.Warn("scanning pin failed", "namespace", ns, "err", err)
			continue
		}
		set[key] = true
	}
	if err := rows.Err(); err != nil {
		logging.Warn("reading pins failed", "namespace", ns, "err", err)
	}

	s.sets[ns] = set
	return copySet(set)
}

// Toggle adds the key if absent, removes it if present, and writes the
// change through immediately. Returns the new set. Persistence failures
// are logged and swallowed; the in-memory set is what the session sees.
func (s *Store) Toggle(ns, key string) map[string]bool {
	s.mu.Lock()
	set, ok := s.sets[ns]
	s.mu.Unlock()
	if !ok {
		s.Load(ns)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	set = s.sets[ns]

	var err error
	if set[key] {
		delete(set, key)
		_, err = s.db.Exec("DELETE FROM pins WHERE namespace = ? AND key = ?", ns, key)
	} else {
		set[key] = true
		_, err = s.db.Exec("INSERT OR IGNORE INTO pins (namespace, key) VALUES (?, ?)", ns, key)
	}
	if err != nil {
		logging.Warn("persisting pin toggle failed", "namespace", ns, "key", key, "err", err)
	}

	return copySet(set)
}

// Contains reports whether key is pinned in the namespace.
func (s *Store) Contains(ns, key string) bool {
	s.mu.Lock()
	_, ok := s.sets[ns]
	s.mu.Unlock()
	if !ok {
		return s.Load(ns)[key]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets[ns][key]
}

func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k := range set {
		out[k] = true
	}
	return out
}
