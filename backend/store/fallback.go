package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Fallback store logical keys. Values under them are JSON-serialized
// canonical collections; there is no schema versioning.
const (
	keyClasses       = "classes"
	keyAllowedEmails = "allowedEmails"
	keyProgress      = "progress:" // + student email
)

// Fallback is the durable local key-value cache used when the remote store is
// not configured. It is best-effort demo storage, not a security boundary.
type Fallback struct {
	db *sql.DB
}

// OpenFallback opens (creating if needed) the sqlite file backing the cache.
func OpenFallback(path string) (*Fallback, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating fallback store dir")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening fallback store")
	}
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating kv table")
	}
	return &Fallback{db: db}, nil
}

// Read returns the value under key and whether it was present.
func (f *Fallback) Read(key string) ([]byte, bool, error) {
	var value []byte
	err := f.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading %q", key)
	}
	return value, true, nil
}

// Write stores value under key, replacing any previous value.
func (f *Fallback) Write(key string, value []byte) error {
	_, err := f.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return errors.Wrapf(err, "writing %q", key)
}

func (f *Fallback) Close() error {
	return f.db.Close()
}
