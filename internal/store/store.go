// Package store is a local verse store backed by SQLite. It implements
// fetch.Source over verses loaded by the importer, so passages can be read
// without network access.
package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS verses (
	version TEXT NOT NULL,
	book    TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	text    TEXT NOT NULL,
	PRIMARY KEY (version, book, chapter, verse)
);
CREATE TABLE IF NOT EXISTS imports (
	digest      TEXT NOT NULL,
	version     TEXT NOT NULL,
	path        TEXT NOT NULL,
	verses      INTEGER NOT NULL,
	imported_at TEXT NOT NULL,
	PRIMARY KEY (digest, version)
);`

// Verse is one stored verse. Book is the catalog key, e.g. "GEN".
type Verse struct {
	Book    string
	Chapter int
	Verse   int
	Text    string
}

// ImportRecord describes one imported file.
type ImportRecord struct {
	Digest     string
	Version    string
	Path       string
	Verses     int
	ImportedAt time.Time
}

// VersionCount is the number of stored verses of a version.
type VersionCount struct {
	Version string
	Verses  int
}

// Store reads and writes verses in a SQLite database.
type Store struct {
	db    *sql.DB
	path  string
	books *catalog.Books
	now   func() time.Time
}

// Open opens or creates the verse database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	s := &Store{db: db, path: path, books: catalog.DefaultBooks(), now: time.Now}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.NewIO("migrate", path, err)
	}
	return s, nil
}

// OpenReadOnly opens an existing verse database without write access.
func OpenReadOnly(path string) (*Store, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &Store{db: db, path: path, books: catalog.DefaultBooks(), now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// HasImport reports whether a file with digest was already imported for version.
func (s *Store) HasImport(ctx context.Context, digest, version string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM imports WHERE digest = ? AND version = ?",
		digest, versionKey(version)).Scan(&n)
	if err != nil {
		return false, errors.NewIO("query", s.path, err)
	}
	return n > 0, nil
}

// Import writes verses and the import record in one transaction. Existing
// verses of the same version and position are replaced.
func (s *Store) Import(ctx context.Context, rec ImportRecord, verses []Verse) error {
	version := versionKey(rec.Version)
	if rec.ImportedAt.IsZero() {
		rec.ImportedAt = s.now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewIO("begin", s.path, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO verses (version, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return errors.NewIO("prepare", s.path, err)
	}
	defer stmt.Close()

	for _, v := range verses {
		if _, err := stmt.ExecContext(ctx, version, v.Book, v.Chapter, v.Verse, v.Text); err != nil {
			return errors.NewIO("insert", s.path, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO imports (digest, version, path, verses, imported_at) VALUES (?, ?, ?, ?, ?)",
		rec.Digest, version, rec.Path, len(verses), rec.ImportedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return errors.NewIO("insert", s.path, err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewIO("commit", s.path, err)
	}
	return nil
}

// Imports lists recorded imports, newest first.
func (s *Store) Imports(ctx context.Context) ([]ImportRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT digest, version, path, verses, imported_at FROM imports ORDER BY imported_at DESC, version")
	if err != nil {
		return nil, errors.NewIO("query", s.path, err)
	}
	defer rows.Close()

	var recs []ImportRecord
	for rows.Next() {
		var rec ImportRecord
		var at string
		if err := rows.Scan(&rec.Digest, &rec.Version, &rec.Path, &rec.Verses, &at); err != nil {
			return nil, errors.NewIO("scan", s.path, err)
		}
		rec.ImportedAt, _ = time.Parse(time.RFC3339, at)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Versions lists the stored versions with their verse counts.
func (s *Store) Versions(ctx context.Context) ([]VersionCount, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT version, COUNT(*) FROM verses GROUP BY version ORDER BY version")
	if err != nil {
		return nil, errors.NewIO("query", s.path, err)
	}
	defer rows.Close()

	var counts []VersionCount
	for rows.Next() {
		var c VersionCount
		if err := rows.Scan(&c.Version, &c.Verses); err != nil {
			return nil, errors.NewIO("scan", s.path, err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// versionKey normalizes a version abbreviation to its catalog spelling.
func versionKey(version string) string {
	if v, ok := catalog.FindVersion(version); ok {
		return v.Abbreviation
	}
	return strings.ToUpper(strings.TrimSpace(version))
}

// language returns the book-name language of version, English if unknown.
func language(version string) catalog.Language {
	if v, ok := catalog.FindVersion(version); ok {
		return v.Language
	}
	return catalog.English
}

// EachVerse calls fn for every stored verse of version, ordered by book key,
// chapter, and verse. Iteration stops at the first error fn returns.
func (s *Store) EachVerse(ctx context.Context, version string, fn func(Verse) error) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT book, chapter, verse, text FROM verses WHERE version = ? ORDER BY book, chapter, verse",
		versionKey(version))
	if err != nil {
		return errors.NewIO("query", s.path, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v Verse
		if err := rows.Scan(&v.Book, &v.Chapter, &v.Verse, &v.Text); err != nil {
			return errors.NewIO("scan", s.path, err)
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return rows.Err()
}
