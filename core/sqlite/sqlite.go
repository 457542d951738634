// Package sqlite opens SQLite databases through whichever driver the build
// selected.
//
// Build modes:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3 via contrib/sqlite-external
//
// Use Open instead of sql.Open so the verse store does not depend on the
// driver name or its DSN dialect.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// BusyTimeout is how long a connection waits on a locked database.
const BusyTimeout = 5 * time.Second

// DriverName returns the database/sql driver name of the selected driver.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3 and "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open opens the database at path for reading and writing, creating it if
// needed. Every connection gets foreign keys, WAL journaling, and a busy
// timeout.
func Open(path string) (*sql.DB, error) {
	return open(path, "rwc")
}

// OpenReadOnly opens an existing database in read-only mode.
func OpenReadOnly(path string) (*sql.DB, error) {
	return open(path, "ro")
}

func open(path, mode string) (*sql.DB, error) {
	if strings.ContainsAny(path, "?#") {
		return nil, fmt.Errorf("sqlite: path %q must not contain a query", path)
	}
	db, err := sql.Open(driverName, dsn(path, mode))
	if err != nil {
		return nil, err
	}
	return db, nil
}

// dsn builds a URI filename with the connection pragmas in the dialect of
// the selected driver.
func dsn(path, mode string) string {
	params := append([]string{"mode=" + mode}, pragmaParams(mode != "ro")...)
	return "file:" + path + "?" + strings.Join(params, "&")
}

// MustOpen opens a SQLite database and panics on error.
// Use Open instead if you need to handle errors gracefully.
func MustOpen(path string) *sql.DB {
	db, err := Open(path)
	if err != nil {
		panic(fmt.Sprintf("sqlite: failed to open %s: %v", path, err))
	}
	return db
}

// Info contains information about the SQLite driver configuration.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}
