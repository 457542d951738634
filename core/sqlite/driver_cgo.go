//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
//
// Build with: go build -tags cgo_sqlite
// Requires: CGO_ENABLED=1
package sqlite

import (
	"fmt"

	sqliteexternal "github.com/FocuswithJustin/DailyBread/contrib/sqlite-external"
)

const (
	driverName    = sqliteexternal.DriverName
	driverType    = sqliteexternal.DriverType
	driverPackage = sqliteexternal.DriverPackage + " (via contrib/sqlite-external)"
)

func pragmaParams(writable bool) []string {
	params := []string{
		"_foreign_keys=1",
		fmt.Sprintf("_busy_timeout=%d", BusyTimeout.Milliseconds()),
	}
	if writable {
		params = append(params, "_journal_mode=WAL")
	}
	return params
}
