//go:build !cgo_sqlite

package sqlite

import (
	"fmt"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const (
	driverName    = "sqlite"
	driverType    = "purego"
	driverPackage = "modernc.org/sqlite"
)

func pragmaParams(writable bool) []string {
	params := []string{
		"_pragma=foreign_keys(1)",
		fmt.Sprintf("_pragma=busy_timeout(%d)", BusyTimeout.Milliseconds()),
	}
	if writable {
		params = append(params, "_pragma=journal_mode(WAL)")
	}
	return params
}
