// Package sqliteexternal registers the optional CGO SQLite driver.
//
// DailyBread uses the pure Go modernc.org/sqlite driver by default. Building
// with the cgo_sqlite tag switches core/sqlite, and with it the verse store,
// to github.com/mattn/go-sqlite3:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/dailybread
//
// The CGO driver is faster on large imports; the pure Go driver keeps the
// binary portable and cross-compilable.
package sqliteexternal
