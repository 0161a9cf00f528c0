package datastore

import (
	"fmt"
	"strings"
	"todo-backend/config"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const defaultBusyTimeoutMs = 5000

// TodoTable is the name of the single table owned by the service.
const TodoTable = "todos"

const createTodoTable = `
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	priority TEXT,
	isComplete BOOLEAN,
	isFun BOOLEAN
)`

// NewDSN returns the database path from config.
func NewDSN() string {
	return config.C.Database.Path
}

// NewClient opens the database at the configured path and ensures the schema exists.
func NewClient() (*sqlx.DB, error) {
	return NewClientWithPath(NewDSN())
}

// NewClientWithPath opens (or creates) the SQLite database at path and
// creates the todos table if it is missing. It is safe to call on every startup.
func NewClientWithPath(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", withPragmas(path))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// One handle for the whole process. An in-memory database also only
	// lives as long as its connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to sqlite db: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// withPragmas appends connection pragmas to path. The driver applies them to
// every connection it opens, not only the first one.
func withPragmas(path string) string {
	busyTimeout := config.C.Database.BusyTimeoutMs
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeoutMs
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", path, sep, busyTimeout)
}

// CreateSchema creates the todos table if it does not exist.
func CreateSchema(db *sqlx.DB) error {
	if _, err := db.Exec(createTodoTable); err != nil {
		return fmt.Errorf("creating %s table: %w", TodoTable, err)
	}
	return nil
}
