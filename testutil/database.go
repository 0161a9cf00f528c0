package testutil

import (
	"context"
	"testing"
	"todo-backend/pkg/infrastructure/datastore"

	"github.com/jmoiron/sqlx"
)

// NewDBClient opens a fresh in-memory database with the schema applied.
// It is closed when the test completes.
func NewDBClient(t *testing.T) *sqlx.DB {
	t.Helper()

	client, err := datastore.NewClientWithPath(":memory:")
	if err != nil {
		t.Fatalf("creating test database: %v", err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	return client
}

// DropAll drops all the data from database
func DropAll(t *testing.T, client *sqlx.DB) {
	t.Log("drop data from database")
	DropTodo(t, client)
}

// DropTodo drops all the data from todos and resets the id counter.
func DropTodo(t *testing.T, client *sqlx.DB) {
	ctx := context.Background()
	if _, err := client.ExecContext(ctx, "DELETE FROM todos"); err != nil {
		t.Error(err)
		t.FailNow()
	}
	if _, err := client.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'todos'"); err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// CountTodo returns the number of rows in todos.
func CountTodo(t *testing.T, client *sqlx.DB) int {
	var n int
	if err := client.GetContext(context.Background(), &n, "SELECT COUNT(*) FROM todos"); err != nil {
		t.Error(err)
		t.FailNow()
	}
	return n
}
