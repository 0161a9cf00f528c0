package todorepository

import (
	"context"
	"database/sql"
	"strings"
	"todo-backend/pkg/entity/model"
	ur "todo-backend/pkg/usecase/repository"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cast"
)

// sequenceTable is where SQLite keeps AUTOINCREMENT counters.
const sequenceTable = "sqlite_sequence"

var columns = []string{"id", "name", "priority", "isComplete", "isFun"}

type sqlxQueryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type todoRepository struct {
	client  *sqlx.DB
	builder *entsql.DialectBuilder
}

func NewTodoRepository(client *sqlx.DB) ur.Todo {
	return &todoRepository{
		client:  client,
		builder: entsql.Dialect(dialect.SQLite),
	}
}

// todoRow mirrors the table. priority, isComplete and isFun are nullable
// columns, so rows written outside this service may hold NULL or, for the
// flags, arbitrary text.
type todoRow struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	Priority   sql.NullString `db:"priority"`
	IsComplete flexBool       `db:"isComplete"`
	IsFun      flexBool       `db:"isFun"`
}

// flexBool scans a BOOLEAN column that may hold NULL, a number, or text.
// "yes" and "on" count as true, as do the forms strconv.ParseBool accepts.
// Anything else reads as false.
type flexBool bool

func (b *flexBool) Scan(src any) error {
	if v, ok := src.([]byte); ok {
		src = string(v)
	}
	if s, ok := src.(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "yes" || s == "on" {
			*b = true
			return nil
		}
		src = s
	}
	*b = flexBool(cast.ToBool(src))
	return nil
}

func (r todoRow) toModel() *model.Todo {
	return &model.Todo{
		ID:         r.ID,
		Name:       r.Name,
		Priority:   r.Priority.String,
		IsComplete: bool(r.IsComplete),
		IsFun:      bool(r.IsFun),
	}
}
