package todorepository

import (
	"context"
	"database/sql"
	"errors"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Get(
	ctx context.Context,
	id int64,
) (*model.Todo, error) {
	query, args := r.builder.Select(columns...).
		From(entsql.Table(datastore.TodoTable)).
		Where(entsql.EQ("id", id)).
		Query()

	var row todoRow
	if err := r.client.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewDBError(err)
	}

	return row.toModel(), nil
}

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	query, args := r.builder.Select(columns...).
		From(entsql.Table(datastore.TodoTable)).
		OrderBy("id").
		Query()

	var rows []todoRow
	if err := r.client.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, model.NewDBError(err)
	}

	todos := make([]*model.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, row.toModel())
	}
	return todos, nil
}

func (r *todoRepository) count(ctx context.Context, q sqlxQueryer) (int, error) {
	query, args := r.builder.Select(entsql.Count("*")).
		From(entsql.Table(datastore.TodoTable)).
		Query()

	var n int
	if err := q.GetContext(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}
