package todorepository

import (
	"context"
	"todo-backend/pkg/adapter/repository/repositoryutil"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
)

// Delete removes the todo with the given id. When that empties the table the
// AUTOINCREMENT counter is reset so the next insert starts again at 1.
// Delete, count and reset share one transaction.
func (r *todoRepository) Delete(
	ctx context.Context,
	id int64,
) (model.TodoDeleteOutcome, error) {
	outcome := model.TodoNotDeleted

	err := repositoryutil.WithTransactionalMutation(ctx, r.client, func(tx *sqlx.Tx) error {
		query, args := r.builder.Delete(datastore.TodoTable).
			Where(entsql.EQ("id", id)).
			Query()

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}

		remaining, err := r.count(ctx, tx)
		if err != nil {
			return err
		}
		if remaining > 0 {
			outcome = model.TodoDeleted
			return nil
		}

		query, args = r.builder.Delete(sequenceTable).
			Where(entsql.EQ("name", datastore.TodoTable)).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		outcome = model.TodoDeletedAndReset
		return nil
	})
	if err != nil {
		return model.TodoNotDeleted, model.NewDBError(err)
	}

	return outcome, nil
}
