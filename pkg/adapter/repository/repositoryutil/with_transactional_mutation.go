package repositoryutil

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// WithTransactionalMutation runs fn inside a write transaction. The
// transaction is committed when fn returns nil and rolled back otherwise,
// including when fn panics.
func WithTransactionalMutation(
	ctx context.Context,
	db *sqlx.DB,
	fn func(tx *sqlx.Tx) error,
) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing transaction")
	}
	return nil
}
