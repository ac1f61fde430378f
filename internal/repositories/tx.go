package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WithTx runs fn inside one transaction, committing on success and rolling
// back on error or panic. The scrap cascade is the one multi-write path that
// needs it.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) (err error) {
	var tx pgx.Tx
	tx, err = pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
			}
		} else {
			if err = tx.Commit(ctx); err != nil {
				err = fmt.Errorf("failed to commit transaction: %w", err)
			}
		}
	}()

	err = fn(tx)
	return err
}

// TxRunner abstracts transaction scope so services stay decoupled from the
// pool type.
type TxRunner interface {
	Run(ctx context.Context, fn func(q Querier) error) error
}

type PgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) TxRunner {
	return &PgxTxRunner{pool: pool}
}

func (r *PgxTxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	return WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(tx)
	})
}
