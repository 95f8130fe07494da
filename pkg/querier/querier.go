package querier

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Builder is the statement builder shared by repositories ($1 placeholders).
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Querier executes statements on the transaction found in ctx, or on the
// pool when there is none.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.get(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.get(ctx).QueryRow(ctx, sql, args...)
}

// ExecBuilder renders a squirrel statement and executes it.
func (q *Querier) ExecBuilder(ctx context.Context, b sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build sql: %w", err)
	}
	return q.Exec(ctx, query, args...)
}

// QueryRowBuilder renders a squirrel statement and returns its single row.
// A build error is reported from Scan.
func (q *Querier) QueryRowBuilder(ctx context.Context, b sq.Sqlizer) pgx.Row {
	query, args, err := b.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build sql: %w", err)}
	}
	return q.QueryRow(ctx, query, args...)
}

// QueryBuilder renders a squirrel statement and returns its rows.
func (q *Querier) QueryBuilder(ctx context.Context, b sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}
	return q.Query(ctx, query, args...)
}

func (q *Querier) Ping(ctx context.Context) error {
	return q.pool.Ping(ctx)
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
