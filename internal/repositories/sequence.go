package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the slice of pgx.Tx the upload transaction and its allocators
// use. Tests substitute an in-memory implementation.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SequenceAllocator hands out the next primary key for one numbering space.
//
// The two implementations deliberately differ: the master table is seeded
// once per batch and advances in memory, while the detail table re-reads the
// high-water mark from storage before every item. The asymmetry is observable
// behavior (it changes collision characteristics under concurrent uploads)
// and must not be "fixed" by unifying the strategies.
type SequenceAllocator interface {
	Next(ctx context.Context) (int64, error)
}

// SeededAllocator reads max(slno) once at construction and then increments
// an in-memory counter. Two concurrent batches seeded from the same baseline
// will produce the same numbers; the duplicate-key insert error that follows
// aborts the later batch.
type SeededAllocator struct {
	next int64
}

func NewSeededAllocator(ctx context.Context, q querier, table string) (*SeededAllocator, error) {
	var max int64
	if err := q.QueryRow(ctx, "SELECT COALESCE(MAX(slno), 0) FROM "+table).Scan(&max); err != nil {
		return nil, err
	}
	return &SeededAllocator{next: max}, nil
}

func (a *SeededAllocator) Next(ctx context.Context) (int64, error) {
	a.next++
	return a.next, nil
}

// LiveAllocator queries max(slno)+1 on every call, tolerating concurrent
// writers at the cost of one extra round trip per item.
type LiveAllocator struct {
	q     querier
	table string
}

func NewLiveAllocator(q querier, table string) *LiveAllocator {
	return &LiveAllocator{q: q, table: table}
}

func (a *LiveAllocator) Next(ctx context.Context) (int64, error) {
	var max int64
	if err := a.q.QueryRow(ctx, "SELECT COALESCE(MAX(slno), 0) FROM "+a.table).Scan(&max); err != nil {
		return 0, err
	}
	return max + 1, nil
}
