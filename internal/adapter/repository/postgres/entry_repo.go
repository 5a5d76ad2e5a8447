package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pattarin/banchi/internal/domain"
)

// EntryRepository implements usecase.EntryRepository on PostgreSQL.
type EntryRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool, retrier *Retrier) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const insertEntrySQL = `
INSERT INTO entries (id, group_id, ts, day_key, cycle_key, sign, amount, label, author_id, author_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Append stores one entry. Entries are never updated or deleted.
func (r *EntryRepository) Append(ctx context.Context, entry *domain.Entry) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, insertEntrySQL,
			entry.ID,
			entry.GroupID,
			entry.At,
			entry.DayKey,
			entry.CycleKey.String(),
			string(entry.Sign),
			entry.Amount,
			entry.Label,
			entry.AuthorID,
			entry.AuthorName,
		)
		return err
	})
}

const sumCycleSQL = `
SELECT
    COALESCE(SUM(amount) FILTER (WHERE sign = 'income'), 0)::BIGINT,
    COALESCE(SUM(amount) FILTER (WHERE sign = 'expense'), 0)::BIGINT
FROM entries
WHERE group_id = $1
  AND cycle_key = $2
  AND ($3::timestamptz IS NULL OR ts > $3)`

// SumCycle totals income and expense for a cycle. When after is non-nil,
// only entries strictly later than it are counted.
func (r *EntryRepository) SumCycle(ctx context.Context, groupID string, key domain.CycleKey, after *time.Time) (int64, int64, error) {
	var income, expense int64

	err := r.pool.QueryRow(ctx, sumCycleSQL, groupID, key.String(), after).Scan(&income, &expense)
	if err != nil {
		return 0, 0, err
	}

	return income, expense, nil
}

const sumDaySQL = `
SELECT
    COALESCE(SUM(amount) FILTER (WHERE sign = 'income'), 0)::BIGINT,
    COALESCE(SUM(amount) FILTER (WHERE sign = 'expense'), 0)::BIGINT
FROM entries
WHERE group_id = $1
  AND day_key = $2`

// SumDay totals income and expense for one calendar day.
func (r *EntryRepository) SumDay(ctx context.Context, groupID, dayKey string) (int64, int64, error) {
	var income, expense int64

	err := r.pool.QueryRow(ctx, sumDaySQL, groupID, dayKey).Scan(&income, &expense)
	if err != nil {
		return 0, 0, err
	}

	return income, expense, nil
}

const listDaySQL = `
SELECT id, group_id, ts, day_key, cycle_key, sign, amount, label, author_id, author_name
FROM entries
WHERE group_id = $1
  AND day_key = $2
ORDER BY ts, id`

// ListDay returns a day's entries in posting order.
func (r *EntryRepository) ListDay(ctx context.Context, groupID, dayKey string) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, listDaySQL, groupID, dayKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		entry    domain.Entry
		cycleKey string
		sign     string
	)

	err := row.Scan(
		&entry.ID,
		&entry.GroupID,
		&entry.At,
		&entry.DayKey,
		&cycleKey,
		&sign,
		&entry.Amount,
		&entry.Label,
		&entry.AuthorID,
		&entry.AuthorName,
	)
	if err != nil {
		return nil, err
	}

	entry.CycleKey, err = domain.ParseCycleKey(cycleKey)
	if err != nil {
		return nil, err
	}
	entry.Sign = domain.Sign(sign)

	return &entry, nil
}
