package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pattarin/banchi/internal/domain"
)

// ResetMarkerRepository implements usecase.ResetMarkerRepository on PostgreSQL.
type ResetMarkerRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewResetMarkerRepository creates a new ResetMarkerRepository.
func NewResetMarkerRepository(pool *pgxpool.Pool, retrier *Retrier) *ResetMarkerRepository {
	return &ResetMarkerRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const insertMarkerSQL = `
INSERT INTO reset_markers (id, group_id, cycle_key, reset_at)
VALUES ($1, $2, $3, $4)`

// Append stores a marker. Markers accumulate; none is ever removed.
func (r *ResetMarkerRepository) Append(ctx context.Context, marker *domain.ResetMarker) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, insertMarkerSQL,
			marker.ID,
			marker.GroupID,
			marker.CycleKey.String(),
			marker.ResetAt,
		)
		return err
	})
}

const latestResetSQL = `
SELECT reset_at
FROM reset_markers
WHERE group_id = $1
  AND cycle_key = $2
ORDER BY reset_at DESC
LIMIT 1`

// LatestResetAt returns the most recent marker time for a (group, cycle),
// with found=false when the cycle has never been reset.
func (r *ResetMarkerRepository) LatestResetAt(ctx context.Context, groupID string, key domain.CycleKey) (time.Time, bool, error) {
	var resetAt time.Time

	err := r.pool.QueryRow(ctx, latestResetSQL, groupID, key.String()).Scan(&resetAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	return resetAt, true, nil
}
