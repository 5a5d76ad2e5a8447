package usecase

import (
	"context"
	"time"

	"github.com/pattarin/banchi/internal/domain"
)

// EntryRepository defines data access for ledger entries. Entries are
// append-only; there is no update or delete.
type EntryRepository interface {
	Append(ctx context.Context, entry *domain.Entry) error
	// SumCycle sums amounts by sign for one group and cycle. When after is
	// non-nil only entries strictly newer than it count, which is how a
	// reset clears a balance without touching history.
	SumCycle(ctx context.Context, groupID string, key domain.CycleKey, after *time.Time) (income, expense int64, err error)
	SumDay(ctx context.Context, groupID, dayKey string) (income, expense int64, err error)
	ListDay(ctx context.Context, groupID, dayKey string) ([]*domain.Entry, error)
}

// ResetMarkerRepository defines data access for reset markers.
type ResetMarkerRepository interface {
	Append(ctx context.Context, marker *domain.ResetMarker) error
	// LatestResetAt returns the most recent marker time for the scope, or
	// false when no marker exists.
	LatestResetAt(ctx context.Context, groupID string, key domain.CycleKey) (time.Time, bool, error)
}

// PendingResetStore holds at most one pending reset per (group, requester).
// Implementations must make each operation atomic so a begin racing a
// confirm observes the entry either fully present or fully absent.
type PendingResetStore interface {
	Put(ctx context.Context, pending *domain.PendingReset) error
	Get(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error)
	// Take removes and returns the entry in one step; the second taker of
	// the same entry gets false.
	Take(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error)
	Delete(ctx context.Context, groupID, requesterID string) (bool, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current local time in the deployment's fixed offset.
type Clock interface {
	Now() time.Time
}
