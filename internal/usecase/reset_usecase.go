package usecase

import (
	"context"
	"time"

	"github.com/pattarin/banchi/internal/domain"
	"github.com/pattarin/banchi/internal/infrastructure/metrics"
)

// ConfirmToken is the literal text that confirms a pending reset. Equality
// is an exact byte match; near-misses fall through to entry parsing.
const ConfirmToken = "ยืนยัน"

// DefaultConfirmWindow bounds how long a reset request stays confirmable.
const DefaultConfirmWindow = 60 * time.Second

// ConfirmOutcome is the result of one confirmation attempt.
type ConfirmOutcome int

const (
	// ConfirmNotHandled means the text was not a confirmation for this
	// requester: no pending request, or the token did not match. The caller
	// should let other handling decide what the text means.
	ConfirmNotHandled ConfirmOutcome = iota
	// ConfirmExpired means a pending request existed but its window had
	// lapsed; it has been evicted and the requester must start over.
	ConfirmExpired
	// ConfirmApplied means the pending request was consumed and exactly one
	// reset marker was appended.
	ConfirmApplied
)

// ResetUseCase is the confirmation state machine that turns a two-step
// chat interaction into an idempotent, auditable reset marker.
type ResetUseCase struct {
	pending   PendingResetStore
	resetRepo ResetMarkerRepository
	idGen     IDGenerator
	clock     Clock
	cutoffDay int
	window    time.Duration
	metrics   *metrics.Metrics
}

// NewResetUseCase creates a new ResetUseCase. A window of zero falls back
// to DefaultConfirmWindow.
func NewResetUseCase(
	pending PendingResetStore,
	resetRepo ResetMarkerRepository,
	idGen IDGenerator,
	clock Clock,
	cutoffDay int,
	window time.Duration,
	m *metrics.Metrics,
) *ResetUseCase {
	if window <= 0 {
		window = DefaultConfirmWindow
	}

	return &ResetUseCase{
		pending:   pending,
		resetRepo: resetRepo,
		idGen:     idGen,
		clock:     clock,
		cutoffDay: cutoffDay,
		window:    window,
		metrics:   m,
	}
}

// Begin opens (or restarts) the confirmation window for the requester.
// Any existing pending request for the same (group, requester) pair is
// overwritten; there is no limit on restarts.
func (uc *ResetUseCase) Begin(ctx context.Context, groupID, requesterID string) (time.Time, error) {
	expiresAt := uc.clock.Now().Add(uc.window)

	pending := &domain.PendingReset{
		GroupID:     groupID,
		RequesterID: requesterID,
		ExpiresAt:   expiresAt,
	}

	if err := uc.pending.Put(ctx, pending); err != nil {
		return time.Time{}, err
	}

	if uc.metrics != nil {
		uc.metrics.ResetsRequested.Inc()
	}

	return expiresAt, nil
}

// Cancel removes the requester's pending request. The boolean reports
// whether anything was pending, so the caller can word the reply.
func (uc *ResetUseCase) Cancel(ctx context.Context, groupID, requesterID string) (bool, error) {
	existed, err := uc.pending.Delete(ctx, groupID, requesterID)
	if err != nil {
		return false, err
	}

	if existed && uc.metrics != nil {
		uc.metrics.ResetsCancelled.Inc()
	}

	return existed, nil
}

// Confirm processes one message as a possible confirmation. Expiry is
// checked lazily here; there is no background sweep. On success the pending
// entry is consumed exactly once (Take loses the race for a duplicate
// message) and the marker targets the cycle of the confirmation time, not
// of the request.
func (uc *ResetUseCase) Confirm(ctx context.Context, groupID, requesterID, text string) (ConfirmOutcome, *domain.ResetMarker, error) {
	pending, found, err := uc.pending.Get(ctx, groupID, requesterID)
	if err != nil {
		return ConfirmNotHandled, nil, err
	}
	if !found {
		return ConfirmNotHandled, nil, nil
	}

	if text != ConfirmToken {
		// Leave the pending request in place; the window keeps running.
		return ConfirmNotHandled, nil, nil
	}

	now := uc.clock.Now()

	if pending.Expired(now) {
		if _, _, err := uc.pending.Take(ctx, groupID, requesterID); err != nil {
			return ConfirmNotHandled, nil, err
		}

		if uc.metrics != nil {
			uc.metrics.ResetsExpired.Inc()
		}

		return ConfirmExpired, nil, nil
	}

	if _, taken, err := uc.pending.Take(ctx, groupID, requesterID); err != nil {
		return ConfirmNotHandled, nil, err
	} else if !taken {
		// A concurrent identical confirmation consumed it first.
		return ConfirmNotHandled, nil, nil
	}

	marker := &domain.ResetMarker{
		ID:       uc.idGen.Generate(),
		GroupID:  groupID,
		CycleKey: domain.CycleKeyFromDate(now, uc.cutoffDay),
		ResetAt:  now,
	}

	if err := uc.resetRepo.Append(ctx, marker); err != nil {
		return ConfirmNotHandled, nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ResetsConfirmed.Inc()
	}

	return ConfirmApplied, marker, nil
}

// Window returns the configured confirmation window.
func (uc *ResetUseCase) Window() time.Duration {
	return uc.window
}
