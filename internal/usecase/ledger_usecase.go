package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pattarin/banchi/internal/domain"
	"github.com/pattarin/banchi/internal/infrastructure/metrics"
)

// LedgerUseCase records entries and aggregates balances over days and
// cycles.
type LedgerUseCase struct {
	entryRepo EntryRepository
	resetRepo ResetMarkerRepository
	idGen     IDGenerator
	clock     Clock
	cutoffDay int
	metrics   *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	entryRepo EntryRepository,
	resetRepo ResetMarkerRepository,
	idGen IDGenerator,
	clock Clock,
	cutoffDay int,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		entryRepo: entryRepo,
		resetRepo: resetRepo,
		idGen:     idGen,
		clock:     clock,
		cutoffDay: cutoffDay,
		metrics:   m,
	}
}

// Summary is an aggregate of signed amounts.
type Summary struct {
	Income  int64
	Expense int64
}

// Net returns income minus expense; it may be negative.
func (s Summary) Net() int64 {
	return s.Income - s.Expense
}

// RecordText parses a line of chat text and, when it is a transaction,
// persists it as a new entry. The second return value is false when the
// text is not a transaction; that is not an error. A storage failure
// propagates so the caller does not acknowledge the message as recorded; a
// retried duplicate simply becomes a new distinct entry.
func (uc *LedgerUseCase) RecordText(ctx context.Context, groupID, authorID, authorName, text string) (*domain.Entry, bool, error) {
	parsed, ok := domain.ParseEntryLine(text)
	if !ok {
		if uc.metrics != nil {
			uc.metrics.ParseRejects.Inc()
		}

		return nil, false, nil
	}

	now := uc.clock.Now()

	entry := &domain.Entry{
		ID:         uc.idGen.Generate(),
		GroupID:    groupID,
		At:         now,
		DayKey:     domain.DayKey(now),
		CycleKey:   domain.CycleKeyFromDate(now, uc.cutoffDay),
		Sign:       parsed.Sign,
		Amount:     parsed.Amount,
		Label:      parsed.Label,
		AuthorID:   authorID,
		AuthorName: authorName,
	}

	if err := uc.entryRepo.Append(ctx, entry); err != nil {
		return nil, false, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesRecorded.WithLabelValues(string(entry.Sign)).Inc()
		uc.metrics.EntryAmount.WithLabelValues(string(entry.Sign)).Observe(float64(entry.Amount))
	}

	return entry, true, nil
}

// TodaySummary aggregates the current calendar day with its entries. Day
// aggregation never applies reset markers: a day's view is always the full
// day, even after a cycle-level reset.
func (uc *LedgerUseCase) TodaySummary(ctx context.Context, groupID string) (Summary, []*domain.Entry, error) {
	dayKey := uc.TodayKey()

	income, expense, err := uc.entryRepo.SumDay(ctx, groupID, dayKey)
	if err != nil {
		return Summary{}, nil, err
	}

	entries, err := uc.entryRepo.ListDay(ctx, groupID, dayKey)
	if err != nil {
		return Summary{}, nil, err
	}

	return Summary{Income: income, Expense: expense}, entries, nil
}

// CycleSummary aggregates one cycle, truncated at the most recent reset
// marker when one exists.
func (uc *LedgerUseCase) CycleSummary(ctx context.Context, groupID string, key domain.CycleKey) (Summary, error) {
	var after *time.Time

	resetAt, found, err := uc.resetRepo.LatestResetAt(ctx, groupID, key)
	if err != nil {
		return Summary{}, err
	}
	if found {
		after = &resetAt
	}

	income, expense, err := uc.entryRepo.SumCycle(ctx, groupID, key, after)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Income: income, Expense: expense}, nil
}

// TodayKey returns the current calendar day's identifier.
func (uc *LedgerUseCase) TodayKey() string {
	return domain.DayKey(uc.clock.Now())
}

// CurrentCycleKey returns the cycle the clock's current date falls in.
func (uc *LedgerUseCase) CurrentCycleKey() domain.CycleKey {
	return domain.CycleKeyFromDate(uc.clock.Now(), uc.cutoffDay)
}

// CycleBounds returns the inclusive date range of a cycle under the
// configured cutoff day.
func (uc *LedgerUseCase) CycleBounds(key domain.CycleKey) (start, end time.Time) {
	return key.Range(uc.cutoffDay, uc.clock.Now().Location())
}

// ResolveCycleKey maps a user-supplied cycle argument to a key: empty means
// the current cycle, a signed integer shifts the current cycle by that many
// months, and anything else must be a canonical "YYYY-MM" key.
func (uc *LedgerUseCase) ResolveCycleKey(arg string) (domain.CycleKey, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return uc.CurrentCycleKey(), nil
	}

	// A bare year like "2026" is a malformed key, not a huge offset.
	if offset, err := strconv.Atoi(arg); err == nil && offset >= -1200 && offset <= 1200 {
		return uc.CurrentCycleKey().Shift(offset), nil
	}

	return domain.ParseCycleKey(arg)
}
