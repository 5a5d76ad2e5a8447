package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pattarin/banchi/internal/domain"
	"github.com/pattarin/banchi/internal/usecase"
	"github.com/pattarin/banchi/internal/usecase/mocks"
)

const testCutoff = 6

func newLedgerUC(now time.Time) (*usecase.LedgerUseCase, *mocks.FakeEntryRepository, *mocks.FakeResetMarkerRepository, *mocks.FakeClock) {
	entryRepo := mocks.NewFakeEntryRepository()
	resetRepo := mocks.NewFakeResetMarkerRepository()
	clock := mocks.NewFakeClock(now)
	uc := usecase.NewLedgerUseCase(entryRepo, resetRepo, mocks.NewFakeIDGenerator(), clock, testCutoff, nil)

	return uc, entryRepo, resetRepo, clock
}

func TestLedgerUseCase_RecordText(t *testing.T) {
	now := time.Date(2026, time.February, 3, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		text        string
		wantStored  bool
		wantSign    domain.Sign
		wantAmount  int64
		wantLabel   string
		wantCycle   string
	}{
		{
			name:       "expense line",
			text:       "coffee 50",
			wantStored: true,
			wantSign:   domain.SignExpense,
			wantAmount: 50,
			wantLabel:  "coffee",
			wantCycle:  "2026-01",
		},
		{
			name:       "income line with separator",
			text:       "+ refund 1,200",
			wantStored: true,
			wantSign:   domain.SignIncome,
			wantAmount: 1200,
			wantLabel:  "refund",
			wantCycle:  "2026-01",
		},
		{
			name:       "chat text is ignored",
			text:       "hello",
			wantStored: false,
		},
		{
			name:       "command is ignored",
			text:       "/today",
			wantStored: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, entryRepo, _, _ := newLedgerUC(now)

			entry, stored, err := uc.RecordText(context.Background(), "g1", "u1", "Nok", tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if stored != tt.wantStored {
				t.Fatalf("stored = %v, want %v", stored, tt.wantStored)
			}

			if !tt.wantStored {
				if len(entryRepo.All()) != 0 {
					t.Fatalf("expected no persisted entries")
				}
				return
			}

			if entry.Sign != tt.wantSign || entry.Amount != tt.wantAmount || entry.Label != tt.wantLabel {
				t.Fatalf("entry = %+v", entry)
			}

			if entry.CycleKey.String() != tt.wantCycle {
				t.Fatalf("cycle key = %s, want %s", entry.CycleKey, tt.wantCycle)
			}

			if entry.DayKey != "2026-02-03" {
				t.Fatalf("day key = %s, want 2026-02-03", entry.DayKey)
			}

			if entry.AuthorID != "u1" || entry.AuthorName != "Nok" {
				t.Fatalf("author = %s/%s", entry.AuthorID, entry.AuthorName)
			}
		})
	}
}

func TestLedgerUseCase_RecordTextStorageFault(t *testing.T) {
	uc, entryRepo, _, _ := newLedgerUC(time.Date(2026, time.February, 3, 14, 30, 0, 0, time.UTC))

	boom := errors.New("connection refused")
	entryRepo.AppendFunc = func(ctx context.Context, entry *domain.Entry) error {
		return boom
	}

	_, _, err := uc.RecordText(context.Background(), "g1", "u1", "Nok", "coffee 50")
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}

func TestLedgerUseCase_CycleSummaryHonorsLatestReset(t *testing.T) {
	base := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	uc, _, resetRepo, clock := newLedgerUC(base)

	ctx := context.Background()
	record := func(text string) {
		if _, ok, err := uc.RecordText(ctx, "g1", "u1", "Nok", text); err != nil || !ok {
			t.Fatalf("record %q: ok=%v err=%v", text, ok, err)
		}
	}

	record("+ salary 30,000")
	record("coffee 50")

	key := uc.CurrentCycleKey()

	sum, err := uc.CycleSummary(ctx, "g1", key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Income != 30000 || sum.Expense != 50 || sum.Net() != 29950 {
		t.Fatalf("pre-reset summary = %+v", sum)
	}

	// Reset marker after the first two entries.
	resetAt := base.Add(time.Hour)
	if err := resetRepo.Append(ctx, &domain.ResetMarker{ID: "r1", GroupID: "g1", CycleKey: key, ResetAt: resetAt}); err != nil {
		t.Fatalf("append marker: %v", err)
	}

	clock.Set(base.Add(2 * time.Hour))
	record("lunch 120")

	sum, err = uc.CycleSummary(ctx, "g1", key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Income != 0 || sum.Expense != 120 || sum.Net() != -120 {
		t.Fatalf("post-reset summary = %+v, want only entries after the marker", sum)
	}

	// An earlier, superseded marker must not widen the floor.
	older := resetAt.Add(-30 * time.Minute)
	if err := resetRepo.Append(ctx, &domain.ResetMarker{ID: "r0", GroupID: "g1", CycleKey: key, ResetAt: older}); err != nil {
		t.Fatalf("append marker: %v", err)
	}

	sum, err = uc.CycleSummary(ctx, "g1", key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Expense != 120 {
		t.Fatalf("summary after stale marker = %+v", sum)
	}
}

func TestLedgerUseCase_TodaySummaryIgnoresResets(t *testing.T) {
	base := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	uc, _, resetRepo, clock := newLedgerUC(base)

	ctx := context.Background()
	if _, _, err := uc.RecordText(ctx, "g1", "u1", "Nok", "breakfast 80"); err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := resetRepo.Append(ctx, &domain.ResetMarker{
		ID: "r1", GroupID: "g1",
		CycleKey: uc.CurrentCycleKey(),
		ResetAt:  base.Add(time.Minute),
	}); err != nil {
		t.Fatalf("append marker: %v", err)
	}

	clock.Advance(2 * time.Minute)
	sum, entries, err := uc.TodaySummary(ctx, "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The day view stays complete even though the cycle was reset.
	if sum.Expense != 80 || len(entries) != 1 {
		t.Fatalf("today summary = %+v with %d entries, want full day", sum, len(entries))
	}
}

func TestLedgerUseCase_ResolveCycleKey(t *testing.T) {
	uc, _, _, _ := newLedgerUC(time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"", "2026-02", false},
		{"0", "2026-02", false},
		{"-1", "2026-01", false},
		{"-2", "2025-12", false},
		{"2026-01", "2026-01", false},
		{"2026-13", "", true},
		{"2026", "", true},
		{"junk", "", true},
	}

	for _, tt := range tests {
		key, err := uc.ResolveCycleKey(tt.arg)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrInvalidCycleKey) {
				t.Errorf("ResolveCycleKey(%q) err = %v, want ErrInvalidCycleKey", tt.arg, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveCycleKey(%q): %v", tt.arg, err)
			continue
		}
		if key.String() != tt.want {
			t.Errorf("ResolveCycleKey(%q) = %s, want %s", tt.arg, key, tt.want)
		}
	}
}

func TestLedgerUseCase_SumCycleAdditiveOverResetFloor(t *testing.T) {
	// Splitting a cycle at any timestamp keeps the totals additive: the
	// floored query plus the excluded prefix equals the unbounded query.
	base := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	uc, entryRepo, _, clock := newLedgerUC(base)

	ctx := context.Background()
	amounts := []string{"a 100", "b 200", "+ c 500", "d 40"}
	for i, text := range amounts {
		clock.Set(base.Add(time.Duration(i) * time.Hour))
		if _, _, err := uc.RecordText(ctx, "g1", "u1", "", text); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	key := domain.CycleKeyFromDate(base, testCutoff)
	cut := base.Add(90 * time.Minute) // between entries b and c

	incomeAll, expenseAll, err := entryRepo.SumCycle(ctx, "g1", key, nil)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}

	incomeAfter, expenseAfter, err := entryRepo.SumCycle(ctx, "g1", key, &cut)
	if err != nil {
		t.Fatalf("sum after: %v", err)
	}

	if incomeAfter != 500 || expenseAfter != 40 {
		t.Fatalf("after-cut sums = %d/%d", incomeAfter, expenseAfter)
	}

	if incomeAll-incomeAfter != 0 || expenseAll-expenseAfter != 300 {
		t.Fatalf("prefix sums = %d/%d, want 0/300", incomeAll-incomeAfter, expenseAll-expenseAfter)
	}
}
