package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pattarin/banchi/internal/domain"
	"github.com/pattarin/banchi/internal/usecase"
	"github.com/pattarin/banchi/internal/usecase/mocks"
)

func TestLedgerUseCase_CycleSummaryQueriesAfterLatestReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	resetRepo := mocks.NewMockResetMarkerRepository(ctrl)

	now := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewFakeClock(now)
	uc := usecase.NewLedgerUseCase(entryRepo, resetRepo, mocks.NewFakeIDGenerator(), clock, testCutoff, nil)

	key := domain.CycleKey{Year: 2026, Month: time.February}
	resetAt := time.Date(2026, time.February, 8, 14, 30, 0, 0, time.UTC)

	resetRepo.EXPECT().
		LatestResetAt(gomock.Any(), "g1", key).
		Return(resetAt, true, nil)

	entryRepo.EXPECT().
		SumCycle(gomock.Any(), "g1", key, gomock.Cond(func(after *time.Time) bool {
			return after != nil && after.Equal(resetAt)
		})).
		Return(int64(700), int64(250), nil)

	sum, err := uc.CycleSummary(context.Background(), "g1", key)
	require.NoError(t, err)
	assert.Equal(t, int64(700), sum.Income)
	assert.Equal(t, int64(250), sum.Expense)
	assert.Equal(t, int64(450), sum.Net())
}

func TestLedgerUseCase_CycleSummaryWithoutReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	resetRepo := mocks.NewMockResetMarkerRepository(ctrl)

	now := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	uc := usecase.NewLedgerUseCase(entryRepo, resetRepo, mocks.NewFakeIDGenerator(), mocks.NewFakeClock(now), testCutoff, nil)

	key := domain.CycleKey{Year: 2026, Month: time.February}

	resetRepo.EXPECT().
		LatestResetAt(gomock.Any(), "g1", key).
		Return(time.Time{}, false, nil)

	// No reset marker means the whole cycle is summed.
	entryRepo.EXPECT().
		SumCycle(gomock.Any(), "g1", key, gomock.Nil()).
		Return(int64(0), int64(90), nil)

	sum, err := uc.CycleSummary(context.Background(), "g1", key)
	require.NoError(t, err)
	assert.Equal(t, int64(-90), sum.Net())
}
