package handler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/pattarin/banchi/internal/adapter/chat"
	"github.com/pattarin/banchi/internal/usecase"
	"github.com/pattarin/banchi/internal/usecase/mocks"
)

const testCutoff = 6

type handlerFixture struct {
	ledger     *usecase.LedgerUseCase
	dispatcher *chat.Dispatcher
	entryRepo  *mocks.FakeEntryRepository
	clock      *mocks.FakeClock
}

func newHandlerFixture(now time.Time) *handlerFixture {
	entryRepo := mocks.NewFakeEntryRepository()
	resetRepo := mocks.NewFakeResetMarkerRepository()
	pending := mocks.NewFakePendingResetStore()
	idGen := mocks.NewFakeIDGenerator()
	clock := mocks.NewFakeClock(now)

	ledger := usecase.NewLedgerUseCase(entryRepo, resetRepo, idGen, clock, testCutoff, nil)
	reset := usecase.NewResetUseCase(pending, resetRepo, idGen, clock, testCutoff, usecase.DefaultConfirmWindow, nil)

	return &handlerFixture{
		ledger:     ledger,
		dispatcher: chat.NewDispatcher(ledger, reset, zerolog.Nop(), nil),
		entryRepo:  entryRepo,
		clock:      clock,
	}
}
