package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pattarin/banchi/internal/domain"
)

// FakeEntryRepository is a mock implementation of EntryRepository backed by
// an in-memory slice. Set the Func fields to override behavior per test.
type FakeEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.Entry

	AppendFunc   func(ctx context.Context, entry *domain.Entry) error
	SumCycleFunc func(ctx context.Context, groupID string, key domain.CycleKey, after *time.Time) (int64, int64, error)
	SumDayFunc   func(ctx context.Context, groupID, dayKey string) (int64, int64, error)
	ListDayFunc  func(ctx context.Context, groupID, dayKey string) ([]*domain.Entry, error)
}

func NewFakeEntryRepository() *FakeEntryRepository {
	return &FakeEntryRepository{}
}

func (m *FakeEntryRepository) Append(ctx context.Context, entry *domain.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *FakeEntryRepository) SumCycle(ctx context.Context, groupID string, key domain.CycleKey, after *time.Time) (int64, int64, error) {
	if m.SumCycleFunc != nil {
		return m.SumCycleFunc(ctx, groupID, key, after)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var income, expense int64
	for _, e := range m.entries {
		if e.GroupID != groupID || e.CycleKey != key {
			continue
		}
		if after != nil && !e.At.After(*after) {
			continue
		}
		switch e.Sign {
		case domain.SignIncome:
			income += e.Amount
		case domain.SignExpense:
			expense += e.Amount
		}
	}
	return income, expense, nil
}

func (m *FakeEntryRepository) SumDay(ctx context.Context, groupID, dayKey string) (int64, int64, error) {
	if m.SumDayFunc != nil {
		return m.SumDayFunc(ctx, groupID, dayKey)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var income, expense int64
	for _, e := range m.entries {
		if e.GroupID != groupID || e.DayKey != dayKey {
			continue
		}
		switch e.Sign {
		case domain.SignIncome:
			income += e.Amount
		case domain.SignExpense:
			expense += e.Amount
		}
	}
	return income, expense, nil
}

func (m *FakeEntryRepository) ListDay(ctx context.Context, groupID, dayKey string) ([]*domain.Entry, error) {
	if m.ListDayFunc != nil {
		return m.ListDayFunc(ctx, groupID, dayKey)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Entry
	for _, e := range m.entries {
		if e.GroupID == groupID && e.DayKey == dayKey {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].At.Before(entries[j].At) })
	return entries, nil
}

// All returns a snapshot of every stored entry.
func (m *FakeEntryRepository) All() []*domain.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// FakeResetMarkerRepository is a mock implementation of
// ResetMarkerRepository.
type FakeResetMarkerRepository struct {
	mu      sync.RWMutex
	markers []*domain.ResetMarker

	AppendFunc        func(ctx context.Context, marker *domain.ResetMarker) error
	LatestResetAtFunc func(ctx context.Context, groupID string, key domain.CycleKey) (time.Time, bool, error)
}

func NewFakeResetMarkerRepository() *FakeResetMarkerRepository {
	return &FakeResetMarkerRepository{}
}

func (m *FakeResetMarkerRepository) Append(ctx context.Context, marker *domain.ResetMarker) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, marker)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers = append(m.markers, marker)
	return nil
}

func (m *FakeResetMarkerRepository) LatestResetAt(ctx context.Context, groupID string, key domain.CycleKey) (time.Time, bool, error) {
	if m.LatestResetAtFunc != nil {
		return m.LatestResetAtFunc(ctx, groupID, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest time.Time
	found := false
	for _, mk := range m.markers {
		if mk.GroupID == groupID && mk.CycleKey == key && mk.ResetAt.After(latest) {
			latest = mk.ResetAt
			found = true
		}
	}
	return latest, found, nil
}

// Markers returns a snapshot of every stored marker.
func (m *FakeResetMarkerRepository) Markers() []*domain.ResetMarker {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.ResetMarker, len(m.markers))
	copy(out, m.markers)
	return out
}

// FakePendingResetStore is a mock implementation of PendingResetStore.
type FakePendingResetStore struct {
	mu      sync.Mutex
	pending map[string]*domain.PendingReset

	PutFunc    func(ctx context.Context, pending *domain.PendingReset) error
	GetFunc    func(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error)
	TakeFunc   func(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error)
	DeleteFunc func(ctx context.Context, groupID, requesterID string) (bool, error)
}

func NewFakePendingResetStore() *FakePendingResetStore {
	return &FakePendingResetStore{pending: make(map[string]*domain.PendingReset)}
}

func pendingKey(groupID, requesterID string) string {
	return groupID + "\x00" + requesterID
}

func (m *FakePendingResetStore) Put(ctx context.Context, pending *domain.PendingReset) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, pending)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[pendingKey(pending.GroupID, pending.RequesterID)] = pending
	return nil
}

func (m *FakePendingResetStore) Get(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, groupID, requesterID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pending[pendingKey(groupID, requesterID)]
	return p, ok, nil
}

func (m *FakePendingResetStore) Take(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error) {
	if m.TakeFunc != nil {
		return m.TakeFunc(ctx, groupID, requesterID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pendingKey(groupID, requesterID)
	p, ok := m.pending[key]
	if ok {
		delete(m.pending, key)
	}
	return p, ok, nil
}

func (m *FakePendingResetStore) Delete(ctx context.Context, groupID, requesterID string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, groupID, requesterID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pendingKey(groupID, requesterID)
	_, ok := m.pending[key]
	delete(m.pending, key)
	return ok, nil
}

// FakeIDGenerator is a mock implementation of IDGenerator.
type FakeIDGenerator struct {
	GenerateFunc func() string
	mu           sync.Mutex
	counter      int
}

func NewFakeIDGenerator() *FakeIDGenerator {
	return &FakeIDGenerator{}
}

func (m *FakeIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + string(rune('0'+m.counter%10))
}

// FakeClock is a settable clock for tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to a fixed time.
func (c *FakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
