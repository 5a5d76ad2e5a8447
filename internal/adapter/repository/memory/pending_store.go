// Package memory provides the in-process PendingResetStore used by
// single-instance deployments. State does not survive a restart, which is
// acceptable for confirmation windows measured in seconds.
package memory

import (
	"context"
	"sync"

	"github.com/pattarin/banchi/internal/domain"
)

// PendingResetStore implements usecase.PendingResetStore with a mutex-guarded
// map keyed by (group, requester).
type PendingResetStore struct {
	mu      sync.Mutex
	pending map[pendingKey]domain.PendingReset
}

type pendingKey struct {
	groupID     string
	requesterID string
}

// NewPendingResetStore creates an empty store.
func NewPendingResetStore() *PendingResetStore {
	return &PendingResetStore{
		pending: make(map[pendingKey]domain.PendingReset),
	}
}

// Put stores the request, replacing any existing one for the same scope.
func (s *PendingResetStore) Put(_ context.Context, pending *domain.PendingReset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[pendingKey{pending.GroupID, pending.RequesterID}] = *pending

	return nil
}

// Get returns the request without removing it.
func (s *PendingResetStore) Get(_ context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.pending[pendingKey{groupID, requesterID}]
	if !ok {
		return nil, false, nil
	}

	return &pending, true, nil
}

// Take removes and returns the request in one step. Only one caller can
// take a given request; the loser sees found=false.
func (s *PendingResetStore) Take(_ context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pendingKey{groupID, requesterID}
	pending, ok := s.pending[key]
	if !ok {
		return nil, false, nil
	}
	delete(s.pending, key)

	return &pending, true, nil
}

// Delete removes the request, reporting whether one existed.
func (s *PendingResetStore) Delete(_ context.Context, groupID, requesterID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pendingKey{groupID, requesterID}
	_, ok := s.pending[key]
	delete(s.pending, key)

	return ok, nil
}
