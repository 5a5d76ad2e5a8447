// Package redis provides the PendingResetStore used when several instances
// share one chat backend and a confirmation may land on a different instance
// than the request it answers.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pattarin/banchi/internal/domain"
)

// keyTTLGrace keeps lapsed keys around briefly so a late confirmation is
// answered with an expiry notice instead of silence.
const keyTTLGrace = 5 * time.Minute

// PendingResetStore implements usecase.PendingResetStore using Redis.
// Take relies on GETDEL for its remove-and-return atomicity.
type PendingResetStore struct {
	client *redis.Client
	prefix string
}

// NewPendingResetStore creates a new PendingResetStore.
func NewPendingResetStore(client *redis.Client) *PendingResetStore {
	return &PendingResetStore{
		client: client,
		prefix: "pending-reset:",
	}
}

func (s *PendingResetStore) key(groupID, requesterID string) string {
	return s.prefix + groupID + ":" + requesterID
}

type pendingValue struct {
	GroupID     string    `json:"group_id"`
	RequesterID string    `json:"requester_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Put stores the request, replacing any existing one for the same scope.
func (s *PendingResetStore) Put(ctx context.Context, pending *domain.PendingReset) error {
	payload, err := json.Marshal(pendingValue{
		GroupID:     pending.GroupID,
		RequesterID: pending.RequesterID,
		ExpiresAt:   pending.ExpiresAt,
	})
	if err != nil {
		return err
	}

	ttl := time.Until(pending.ExpiresAt) + keyTTLGrace

	return s.client.Set(ctx, s.key(pending.GroupID, pending.RequesterID), payload, ttl).Err()
}

// Get returns the request without removing it.
func (s *PendingResetStore) Get(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error) {
	payload, err := s.client.Get(ctx, s.key(groupID, requesterID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return decodePending(payload)
}

// Take removes and returns the request in one step.
func (s *PendingResetStore) Take(ctx context.Context, groupID, requesterID string) (*domain.PendingReset, bool, error) {
	payload, err := s.client.GetDel(ctx, s.key(groupID, requesterID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return decodePending(payload)
}

// Delete removes the request, reporting whether one existed.
func (s *PendingResetStore) Delete(ctx context.Context, groupID, requesterID string) (bool, error) {
	removed, err := s.client.Del(ctx, s.key(groupID, requesterID)).Result()
	if err != nil {
		return false, err
	}

	return removed > 0, nil
}

func decodePending(payload []byte) (*domain.PendingReset, bool, error) {
	var value pendingValue
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, false, err
	}

	return &domain.PendingReset{
		GroupID:     value.GroupID,
		RequesterID: value.RequesterID,
		ExpiresAt:   value.ExpiresAt,
	}, true, nil
}
