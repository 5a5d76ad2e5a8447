package domain

import (
	"time"
)

// Sign classifies an entry as money in or money out.
type Sign string

const (
	SignIncome  Sign = "income"
	SignExpense Sign = "expense"
)

// Valid reports whether s is one of the two known signs.
func (s Sign) Valid() bool {
	return s == SignIncome || s == SignExpense
}

// Entry is one posted transaction. Entries are append-only: created once
// when a message parses, never updated or deleted. DayKey and CycleKey are
// derived from At at creation time and stored alongside it for indexing.
type Entry struct {
	At         time.Time
	ID         string
	GroupID    string
	DayKey     string
	CycleKey   CycleKey
	Sign       Sign
	Amount     int64
	Label      string
	AuthorID   string
	AuthorName string
}

// ResetMarker is a boundary event that logically zeroes a cycle's balance
// from its timestamp forward. Markers accumulate; only the most recent one
// in a (group, cycle) drives aggregation, older ones stay for audit.
type ResetMarker struct {
	ResetAt  time.Time
	ID       string
	GroupID  string
	CycleKey CycleKey
}

// PendingReset is an ephemeral confirmation request. At most one exists per
// (group, requester); it is consumed by confirmation, removed by
// cancellation, or discovered expired on the next confirmation attempt.
type PendingReset struct {
	ExpiresAt   time.Time
	GroupID     string
	RequesterID string
}

// Expired reports whether the request window has lapsed at the given time.
func (p PendingReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
