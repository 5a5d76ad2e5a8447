package redis

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

// newTestStore runs an in-process redis and returns a pending store bound to
// it. The miniredis handle is exposed so tests can advance TTLs.
func newTestStore(t *testing.T) (*PendingResetStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
	})

	return NewPendingResetStore(client), mr
}
