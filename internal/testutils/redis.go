// Package testutils provides shared test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/descent/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client for it along with a
// cleanup func that stops the server
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, mr := CreateTestRedisServer(t)
	return client, mr.Close
}

// CreateTestRedisServer is CreateTestRedisClient for tests that also need to inspect or
// seed the server directly. The server is stopped when the test ends.
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr
}
