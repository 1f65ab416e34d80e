//go:build integration

package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestRedisStoreIntegration(t *testing.T) {
	addr := os.Getenv("ECHOTAB_REDIS_ADDR")
	if addr == "" {
		t.Skip("ECHOTAB_REDIS_ADDR not set")
	}

	ctx := context.Background()
	s, err := NewRedisStore(ctx, RedisOptions{
		Addr:   addr,
		Prefix: fmt.Sprintf("echotab-test-%d:", time.Now().UnixNano()),
	})
	if err != nil {
		t.Fatalf("NewRedisStore() error: %v", err)
	}
	defer s.Close()

	testStore(t, s)
}
