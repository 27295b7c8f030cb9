package redis

import (
	"context"
	"testing"
)

func TestConnectUnreachableReturnsNoCache(t *testing.T) {
	// nothing listens on port 1
	cache, err := Connect(context.Background(), "127.0.0.1:1", "")
	if err == nil {
		t.Fatalf("expected an error for an unreachable server")
	}
	if cache != nil {
		t.Fatalf("expected no cache, got %+v", cache)
	}
}
