package cache

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}

	plain := errors.New("WRONGTYPE")
	if IsRetryable(classify(plain)) {
		t.Error("protocol errors should not be retried")
	}

	netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	err := classify(netErr)
	if !IsRetryable(err) {
		t.Error("network errors should be retried")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("classify() = %v, want ErrNetwork in chain", err)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "http://not-redis"); err == nil {
		t.Error("NewRedisCache should reject non-redis URLs")
	}
}

// TestRedisCache runs against a live server named by ONTODOT_TEST_REDIS_URL.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("ONTODOT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("ONTODOT_TEST_REDIS_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, url)
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()

	key := "ontodot:test:" + Hash([]byte(t.Name()))
	defer c.Delete(ctx, key)

	if err := c.Set(ctx, key, []byte("<svg/>"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, hit %v, err %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get after Delete should miss")
	}
}
