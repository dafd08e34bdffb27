package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      time.Minute,
		MaxSize:         100,
		CleanupInterval: time.Hour, // keep the cleanup loop out of test timing
	})
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := newTestCache()
	defer func() { _ = c.Close() }()

	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := newTestCache()
	defer func() { _ = c.Close() }()

	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Get on missing key: err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := newTestCache()
	defer func() { _ = c.Close() }()

	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, err := c.Get(ctx, "short"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Get after expiry: err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := newTestCache()
	defer func() { _ = c.Close() }()

	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "key"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Get after delete: err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := newTestCache()
	defer func() { _ = c.Close() }()

	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, []byte("v"), time.Minute); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if ok, _ := c.Has(ctx, key); ok {
			t.Errorf("key %q survived Clear", key)
		}
	}
}

func TestMemoryCache_ValueCopied(t *testing.T) {
	c := newTestCache()
	defer func() { _ = c.Close() }()

	ctx := context.Background()

	original := []byte("original")
	if err := c.Set(ctx, "key", original, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	original[0] = 'X'

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("stored value mutated through caller slice: %q", got)
	}
}
