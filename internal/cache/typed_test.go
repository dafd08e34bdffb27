package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestTypedCache_SetGet(t *testing.T) {
	backend := newTestCache()
	defer func() { _ = backend.Close() }()

	c := NewTypedCache[payload](backend, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "p", &payload{Name: "hero", Count: 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := c.Get(ctx, "p")
	if !ok {
		t.Fatal("Get returned miss for stored value")
	}
	if got.Name != "hero" || got.Count != 3 {
		t.Errorf("Get = %+v, want {hero 3}", got)
	}
}

func TestTypedCache_Miss(t *testing.T) {
	backend := newTestCache()
	defer func() { _ = backend.Close() }()

	c := NewTypedCache[payload](backend, time.Minute)

	if _, ok := c.Get(context.Background(), "absent"); ok {
		t.Fatal("Get returned hit for missing key")
	}
}

func TestTypedCache_GetOrSet(t *testing.T) {
	backend := newTestCache()
	defer func() { _ = backend.Close() }()

	c := NewTypedCache[payload](backend, time.Minute)
	ctx := context.Background()

	calls := 0
	loader := func() (*payload, error) {
		calls++
		return &payload{Name: "loaded", Count: calls}, nil
	}

	first, err := c.GetOrSet(ctx, "p", loader)
	if err != nil {
		t.Fatalf("GetOrSet (miss): %v", err)
	}
	second, err := c.GetOrSet(ctx, "p", loader)
	if err != nil {
		t.Fatalf("GetOrSet (hit): %v", err)
	}

	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
	if first.Count != second.Count {
		t.Errorf("cached value differs from loaded value: %d vs %d", first.Count, second.Count)
	}
}

func TestTypedCache_GetOrSet_LoaderError(t *testing.T) {
	backend := newTestCache()
	defer func() { _ = backend.Close() }()

	c := NewTypedCache[payload](backend, time.Minute)

	wantErr := errors.New("load failed")
	_, err := c.GetOrSet(context.Background(), "p", func() (*payload, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetOrSet err = %v, want %v", err, wantErr)
	}

	if _, ok := c.Get(context.Background(), "p"); ok {
		t.Fatal("failed load must not populate the cache")
	}
}

func TestTypedCache_Delete(t *testing.T) {
	backend := newTestCache()
	defer func() { _ = backend.Close() }()

	c := NewTypedCache[payload](backend, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "p", &payload{Name: "x"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "p"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := c.Get(ctx, "p"); ok {
		t.Fatal("value survived Delete")
	}
}
