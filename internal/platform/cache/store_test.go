package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
)

func TestStore_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var failures atomic.Int32
	var wg conc.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Go(func() {
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil || v != "value" {
				failures.Add(1)
			}
		})
	}

	close(start)
	wg.Wait()

	if got := failures.Load(); got != 0 {
		t.Fatalf("%d callers saw an unexpected result", got)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	boom := errors.New("boom")
	var calls atomic.Int32

	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, boom
	}
	if _, err := store.GetOrLoad(context.Background(), "k", failing); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	ok := func(context.Context) (int, error) {
		calls.Add(1)
		return 7, nil
	}
	got, err := store.GetOrLoad(context.Background(), "k", ok)
	if err != nil || got != 7 {
		t.Fatalf("expected 7, got %d err=%v", got, err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", ok); err != nil {
		t.Fatalf("cached GetOrLoad error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("loader called %d times, want 2", calls.Load())
	}
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore[string](time.Second)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	store := NewStore[int](0)
	ctx := context.Background()
	store.Set(ctx, "club-1:a", 1)
	store.Set(ctx, "club-1:b", 2)
	store.Set(ctx, "club-2:a", 3)

	if removed := store.DeletePrefix(ctx, "club-1:"); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", store.Len())
	}
}

func TestStore_DeleteFunc(t *testing.T) {
	store := NewStore[int](0)
	ctx := context.Background()
	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)
	store.Set(ctx, "c", 3)

	removed := store.DeleteFunc(ctx, func(_ string, v int) bool { return v%2 == 1 })
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if _, ok := store.Get(ctx, "b"); !ok {
		t.Fatalf("expected non-matching entry to survive")
	}
	if removed := store.DeleteFunc(ctx, nil); removed != 0 {
		t.Fatalf("nil matcher removed %d entries", removed)
	}
}
