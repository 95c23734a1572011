package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errLoad = errors.New("load failed")

func TestStore_GetOrLoad_CollapsesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(context.Background(), "season:list", func(context.Context) (any, error) {
				loads.Add(1)
				<-release
				return []string{"winter-2025"}, nil
			})
			if err != nil {
				t.Errorf("GetOrLoad: %v", err)
			}
			results[i] = v
		}()
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
	for i, v := range results {
		if seasons, _ := v.([]string); len(seasons) != 1 {
			t.Fatalf("caller %d got %v", i, v)
		}
	}
}

func TestStore_GetOrLoad_Errors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32
	failing := func(context.Context) (any, error) {
		loads.Add(1)
		return nil, errLoad
	}

	for range 2 {
		if _, err := store.GetOrLoad(context.Background(), "division:1", failing); !errors.Is(err, errLoad) {
			t.Fatalf("expected load error, got %v", err)
		}
	}
	if got := loads.Load(); got != 2 {
		t.Fatalf("failed loads must not be cached, loader ran %d times", got)
	}
	if _, err := store.GetOrLoad(context.Background(), "division:1", nil); !errors.Is(err, errNoLoader) {
		t.Fatalf("expected errNoLoader, got %v", err)
	}
}

func TestStore_TTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 19, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		ttl     time.Duration
		advance time.Duration
		want    bool
	}{
		{name: "fresh", ttl: time.Minute, advance: 59 * time.Second, want: true},
		{name: "expired at ttl", ttl: time.Minute, advance: time.Minute, want: false},
		{name: "no ttl", ttl: 0, advance: 24 * time.Hour, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := now
			store := NewStore(tt.ttl)
			store.now = func() time.Time { return clock }

			store.Set(context.Background(), "week:20", "Week 1")
			clock = clock.Add(tt.advance)
			if _, ok := store.Get(context.Background(), "week:20"); ok != tt.want {
				t.Fatalf("cached=%v want=%v", ok, tt.want)
			}
		})
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	for _, k := range []string{"season:list", "season:slug:winter-2025", "division:list"} {
		store.Set(ctx, k, k)
	}
	store.Set(ctx, "", "ignored")

	if n := store.DeletePrefix(ctx, ""); n != 0 {
		t.Fatalf("empty prefix removed %d keys", n)
	}
	if n := store.DeletePrefix(ctx, "season:"); n != 2 {
		t.Fatalf("removed %d season keys, want 2", n)
	}
	if _, ok := store.Get(ctx, "division:list"); !ok {
		t.Fatal("division entry must survive a season invalidation")
	}
	if _, ok := store.Get(ctx, ""); ok {
		t.Fatal("empty key must never be stored")
	}
}
