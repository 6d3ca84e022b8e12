package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestFetchCachesValue(t *testing.T) {
	store := New()
	calls := 0

	for i := 0; i < 3; i++ {
		v, err := store.Fetch("students", func() (any, error) {
			calls++
			return []string{"Ann", "Bo"}, nil
		})
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if got := v.([]string); len(got) != 2 {
			t.Fatalf("Fetch() = %v, want 2 entries", got)
		}
	}

	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
}

func TestFetchDeduplicatesConcurrentReads(t *testing.T) {
	store := New()
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func() (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return "rows", nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.Fetch("payments", fetch)
	}()
	<-started

	// Readers arriving while the first fetch is in flight share its result.
	for i := 0; i < 9; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.Fetch("payments", fetch)
			if err != nil {
				t.Errorf("Fetch() error = %v", err)
			}
			if v != "rows" {
				t.Errorf("Fetch() = %v, want rows", v)
			}
		}()
	}

	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("fetch ran %d times, want 1", got)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	store := New()
	calls := 0
	fetch := func() (any, error) {
		calls++
		return calls, nil
	}

	store.Fetch("students", fetch)
	store.Invalidate("students")
	v, _ := store.Fetch("students", fetch)

	if calls != 2 {
		t.Errorf("fetch ran %d times after invalidation, want 2", calls)
	}
	if v.(int) != 2 {
		t.Errorf("Fetch() after invalidation = %v, want the refetched value 2", v)
	}
}

func TestInvalidateLeavesOtherKeys(t *testing.T) {
	store := New()
	calls := map[string]int{}
	fetch := func(key string) func() (any, error) {
		return func() (any, error) {
			calls[key]++
			return key, nil
		}
	}

	store.Fetch("students", fetch("students"))
	store.Fetch("payments", fetch("payments"))
	store.Invalidate("students")
	store.Fetch("students", fetch("students"))
	store.Fetch("payments", fetch("payments"))

	if calls["students"] != 2 {
		t.Errorf("students fetched %d times, want 2", calls["students"])
	}
	if calls["payments"] != 1 {
		t.Errorf("payments fetched %d times, want 1", calls["payments"])
	}
}

func TestFetchErrorIsNotCached(t *testing.T) {
	store := New()
	calls := 0
	failing := errors.New("store unavailable")

	_, err := store.Fetch("students", func() (any, error) {
		calls++
		return nil, failing
	})
	if !errors.Is(err, failing) {
		t.Fatalf("Fetch() error = %v, want %v", err, failing)
	}

	v, err := store.Fetch("students", func() (any, error) {
		calls++
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("Fetch() after failure error = %v", err)
	}
	if v != "recovered" {
		t.Errorf("Fetch() = %v, want recovered", v)
	}
	if calls != 2 {
		t.Errorf("fetch ran %d times, want 2 (errors must not be cached)", calls)
	}
}
