package counterstore

import (
	"sync"
	"testing"

	"github.com/dalemusser/hydrasite/internal/testutil"
)

func TestStore_Next_Sequential(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Next(ctx, "services")
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}

	// Sequences are independent
	got, err := store.Next(ctx, "courses")
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Next(courses) = %d, want 1", got)
	}
}

func TestStore_Next_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Prime the sequence so concurrent upserts don't race on insert
	if _, err := store.Next(ctx, "products"); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[int64]bool{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.Next(ctx, "products")
			if err != nil {
				t.Errorf("Next() error = %v", err)
				return
			}
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("got %d distinct ids, want %d", len(seen), n)
	}
	cur, err := store.Current(ctx, "products")
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if cur != n+1 {
		t.Errorf("Current() = %d, want %d", cur, n+1)
	}
}

func TestStore_Current_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := store.Current(ctx, "nothing")
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if cur != 0 {
		t.Errorf("Current() = %d, want 0", cur)
	}
}
