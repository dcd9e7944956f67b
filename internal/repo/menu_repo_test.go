package repo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shaiso/restaurant/internal/domain"
)

func newTestItem(name string) *domain.MenuItem {
	return &domain.MenuItem{
		Name:        name,
		Description: "Test description for " + name,
		Price:       9.99,
		Category:    domain.CategoryEntree,
		Ingredients: []string{"salt"},
		Available:   true,
	}
}

func newSeededRepo(t *testing.T) *MenuRepo {
	t.Helper()
	seed, err := DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	return NewMenuRepo(seed)
}

func TestMenuRepo_ListPreservesSeedOrder(t *testing.T) {
	r := newSeededRepo(t)

	items, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}
	for i, item := range items {
		if item.ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, item.ID)
		}
	}
}

func TestMenuRepo_GetByID(t *testing.T) {
	r := newSeededRepo(t)

	item, err := r.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Mozzarella Sticks" {
		t.Errorf("expected Mozzarella Sticks, got %s", item.Name)
	}

	if _, err := r.GetByID(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMenuRepo_ReturnsCopies(t *testing.T) {
	r := newSeededRepo(t)

	item, _ := r.GetByID(context.Background(), 1)
	item.Ingredients[0] = "tofu"
	item.Name = "changed"

	again, _ := r.GetByID(context.Background(), 1)
	if again.Ingredients[0] != "beef" {
		t.Errorf("stored ingredients were mutated: %v", again.Ingredients)
	}
	if again.Name != "Classic Burger" {
		t.Errorf("stored name was mutated: %s", again.Name)
	}
}

func TestMenuRepo_CreateAssignsNextID(t *testing.T) {
	r := newSeededRepo(t)

	item := newTestItem("Taco")
	item.ID = 42 // игнорируется
	if err := r.Create(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 7 {
		t.Errorf("expected id 7, got %d", item.ID)
	}

	items, _ := r.List(context.Background())
	if items[len(items)-1].Name != "Taco" {
		t.Error("created item should be appended to the end")
	}
}

func TestMenuRepo_CreateOnEmpty(t *testing.T) {
	r := NewMenuRepo(nil)

	item := newTestItem("First")
	if err := r.Create(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 1 {
		t.Errorf("expected id 1, got %d", item.ID)
	}
}

func TestMenuRepo_IDReusedAfterDeletingMax(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	first := newTestItem("Taco")
	r.Create(ctx, first)
	if first.ID != 7 {
		t.Fatalf("expected id 7, got %d", first.ID)
	}

	if _, err := r.Delete(ctx, 7); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second := newTestItem("Burrito")
	r.Create(ctx, second)
	if second.ID != 7 {
		t.Errorf("expected reused id 7, got %d", second.ID)
	}
}

func TestMenuRepo_IDNotReusedAfterDeletingMiddle(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	r.Delete(ctx, 2)

	item := newTestItem("Taco")
	r.Create(ctx, item)
	if item.ID != 7 {
		t.Errorf("expected id 7, got %d", item.ID)
	}
}

func TestMenuRepo_ReplaceKeepsPosition(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	item := newTestItem("Veggie Burger")
	item.ID = 1
	if err := r.Replace(ctx, item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := r.List(ctx)
	if items[0].ID != 1 || items[0].Name != "Veggie Burger" {
		t.Errorf("expected replaced item at position 0, got %+v", items[0])
	}
	if len(items) != 6 {
		t.Errorf("replace should not change size, got %d", len(items))
	}

	missing := newTestItem("Ghost")
	missing.ID = 999
	if err := r.Replace(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMenuRepo_DeleteTwice(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	deleted, err := r.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Name != "Classic Burger" {
		t.Errorf("expected deleted Classic Burger, got %s", deleted.Name)
	}
	if r.Len() != 5 {
		t.Errorf("expected 5 items, got %d", r.Len())
	}

	if _, err := r.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := r.GetByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMenuRepo_ConcurrentCreateUniqueIDs(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	const n = 50
	ids := make([]int, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := newTestItem("Concurrent")
			r.Create(ctx, item)
			ids[i] = item.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if r.Len() != 6+n {
		t.Errorf("expected %d items, got %d", 6+n, r.Len())
	}
}
