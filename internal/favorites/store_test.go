package favorites

import (
	"context"
	"reflect"
	"testing"

	"Buildcalc/internal/repo"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	db, err := repo.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	sqlStore := NewSQLStore(db, repo.SQLite)
	if err := sqlStore.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return map[string]Store{"memory": NewMemoryStore(), "sqlite": sqlStore}
}

func TestStoreGetSet(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.Get(ctx, 1, Favorites)
			if err != nil || len(got) != 0 {
				t.Fatalf("empty get = %v %v", got, err)
			}
			if err := s.Set(ctx, 1, Favorites, []string{"emi", "concrete"}); err != nil {
				t.Fatal(err)
			}
			if err := s.Set(ctx, 1, Recents, []string{"discount"}); err != nil {
				t.Fatal(err)
			}
			if err := s.Set(ctx, 2, Favorites, []string{"bar-bending"}); err != nil {
				t.Fatal(err)
			}
			got, _ = s.Get(ctx, 1, Favorites)
			if !reflect.DeepEqual(got, []string{"emi", "concrete"}) {
				t.Errorf("user 1 favorites = %v", got)
			}
			got, _ = s.Get(ctx, 2, Favorites)
			if !reflect.DeepEqual(got, []string{"bar-bending"}) {
				t.Errorf("user 2 favorites = %v", got)
			}

			if err := s.Set(ctx, 1, Favorites, nil); err != nil {
				t.Fatal(err)
			}
			got, _ = s.Get(ctx, 1, Favorites)
			if len(got) != 0 {
				t.Errorf("cleared favorites = %v", got)
			}
			got, _ = s.Get(ctx, 1, Recents)
			if !reflect.DeepEqual(got, []string{"discount"}) {
				t.Errorf("recents = %v", got)
			}
		})
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	s := NewMemoryStore()
	ids := []string{"emi"}
	s.Set(context.Background(), 1, Favorites, ids)
	ids[0] = "changed"
	got, _ := s.Get(context.Background(), 1, Favorites)
	got[0] = "mutated"
	again, _ := s.Get(context.Background(), 1, Favorites)
	if again[0] != "emi" {
		t.Errorf("stored list aliased: %v", again)
	}
}
