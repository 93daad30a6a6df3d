package service

import (
	"testing"

	"github.com/fulldump/recorddb/database"
	"github.com/fulldump/recorddb/store"
)

func newTestService(t *testing.T) *Service {

	t.Helper()

	db := database.NewDatabase(&database.Config{
		Kinds: []database.KindConfig{
			{Name: "users", Defaults: map[string]any{"name": "Unknown", "email": ""}},
		},
	})
	if err := db.Load(); err != nil {
		t.Fatalf("load database: %v", err)
	}

	return NewService(db)
}

func TestGetStore(t *testing.T) {

	s := newTestService(t)

	users, err := s.GetStore("users")
	if err != nil {
		t.Fatalf("get store: %v", err)
	}
	if users.Kind != "users" {
		t.Fatalf("unexpected kind: %s", users.Kind)
	}

	_, err = s.GetStore("missing")
	if err != ErrorStoreNotFound {
		t.Fatalf("expected ErrorStoreNotFound, got %v", err)
	}
}

func TestCreateStoreConflict(t *testing.T) {

	s := newTestService(t)

	_, err := s.CreateStore("users", nil)
	if err != ErrorStoreAlreadyExists {
		t.Fatalf("expected ErrorStoreAlreadyExists, got %v", err)
	}
}

func TestListStoresSorted(t *testing.T) {

	s := newTestService(t)

	if _, err := s.CreateStore("products", &store.Options{
		Defaults: map[string]any{"name": "Unknown Product", "price": 0.0},
	}); err != nil {
		t.Fatalf("create store: %v", err)
	}

	list := s.ListStores()
	if len(list) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(list))
	}
	if list[0].Name != "products" || list[1].Name != "users" {
		t.Fatalf("unexpected order: %s, %s", list[0].Name, list[1].Name)
	}
}

func TestStoreInfoTotal(t *testing.T) {

	s := newTestService(t)

	users, _ := s.GetStore("users")
	users.Create(store.Record{"name": "Alice"})

	info := NewStoreInfo("users", users)
	if info.Total != 1 {
		t.Fatalf("expected total 1, got %d", info.Total)
	}
}
