package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"stockpot/internal/db"
	"stockpot/internal/model"
)

func createTestUser(t *testing.T, database *sql.DB, email string) int64 {
	t.Helper()
	user, err := CreateUser(context.Background(), database, email, "hash", "Test User")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user.ID
}

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	item, err := CreateItem(ctx, database, owner, "123456", "Tomatoes", "Produce", "kg", 10, 2)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Name != "Tomatoes" {
		t.Errorf("expected name 'Tomatoes', got %q", item.Name)
	}
	if item.CurrentQuantity != 10 {
		t.Errorf("expected quantity 10, got %v", item.CurrentQuantity)
	}

	got, err := GetItem(ctx, database, item.ID, owner)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Barcode != "123456" {
		t.Errorf("expected barcode '123456', got %q", got.Barcode)
	}
}

func TestCreateItemDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	item, err := CreateItem(ctx, database, owner, "123", "Flour", "", "", 0, 0)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Category != "Uncategorized" {
		t.Errorf("expected default category, got %q", item.Category)
	}
	if item.Unit != "units" {
		t.Errorf("expected default unit, got %q", item.Unit)
	}
}

func TestCreateItemValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	if _, err := CreateItem(ctx, database, owner, "", "Tomatoes", "", "", 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty barcode, got %v", err)
	}
	if _, err := CreateItem(ctx, database, owner, "123", "", "", "", 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := CreateItem(ctx, database, owner, "123", "Tomatoes", "", "", -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative quantity, got %v", err)
	}
}

func TestDuplicateBarcodeSameOwner(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	if _, err := CreateItem(ctx, database, owner, "123", "Tomatoes", "", "", 0, 0); err != nil {
		t.Fatalf("first CreateItem: %v", err)
	}
	_, err := CreateItem(ctx, database, owner, "123", "Cherry Tomatoes", "", "", 0, 0)
	if !errors.Is(err, ErrDuplicateBarcode) {
		t.Errorf("expected ErrDuplicateBarcode, got %v", err)
	}
}

func TestSameBarcodeDifferentOwners(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner1 := createTestUser(t, database, "first@example.com")
	owner2 := createTestUser(t, database, "second@example.com")

	if _, err := CreateItem(ctx, database, owner1, "123", "Tomatoes", "", "", 0, 0); err != nil {
		t.Fatalf("CreateItem owner1: %v", err)
	}
	if _, err := CreateItem(ctx, database, owner2, "123", "Tomatoes", "", "", 0, 0); err != nil {
		t.Errorf("expected same barcode under different owner to succeed, got %v", err)
	}
}

func TestGetItemWrongOwner(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")
	other := createTestUser(t, database, "other@example.com")

	item, _ := CreateItem(ctx, database, owner, "123", "Tomatoes", "", "", 0, 0)

	if _, err := GetItem(ctx, database, item.ID, other); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for another owner's item, got %v", err)
	}
}

func TestGetItemByBarcode(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	CreateItem(ctx, database, owner, "999", "Olive Oil", "Pantry", "l", 3, 1)

	item, err := GetItemByBarcode(ctx, database, owner, "999")
	if err != nil {
		t.Fatalf("GetItemByBarcode: %v", err)
	}
	if item.Name != "Olive Oil" {
		t.Errorf("expected 'Olive Oil', got %q", item.Name)
	}

	if _, err := GetItemByBarcode(ctx, database, owner, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListItemsSorted(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	CreateItem(ctx, database, owner, "2", "Zucchini", "", "", 0, 0)
	CreateItem(ctx, database, owner, "1", "Apples", "", "", 0, 0)

	items, err := ListItems(ctx, database, owner)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Apples" || items[1].Name != "Zucchini" {
		t.Errorf("expected name order, got %q, %q", items[0].Name, items[1].Name)
	}
}

func TestUpdateItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	item, _ := CreateItem(ctx, database, owner, "123", "Tomatoes", "", "", 5, 0)

	updated, err := UpdateItem(ctx, database, item.ID, owner, "123", "Roma Tomatoes", "Produce", "kg", 2)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Name != "Roma Tomatoes" || updated.MinQuantity != 2 {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.CurrentQuantity != 5 {
		t.Errorf("update must not touch quantity, got %v", updated.CurrentQuantity)
	}
}

func TestUpdateItemBarcodeConflict(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	CreateItem(ctx, database, owner, "111", "Tomatoes", "", "", 0, 0)
	item, _ := CreateItem(ctx, database, owner, "222", "Onions", "", "", 0, 0)

	_, err := UpdateItem(ctx, database, item.ID, owner, "111", "Onions", "", "", 0)
	if !errors.Is(err, ErrDuplicateBarcode) {
		t.Errorf("expected ErrDuplicateBarcode, got %v", err)
	}
}

func TestDeleteItemCascades(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")

	item, _ := CreateItem(ctx, database, owner, "123", "Tomatoes", "", "", 10, 0)

	// Build some history.
	if _, err := SetQuantity(ctx, database, item.ID, owner, model.Absolute(6)); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if _, err := RecordWaste(ctx, database, item.ID, owner, 1, "spoiled", "", nil); err != nil {
		t.Fatalf("RecordWaste: %v", err)
	}

	if err := DeleteItem(ctx, database, item.ID, owner); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	if _, err := GetItem(ctx, database, item.ID, owner); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	var usage, waste int
	database.QueryRow(`SELECT COUNT(*) FROM usage_events WHERE item_id = ?`, item.ID).Scan(&usage)
	database.QueryRow(`SELECT COUNT(*) FROM waste_events WHERE item_id = ?`, item.ID).Scan(&waste)
	if usage != 0 || waste != 0 {
		t.Errorf("expected cascade to remove history, got %d usage, %d waste", usage, waste)
	}
}

func TestDeleteItemWrongOwner(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, database, "kitchen@example.com")
	other := createTestUser(t, database, "other@example.com")

	item, _ := CreateItem(ctx, database, owner, "123", "Tomatoes", "", "", 0, 0)

	if err := DeleteItem(ctx, database, item.ID, other); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := GetItem(ctx, database, item.ID, owner); err != nil {
		t.Errorf("item should still exist, got %v", err)
	}
}
