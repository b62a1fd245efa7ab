package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"stockpot/internal/model"
)

const itemColumns = `id, user_id, barcode, name, category, unit, current_quantity, min_quantity, created_at, updated_at`

// scanItem scans one item row from a row-like source.
func scanItem(row interface{ Scan(...any) error }) (*model.Item, error) {
	item := &model.Item{}
	err := row.Scan(&item.ID, &item.UserID, &item.Barcode, &item.Name, &item.Category,
		&item.Unit, &item.CurrentQuantity, &item.MinQuantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem creates a new item for a user. The (barcode, user) pair must
// be unique; the same barcode under a different user is fine.
func CreateItem(ctx context.Context, db *sql.DB, userID int64, barcode, name, category, unit string, quantity, minQuantity float64) (*model.Item, error) {
	barcode = strings.TrimSpace(barcode)
	name = strings.TrimSpace(name)
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode required", ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if quantity < 0 || minQuantity < 0 {
		return nil, fmt.Errorf("%w: quantities must be non-negative", ErrInvalidInput)
	}
	if category == "" {
		category = "Uncategorized"
	}
	if unit == "" {
		unit = "units"
	}

	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE barcode = ? AND user_id = ?)`,
		barcode, userID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking barcode: %w", err)
	}
	if exists {
		return nil, ErrDuplicateBarcode
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (user_id, barcode, name, category, unit, current_quantity, min_quantity)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, barcode, name, category, unit, quantity, minQuantity,
	)
	if err != nil {
		// The unique index backs the pre-check against races.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateBarcode
		}
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id, userID)
}

// GetItem returns an item by ID, scoped to its owner.
func GetItem(ctx context.Context, db *sql.DB, id, userID int64) (*model.Item, error) {
	item, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND user_id = ?`, id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// GetItemByBarcode returns a user's item by barcode.
func GetItemByBarcode(ctx context.Context, db *sql.DB, userID int64, barcode string) (*model.Item, error) {
	item, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE barcode = ? AND user_id = ?`, barcode, userID,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item by barcode: %w", err)
	}
	return item, nil
}

// ListItems returns all of a user's items ordered by name.
func ListItems(ctx context.Context, db *sql.DB, userID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE user_id = ? ORDER BY name`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItem updates an item's metadata. A barcode change is re-checked
// for uniqueness within the owner's items.
func UpdateItem(ctx context.Context, db *sql.DB, id, userID int64, barcode, name, category, unit string, minQuantity float64) (*model.Item, error) {
	barcode = strings.TrimSpace(barcode)
	name = strings.TrimSpace(name)
	if barcode == "" || name == "" {
		return nil, fmt.Errorf("%w: barcode and name required", ErrInvalidInput)
	}
	if minQuantity < 0 {
		return nil, fmt.Errorf("%w: min_quantity must be non-negative", ErrInvalidInput)
	}

	var taken bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE barcode = ? AND user_id = ? AND id != ?)`,
		barcode, userID, id,
	).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("checking barcode: %w", err)
	}
	if taken {
		return nil, ErrDuplicateBarcode
	}

	result, err := db.ExecContext(ctx,
		`UPDATE items SET barcode = ?, name = ?, category = ?, unit = ?, min_quantity = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		barcode, name, category, unit, minQuantity, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return GetItem(ctx, db, id, userID)
}

// DeleteItem removes an item. Its usage and waste history goes with it via
// foreign key cascade.
func DeleteItem(ctx context.Context, db *sql.DB, id, userID int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
