package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stockpot/internal/model"
)

// SetQuantity applies an adjustment to an item's quantity. When the
// resolved target is below the current quantity, the difference is
// recorded as a usage event in the same transaction, so quantity and
// history can never disagree. Increases record nothing.
func SetQuantity(ctx context.Context, db *sql.DB, itemID, userID int64, adj model.Adjustment) (*model.Item, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current float64
	err = tx.QueryRowContext(ctx,
		`SELECT current_quantity FROM items WHERE id = ? AND user_id = ?`,
		itemID, userID,
	).Scan(&current)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading current quantity: %w", err)
	}

	target := adj.Resolve(current)

	if used := current - target; used > 0 {
		if err := insertUsageEvent(ctx, tx, itemID, used); err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET current_quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		target, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating quantity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing quantity update: %w", err)
	}

	return GetItem(ctx, db, itemID, userID)
}

// RecordWaste logs a waste event and reduces the item's quantity by the
// same amount, clamped at zero. The event keeps the original unclamped
// quantity; waste is deliberately not validated against current stock.
// Waste reductions never double-count into usage events.
func RecordWaste(ctx context.Context, db *sql.DB, itemID, userID int64, quantity float64, reason, notes string, costEstimate *float64) (*model.Item, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if !model.ValidWasteReason(reason) {
		return nil, fmt.Errorf("%w: unknown waste reason %q", ErrInvalidInput, reason)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current float64
	err = tx.QueryRowContext(ctx,
		`SELECT current_quantity FROM items WHERE id = ? AND user_id = ?`,
		itemID, userID,
	).Scan(&current)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading current quantity: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO waste_events (item_id, quantity, reason, notes, cost_estimate)
		 VALUES (?, ?, ?, ?, ?)`,
		itemID, quantity, reason, sql.NullString{String: notes, Valid: notes != ""}, costEstimate,
	)
	if err != nil {
		return nil, fmt.Errorf("recording waste: %w", err)
	}

	target := current - quantity
	if target < 0 {
		target = 0
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE items SET current_quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		target, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating quantity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing waste record: %w", err)
	}

	return GetItem(ctx, db, itemID, userID)
}

// insertUsageEvent appends one consumption record within a transaction.
// Day of week is derived at write time (Sunday = 0).
func insertUsageEvent(ctx context.Context, tx *sql.Tx, itemID int64, used float64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO usage_events (item_id, quantity_used, day_of_week) VALUES (?, ?, ?)`,
		itemID, used, int(time.Now().Weekday()),
	)
	if err != nil {
		return fmt.Errorf("recording usage: %w", err)
	}
	return nil
}
