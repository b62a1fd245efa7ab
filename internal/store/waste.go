package store

import (
	"context"
	"database/sql"
	"fmt"

	"stockpot/internal/model"
)

// ListWasteEvents returns all of a user's waste records within the
// trailing window, newest first, with item names joined in.
func ListWasteEvents(ctx context.Context, db *sql.DB, userID int64, windowDays int) ([]model.WasteEvent, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT w.id, w.item_id, w.quantity, w.reason, w.notes, w.cost_estimate, w.wasted_at,
		        i.name, i.unit
		 FROM waste_events w
		 JOIN items i ON i.id = w.item_id
		 WHERE i.user_id = ? AND w.wasted_at >= datetime('now', '-' || ? || ' days')
		 ORDER BY w.wasted_at DESC`,
		userID, windowDays,
	)
	if err != nil {
		return nil, fmt.Errorf("listing waste events: %w", err)
	}
	defer rows.Close()

	return scanWasteEvents(rows)
}

// ListItemWasteEvents returns one item's waste history within the window.
func ListItemWasteEvents(ctx context.Context, db *sql.DB, itemID, userID int64, windowDays int) ([]model.WasteEvent, error) {
	if _, err := GetItem(ctx, db, itemID, userID); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT w.id, w.item_id, w.quantity, w.reason, w.notes, w.cost_estimate, w.wasted_at,
		        i.name, i.unit
		 FROM waste_events w
		 JOIN items i ON i.id = w.item_id
		 WHERE w.item_id = ? AND w.wasted_at >= datetime('now', '-' || ? || ' days')
		 ORDER BY w.wasted_at DESC`,
		itemID, windowDays,
	)
	if err != nil {
		return nil, fmt.Errorf("listing item waste events: %w", err)
	}
	defer rows.Close()

	return scanWasteEvents(rows)
}

func scanWasteEvents(rows *sql.Rows) ([]model.WasteEvent, error) {
	var events []model.WasteEvent
	for rows.Next() {
		var e model.WasteEvent
		var notes sql.NullString
		var cost sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Quantity, &e.Reason, &notes, &cost,
			&e.WastedAt, &e.ItemName, &e.ItemUnit); err != nil {
			return nil, fmt.Errorf("scanning waste event: %w", err)
		}
		e.Notes = notes.String
		if cost.Valid {
			e.CostEstimate = &cost.Float64
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
