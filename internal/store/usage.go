package store

import (
	"context"
	"database/sql"
	"fmt"

	"stockpot/internal/model"
)

// ListUsageEvents returns an item's usage history within the trailing
// window, newest first. Ownership is checked first so callers see a
// uniform not-found for other users' items.
func ListUsageEvents(ctx context.Context, db *sql.DB, itemID, userID int64, windowDays int) ([]model.UsageEvent, error) {
	if _, err := GetItem(ctx, db, itemID, userID); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, quantity_used, used_at, day_of_week
		 FROM usage_events
		 WHERE item_id = ? AND used_at >= datetime('now', '-' || ? || ' days')
		 ORDER BY used_at DESC`,
		itemID, windowDays,
	)
	if err != nil {
		return nil, fmt.Errorf("listing usage events: %w", err)
	}
	defer rows.Close()

	var events []model.UsageEvent
	for rows.Next() {
		var e model.UsageEvent
		if err := rows.Scan(&e.ID, &e.ItemID, &e.QuantityUsed, &e.UsedAt, &e.DayOfWeek); err != nil {
			return nil, fmt.Errorf("scanning usage event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
