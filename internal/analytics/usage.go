// Package analytics derives consumption-rate and projection metrics from
// usage history, and aggregates waste records into reports. Reads never
// fail for items with zero history; they return zero values and the
// days-remaining sentinel instead.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"stockpot/internal/model"
	"stockpot/internal/store"
)

// DefaultWindowDays is the trailing window used when a caller doesn't ask
// for a specific one.
const DefaultWindowDays = 30

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DailyAverage computes consumption stats for one item over the trailing
// window. The average divides by the window length, not by the count of
// active days, so sparse sampling doesn't inflate the rate.
func DailyAverage(ctx context.Context, db *sql.DB, itemID int64, windowDays int) (model.UsageStats, error) {
	if windowDays < 1 {
		windowDays = 1
	}

	stats := model.UsageStats{WindowDays: windowDays}
	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity_used), 0), COUNT(DISTINCT date(used_at))
		 FROM usage_events
		 WHERE item_id = ? AND used_at >= datetime('now', '-' || ? || ' days')`,
		itemID, windowDays,
	).Scan(&stats.TotalConsumed, &stats.ActiveDays)
	if err != nil {
		return model.UsageStats{}, fmt.Errorf("computing daily average: %w", err)
	}

	stats.AveragePerDay = round2(stats.TotalConsumed / float64(windowDays))
	return stats, nil
}

// DaysRemaining projects how many days of stock are left at the given
// consumption rate. With no usage data (rate zero) there is nothing to
// project, so it returns the sentinel rather than zero or infinity.
func DaysRemaining(current, averagePerDay float64) int {
	if averagePerDay <= 0 {
		return model.DaysRemainingUnknown
	}
	return int(math.Floor(current / averagePerDay))
}

// ListItemsWithAnalytics returns every item of a user annotated with its
// usage stats, days-remaining projection and stock status.
func ListItemsWithAnalytics(ctx context.Context, db *sql.DB, userID int64, windowDays int) ([]model.ItemAnalytics, error) {
	if windowDays < 1 {
		windowDays = 1
	}

	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.user_id, i.barcode, i.name, i.category, i.unit,
		        i.current_quantity, i.min_quantity, i.created_at, i.updated_at,
		        COALESCE(SUM(u.quantity_used), 0), COUNT(u.id)
		 FROM items i
		 LEFT JOIN usage_events u
		     ON u.item_id = i.id AND u.used_at >= datetime('now', '-' || ? || ' days')
		 WHERE i.user_id = ?
		 GROUP BY i.id
		 ORDER BY i.name`,
		windowDays, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items with analytics: %w", err)
	}
	defer rows.Close()

	var items []model.ItemAnalytics
	for rows.Next() {
		var a model.ItemAnalytics
		var total float64
		var events int
		if err := rows.Scan(&a.ID, &a.UserID, &a.Barcode, &a.Name, &a.Category, &a.Unit,
			&a.CurrentQuantity, &a.MinQuantity, &a.CreatedAt, &a.UpdatedAt, &total, &events); err != nil {
			return nil, fmt.Errorf("scanning item analytics: %w", err)
		}
		a.AveragePerDay = round2(total / float64(windowDays))
		a.DaysRemaining = DaysRemaining(a.CurrentQuantity, a.AveragePerDay)
		a.HasData = events > 0
		a.Status = model.StockStatus(a.CurrentQuantity, a.MinQuantity)
		items = append(items, a)
	}
	return items, rows.Err()
}

// LowStock returns the user's items currently classified low, ordered by
// name. The filter goes through model.StockStatus so the low-stock list
// and any low-stock count agree on boundary cases.
func LowStock(ctx context.Context, db *sql.DB, userID int64) ([]model.Item, error) {
	items, err := store.ListItems(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	var low []model.Item
	for _, item := range items {
		if model.StockStatus(item.CurrentQuantity, item.MinQuantity) == model.StatusLow {
			low = append(low, item)
		}
	}
	return low, nil
}
