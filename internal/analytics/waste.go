package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"stockpot/internal/model"
)

// topWastedItems caps the per-item waste ranking.
const topWastedItems = 10

// WasteReport aggregates a user's waste events within the trailing
// window: totals by reason (quantity descending), the most-wasted items,
// and grand totals. Empty owners get zeroed structures, never nil.
func WasteReport(ctx context.Context, db *sql.DB, userID int64, windowDays int) (*model.WasteReport, error) {
	if windowDays < 1 {
		windowDays = 1
	}

	report := &model.WasteReport{
		WindowDays: windowDays,
		ByReason:   []model.WasteByReason{},
		TopItems:   []model.WastedItem{},
	}

	rows, err := db.QueryContext(ctx,
		`SELECT w.reason, SUM(w.quantity), COUNT(*), COALESCE(SUM(w.cost_estimate), 0)
		 FROM waste_events w
		 JOIN items i ON i.id = w.item_id
		 WHERE i.user_id = ? AND w.wasted_at >= datetime('now', '-' || ? || ' days')
		 GROUP BY w.reason
		 ORDER BY SUM(w.quantity) DESC`,
		userID, windowDays,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregating waste by reason: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.WasteByReason
		if err := rows.Scan(&r.Reason, &r.TotalQuantity, &r.Count, &r.TotalCost); err != nil {
			return nil, fmt.Errorf("scanning waste reason: %w", err)
		}
		report.ByReason = append(report.ByReason, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := db.QueryContext(ctx,
		`SELECT i.id, i.name, i.unit, SUM(w.quantity), COUNT(*)
		 FROM waste_events w
		 JOIN items i ON i.id = w.item_id
		 WHERE i.user_id = ? AND w.wasted_at >= datetime('now', '-' || ? || ' days')
		 GROUP BY i.id
		 ORDER BY SUM(w.quantity) DESC
		 LIMIT ?`,
		userID, windowDays, topWastedItems,
	)
	if err != nil {
		return nil, fmt.Errorf("ranking wasted items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var w model.WastedItem
		if err := itemRows.Scan(&w.ItemID, &w.Name, &w.Unit, &w.TotalQuantity, &w.Count); err != nil {
			return nil, fmt.Errorf("scanning wasted item: %w", err)
		}
		report.TopItems = append(report.TopItems, w)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	err = db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(w.quantity), 0), COALESCE(SUM(w.cost_estimate), 0), COUNT(*)
		 FROM waste_events w
		 JOIN items i ON i.id = w.item_id
		 WHERE i.user_id = ? AND w.wasted_at >= datetime('now', '-' || ? || ' days')`,
		userID, windowDays,
	).Scan(&report.Summary.TotalQuantity, &report.Summary.TotalCost, &report.Summary.TotalRecords)
	if err != nil {
		return nil, fmt.Errorf("summarizing waste: %w", err)
	}

	return report, nil
}
