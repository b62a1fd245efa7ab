package model

// DaysRemainingUnknown is the sentinel for "insufficient usage data to
// project". Distinguishable from 0 (out today) so clients can render
// "no data" instead of implying the item never runs out.
const DaysRemainingUnknown = -1

// UsageStats summarizes consumption over a trailing window.
type UsageStats struct {
	TotalConsumed float64 `json:"total_consumed"`
	WindowDays    int     `json:"window_days"`
	ActiveDays    int     `json:"active_days"`
	AveragePerDay float64 `json:"average_per_day"`
}

// ItemAnalytics is an item annotated with its usage projection.
type ItemAnalytics struct {
	Item
	Status        string  `json:"status"`
	AveragePerDay float64 `json:"average_per_day"`
	DaysRemaining int     `json:"days_remaining"`
	HasData       bool    `json:"has_data"`
}

// WasteByReason aggregates waste events sharing a reason.
type WasteByReason struct {
	Reason        string  `json:"reason"`
	TotalQuantity float64 `json:"total_quantity"`
	Count         int     `json:"count"`
	TotalCost     float64 `json:"total_cost"`
}

// WastedItem is a per-item waste total for the top-wasted ranking.
type WastedItem struct {
	ItemID        int64   `json:"item_id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
	Count         int     `json:"count"`
}

// WasteSummary holds grand totals over a waste report window.
type WasteSummary struct {
	TotalQuantity float64 `json:"total_quantity"`
	TotalCost     float64 `json:"total_cost"`
	TotalRecords  int     `json:"total_records"`
}

// WasteReport is the aggregated waste view for one user and window.
type WasteReport struct {
	WindowDays int             `json:"window_days"`
	ByReason   []WasteByReason `json:"by_reason"`
	TopItems   []WastedItem    `json:"top_items"`
	Summary    WasteSummary    `json:"summary"`
}
