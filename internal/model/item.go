package model

import "time"

// Item is a tracked stock unit with a quantity and a low-stock threshold.
type Item struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"-"`
	Barcode         string    `json:"barcode"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Unit            string    `json:"unit"`
	CurrentQuantity float64   `json:"current_quantity"`
	MinQuantity     float64   `json:"min_quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Stock statuses.
const (
	StatusLow    = "low"
	StatusMedium = "medium"
	StatusGood   = "good"
)

// StockStatus classifies an item's stock level against its threshold.
// Both comparisons are inclusive: current == min is low, and
// current == min*1.5 is medium. A zero threshold means no threshold is
// configured, so the item is always good.
//
// This is the single classification used by dashboards, low-stock
// filtering and alerting; call sites must not reimplement it.
func StockStatus(current, min float64) string {
	switch {
	case min == 0:
		return StatusGood
	case current <= min:
		return StatusLow
	case current <= min*1.5:
		return StatusMedium
	default:
		return StatusGood
	}
}
