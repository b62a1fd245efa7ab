package model

import "time"

// UsageEvent is an immutable record of a quantity decrease driven by a
// direct quantity update. Reductions from waste logging are recorded as
// WasteEvents instead and never show up here.
type UsageEvent struct {
	ID           int64     `json:"id"`
	ItemID       int64     `json:"item_id"`
	QuantityUsed float64   `json:"quantity_used"`
	UsedAt       time.Time `json:"used_at"`
	DayOfWeek    int       `json:"day_of_week"`
}

// WasteEvent is an immutable record of discarded stock.
type WasteEvent struct {
	ID           int64     `json:"id"`
	ItemID       int64     `json:"item_id"`
	Quantity     float64   `json:"quantity"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes,omitempty"`
	CostEstimate *float64  `json:"cost_estimate,omitempty"`
	WastedAt     time.Time `json:"wasted_at"`

	// Joined fields (not always populated).
	ItemName string `json:"item_name,omitempty"`
	ItemUnit string `json:"item_unit,omitempty"`
}

// Waste reasons.
const (
	WasteExpired     = "expired"
	WasteSpoiled     = "spoiled"
	WasteDamaged     = "damaged"
	WasteOverprepped = "overprepped"
	WasteSpilled     = "spilled"
	WasteOther       = "other"
)

// ValidWasteReason reports whether reason is one of the known categories.
func ValidWasteReason(reason string) bool {
	switch reason {
	case WasteExpired, WasteSpoiled, WasteDamaged, WasteOverprepped, WasteSpilled, WasteOther:
		return true
	}
	return false
}
