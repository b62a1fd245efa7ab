package api

import (
	"database/sql"
	"net/http"

	"stockpot/internal/analytics"
	"stockpot/internal/model"
	"stockpot/internal/store"
)

// WasteHandler handles waste logging and reporting endpoints.
type WasteHandler struct {
	DB *sql.DB
}

type recordWasteRequest struct {
	ItemID       int64    `json:"item_id"`
	Quantity     float64  `json:"quantity"`
	Reason       string   `json:"reason"`
	Notes        string   `json:"notes"`
	CostEstimate *float64 `json:"cost_estimate"`
}

// Record handles POST /api/waste.
func (h *WasteHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordWasteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.RecordWaste(r.Context(), h.DB, req.ItemID, userID(r),
		req.Quantity, req.Reason, req.Notes, req.CostEstimate)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// List handles GET /api/waste.
func (h *WasteHandler) List(w http.ResponseWriter, r *http.Request) {
	days := queryDays(r, analytics.DefaultWindowDays)
	events, err := store.ListWasteEvents(r.Context(), h.DB, userID(r), days)
	if err != nil {
		storeError(w, err)
		return
	}
	if events == nil {
		events = []model.WasteEvent{}
	}
	jsonResponse(w, http.StatusOK, events)
}

// Analytics handles GET /api/waste/analytics.
func (h *WasteHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	days := queryDays(r, analytics.DefaultWindowDays)
	report, err := analytics.WasteReport(r.Context(), h.DB, userID(r), days)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, report)
}
