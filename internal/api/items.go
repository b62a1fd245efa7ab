package api

import (
	"database/sql"
	"net/http"

	"stockpot/internal/analytics"
	"stockpot/internal/model"
	"stockpot/internal/store"
)

// ItemsHandler handles item CRUD and per-item history endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Barcode         string  `json:"barcode"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	UnitType        string  `json:"unit_type"`
	CurrentQuantity float64 `json:"current_quantity"`
	MinQuantity     float64 `json:"min_quantity"`
}

type updateItemRequest struct {
	Barcode     string  `json:"barcode"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	UnitType    string  `json:"unit_type"`
	MinQuantity float64 `json:"min_quantity"`
}

type quantityRequest struct {
	Quantity *float64 `json:"quantity"`
	Delta    *float64 `json:"delta"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	days := queryDays(r, analytics.DefaultWindowDays)
	items, err := analytics.ListItemsWithAnalytics(r.Context(), h.DB, userID(r), days)
	if err != nil {
		storeError(w, err)
		return
	}
	if items == nil {
		items = []model.ItemAnalytics{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// LowStock handles GET /api/items/low-stock.
func (h *ItemsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := analytics.LowStock(r.Context(), h.DB, userID(r))
	if err != nil {
		storeError(w, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, userID(r),
		req.Barcode, req.Name, req.Category, req.UnitType, req.CurrentQuantity, req.MinQuantity)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id, userID(r))
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// GetByBarcode handles GET /api/items/barcode/{code}.
func (h *ItemsHandler) GetByBarcode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		jsonError(w, http.StatusBadRequest, "barcode required")
		return
	}

	item, err := store.GetItemByBarcode(r.Context(), h.DB, userID(r), code)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.UpdateItem(r.Context(), h.DB, id, userID(r),
		req.Barcode, req.Name, req.Category, req.UnitType, req.MinQuantity)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// SetQuantity handles PATCH /api/items/{id}/quantity. The body carries
// either an absolute {"quantity": q} or a relative {"delta": d}, never
// both; the two shapes resolve to one adjustment before the ledger.
func (h *ItemsHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req quantityRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var adj model.Adjustment
	switch {
	case req.Quantity != nil && req.Delta == nil:
		if *req.Quantity < 0 {
			jsonError(w, http.StatusBadRequest, "quantity must be non-negative")
			return
		}
		adj = model.Absolute(*req.Quantity)
	case req.Delta != nil && req.Quantity == nil:
		adj = model.Relative(*req.Delta)
	default:
		jsonError(w, http.StatusBadRequest, "exactly one of quantity or delta required")
		return
	}

	item, err := store.SetQuantity(r.Context(), h.DB, id, userID(r), adj)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id, userID(r)); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// GetUsage handles GET /api/items/{id}/usage.
func (h *ItemsHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	days := queryDays(r, analytics.DefaultWindowDays)
	events, err := store.ListUsageEvents(r.Context(), h.DB, id, userID(r), days)
	if err != nil {
		storeError(w, err)
		return
	}
	if events == nil {
		events = []model.UsageEvent{}
	}

	stats, err := analytics.DailyAverage(r.Context(), h.DB, id, days)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"events":    events,
		"analytics": stats,
	})
}

// GetWaste handles GET /api/items/{id}/waste.
func (h *ItemsHandler) GetWaste(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	days := queryDays(r, analytics.DefaultWindowDays)
	events, err := store.ListItemWasteEvents(r.Context(), h.DB, id, userID(r), days)
	if err != nil {
		storeError(w, err)
		return
	}
	if events == nil {
		events = []model.WasteEvent{}
	}
	jsonResponse(w, http.StatusOK, events)
}
