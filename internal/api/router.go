package api

import (
	"database/sql"
	"net/http"

	"stockpot/internal/detect"
)

// NewRouter creates the API router with all endpoints registered.
// detector may be nil when no detection service is configured.
func NewRouter(db *sql.DB, jwtSecret string, detector *detect.Client) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	wasteHandler := &WasteHandler{DB: db}
	detectHandler := &DetectHandler{Client: detector}

	authMW := AuthMiddleware(jwtSecret)

	// Public: health and account creation.
	mux.HandleFunc("GET /api/healthz", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Items and per-item history.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("GET /api/items/low-stock", authMW(http.HandlerFunc(itemsHandler.LowStock)))
	mux.Handle("GET /api/items/barcode/{code}", authMW(http.HandlerFunc(itemsHandler.GetByBarcode)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("GET /api/items/{id}/usage", authMW(http.HandlerFunc(itemsHandler.GetUsage)))
	mux.Handle("GET /api/items/{id}/waste", authMW(http.HandlerFunc(itemsHandler.GetWaste)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("PATCH /api/items/{id}/quantity", authMW(http.HandlerFunc(itemsHandler.SetQuantity)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))

	// Waste logging and reports.
	mux.Handle("POST /api/waste", authMW(http.HandlerFunc(wasteHandler.Record)))
	mux.Handle("GET /api/waste", authMW(http.HandlerFunc(wasteHandler.List)))
	mux.Handle("GET /api/waste/analytics", authMW(http.HandlerFunc(wasteHandler.Analytics)))

	// Photo-assisted entry.
	mux.Handle("POST /api/detect", authMW(http.HandlerFunc(detectHandler.Detect)))

	return mux
}
