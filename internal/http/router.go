package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sync-backend/internal/handlers"
	"sync-backend/internal/middleware"
)

func NewRouter(
	pairHandler *handlers.PairHandler,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	orderHandler *handlers.OrderHandler,
	statusHandler *handlers.StatusHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes - discovery and authentication
	r.HandleFunc("/sync/pair-check", pairHandler.PairCheck).Methods("POST")
	r.HandleFunc("/sync/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/sync/status", statusHandler.Status).Methods("GET")

	// Protected routes - require a valid session token
	protected := r.PathPrefix("/sync").Subrouter()
	protected.Use(authMiddleware.Authenticate)
	protected.HandleFunc("/verify-token", authHandler.VerifyToken).Methods("GET")
	protected.HandleFunc("/data-download", catalogHandler.DataDownload).Methods("GET")
	protected.HandleFunc("/upload-orders", orderHandler.UploadOrders).Methods("POST")

	// Operational endpoints
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
