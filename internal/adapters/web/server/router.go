package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/web/middleware"
)

func SetupRoutes(s *Server) http.Handler {
	r := mux.NewRouter()

	// Manual retries are deliberately throttled; a blocked provider gains
	// nothing from being hammered.
	retryLimiter := middleware.NewRateLimiter(s.RetryLimit, 1*time.Minute)

	r.HandleFunc("/api/widgets", s.PreviewHandler.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc("/api/widgets", s.PreviewHandler.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/api/widgets/{id}", s.PreviewHandler.HandleGet).Methods(http.MethodGet)
	r.HandleFunc("/api/widgets/{id}", s.PreviewHandler.HandleDelete).Methods(http.MethodDelete)
	r.HandleFunc("/api/widgets/{id}/coordinate", s.PreviewHandler.HandleSetCoordinate).Methods(http.MethodPut)
	r.Handle("/api/widgets/{id}/retry",
		middleware.RateLimitMiddleware(retryLimiter)(http.HandlerFunc(s.PreviewHandler.HandleRetry))).Methods(http.MethodPost)
	r.HandleFunc("/api/widgets/{id}/directive", s.PreviewHandler.HandleDirective).Methods(http.MethodGet)
	r.HandleFunc("/api/widgets/{id}/events", s.PreviewHandler.HandleEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/widgets/{id}/report", s.ReportHandler.HandleDownload).Methods(http.MethodGet)

	// WebSocket push of directive changes
	r.HandleFunc("/ws", s.WSManager.HandleWebSocket)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
