package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/reporting"
	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/web/handlers"
	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/web/websocket"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
)

// Server handles HTTP and WebSocket connections.
type Server struct {
	Addr           string
	Service        ports.PreviewService
	WSManager      *websocket.WSManager
	PreviewHandler *handlers.PreviewHandler
	ReportHandler  *handlers.ReportHandler
	RetryLimit     int
	srv            *http.Server
}

// NewServer creates a new web server.
func NewServer(addr string, service ports.PreviewService, wsManager *websocket.WSManager, retryLimit int) *Server {
	return &Server{
		Addr:           addr,
		Service:        service,
		WSManager:      wsManager,
		PreviewHandler: handlers.NewPreviewHandler(service),
		ReportHandler:  handlers.NewReportHandler(service, reporting.NewPDFExporter()),
		RetryLimit:     retryLimit,
	}
}

// Run starts the server and the snapshot broadcaster.
func (s *Server) Run(ctx context.Context) error {
	s.WSManager.Start(ctx)

	handler := SetupRoutes(s)

	// Instrument with OpenTelemetry
	instrumentedHandler := otelhttp.NewHandler(handler, "previewd-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		log.Println("Web Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Web Server shutdown error: %v", err)
		}
	}()

	log.Printf("Web server listening on %s", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
