// Package http exposes the report engine over HTTP: a raw Profit & Loss
// document in, PDF bytes out. Fetching documents from the accounting API,
// auth, and storage all live outside this service.
package http

import (
	"net/http"
	"time"

	"plreport/internal/config"
	"plreport/internal/middleware/trace"
)

// maxReportBytes caps the accepted document size. Real P&L payloads are tens
// of kilobytes; anything near the cap is not a report.
const maxReportBytes = 10 << 20

type Server struct {
	http.Server
	cfg   *config.Config
	trace *trace.Middleware
}

// NewServer builds the server with routes and timeouts configured.
func NewServer(addr string, cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		trace: trace.NewMiddleware(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/reports/profit-loss", s.handleProfitLoss)

	s.Server = http.Server{
		Addr:           addr,
		Handler:        s.trace.Middleware(mux),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
