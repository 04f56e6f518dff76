package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"plreport/internal/pdf"
	"plreport/internal/report"
)

// handleProfitLoss accepts a raw Profit & Loss document and responds with the
// rendered PDF, or a base64 JSON envelope when ?format=base64 is given.
// Targets and currency can be overridden per request via query parameters.
func (s *Server) handleProfitLoss(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxReportBytes)

	var raw report.RawReport
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		slog.ErrorContext(r.Context(), "Failed to decode report document",
			"error", err,
			"component", "http",
			"operation", "parse")
		writeJSONError(w, http.StatusBadRequest, "invalid report document")
		return
	}

	opts := s.renderOptions(r)

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "base64" {
		encoded, err := pdf.RenderBase64(&raw, opts)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"pdf": encoded})
		s.logRendered(r, &raw, len(encoded))
		return
	}

	bytes, err := pdf.Render(&raw, opts)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="profit-loss.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bytes)
	s.logRendered(r, &raw, len(bytes))
}

// renderOptions builds render options from server defaults plus per-request
// query overrides.
func (s *Server) renderOptions(r *http.Request) pdf.Options {
	opts := pdf.Options{
		Currency:          s.cfg.Currency,
		CostOfSalesTarget: &s.cfg.CostOfSalesTarget,
		PayrollTarget:     &s.cfg.PayrollTarget,
		ProfitTarget:      &s.cfg.ProfitTarget,
	}
	q := r.URL.Query()
	if c := strings.TrimSpace(q.Get("currency")); c != "" {
		opts.Currency = c
	}
	if t, ok := queryFloat(q.Get("target_cost_of_sales")); ok {
		opts.CostOfSalesTarget = &t
	}
	if t, ok := queryFloat(q.Get("target_payroll")); ok {
		opts.PayrollTarget = &t
	}
	if t, ok := queryFloat(q.Get("target_profit")); ok {
		opts.ProfitTarget = &t
	}
	return opts
}

func queryFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 100 {
		return 0, false
	}
	return f, true
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Failed to render report",
		"error", err,
		"component", "renderer",
		"operation", "render")
	writeJSONError(w, http.StatusInternalServerError, "error rendering report")
}

func (s *Server) logRendered(r *http.Request, raw *report.RawReport, size int) {
	slog.InfoContext(r.Context(), "Report rendered",
		"report_basis", raw.Header.ReportBasis,
		"currency", raw.Header.Currency,
		"months", len(raw.Months()),
		"pdf_bytes", size,
		"component", "renderer",
		"operation", "render")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
