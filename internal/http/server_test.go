package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plreport/internal/config"
)

const sampleReport = `{
	"Header": {"ReportName": "ProfitAndLoss", "ReportBasis": "Accrual", "Currency": "USD"},
	"Columns": {"Column": [
		{"ColTitle": "", "ColType": "Account"},
		{"ColTitle": "Total", "ColType": "Money"}
	]},
	"Rows": {"Row": [
		{
			"Header": {"ColData": [{"value": "Income"}]},
			"Rows": {"Row": [
				{"ColData": [{"value": "Sales"}, {"value": "500.00"}], "type": "Data"}
			]},
			"Summary": {"ColData": [{"value": "Total Income"}, {"value": "500.00"}]},
			"type": "Section",
			"group": "Income"
		}
	]}
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(":0", config.Load())
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleProfitLoss_RendersPDF(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/profit-loss", strings.NewReader(sampleReport))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "profit-loss.pdf")
	require.True(t, rec.Body.Len() > 4)
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestHandleProfitLoss_Base64Format(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/profit-loss?format=base64", strings.NewReader(sampleReport))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// "JVBERi0" is "%PDF-" in base64
	assert.True(t, strings.HasPrefix(body["pdf"], "JVBERi0"))
}

func TestHandleProfitLoss_BadJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/profit-loss", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid report document", body["error"])
}

func TestHandleProfitLoss_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/profit-loss", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestRenderOptions_QueryOverrides(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/reports/profit-loss?currency=EUR&target_payroll=40&target_profit=oops", nil)
	opts := srv.renderOptions(req)

	assert.Equal(t, "EUR", opts.Currency)
	require.NotNil(t, opts.PayrollTarget)
	assert.Equal(t, 40.0, *opts.PayrollTarget)
	require.NotNil(t, opts.ProfitTarget)
	assert.Equal(t, srv.cfg.ProfitTarget, *opts.ProfitTarget)
}

func TestQueryFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"25", 25, true},
		{" 25.5 ", 25.5, true},
		{"0", 0, true},
		{"100", 100, true},
		{"", 0, false},
		{"-1", 0, false},
		{"101", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := queryFloat(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
