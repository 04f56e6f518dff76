package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"plreport/internal/amqp"
	"plreport/internal/pdf"
	"plreport/internal/report"
)

// RenderWorker turns queued render jobs into PDF files in a spool directory.
// The dashboard picks finished files up from there; this worker neither
// fetches reports nor records metadata anywhere.
type RenderWorker struct {
	spoolDir string
}

func NewRenderWorker(spoolDir string) (*RenderWorker, error) {
	if err := os.MkdirAll(spoolDir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &RenderWorker{spoolDir: spoolDir}, nil
}

// HandleRenderJob processes a single render job from AMQP.
func (w *RenderWorker) HandleRenderJob(ctx context.Context, msg *amqp.RenderJobMessage) error {
	slog.InfoContext(ctx, "Processing render job",
		"job_id", msg.JobID,
		"component", "worker",
		"operation", "render")

	var raw report.RawReport
	if err := json.Unmarshal(msg.Report, &raw); err != nil {
		return fmt.Errorf("decode report document: %w", err)
	}

	opts := pdf.Options{
		Currency:          msg.Options.Currency,
		CostOfSalesTarget: msg.Options.CostOfSalesTarget,
		PayrollTarget:     msg.Options.PayrollTarget,
		ProfitTarget:      msg.Options.ProfitTarget,
	}

	bytes, err := pdf.Render(&raw, opts)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	path := filepath.Join(w.spoolDir, msg.JobID+".pdf")
	if err := writeAtomic(path, bytes); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	slog.InfoContext(ctx, "Render job completed",
		"job_id", msg.JobID,
		"spool_path", path,
		"pdf_bytes", len(bytes),
		"component", "worker",
		"operation", "render")
	return nil
}

// writeAtomic writes via a temp file and rename so the dashboard never sees a
// half-written PDF.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".render-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
