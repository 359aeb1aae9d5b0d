package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/pdfoutline/internal/loader"
	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Worker processes a single document job: load, analyze, record the result.
// Workers share nothing but the stats sink; a failure stays on its own job.
type Worker struct {
	log   *slog.Logger
	cfg   outline.Config
	stats *AnalysisStats
}

func NewWorker(log *slog.Logger, cfg outline.Config, stats *AnalysisStats) *Worker {
	return &Worker{
		log:   log,
		cfg:   cfg,
		stats: stats,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Load
	job.SetStatus(StatusLoading, "loading")
	ld, err := loader.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading")
		return
	}

	doc, err := ld.Load(job.FileData(), job.Filename)
	if err != nil {
		log.Error("load failed", "error", err)
		job.AddError(fmt.Sprintf("load: %s", err))
		job.SetStatus(StatusFailed, "loading")
		return
	}

	method := "heuristic"
	if len(doc.Embedded) > 0 {
		method = "embedded"
	}
	job.SetDocumentStats(doc.PageCount, len(doc.Runs), method)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading")
		return
	}

	// Phase 2: Analyze
	job.SetStatus(StatusAnalyzing, "analyzing")
	start := time.Now()
	res := outline.Analyze(doc, w.cfg)
	w.stats.Record(time.Since(start).Milliseconds())

	if job.Title != "" {
		res.Title = job.Title
	}

	job.SetResult(res)
	job.SetStatus(StatusCompleted, "done")
	log.Info("extraction complete",
		"method", method,
		"pages", doc.PageCount,
		"headings", len(res.Outline),
		"title", res.Title,
	)
}
