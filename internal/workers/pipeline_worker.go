package workers

import (
	"context"
	"time"

	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/repositories"
)

// PipelineWorker periodically re-reads the candidate collection and
// logs per-status counts. It mirrors the dashboard's polling refresh:
// writes from other processes sharing the store become visible at every
// tick.
type PipelineWorker struct {
	candidates repositories.CandidateRepository
	interval   time.Duration

	lastSeen int64
}

func NewPipelineWorker(candidates repositories.CandidateRepository, interval time.Duration) *PipelineWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &PipelineWorker{
		candidates: candidates,
		interval:   interval,
	}
}

// Start runs the polling loop until ctx is done.
func (w *PipelineWorker) Start(ctx context.Context) {
	logger.Info("pipeline worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("pipeline worker stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *PipelineWorker) poll(ctx context.Context) {
	candidates, err := w.candidates.GetAll(ctx)
	if err != nil {
		logger.WorkerLog("pipeline", "poll", err)
		return
	}

	var pending, verified, rejected int
	var newest int64
	for _, c := range candidates {
		switch c.Status {
		case models.CandidateStatusPending:
			pending++
		case models.CandidateStatusVerified:
			verified++
		case models.CandidateStatusRejected:
			rejected++
		}
		if c.LastUpdated > newest {
			newest = c.LastUpdated
		}
	}

	// Only log when something changed since the previous tick.
	if newest == w.lastSeen {
		return
	}
	w.lastSeen = newest

	logger.Info("candidate pipeline refreshed",
		"total", len(candidates),
		"pending", pending,
		"verified", verified,
		"rejected", rejected,
	)
}
