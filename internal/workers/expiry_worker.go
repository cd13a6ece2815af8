package workers

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
)

// ExpiryWorker turns off postings whose paid period has ended.
type ExpiryWorker struct {
	jobRepo  repositories.JobRepository
	interval time.Duration
}

func NewExpiryWorker(jobRepo repositories.JobRepository) *ExpiryWorker {
	return &ExpiryWorker{
		jobRepo:  jobRepo,
		interval: time.Hour,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *ExpiryWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// One pass at startup so a long-stopped server catches up immediately.
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	n, err := w.jobRepo.DisableExpired(time.Now())
	if err != nil {
		logger.WorkerLog("expiry", "disable expired postings", err)
		return
	}
	if n > 0 {
		logger.Info("Disabled expired job postings", "count", n)
	}
}
