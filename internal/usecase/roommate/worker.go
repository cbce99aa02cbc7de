package roommate

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MatchWorker runs recomputes in the background so a profile save can return
// before matching completes. Failures are logged and never surfaced to the
// request that enqueued the job.
type MatchWorker struct {
	svc    *MatchingService
	jobs   chan int
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewMatchWorker(svc *MatchingService, queueSize int, log *zap.Logger) *MatchWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &MatchWorker{
		svc:    svc,
		jobs:   make(chan int, queueSize),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the worker loop.
func (w *MatchWorker) Start() {
	w.wg.Add(1)
	go w.loop()
}

func (w *MatchWorker) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case userID := <-w.jobs:
			if _, err := w.svc.RunMatchingForUser(w.ctx, userID, true); err != nil {
				w.log.Warn("background matching run failed",
					zap.Int("user_id", userID),
					zap.Error(err),
				)
			}
		}
	}
}

// Enqueue schedules a recompute for the user. When the queue is full the job
// is dropped rather than blocking the caller; the next profile save or an
// explicit find-matches request will recompute anyway.
func (w *MatchWorker) Enqueue(userID int) bool {
	select {
	case w.jobs <- userID:
		return true
	default:
		w.log.Warn("matching queue full, dropping recompute", zap.Int("user_id", userID))
		return false
	}
}

// Stop cancels the loop and waits for the in-flight job to finish.
func (w *MatchWorker) Stop() {
	w.cancel()
	w.wg.Wait()
}
