package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"ScoringEngine/internal/engine/models"
	"ScoringEngine/internal/engine/storage"
	"ScoringEngine/internal/shared/constants"
	"ScoringEngine/internal/worker/runners"
	"ScoringEngine/pkg/uuidutil"

	"golang.org/x/sync/errgroup"
)

type Config struct {
	// ID names the worker in logs; a random one is generated when empty.
	ID           string
	CheckTimeout time.Duration
	PollInterval time.Duration
}

// Worker pops jobs from the work queue, runs them and pushes the completed
// jobs to the result queue.
type Worker struct {
	id           string
	work         storage.Queue
	results      storage.Queue
	runner       runners.Runner
	checkTimeout time.Duration
	pollInterval time.Duration
	logger       *slog.Logger

	shutdown atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

func NewWorker(work, results storage.Queue, runner runners.Runner, cfg Config, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}

	id := cfg.ID
	if id == "" {
		id = uuidutil.NewWorkerID()
	}

	checkTimeout := cfg.CheckTimeout
	if checkTimeout <= 0 {
		checkTimeout = constants.CheckTimeout
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = constants.WorkerPollInterval
	}

	return &Worker{
		id:           id,
		work:         work,
		results:      results,
		runner:       runner,
		checkTimeout: checkTimeout,
		pollInterval: pollInterval,
		logger:       logger.With("worker", id),
		stop:         make(chan struct{}),
	}
}

func (w *Worker) ID() string {
	return w.id
}

// Shutdown asks the worker to stop. A job in progress is finished and
// handed off first; an idle sleep is cut short.
func (w *Worker) Shutdown() {
	w.stopOnce.Do(func() {
		w.logger.Info("shutting down worker")
		w.shutdown.Store(true)
		close(w.stop)
	})
}

// Run loops until Shutdown or ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	return w.RunN(ctx, -1)
}

// RunN performs n polling iterations, or loops forever when n is negative.
// An empty poll counts as an iteration. Queue faults end the loop with an
// error; a record that cannot be decoded is logged and dropped.
func (w *Worker) RunN(ctx context.Context, n int) error {
	w.logger.Info("worker started", "iterations", n)

	for i := 0; n < 0 || i < n; i++ {
		if w.shutdown.Load() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		w.logger.Debug("looking for work")

		job, err := w.work.Pop(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrMalformedJob) {
				w.logger.Warn("dropping malformed job", "queue", w.work.Key(), "error", err)
				continue
			}
			return fmt.Errorf("pop job from %s: %w", w.work.Key(), err)
		}

		if job == nil {
			w.sleep(ctx)
			continue
		}

		// the job is finished and handed off even if ctx is cancelled meanwhile
		jobCtx := context.WithoutCancel(ctx)
		w.ExecuteJob(jobCtx, job, 0)

		if err := w.results.Push(jobCtx, job); err != nil {
			return fmt.Errorf("push job to %s: %w", w.results.Key(), err)
		}
	}

	w.logger.Info("worker stopped")
	return nil
}

// ExecuteJob runs job.Command and records the outcome on job. A timeout of
// zero uses the configured check timeout.
func (w *Worker) ExecuteJob(ctx context.Context, job *models.Job, timeout time.Duration) *models.Job {
	if timeout <= 0 {
		timeout = w.checkTimeout
	}

	log := w.logger.With("ref", job.ServiceReference.String())
	log.Info("executing job", "command", job.Command, "timeout", timeout)

	result, err := w.runner.Run(ctx, job.Command, timeout)
	switch {
	case err != nil:
		log.Error("failed to run command", "error", err)
		job.SetFail(fmt.Sprintf("%s: %v", constants.ReasonCommandFailed, err))
	case result.TimedOut:
		log.Warn("command timed out", "duration", result.Duration)
		job.SetFail(constants.ReasonTimedOut)
	default:
		log.Debug("command finished", "exit_code", result.ExitCode, "duration", result.Duration)
		job.SetOutput(result.Output)
	}

	return job
}

func (w *Worker) sleep(ctx context.Context) {
	timer := time.NewTimer(w.pollInterval)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.stop:
	case <-ctx.Done():
	}
}

// RunAll runs every worker for n iterations concurrently and returns the
// first error. A failing worker cancels the others through ctx.
func RunAll(ctx context.Context, workers []*Worker, n int) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error {
			return w.RunN(ctx, n)
		})
	}
	return g.Wait()
}
