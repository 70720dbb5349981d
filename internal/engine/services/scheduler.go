package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"ScoringEngine/internal/checks"
	"ScoringEngine/internal/engine/models"
	"ScoringEngine/internal/engine/storage"
	"ScoringEngine/pkg/validator"
)

var ErrInvalidAddress = errors.New("invalid service address")

type State int32

const (
	StateIdle State = iota
	StateRunning
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting down"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

type SchedulerConfig struct {
	// TotalRounds of 0 runs until Shutdown.
	TotalRounds int
	// TargetRoundTime is the minimum time between round starts.
	TargetRoundTime time.Duration
}

// RoundReport summarizes one round. Skipped holds the full names of the
// services that produced no job.
type RoundReport struct {
	Round     int
	StartedAt time.Time
	Jobs      int
	Skipped   []string
	Duration  time.Duration
}

// Scheduler renders one job per service each round and pushes it to the
// work queue.
type Scheduler struct {
	services storage.ServiceStore
	rounds   storage.RoundStore
	work     storage.Queue
	results  storage.Queue
	registry *checks.Registry
	cfg      SchedulerConfig
	rnd      *rand.Rand
	logger   *slog.Logger

	state     atomic.Int32
	lastRound atomic.Bool
	stop      chan struct{}
	stopOnce  sync.Once

	currentRound int
	roundsRun    int
}

// NewScheduler builds a scheduler. rnd drives service order, environment
// and account choice; nil means a randomly seeded source.
func NewScheduler(
	services storage.ServiceStore,
	rounds storage.RoundStore,
	work storage.Queue,
	results storage.Queue,
	registry *checks.Registry,
	cfg SchedulerConfig,
	rnd *rand.Rand,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Scheduler{
		services: services,
		rounds:   rounds,
		work:     work,
		results:  results,
		registry: registry,
		cfg:      cfg,
		rnd:      rnd,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

func (s *Scheduler) State() State {
	return State(s.state.Load())
}

func (s *Scheduler) CurrentRound() int {
	return s.currentRound
}

func (s *Scheduler) RoundsRun() int {
	return s.roundsRun
}

// Start drops jobs left over from a previous run, resumes the round
// counter and reports services whose check is not loaded.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, q := range []storage.Queue{s.work, s.results} {
		if err := q.Clear(ctx); err != nil {
			return fmt.Errorf("clear queue %s: %w", q.Key(), err)
		}
	}

	last, err := s.rounds.LastRoundNumber(ctx)
	if err != nil {
		return err
	}
	s.currentRound = last

	services, err := s.services.List(ctx)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	if err := s.registry.Verify(services); err != nil {
		s.logger.Warn("some services reference unknown checks and will be skipped", "error", err)
	}

	s.logger.Info("scheduler started",
		"last_round", last,
		"services", len(services),
		"checks", s.registry.Len(),
	)
	return nil
}

// Shutdown makes the current round the last one. A pacing sleep is cut
// short.
func (s *Scheduler) Shutdown() {
	s.stopOnce.Do(func() {
		if s.state.CompareAndSwap(int32(StateRunning), int32(StateShuttingDown)) {
			s.logger.Warn("shutting down after this round")
		} else {
			s.logger.Warn("shutting down now")
		}
		s.lastRound.Store(true)
		close(s.stop)
	})
}

func (s *Scheduler) isLastRound() bool {
	if s.lastRound.Load() {
		return true
	}
	return s.cfg.TotalRounds != 0 && s.roundsRun >= s.cfg.TotalRounds
}

// Run executes rounds until TotalRounds is reached or Shutdown is called.
// A round in progress always completes, even if ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning))
	defer s.state.Store(int32(StateStopped))

	if s.cfg.TotalRounds == 0 {
		s.logger.Info("running engine for unlimited rounds")
	} else {
		s.logger.Info("running engine", "rounds", s.cfg.TotalRounds)
	}

	for !s.isLastRound() {
		if ctx.Err() != nil {
			s.Shutdown()
			break
		}

		report, err := s.RunRound(context.WithoutCancel(ctx))
		if err != nil {
			return fmt.Errorf("round %d: %w", s.currentRound, err)
		}

		if s.isLastRound() {
			break
		}
		s.pace(ctx, report.StartedAt)
	}

	s.logger.Info("engine finished running", "rounds_run", s.roundsRun, "current_round", s.currentRound)
	return nil
}

// pace sleeps out the rest of the target round time.
func (s *Scheduler) pace(ctx context.Context, started time.Time) {
	if s.cfg.TargetRoundTime <= 0 {
		return
	}

	delta := s.cfg.TargetRoundTime - time.Since(started)
	if delta <= 0 {
		s.logger.Warn("service checks lasted longer than round length, starting next round immediately",
			"target", s.cfg.TargetRoundTime,
			"over", -delta,
		)
		return
	}

	s.logger.Info("sleeping until next round", "target", s.cfg.TargetRoundTime, "sleep", delta)

	timer := time.NewTimer(delta)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-s.stop:
	case <-ctx.Done():
	}
}

// RunRound pushes one job per service in random order. Services that cannot
// be rendered are skipped and listed in the report; store and queue faults
// abort the round.
func (s *Scheduler) RunRound(ctx context.Context) (RoundReport, error) {
	s.currentRound++
	s.roundsRun++

	report := RoundReport{
		Round:     s.currentRound,
		StartedAt: time.Now(),
	}
	log := s.logger.With("round", report.Round)
	log.Info("running round")

	services, err := s.services.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list services: %w", err)
	}

	s.rnd.Shuffle(len(services), func(i, j int) {
		services[i], services[j] = services[j], services[i]
	})

	for _, service := range services {
		job, err := s.buildJob(service, report.Round)
		if err != nil {
			log.Error("skipping service", "service", service.FullName(), "check", service.CheckName, "error", err)
			report.Skipped = append(report.Skipped, service.FullName())
			continue
		}

		log.Debug("adding check to queue", "service", service.FullName(), "ref", job.ServiceReference.String())

		if err := s.work.Push(ctx, job); err != nil {
			return report, fmt.Errorf("push job for %s: %w", service.FullName(), err)
		}
		report.Jobs++
	}

	round := &models.Round{
		Number:    report.Round,
		StartedAt: report.StartedAt,
		JobCount:  report.Jobs,
		Skipped:   len(report.Skipped),
	}
	if err := s.rounds.Create(ctx, round); err != nil {
		return report, err
	}

	depth, err := s.work.Size(ctx)
	if err != nil {
		return report, fmt.Errorf("queue size: %w", err)
	}

	report.Duration = time.Since(report.StartedAt)
	log.Info("finished round",
		"jobs", report.Jobs,
		"skipped", len(report.Skipped),
		"queue_depth", depth,
		"duration", report.Duration,
	)

	return report, nil
}

// buildJob picks a random environment of service and renders its command.
func (s *Scheduler) buildJob(service *models.Service, round int) (*models.Job, error) {
	if !validator.ValidateHost(service.Host) || !validator.ValidatePort(service.Port) {
		return nil, fmt.Errorf("%w: %q port %d", ErrInvalidAddress, service.Host, service.Port)
	}

	if len(service.Environments) == 0 {
		return nil, checks.ErrNoEnvironments
	}
	env := &service.Environments[s.rnd.IntN(len(service.Environments))]

	check, err := s.registry.Bind(service, env, s.rnd)
	if err != nil {
		return nil, err
	}

	command, err := check.Command()
	if err != nil {
		return nil, err
	}

	ref := models.ServiceReference{
		ServiceID:     service.ID,
		EnvironmentID: env.ID,
		TeamID:        service.TeamID,
		Round:         round,
	}
	return models.NewJob(ref, command), nil
}
