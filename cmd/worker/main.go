package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ScoringEngine/internal/config"
	"ScoringEngine/internal/worker/handlers"
	"ScoringEngine/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *slog.Logger

	flagConfigFilePath string
	flagIterations     int
	flagConcurrency    int
)

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFilePath, "config", "", "config file to load (default configs/config.yaml)")
	rootCmd.Flags().IntVar(&flagIterations, "iterations", -1, "polls per worker loop before exiting, negative runs until interrupted")
	rootCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "worker loops in this process (overrides worker.concurrency)")

	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = initWorker

	if err := rootCmd.Execute(); err != nil {
		slog.Error("worker failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "worker",
	Short:        "Executes queued service checks",
	SilenceUsage: true,
	RunE:         doRun,
}

func initWorker(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfigFilePath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("concurrency") && flagConcurrency > 0 {
		cfg.Worker.Concurrency = flagConcurrency
	}

	log = logger.Setup(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	return nil
}

func doRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	container, err := NewContainer(initCtx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error("failed to close dependencies", "error", err)
		}
	}()

	log.Info("worker service initialized",
		"workers", len(container.Workers),
		"check_timeout", cfg.Worker.CheckTimeout,
		"queue", container.WorkQueue.Key(),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		if _, ok := <-quit; ok {
			for _, w := range container.Workers {
				w.Shutdown()
			}
		}
	}()

	if err := handlers.RunAll(ctx, container.Workers, flagIterations); err != nil {
		return err
	}

	log.Info("worker service stopped")
	return nil
}
