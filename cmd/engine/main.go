package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ScoringEngine/internal/config"
	"ScoringEngine/internal/engine/dependencies"
	"ScoringEngine/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *slog.Logger

	flagConfigFilePath string
	flagRounds         int
)

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFilePath, "config", "", "config file to load (default configs/config.yaml)")
	rootCmd.Flags().IntVar(&flagRounds, "rounds", 0, "number of rounds to run, 0 runs until interrupted (overrides engine.total_rounds)")

	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = initEngine

	if err := rootCmd.Execute(); err != nil {
		slog.Error("engine failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "engine",
	Short:        "Schedules service checks round by round",
	SilenceUsage: true,
	RunE:         doRun,
}

func initEngine(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfigFilePath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("rounds") {
		cfg.Engine.TotalRounds = flagRounds
	}

	log = logger.Setup(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	return nil
}

func doRun(cmd *cobra.Command, _ []string) error {
	log.Info("starting scoring engine",
		slog.String("name", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.Int("total_rounds", cfg.Engine.TotalRounds),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	container, err := dependencies.NewContainer(initCtx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error("failed to close dependencies", "error", err)
		}
	}()

	if err := container.Scheduler.Start(ctx); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		if _, ok := <-quit; ok {
			container.Scheduler.Shutdown()
		}
	}()

	return container.Scheduler.Run(ctx)
}
