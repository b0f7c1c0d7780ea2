package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/octofit-tracker/internal/app"
	"github.com/riskibarqy/octofit-tracker/internal/config"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/riskibarqy/octofit-tracker/internal/platform/password"
	"github.com/riskibarqy/octofit-tracker/internal/usecase"
)

func main() {
	envFile := flag.String("env-file", ".env", "path to an env file; missing files are ignored")
	driver := flag.String("driver", "", "store driver override (memory, postgres, mongo)")
	randomSeed := flag.Uint64("seed", 0, "random seed for generated activities; 0 picks one from the clock")
	flag.Parse()

	if err := run(*envFile, *driver, *randomSeed); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile, driver string, randomSeed uint64) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	if driver != "" {
		if err := os.Setenv("STORE_DRIVER", driver); err != nil {
			return fmt.Errorf("set STORE_DRIVER: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr).Named("seed")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn("seeding the in-memory store; data is discarded when this process exits")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repos.Close(closeCtx); err != nil {
			logger.Warn("close store failed", "error", err)
		}
	}()

	services := app.NewServices(
		repos,
		password.NewBcryptHasher(0),
		usecase.SeedOptions{Workers: cfg.SeedWorkers, RandomSeed: randomSeed},
		nil,
		logger,
	)

	summary, err := services.Seed.Run(ctx)
	if err != nil {
		return err
	}

	out, err := sonic.ConfigStd.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
