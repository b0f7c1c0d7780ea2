package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/config"
	"github.com/riskibarqy/octofit-tracker/internal/interfaces/httpapi"
	"github.com/riskibarqy/octofit-tracker/internal/observability"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/riskibarqy/octofit-tracker/internal/platform/password"
	"github.com/riskibarqy/octofit-tracker/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Services groups the use cases built over one set of repositories.
type Services struct {
	Users       *usecase.UserService
	Teams       *usecase.TeamService
	Activities  *usecase.ActivityService
	Leaderboard *usecase.LeaderboardService
	Workouts    *usecase.WorkoutService
	Seed        *usecase.SeedService
}

func NewServices(
	repos *Repositories,
	hasher password.Hasher,
	seedOpts usecase.SeedOptions,
	metrics usecase.MetricsRecorder,
	logger *logging.Logger,
) Services {
	leaderboardSvc := usecase.NewLeaderboardService(repos.Leaderboard, repos.Activities, repos.Users, metrics, logger)

	return Services{
		Users:       usecase.NewUserService(repos.Users, hasher, logger),
		Teams:       usecase.NewTeamService(repos.Teams, logger),
		Activities:  usecase.NewActivityService(repos.Activities, logger),
		Leaderboard: leaderboardSvc,
		Workouts:    usecase.NewWorkoutService(repos.Workouts, logger),
		Seed: usecase.NewSeedService(
			usecase.SeedRepositories{
				Users:       repos.Users,
				Teams:       repos.Teams,
				Activities:  repos.Activities,
				Leaderboard: repos.Leaderboard,
				Workouts:    repos.Workouts,
			},
			leaderboardSvc,
			hasher,
			seedOpts,
			metrics,
			logger,
		),
	}
}

// NewHTTPServer wires the router over services. metrics may be nil, which
// disables both request metrics and the /metrics endpoint.
func NewHTTPServer(cfg config.Config, services Services, metrics *observability.Metrics, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(httpapi.HandlerServices{
		Users:       services.Users,
		Teams:       services.Teams,
		Activities:  services.Activities,
		Leaderboard: services.Leaderboard,
		Workouts:    services.Workouts,
	}, cfg.PublicBaseURL, logger)

	opts := httpapi.RouterOptions{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if metrics != nil {
		opts.RequestObserver = metrics
		opts.MetricsHandler = metrics.Handler()
	}

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// Run starts the API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("pyroscope stop failed", "error", err)
		}
	}()

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := observability.StopPprofServer(pprofSrv, logger, shutdownTimeout); err != nil {
			logger.Warn("pprof shutdown failed", "error", err)
		}
	}()

	repos, err := OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(context.Background()); err != nil {
			logger.Warn("close store failed", "error", err)
		}
	}()

	var metrics *observability.Metrics
	var recorder usecase.MetricsRecorder
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
		recorder = metrics
	}

	services := NewServices(
		repos,
		password.NewBcryptHasher(0),
		usecase.SeedOptions{Workers: cfg.SeedWorkers},
		recorder,
		logger,
	)

	if cfg.SeedOnStart {
		summary, err := services.Seed.Run(ctx)
		if err != nil {
			return fmt.Errorf("seed on start: %w", err)
		}
		logger.Info("seed on start completed",
			"teams", summary.Teams,
			"users", summary.Users,
			"activities", summary.Activities,
		)
	}

	srv, err := NewHTTPServer(cfg, services, metrics, logger)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr, "store_driver", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("http server stopped")

	return nil
}
