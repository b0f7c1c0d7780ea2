package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/octofit-tracker/internal/config"
	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	"github.com/riskibarqy/octofit-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/octofit-tracker/internal/infrastructure/repository/mongodb"
	"github.com/riskibarqy/octofit-tracker/internal/infrastructure/repository/postgres"
	idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

// Repositories is the driver-independent view of the data store.
type Repositories struct {
	Users       user.Repository
	Teams       team.Repository
	Activities  activity.Repository
	Leaderboard leaderboard.Repository
	Workouts    workout.Repository

	close func(context.Context) error
}

// Close releases the driver connection, if any.
func (r *Repositories) Close(ctx context.Context) error {
	if r == nil || r.close == nil {
		return nil
	}
	return r.close(ctx)
}

// OpenRepositories connects the store selected by cfg.StoreDriver.
func OpenRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		store := memory.NewStore(idgen.NewUUIDGenerator())
		logger.Info("using in-memory store")
		return &Repositories{
			Users:       store.Users,
			Teams:       store.Teams,
			Activities:  store.Activities,
			Leaderboard: store.Leaderboard,
			Workouts:    store.Workouts,
		}, nil
	case config.StorePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store := postgres.NewStore(db)
		logger.Info("using postgres store", "dsn", redactDSN(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
		return &Repositories{
			Users:       store.Users,
			Teams:       store.Teams,
			Activities:  store.Activities,
			Leaderboard: store.Leaderboard,
			Workouts:    store.Workouts,
			close: func(context.Context) error {
				return db.Close()
			},
		}, nil
	case config.StoreMongo:
		client, database, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		store := mongodb.NewStore(database)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		logger.Info("using mongo store", "database", cfg.MongoDatabase)
		return &Repositories{
			Users:       store.Users,
			Teams:       store.Teams,
			Activities:  store.Activities,
			Leaderboard: store.Leaderboard,
			Workouts:    store.Workouts,
			close:       client.Disconnect,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := PostgresDSN(cfg)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}
	otelsql.ReportDBStatsMetrics(db.DB)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
