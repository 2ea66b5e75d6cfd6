package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-tournament/internal/config"
	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-tournament/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricket-tournament/internal/observability"
	basecache "github.com/riskibarqy/cricket-tournament/internal/platform/cache"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
	"github.com/riskibarqy/cricket-tournament/internal/platform/metrics"
	"github.com/riskibarqy/cricket-tournament/internal/usecase"
)

// App owns the HTTP server and the resources it depends on.
type App struct {
	Server *http.Server
	db     *sqlx.DB
	logger *logging.Logger
}

type repositories struct {
	users       user.Repository
	tournaments tournament.Repository
	matches     match.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	repos, err := a.buildRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.tournaments = cache.NewTournamentRepository(repos.tournaments, store)
		repos.matches = cache.NewMatchRepository(repos.matches, store)
	}

	routerCfg := httpapi.RouterConfig{
		Logger:             logger,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	ids := idgen.NewUUIDGenerator()
	var userSvc *usecase.UserService
	if cfg.MetricsEnabled {
		metricsSvc := metrics.NewService()
		routerCfg.Metrics = metricsSvc
		userSvc = usecase.NewUserService(repos.users, ids, metricsSvc, logger)
	} else {
		userSvc = usecase.NewUserService(repos.users, ids, nil, logger)
	}

	handler := httpapi.NewHandler(
		userSvc,
		usecase.NewTournamentService(repos.tournaments, repos.matches, ids, logger),
		usecase.NewMatchService(repos.matches, repos.tournaments, ids, logger),
		usecase.NewDashboardService(repos.users, repos.tournaments, repos.matches),
		cfg.StorageDriver,
		logger,
	)

	var root http.Handler = httpapi.NewRouter(handler, routerCfg)
	if cfg.PyroscopeEnabled {
		root = observability.ProfileRouteGroups(root)
	}

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      root,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("app initialized",
		"storage", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"metrics_enabled", cfg.MetricsEnabled,
		"swagger_enabled", cfg.SwaggerEnabled,
	)
	return a, nil
}

func (a *App) buildRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		a.db = db

		if cfg.SeedDemoData {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		return repositories{
			users:       postgres.NewUserRepository(db),
			tournaments: postgres.NewTournamentRepository(db),
			matches:     postgres.NewMatchRepository(db),
		}, nil
	case config.StorageMemory, "":
		if !cfg.SeedDemoData {
			return repositories{
				users:       memory.NewUserRepository(),
				tournaments: memory.NewTournamentRepository(),
				matches:     memory.NewMatchRepository(),
			}, nil
		}
		return repositories{
			users:       memory.NewUserRepository(memory.SeedUsers()...),
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()...),
			matches:     memory.NewMatchRepository(memory.SeedMatches()...),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// Close releases the database pool, if any. The HTTP server is shut down by the caller.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	return nil
}
