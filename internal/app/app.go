package app

import (
	"context"
	"fmt"
	"net/http"

	dbmigrations "github.com/riskibarqy/football-api/db"
	"github.com/riskibarqy/football-api/internal/config"
	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/store"
	"github.com/riskibarqy/football-api/internal/domain/team"
	repocache "github.com/riskibarqy/football-api/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-api/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-api/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-api/internal/platform/cache"
	"github.com/riskibarqy/football-api/internal/platform/logging"
	"github.com/riskibarqy/football-api/internal/usecase"
)

type repositories struct {
	teams   team.Repository
	players player.Repository
	tx      store.Transactor
	close   func() error
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		repos = withCache(repos, basecache.NewStore(cfg.CacheTTL))
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	teamSvc := usecase.NewTeamService(repos.teams, repos.players, repos.tx, logger)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, logger)

	handler := httpapi.NewHandler(teamSvc, playerSvc, logger)
	router := httpapi.NewRouter(
		handler,
		httpapi.BasicCredentials{
			Username:     cfg.BasicAuthUser,
			Password:     cfg.BasicAuthPassword,
			PasswordHash: cfg.BasicAuthPasswordHash,
		},
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	server.RegisterOnShutdown(func() {
		if err := repos.close(); err != nil {
			logger.Error("close storage", "error", err)
		}
	})

	return server, nil
}

func newRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Info("storage selected", "driver", config.StorageDriverMemory)
		s := memory.NewStore()
		return repositories{
			teams:   memory.NewTeamRepository(s),
			players: memory.NewPlayerRepository(s),
			tx:      memory.NewTransactor(s),
			close:   func() error { return nil },
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, err
	}
	logger.Info("storage selected",
		"driver", config.StorageDriverPostgres,
		"db_url", redactDBURL(cfg.DBURL),
		"max_open_conns", cfg.DBMaxOpenConns,
	)

	if cfg.DBAutoMigrate {
		if err := postgres.ApplyMigrations(context.Background(), db, dbmigrations.Migrations, dbmigrations.MigrationsDir); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	return repositories{
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		tx:      postgres.NewTransactor(db),
		close:   db.Close,
	}, nil
}

func withCache(repos repositories, c *basecache.Store) repositories {
	return repositories{
		teams:   repocache.NewTeamRepository(repos.teams, c),
		players: repocache.NewPlayerRepository(repos.players, c),
		tx:      repocache.NewTransactor(repos.tx, c),
		close:   repos.close,
	}
}
