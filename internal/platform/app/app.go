// Package app wires configuration, storage, the rates API client, the cache
// repositories and the services into one container shared by the binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_calculator/internal/adapters/openexchangerates"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/core/services"
	"github.com/SscSPs/currency_calculator/internal/platform/config"
	"github.com/SscSPs/currency_calculator/internal/repositories/cached"
	"github.com/SscSPs/currency_calculator/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_calculator/internal/repositories/memory"
	"github.com/SscSPs/currency_calculator/pkg/database"
)

// App holds the wired services and the resources that must be released.
type App struct {
	Services *portssvc.ServiceContainer
	closers  []func()
}

// Close releases storage connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// New builds the application according to cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{}

	store, timestamps, err := a.openStorage(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	remote := openexchangerates.NewClient(cfg.RatesAPIBaseURL, cfg.RatesAPIAppID, cfg.RatesAPITimeout)
	a.Services = NewServices(remote, store, timestamps, cfg, logger)
	return a, nil
}

// NewServices wires the cache repositories and services over the given adapters.
func NewServices(
	remote portsrepo.RemoteSource,
	store portsrepo.LocalStore,
	timestamps portsrepo.TimestampStore,
	cfg *config.Config,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	repos := cached.NewRepositoryProvider(remote, store, timestamps,
		[]cached.Option{cached.WithTTL(cfg.CurrenciesCacheTTL), cached.WithLogger(logger)},
		[]cached.Option{cached.WithTTL(cfg.QuotesCacheTTL), cached.WithLogger(logger)},
	)
	return services.NewServiceContainer(repos)
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.LocalStore, portsrepo.TimestampStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Info("Using in-memory storage")
		s := memory.NewStore()
		return s, s, nil
	case config.StorageDriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		a.closers = append(a.closers, func() { database.ClosePgxPool(pool) })

		logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
		if err := database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		return pgsql.NewLocalStore(pool), pgsql.NewPgxTimestampRepository(pool), nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
