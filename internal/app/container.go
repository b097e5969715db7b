// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/form"
	"github.com/runoshun/locrec/internal/infra/config"
	"github.com/runoshun/locrec/internal/infra/gitstore"
	"github.com/runoshun/locrec/internal/infra/idgen"
	"github.com/runoshun/locrec/internal/infra/jsonstore"
	"github.com/runoshun/locrec/internal/infra/logging"
	"github.com/runoshun/locrec/internal/infra/sqlstore"
	"github.com/runoshun/locrec/internal/manager"
	"github.com/runoshun/locrec/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir   string // Data directory holding storage, config and logs
	StorePath string // Location of the storage backend
	Backend   string // Storage backend name
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for managers and use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.KVStore
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	Validator *form.Validator

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
// An empty dataDir resolves to LOCREC_DATA_DIR or the XDG data home.
func New(dataDir string) (*Container, error) {
	dir, err := config.ResolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg := Config{
		DataDir:   dir,
		StorePath: appConfig.StoragePath(dir),
		Backend:   appConfig.Storage.Backend,
	}

	logger := logging.New(dir, logging.ParseLevel(appConfig.Log.Level))
	closers := []io.Closer{logger}

	store, storeCloser, err := openStore(cfg, domain.RealClock{})
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	if storeCloser != nil {
		closers = append(closers, storeCloser)
	}
	logger.Debug("", "startup", fmt.Sprintf("opened %s store at %s", cfg.Backend, cfg.StorePath))

	return &Container{
		Store:         store,
		Clock:         domain.RealClock{},
		IDs:           idgen.UUID{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		AppConfig:     appConfig,
		Validator:     form.NewValidator(),
		closers:       closers,
		Config:        cfg,
	}, nil
}

// openStore builds the configured storage backend.
func openStore(cfg Config, clock domain.Clock) (domain.KVStore, io.Closer, error) {
	switch cfg.Backend {
	case domain.BackendSQLite:
		s, err := sqlstore.Open(cfg.StorePath, clock)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case domain.BackendGit:
		s, err := gitstore.Open(cfg.StorePath, clock)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case domain.BackendJSON, "":
		return jsonstore.New(cfg.StorePath), nil, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Backend)
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store domain.KVStore, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Store:     store,
		Clock:     clock,
		IDs:       ids,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Validator: form.NewValidator(),
		Config:    cfg,
	}
}

// Close releases the store and log files.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// Manager factory methods

// TodosManager returns an unloaded to-do list manager.
func (c *Container) TodosManager() *manager.Todos {
	return manager.NewTodos(c.Store, c.Clock, c.IDs, c.Logger)
}

// OrdersManager returns an unloaded order list manager.
func (c *Container) OrdersManager() *manager.Orders {
	return manager.NewOrders(c.Store, c.Clock, c.IDs, c.Logger)
}

// Todos returns the to-do list manager loaded from the store.
func (c *Container) Todos(ctx context.Context) (*manager.Todos, error) {
	todos := c.TodosManager()
	if err := todos.Load(ctx); err != nil {
		return nil, err
	}
	return todos, nil
}

// Orders returns the order list manager loaded from the store.
func (c *Container) Orders(ctx context.Context) (*manager.Orders, error) {
	orders := c.OrdersManager()
	if err := orders.Load(ctx); err != nil {
		return nil, err
	}
	return orders, nil
}

// UseCase factory methods

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	history, _ := c.Store.(domain.HistoryStore)
	return usecase.NewShowHistory(history)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
