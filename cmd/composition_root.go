package cmd

import (
	"context"
	"errors"
	"fmt"

	"shipdesk/api"
	httpadapter "shipdesk/internal/adapters/in/http"
	"shipdesk/internal/adapters/out/courierapi"
	"shipdesk/internal/adapters/out/postgres/journalrepo"
	"shipdesk/internal/adapters/out/redis/rostercache"
	"shipdesk/internal/core/application/desk"
	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CompositionRoot owns the long-lived collaborators of the service.
// The journal and the roster cache are optional and only built when their
// store is configured.
type CompositionRoot struct {
	cfg    Config
	logger *zap.Logger

	gormDB      *gorm.DB
	redisClient *redis.Client

	upstream    *courierapi.Client
	journal     *journalrepo.GormActionJournal
	rosterCache ports.RosterCache
	aggregator  services.StatsAggregator
	registry    *desk.Registry
}

func NewCompositionRoot(ctx context.Context, cfg Config, logger *zap.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		aggregator: services.NewStatsAggregator(),
	}

	upstream, err := courierapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), logger)
	if err != nil {
		return nil, fmt.Errorf("courier backend client: %w", err)
	}
	root.upstream = upstream

	if cfg.Postgres.Enabled() {
		if err = root.openJournal(ctx); err != nil {
			return nil, err
		}
	} else {
		logger.Info("action journal disabled: no database configured")
	}

	if cfg.Redis.Enabled() {
		root.openRosterCache(ctx)
	}

	policy, err := desk.ParseFallbackPolicy(cfg.Desk.FallbackPolicy)
	if err != nil {
		_ = root.Close()
		return nil, err
	}

	root.registry = desk.NewRegistry(desk.Dependencies{
		Packages:    upstream,
		Admin:       upstream,
		Roster:      root.CreateGetCourierRosterQueryHandler(),
		Cancel:      root.CreateCancelShipmentCommandHandler(),
		Assign:      root.CreateAssignCourierCommandHandler(),
		Aggregator:  root.aggregator,
		ListOptions: desk.ListOptions{PageSize: cfg.Desk.ListPageSize, FallbackPolicy: policy},
		Logger:      logger,
	})

	return root, nil
}

func (c *CompositionRoot) openJournal(ctx context.Context) error {
	dsn, err := c.cfg.Postgres.DSN()
	if err != nil {
		return err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return fmt.Errorf("open journal database: %w", err)
	}
	c.gormDB = db

	journal := journalrepo.NewGormActionJournal(db)
	if err = journal.Migrate(ctx); err != nil {
		_ = c.Close()
		return fmt.Errorf("migrate journal: %w", err)
	}
	c.journal = journal
	return nil
}

func (c *CompositionRoot) openRosterCache(ctx context.Context) {
	c.redisClient = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.Addr,
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.logger.Warn("redis ping failed, roster cache will retry per call", zap.Error(err))
	}
	c.rosterCache = rostercache.New(c.redisClient, rostercache.DefaultKey, c.cfg.Redis.RosterTTL())
}

func (c *CompositionRoot) actionJournal() ports.ActionJournal {
	if c.journal == nil {
		return nil
	}
	return c.journal
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.upstream, c.actionJournal(), c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.upstream, c.actionJournal(), c.logger)
}

func (c *CompositionRoot) CreateGetCourierRosterQueryHandler() queries.GetCourierRosterQueryHandler {
	return queries.NewGetCourierRosterQueryHandler(c.upstream, c.rosterCache, c.cfg.Desk.RosterPageSize, c.logger)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.upstream, c.upstream, c.aggregator)
}

// CreateGetShipmentActionsQueryHandler returns nil without a journal database.
func (c *CompositionRoot) CreateGetShipmentActionsQueryHandler() httpadapter.ActionsReader {
	if c.gormDB == nil {
		return nil
	}
	return queries.NewGetShipmentActionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var pruner jobs.JournalPruner
	if c.journal != nil {
		pruner = c.journal
	}
	return jobs.NewJobManager(c.registry, pruner, jobs.Settings{
		DeskIdle:          c.cfg.Desk.Idle(),
		JanitorSchedule:   c.cfg.Desk.JanitorSchedule,
		JournalRetention:  c.cfg.Journal.Retention(),
		RetentionSchedule: c.cfg.Journal.RetentionSchedule,
	}, c.logger)
}

// CreateRouter builds the echo instance with every route.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	verifier, err := httpadapter.NewTokenVerifier(c.cfg.Auth.JWTSecret)
	if err != nil {
		return nil, err
	}
	contract, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(
		c.registry,
		c.CreateGetDashboardQueryHandler(),
		c.CreateGetShipmentActionsQueryHandler(),
		c.logger,
	)

	e := httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Verifier: verifier,
		Forward:  courierapi.WithBearerToken,
		Contract: contract,
		Checks:   c.healthChecks(),
		Logger:   c.logger,
	})
	e.Logger.SetLevel(EchoLogLevel(c.cfg.Logger.Level))
	return e, nil
}

func (c *CompositionRoot) healthChecks() map[string]httpadapter.HealthCheck {
	checks := make(map[string]httpadapter.HealthCheck)
	if c.gormDB != nil {
		checks["postgres"] = func(ctx context.Context) error {
			sqlDB, err := c.gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	if c.redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redisClient.Ping(ctx).Err()
		}
	}
	return checks
}

// Close releases the database and Redis connections.
func (c *CompositionRoot) Close() error {
	var result error
	if c.gormDB != nil {
		if sqlDB, err := c.gormDB.DB(); err == nil {
			result = errors.Join(result, sqlDB.Close())
		}
	}
	if c.redisClient != nil {
		result = errors.Join(result, c.redisClient.Close())
	}
	return result
}
