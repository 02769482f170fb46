package app

import (
	"context"
	"fmt"
	"time"

	"jobsync/internal/config"
	"jobsync/internal/database"
	dbpostgres "jobsync/internal/database/postgres"
	"jobsync/internal/domain/matching"
	"jobsync/internal/infrastructure/cache"
	fsstore "jobsync/internal/infrastructure/persistence/firestore"
	"jobsync/internal/logger"
	"jobsync/internal/repository"
	"jobsync/internal/usecase"
	"jobsync/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger

	// DB is nil when the firestore driver is selected.
	DB           database.DB
	Store        repository.ProfileStore
	Applications repository.ApplicationRepository

	Cache    *cache.Redis
	Hub      *ws.Hub
	Matching *usecase.Matching

	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Logger: log}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch cfg.App.StoreDriver {
	case config.StoreDriverFirestore:
		st, err := fsstore.NewStore(connectCtx, cfg.Firestore.ProjectID)
		if err != nil {
			return nil, err
		}
		c.Store = st
		c.Applications = st
		c.closers = append(c.closers, st.Close)
	case config.StoreDriverPostgres:
		db, err := dbpostgres.Connect(connectCtx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db
		c.Store = repository.NewPostgresStore(db)
		c.Applications = repository.NewPostgresApplicationRepository(db)
		c.closers = append(c.closers, db.Close)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.App.StoreDriver)
	}

	c.Cache = cache.NewRedis(cfg.Redis, log)
	c.closers = append(c.closers, c.Cache.Close)

	c.Hub = ws.NewHub(log)

	c.Matching = usecase.NewMatchingUsecase(usecase.MatchingDeps{
		Store:        c.Store,
		Applications: c.Applications,
		Engine:       matching.NewEngine(EngineConfig(cfg.Matching)),
		Cache:        c.Cache,
		CacheTTL:     c.Cache.TTL(),
		Notifier:     ws.NewNotifier(c.Hub),
		Logger:       log.Named("matching"),
		Workers:      cfg.Matching.Workers,
	})

	log.Info("container ready", zap.String("store", cfg.App.StoreDriver))
	return c, nil
}

func EngineConfig(cfg config.MatchingConfig) matching.Config {
	ec := matching.DefaultConfig()
	if cfg.AcceptanceThreshold > 0 {
		ec.AcceptanceThreshold = cfg.AcceptanceThreshold
	}
	if cfg.ExperienceWeight >= 0 {
		ec.ExperienceWeight = cfg.ExperienceWeight
	}
	if cfg.IndustryWeight >= 0 {
		ec.IndustryWeight = cfg.IndustryWeight
	}
	return ec
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
