package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/datausa/datausa-go/datausa/database"
	"github.com/datausa/datausa-go/datausa/database/repositories"
	"github.com/datausa/datausa-go/datausa/database/tables"
	"github.com/datausa/datausa-go/datausa/logger"
)

type app struct {
	db       *database.DB
	registry *tables.Registry
	stats    repositories.StatsRepository
}

// connect opens the database and prepares the table registry. Reflection runs
// once here; the registry is read-only afterwards.
func connect(ctx context.Context, reflect bool) (*app, error) {
	start := time.Now()
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.LogSystem("Database connected", "took", time.Since(start))

	registry := tables.NewRegistry(db.BunDB())
	if reflect {
		registry, err = registry.Prepare(ctx, db)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to prepare tables: %w", err)
		}
	}

	stats, err := newStatsRepository(db.BunDB(), registry)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &app{db: db, registry: registry, stats: stats}, nil
}

func newStatsRepository(db *bun.DB, registry *tables.Registry) (repositories.StatsRepository, error) {
	base := repositories.NewBaseRepository(db, time.Duration(cfg.Query.Timeout))
	return repositories.NewStatsRepository(base, registry, repositories.StatsOptions{
		CacheSize: cfg.Cache.Size,
		MaxLimit:  cfg.Query.MaxLimit,
	})
}

func (a *app) Close() {
	a.db.Close()
}
