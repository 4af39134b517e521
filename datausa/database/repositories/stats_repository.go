package repositories

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"

	"github.com/datausa/datausa-go/datausa/attrs"
	"github.com/datausa/datausa-go/datausa/database/tables"
	"github.com/datausa/datausa-go/datausa/filters"
)

// StatsQuery selects rows of one stats table.
type StatsQuery struct {
	// Table is the schema qualified table name, e.g. "pums_1year.ygi".
	Table string
	// Shows maps show columns to the level they are requested at.
	Shows map[string]string
	// Year restricts rows to one year when non-zero.
	Year  int
	Limit int
}

type Row = map[string]interface{}

type StatsRepository interface {
	// Find returns the rows matching q, latest year first. The rows may be
	// shared with the result cache and must not be modified.
	Find(ctx context.Context, q StatsQuery) ([]Row, error)
	// BuildQuery resolves q into a select without running it.
	BuildQuery(q StatsQuery) (*bun.SelectQuery, error)
}

type statsRepository struct {
	*BaseRepository
	registry *tables.Registry
	cache    *lru.Cache
	maxLimit int
}

type StatsOptions struct {
	CacheSize int
	MaxLimit  int
}

func NewStatsRepository(base *BaseRepository, registry *tables.Registry, opts StatsOptions) (StatsRepository, error) {
	r := &statsRepository{
		BaseRepository: base,
		registry:       registry,
		maxLimit:       opts.MaxLimit,
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New(opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

func (r *statsRepository) BuildQuery(q StatsQuery) (*bun.SelectQuery, error) {
	table, err := r.registry.Lookup(q.Table)
	if err != nil {
		return nil, err
	}
	preds, err := table.ShowLevelFilters(q.Shows)
	if err != nil {
		return nil, err
	}

	sel := r.GetDB().NewSelect().TableExpr("?", bun.Ident(table.FullName()))
	sel = filters.ApplyAll(sel, preds)
	if q.Year != 0 {
		sel = sel.Where("? = ?", bun.Ident(attrs.Year), q.Year)
	}
	sel = sel.OrderExpr("? DESC", bun.Ident(attrs.Year))
	for _, pk := range table.PrimaryKey {
		if pk != attrs.Year {
			sel = sel.OrderExpr("?", bun.Ident(pk))
		}
	}

	limit := q.Limit
	if r.maxLimit > 0 && (limit <= 0 || limit > r.maxLimit) {
		limit = r.maxLimit
	}
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	return sel, nil
}

func (r *statsRepository) Find(ctx context.Context, q StatsQuery) ([]Row, error) {
	sel, err := r.BuildQuery(q)
	if err != nil {
		return nil, err
	}

	key := sel.String()
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			slog.Debug("Stats cache hit",
				slog.String("type", "db"),
				slog.String("table", q.Table))
			return cached.([]Row), nil
		}
	}

	var rows []Row
	err = r.SelectWithTimeout(ctx, "find", q.Table, func(ctx context.Context) error {
		return sel.Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Add(key, rows)
	}
	return rows, nil
}
