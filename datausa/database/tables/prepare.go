package tables

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ColumnSource lists the columns of every table in a database schema, keyed
// by table name.
type ColumnSource interface {
	Columns(ctx context.Context, schema string) (map[string][]Column, error)
}

// Prepare returns a copy of the registry whose reflected tables carry the
// columns found in the database. The receiver is left untouched.
func (r *Registry) Prepare(ctx context.Context, src ColumnSource) (*Registry, error) {
	var schemas []string
	seen := make(map[string]bool)
	for _, t := range r.tables {
		if t.Reflected && !seen[t.Schema] {
			seen[t.Schema] = true
			schemas = append(schemas, t.Schema)
		}
	}

	var mu sync.Mutex
	reflected := make(map[string]map[string][]Column, len(schemas))

	g, gctx := errgroup.WithContext(ctx)
	for _, schema := range schemas {
		g.Go(func() error {
			cols, err := src.Columns(gctx, schema)
			if err != nil {
				return fmt.Errorf("reflect schema %s: %w", schema, err)
			}
			mu.Lock()
			reflected[schema] = cols
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	list := make([]*Table, 0, len(r.tables))
	for _, t := range r.tables {
		c := t.clone()
		if t.Reflected {
			cols, ok := reflected[t.Schema][t.Name]
			if !ok {
				return nil, fmt.Errorf("reflect %s: table not found", t.FullName())
			}
			c.Columns = append([]Column(nil), cols...)
			for _, pk := range t.PrimaryKey {
				if !c.HasColumn(pk) {
					return nil, fmt.Errorf("reflect %s: key column %s not found", t.FullName(), pk)
				}
			}
			slog.Debug("Table reflected",
				slog.String("type", "db"),
				slog.String("table", t.FullName()),
				slog.Int("columns", len(c.Columns)))
		}
		list = append(list, c)
	}

	return newRegistry(list), nil
}
