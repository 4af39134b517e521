package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/uptrace/bun"

	"github.com/datausa/datausa-go/datausa/attrs"
	"github.com/datausa/datausa-go/datausa/database/tables"
)

var schemas = []string{
	attrs.AttrsSchema,
	attrs.PumsAttrsSchema,
	attrs.PumsSchema,
	attrs.Acs1Schema,
	attrs.Acs5Schema,
}

// InitializeSchema creates the schemas, attribute tables and declared stats
// tables of reg. Reflected tables are owned by the loader and left alone.
// Intended for development databases; every statement is idempotent.
func (db *DB) InitializeSchema(ctx context.Context, reg *tables.Registry) error {
	for _, s := range schemas {
		if _, err := db.ExecWithLog(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoteIdent(s)); err != nil {
			return fmt.Errorf("failed to create schema %s: %w", s, err)
		}
	}

	for _, q := range createTableQueries(db.bunDB, reg) {
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, idx := range indexStatements(reg) {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	slog.Info("Schema initialized",
		slog.String("type", "db"),
		slog.Int("tables", len(reg.Tables())))
	return nil
}

func createTableQueries(db *bun.DB, reg *tables.Registry) []*bun.CreateTableQuery {
	var queries []*bun.CreateTableQuery
	for _, model := range tables.AttrModels {
		queries = append(queries, db.NewCreateTable().Model(model).IfNotExists())
	}

	for _, t := range reg.Tables() {
		if t.Reflected {
			continue
		}
		q := db.NewCreateTable().Model(t.Model).IfNotExists()
		for _, col := range t.PrimaryKey {
			target, ok := t.ForeignKeys[col]
			if !ok {
				continue
			}
			q = q.ForeignKey("(?) REFERENCES ? (?)", bun.Ident(col), bun.Ident(target), bun.Ident("id"))
		}
		queries = append(queries, q)
	}
	return queries
}

// indexStatements indexes the level columns the classification filters
// compare against.
func indexStatements(reg *tables.Registry) []string {
	var stmts []string
	for _, t := range reg.Tables() {
		if t.Reflected {
			continue
		}
		for _, col := range []string{"naics_level", "soc_level"} {
			if !t.HasColumn(col) {
				continue
			}
			name := fmt.Sprintf("idx_%s_%s_%s", t.Schema, t.Name, col)
			stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
				quoteIdent(name), quoteIdent(t.FullName()), quoteIdent(col)))
		}
	}
	return stmts
}

// quoteIdent quotes a possibly schema qualified identifier.
func quoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}
