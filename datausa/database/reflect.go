package database

import (
	"context"
	"fmt"

	"github.com/datausa/datausa-go/datausa/database/tables"
)

const columnsQuery = `SELECT table_name, column_name, data_type
FROM information_schema.columns
WHERE table_schema = $1
ORDER BY table_name, ordinal_position`

// Columns lists the columns of every table in schema. It lets the table
// registry reflect tables whose measures are not declared in Go.
func (db *DB) Columns(ctx context.Context, schema string) (map[string][]tables.Column, error) {
	rows, err := db.QueryWithLog(ctx, columnsQuery, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", schema, err)
	}
	defer rows.Close()

	result := make(map[string][]tables.Column)
	for rows.Next() {
		var table string
		var col tables.Column
		if err := rows.Scan(&table, &col.Name, &col.DataType); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", schema, err)
		}
		result[table] = append(result[table], col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", schema, err)
	}
	return result, nil
}

var _ tables.ColumnSource = (*DB)(nil)
