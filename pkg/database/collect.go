package database

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

// CollectRows drains a pgx result into a dataset.Table, realizing the
// column list from the wire field descriptions. Optional columns vary
// between environments, so downstream stages always consult the
// realized list rather than assuming a fixed schema.
func CollectRows(rows pgx.Rows) (*dataset.Table, error) {
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = string(fd.Name)
	}

	table := dataset.New(columns...)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		table.Append(row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return table, nil
}
