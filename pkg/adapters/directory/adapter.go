package directory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
	"go.uber.org/zap"

	"github.com/gmsoft-inc/monitor-engine/pkg/config"
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/logging"
	"github.com/gmsoft-inc/monitor-engine/pkg/models"
	"github.com/gmsoft-inc/monitor-engine/pkg/retry"
	enginesql "github.com/gmsoft-inc/monitor-engine/pkg/sql"
	"github.com/gmsoft-inc/monitor-engine/pkg/validate"
)

// Adapter reads the externally-owned employee directory over SQL Server.
// Every failure mode (unreachable host, missing table, schema drift,
// zero rows) degrades to a single synthetic placeholder employee so
// downstream stages never receive an empty set; an unavailable external
// dependency degrades functionality, it never aborts the pipeline.
type Adapter struct {
	cfg    *config.DirectoryConfig
	db     *sql.DB
	logger *zap.Logger
}

// NewAdapter creates a directory adapter. The connection is lazy; the
// first probe in FetchEmployees surfaces connectivity problems, which
// are recovered locally.
func NewAdapter(cfg *config.DirectoryConfig, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlserver", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open directory connection: %w", err)
	}

	return &Adapter{
		cfg:    cfg,
		db:     db,
		logger: logger.Named("directory"),
	}, nil
}

// Close releases the directory connection.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// FetchEmployees probes the directory schema, resolves the usable
// columns once, and selects them under canonical names. On any failure
// it logs the cause and returns the placeholder table; it never returns
// an error and never returns an empty table.
func (a *Adapter) FetchEmployees(ctx context.Context) *dataset.Table {
	// Directory reads cross a network boundary; transient faults get a
	// few retries before the placeholder takes over.
	discovered, err := retry.DoWithResult(ctx, nil, func() ([]string, error) {
		return a.discoverColumns(ctx)
	})
	if err != nil {
		a.logger.Warn("Directory schema probe failed, using placeholder employee",
			zap.String("cause", logging.SanitizeError(err)))
		return placeholderTable()
	}

	resolution, err := Resolve(EmployeeFields, discovered)
	if err != nil {
		a.logger.Warn("Directory schema missing required columns, using placeholder employee",
			zap.Strings("discovered", discovered),
			zap.Error(err))
		return placeholderTable()
	}

	table, err := a.selectResolved(ctx, resolution)
	if err != nil {
		a.logger.Warn("Directory query failed, using placeholder employee",
			zap.String("cause", logging.SanitizeError(err)))
		return placeholderTable()
	}
	if table.Empty() {
		a.logger.Warn("Directory returned no employees, using placeholder employee")
		return placeholderTable()
	}

	a.logger.Info("Employee directory loaded",
		zap.Int("employees", table.Len()),
		zap.Strings("columns", table.Columns))
	return table
}

// discoverColumns introspects the directory table's realized column set.
func (a *Adapter) discoverColumns(ctx context.Context) ([]string, error) {
	const query = `
		SELECT c.COLUMN_NAME
		FROM INFORMATION_SCHEMA.COLUMNS c
		WHERE c.TABLE_SCHEMA = @schema AND c.TABLE_NAME = @table
		ORDER BY c.ORDINAL_POSITION`

	rows, err := a.db.QueryContext(ctx, query,
		sql.Named("schema", a.cfg.Schema),
		sql.Named("table", a.cfg.Table),
	)
	if err != nil {
		return nil, fmt.Errorf("query directory columns: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("directory table %s.%s has no columns (missing table?)", a.cfg.Schema, a.cfg.Table)
	}

	return columns, nil
}

// selectResolved issues the defensively-scoped select: only columns the
// probe confirmed, aliased to their canonical names.
func (a *Adapter) selectResolved(ctx context.Context, resolution []ResolvedField) (*dataset.Table, error) {
	selects := make([]string, len(resolution))
	canonical := make([]string, len(resolution))
	for i, f := range resolution {
		selects[i] = fmt.Sprintf("%s AS %s",
			enginesql.QuoteIdentifier(f.Source), enginesql.QuoteIdentifier(f.Canonical))
		canonical[i] = f.Canonical
	}

	query := fmt.Sprintf("SELECT %s FROM %s.%s",
		strings.Join(selects, ", "),
		enginesql.QuoteIdentifier(a.cfg.Schema),
		enginesql.QuoteIdentifier(a.cfg.Table),
	)

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	table := dataset.New(canonical...)
	for rows.Next() {
		values := make([]any, len(canonical))
		ptrs := make([]any, len(canonical))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan employee row: %w", err)
		}

		row := make(map[string]any, len(canonical))
		for i, col := range canonical {
			row[col] = normalizeValue(values[i])
		}
		if scrubEmployeeRow(row) {
			table.Append(row)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return table, nil
}

// scrubEmployeeRow screens a directory row before it joins the unified
// dataset. Rows without a usable employee id are rejected; a malformed
// email is blanked rather than carried into reports.
func scrubEmployeeRow(row map[string]any) bool {
	if !validate.NonEmpty(dataset.AsString(row["employee_id"])) {
		return false
	}
	if email, ok := row["employee_email"]; ok {
		if s := dataset.AsString(email); s != "" && !validate.Email(s) {
			row["employee_email"] = ""
		}
	}
	return true
}

// normalizeValue converts driver byte slices to strings so directory
// values join cleanly against primary-store ids.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func placeholderTable() *dataset.Table {
	placeholder := models.Employee{
		ID:   models.PlaceholderEmployeeID,
		Name: models.PlaceholderEmployeeName,
	}
	table := dataset.New("employee_id", "employee_name")
	table.Append(map[string]any{
		"employee_id":   placeholder.ID,
		"employee_name": placeholder.Name,
	})
	return table
}
