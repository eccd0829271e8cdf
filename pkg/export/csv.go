// Package export emits the pipeline's deliverables: one CSV per metric
// with a YAML run manifest, and the markdown KPI document.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/metrics"
)

// ManifestFileName is written next to the metric CSVs on every export.
const ManifestFileName = "manifest.yaml"

// CSVExporter writes metric results as UTF-8 CSV files, one per metric
// key, plus a manifest describing the run.
type CSVExporter struct {
	dir    string
	logger *zap.Logger
}

// NewCSVExporter creates an exporter targeting dir; the directory is
// created on first export.
func NewCSVExporter(dir string, logger *zap.Logger) *CSVExporter {
	return &CSVExporter{
		dir:    dir,
		logger: logger.Named("csv-export"),
	}
}

type manifest struct {
	RunID       string          `yaml:"run_id"`
	GeneratedAt time.Time       `yaml:"generated_at"`
	Metrics     []manifestEntry `yaml:"metrics"`
}

type manifestEntry struct {
	Key     string   `yaml:"key"`
	File    string   `yaml:"file"`
	Columns []string `yaml:"columns,flow"`
	Rows    int      `yaml:"rows"`
}

// Export writes <key>.csv for every collected metric, in metric
// declaration order, then the manifest. A metric that failed upstream
// arrives as an empty table and still produces a header-only file, so
// consumers always find the full set.
func (e *CSVExporter) Export(results map[string]*dataset.Table) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	m := manifest{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	for _, spec := range metrics.Specs() {
		table, ok := results[spec.Key]
		if !ok {
			continue
		}

		fileName := spec.Key + ".csv"
		if err := e.writeCSV(filepath.Join(e.dir, fileName), table); err != nil {
			return fmt.Errorf("failed to export metric %s: %w", spec.Key, err)
		}

		m.Metrics = append(m.Metrics, manifestEntry{
			Key:     spec.Key,
			File:    fileName,
			Columns: table.Columns,
			Rows:    table.Len(),
		})
		e.logger.Debug("Metric exported",
			zap.String("metric", spec.Key),
			zap.Int("rows", table.Len()))
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.dir, ManifestFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	e.logger.Info("Metrics exported",
		zap.String("run_id", m.RunID),
		zap.Int("metrics", len(m.Metrics)),
		zap.String("dir", e.dir))
	return nil
}

func (e *CSVExporter) writeCSV(path string, table *dataset.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(table.Columns)

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		if writeErr != nil {
			break
		}
		for i, col := range table.Columns {
			record[i] = formatValue(row[col])
		}
		writeErr = w.Write(record)
	}

	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if writeErr != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("failed to write %s: %w", path, writeErr)
	}
	return f.Close()
}

// formatValue renders a cell. NULLs become empty cells and floats keep
// their shortest exact representation, so 8.5 stays "8.5" not "8.500000".
func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case time.Time:
		return n.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", n)
	}
}
