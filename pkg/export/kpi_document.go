package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/metrics"
	"github.com/gmsoft-inc/monitor-engine/pkg/standardize"
)

// KPIDocumentFileName is the markdown report written on every run.
const KPIDocumentFileName = "kpi_report.md"

// KPIDocumentWriter renders the human-readable KPI document from the
// unified dataset, using the tabular metric path. Presentation stays
// out of here: the document carries values only.
type KPIDocumentWriter struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewKPIDocumentWriter creates a writer targeting dir; the directory is
// created on first write.
func NewKPIDocumentWriter(dir string, logger *zap.Logger) *KPIDocumentWriter {
	return &KPIDocumentWriter{
		dir:    dir,
		logger: logger.Named("kpi-document"),
		now:    time.Now,
	}
}

// Write renders the document and returns the path it was written to.
func (w *KPIDocumentWriter) Write(unified *dataset.Table) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create document directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Remote Work Productivity and Quality KPIs\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", w.now().Format("2006-01-02 15:04"))

	writeHoursByEmployee(&b, unified)
	writeHoursByProject(&b, unified)
	writeQualityScores(&b, unified)
	writeRejections(&b, unified)
	writeDeliverablesPerHour(&b, unified)
	writeRecommendations(&b)

	path := filepath.Join(w.dir, KPIDocumentFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write KPI document: %w", err)
	}

	w.logger.Info("KPI document written", zap.String("path", path))
	return path, nil
}

func writeHoursByEmployee(b *strings.Builder, unified *dataset.Table) {
	hours := metrics.HoursByEmployee(unified)

	b.WriteString("## Hours Worked per Employee\n\n")
	b.WriteString("| Employee | Total Hours |\n|---|---|\n")
	var sum, maxH, minH float64
	for i, row := range hours.Rows {
		h := dataset.AsFloat(row["total_hours"])
		fmt.Fprintf(b, "| %s | %.2f |\n", dataset.AsString(row["employee_id"]), h)
		sum += h
		if i == 0 || h > maxH {
			maxH = h
		}
		if i == 0 || h < minH {
			minH = h
		}
	}
	if hours.Len() > 0 {
		fmt.Fprintf(b, "\nAverage: %.2f h — Highest: %.2f h — Lowest: %.2f h\n\n",
			dataset.Round2(sum/float64(hours.Len())), maxH, minH)
	} else {
		b.WriteString("\nNo hours recorded.\n\n")
	}
}

func writeHoursByProject(b *strings.Builder, unified *dataset.Table) {
	projects := metrics.HoursByProject(unified)

	b.WriteString("## Hours Invested per Project\n\n")
	b.WriteString("| Project | Total Hours |\n|---|---|\n")
	for _, row := range projects.Rows {
		fmt.Fprintf(b, "| %s | %.2f |\n",
			dataset.AsString(row["project_name"]), dataset.AsFloat(row["total_hours"]))
	}
	b.WriteString("\n")
}

func writeQualityScores(b *strings.Builder, unified *dataset.Table) {
	scores := metrics.QualityByEmployee(unified)

	b.WriteString("## Average Quality Score per Employee\n\n")
	b.WriteString("| Employee | Avg Quality Score | Band |\n|---|---|---|\n")
	for _, row := range scores.Rows {
		score := dataset.AsFloat(row["avg_quality_score"])
		fmt.Fprintf(b, "| %s | %.2f | %s |\n",
			dataset.AsString(row["employee_id"]), score, standardize.ClassifyQuality(score))
	}
	b.WriteString("\n")
}

func writeRejections(b *strings.Builder, unified *dataset.Table) {
	rejections := metrics.RejectionByEmployee(unified)

	b.WriteString("## Rejected Deliverables per Employee\n\n")
	b.WriteString("| Employee | Rejected | Rejection Rate |\n|---|---|---|\n")
	for _, row := range rejections.Rows {
		fmt.Fprintf(b, "| %s | %.0f | %.2f%% |\n",
			dataset.AsString(row["employee_id"]),
			dataset.AsFloat(row["rejected_deliverables"]),
			dataset.AsFloat(row["rejection_rate"]))
	}
	b.WriteString("\n")
}

func writeDeliverablesPerHour(b *strings.Builder, unified *dataset.Table) {
	rates := metrics.DeliverablesPerHour(unified)

	b.WriteString("## Deliverables per Hour Worked\n\n")
	b.WriteString("| Employee | Hours | Deliverables | Per Hour |\n|---|---|---|---|\n")
	for _, row := range rates.Rows {
		fmt.Fprintf(b, "| %s | %.2f | %.0f | %.2f |\n",
			dataset.AsString(row["employee_id"]),
			dataset.AsFloat(row["total_hours"]),
			dataset.AsFloat(row["total_deliverables"]),
			dataset.AsFloat(row["deliverables_per_hour"]))
	}
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder) {
	b.WriteString("## Recommendations\n\n")
	b.WriteString("- Review employees whose rejection rate exceeds their team average.\n")
	b.WriteString("- Compare logged hours against assignment plans before the next sprint.\n")
	b.WriteString("- Re-evaluate activities that concentrate most of a project's hours.\n")
}
