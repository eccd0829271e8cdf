package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/zap"

	"github.com/gmsoft-inc/monitor-engine/pkg/adapters/directory"
	"github.com/gmsoft-inc/monitor-engine/pkg/apperrors"
	"github.com/gmsoft-inc/monitor-engine/pkg/config"
	"github.com/gmsoft-inc/monitor-engine/pkg/database"
	"github.com/gmsoft-inc/monitor-engine/pkg/export"
	"github.com/gmsoft-inc/monitor-engine/pkg/metrics"
	"github.com/gmsoft-inc/monitor-engine/pkg/repositories"
	"github.com/gmsoft-inc/monitor-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(context.Background(), cfg, logger); err != nil {
		if errors.Is(err, apperrors.ErrNoSourceData) {
			logger.Warn("No reports generated: a primary source is empty", zap.Error(err))
			return
		}
		logger.Fatal("Pipeline run failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting monitor-engine",
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env),
		zap.String("database", cfg.Database.Database),
		zap.String("directory", cfg.Directory.Database))

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(&cfg.Database, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	dir, err := directory.NewAdapter(&cfg.Directory, logger)
	if err != nil {
		return err
	}
	defer dir.Close() //nolint:errcheck

	unifier := services.NewUnifiedDatasetService(
		repositories.NewTimeRecordReader(db),
		repositories.NewActivityReader(db),
		repositories.NewDeliverableReader(db),
		dir,
		logger,
	)
	unified, err := unifier.Build(ctx)
	if err != nil {
		return err
	}

	docWriter := export.NewKPIDocumentWriter(cfg.Export.DocumentsDir, logger)
	if _, err := docWriter.Write(unified); err != nil {
		return err
	}

	engine := metrics.NewEngine(db, logger)
	if err := engine.RefreshDashboardView(ctx); err != nil {
		// The view is a convenience for ad-hoc queries; metric
		// collection and export do not depend on it.
		logger.Warn("Dashboard view refresh failed, continuing with metric collection",
			zap.Error(err))
	}

	results := engine.Collect(ctx)

	exporter := export.NewCSVExporter(cfg.Export.MetricsDir, logger)
	if err := exporter.Export(results); err != nil {
		return err
	}

	writer := repositories.NewProductivityMetricWriter(db)
	if err := writer.SaveSnapshot(ctx, metrics.Snapshot(results)); err != nil {
		return err
	}

	logger.Info("Run complete",
		zap.Int("unified_rows", unified.Len()),
		zap.String("metrics_dir", cfg.Export.MetricsDir),
		zap.String("documents_dir", cfg.Export.DocumentsDir))
	return nil
}
