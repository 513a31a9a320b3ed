package bootstrap

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/legintel/ai-legislation-tracker/internal/config"
	"github.com/legintel/ai-legislation-tracker/internal/core/ports"
	"github.com/legintel/ai-legislation-tracker/internal/core/usecase"
	"github.com/legintel/ai-legislation-tracker/internal/infrastructure/openstates"
	"github.com/legintel/ai-legislation-tracker/internal/infrastructure/resilience"
	"github.com/legintel/ai-legislation-tracker/internal/infrastructure/sink/csvfile"
	"github.com/legintel/ai-legislation-tracker/internal/infrastructure/sink/xlsxfile"
	"github.com/legintel/ai-legislation-tracker/internal/observability/logging"
	"github.com/legintel/ai-legislation-tracker/internal/observability/metrics"
)

const serviceName = "legislation-tracker"

type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Metrics  *metrics.PipelineMetrics
	Pipeline *usecase.Pipeline
}

func New(cfg config.Config) *App {
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel).With("run_id", uuid.NewString())
	pipelineMetrics := metrics.NewPipelineMetrics(serviceName)

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	source := openstates.New(openstates.Config{
		BaseURL:           cfg.OpenStatesURL,
		APIKey:            cfg.OpenStatesAPIKey,
		PageSize:          cfg.PageSize,
		MaxPagesPerTerm:   cfg.MaxPagesPerTerm,
		RequestDelay:      cfg.RequestDelay,
		RateLimitCooldown: cfg.RateLimitCooldown,
	}, executor, logger.With("component", "openstates"), pipelineMetrics)

	include := cfg.IncludeKeywords
	if len(include) == 0 {
		include = usecase.DefaultIncludeKeywords()
	}
	exclude := cfg.ExcludeKeywords
	if len(exclude) == 0 {
		exclude = usecase.DefaultExcludeKeywords()
	}

	sinks := []ports.SnapshotSink{csvfile.New(cfg.OutputDir)}
	if cfg.XLSXSnapshot {
		sinks = append(sinks, xlsxfile.New(cfg.OutputDir))
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    source,
		Sinks:     sinks,
		Clock:     ports.SystemClock{},
		Logger:    logger.With("component", "pipeline"),
		Recorder:  pipelineMetrics,
		Terms:     cfg.SearchTerms,
		Filter:    usecase.NewRelevanceFilter(include, exclude),
		YearFloor: cfg.YearFloor,
	})

	return &App{
		Config:   cfg,
		Logger:   logger,
		Metrics:  pipelineMetrics,
		Pipeline: pipeline,
	}
}
