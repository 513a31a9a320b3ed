package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
	"github.com/legintel/ai-legislation-tracker/internal/core/ports"
)

// RunRecorder receives per-run stage counts; satisfied by the pipeline
// metrics without the core depending on prometheus.
type RunRecorder interface {
	ObserveCounts(fetched, unique, relevant int)
}

// PipelineDeps wires the driven adapters into the run orchestration.
type PipelineDeps struct {
	Source    ports.BillSource
	Sinks     []ports.SnapshotSink
	Clock     ports.Clock
	Logger    *slog.Logger
	Recorder  RunRecorder
	Terms     []string
	Filter    RelevanceFilter
	YearFloor int
}

// Pipeline executes one full fetch, dedupe, filter, classify, aggregate,
// write cycle. Stages run strictly in sequence; no stage reads downstream
// output.
type Pipeline struct {
	source     ports.BillSource
	sinks      []ports.SnapshotSink
	classifier Classifier
	logger     *slog.Logger
	recorder   RunRecorder
	terms      []string
	filter     RelevanceFilter
	yearFloor  int
}

func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:     deps.Source,
		sinks:      deps.Sinks,
		classifier: NewClassifier(deps.Clock),
		logger:     logger,
		recorder:   deps.Recorder,
		terms:      deps.Terms,
		filter:     deps.Filter,
		yearFloor:  deps.YearFloor,
	}
}

// Run resolves every search term, processes the accumulated records, and
// writes the snapshot. A term that cannot be fetched is logged and skipped;
// an empty result set is reported and still produces headers-only output.
func (p *Pipeline) Run(ctx context.Context) (domain.Snapshot, error) {
	var raw []domain.Bill
	for _, term := range p.terms {
		if err := ctx.Err(); err != nil {
			return domain.Snapshot{}, err
		}

		bills, err := p.source.Search(ctx, term)
		if err != nil {
			p.logger.Warn("term abandoned", "term", term, "error", err)
			continue
		}
		p.logger.Info("term fetched", "term", term, "bills", len(bills))
		raw = append(raw, bills...)
	}

	unique := Deduplicate(raw)

	processed := make([]domain.ProcessedBill, 0, len(unique))
	for _, bill := range unique {
		if !p.filter.IsRelevant(bill.Title, bill.Abstract) {
			continue
		}
		processed = append(processed, p.classifier.Process(bill))
	}

	p.logger.Info("pipeline counts",
		"fetched", len(raw),
		"unique", len(unique),
		"relevant", len(processed),
	)
	if p.recorder != nil {
		p.recorder.ObserveCounts(len(raw), len(unique), len(processed))
	}
	if len(raw) == 0 {
		p.logger.Info("no bills fetched for any term")
	} else if len(processed) == 0 {
		p.logger.Info("no bills survived relevance filtering")
	}

	snap := Aggregate(processed, p.yearFloor)

	for _, sink := range p.sinks {
		if err := sink.WriteSnapshot(ctx, snap); err != nil {
			return snap, fmt.Errorf("write snapshot: %w", err)
		}
	}
	return snap, nil
}
