package app

import (
	"context"

	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"

	"github.com/quantmind-br/create-example/internal/domain"
)

// Metric keys of the pipeline
const (
	PipelineRunsTotal     = metricz.Key("pipeline.runs.total")
	PipelineAbortedTotal  = metricz.Key("pipeline.aborted.total")
	PipelineDegradedTotal = metricz.Key("pipeline.degraded.total")
	DownloadAttemptsTotal = metricz.Key("pipeline.download.attempts.total")
	PipelineDurationMs    = metricz.Key("pipeline.duration.ms")
)

// Span keys and tags of the pipeline
const (
	PipelineRunSpan = tracez.Key("pipeline.run")
	StageSpan       = tracez.Key("pipeline.stage")

	TagExample = tracez.Tag("pipeline.example")
	TagOutcome = tracez.Tag("pipeline.outcome")
	TagStage   = tracez.Tag("stage.name")
	TagStatus  = tracez.Tag("stage.status")
)

// Run outcomes recorded on the run span
const (
	OutcomeSuccess  = "success"
	OutcomeDegraded = "degraded"
	OutcomeAborted  = "aborted"
)

func newMetrics() *metricz.Registry {
	metrics := metricz.New()
	metrics.Counter(PipelineRunsTotal)
	metrics.Counter(PipelineAbortedTotal)
	metrics.Counter(PipelineDegradedTotal)
	metrics.Counter(DownloadAttemptsTotal)
	metrics.Gauge(PipelineDurationMs)
	return metrics
}

// startStage opens a stage span. The returned function records the stage
// status token and finishes the span.
func (o *Orchestrator) startStage(ctx context.Context, stage domain.Stage) (context.Context, func(status string)) {
	ctx, span := o.tracer.StartSpan(ctx, StageSpan)
	span.SetTag(TagStage, string(stage))
	return ctx, func(status string) {
		span.SetTag(TagStatus, status)
		span.Finish()
	}
}

// Metrics returns the pipeline counters
func (o *Orchestrator) Metrics() *metricz.Registry {
	return o.metrics
}

// Tracer returns the tracer receiving run and stage spans
func (o *Orchestrator) Tracer() *tracez.Tracer {
	return o.tracer
}

// Close releases the tracer
func (o *Orchestrator) Close() {
	o.tracer.Close()
}
