package llm

import (
	"context"
	"time"

	"github.com/jfuginay/courseforge-ai/internal/logger"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

// LoggingProvider is a decorator that logs every generation call and
// appends it to the generation event log.
type LoggingProvider struct {
	inner  Provider
	log    *logger.Logger
	events store.EventRepo
}

// WithLogging wraps a Provider with structured logging and event
// recording. events may be nil when no store is attached.
func WithLogging(p Provider, log *logger.Logger, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, log: log, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start)

	data := store.GenerationEvent{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if err != nil {
		l.log.Error("generation request failed",
			"purpose", purpose,
			"model", data.Model,
			"latency_ms", data.LatencyMs,
			"error", err,
		)
	} else {
		l.log.Info("generation request completed",
			"purpose", purpose,
			"model", data.Model,
			"latency_ms", data.LatencyMs,
			"input_tokens", data.InputTokens,
			"output_tokens", data.OutputTokens,
		)
	}

	// Record the event but never fail the request over logging.
	if l.events != nil {
		if logErr := l.events.AppendGeneration(ctx, data); logErr != nil {
			l.log.Warn("failed to record generation event", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
