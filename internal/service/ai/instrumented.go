package ai

import (
	"context"
	"time"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/metrics"
)

type instrumentedProvider struct {
	Provider
	model string
}

// Instrument wraps p so every Complete call is logged and recorded in the
// model call metrics.
func Instrument(p Provider, model string) Provider {
	return &instrumentedProvider{Provider: p, model: model}
}

func (p *instrumentedProvider) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	start := time.Now()
	reply, err := p.Provider.Complete(ctx, messages, opts)
	elapsed := time.Since(start)

	name := p.Provider.Name()
	metrics.ModelCallDuration.WithLabelValues(name, opts.Task).Observe(elapsed.Seconds())
	if err != nil {
		metrics.ModelCalls.WithLabelValues(name, opts.Task, "error").Inc()
		logger.Warn("ai completion failed", "module", "ai", "action", "fetch", "resource", "ai", "result", "failed", "provider", name, "model", p.model, "task", opts.Task, "duration_ms", elapsed.Milliseconds(), "error", err)
		return "", err
	}

	metrics.ModelCalls.WithLabelValues(name, opts.Task, "ok").Inc()
	logger.Debug("ai completion done", "module", "ai", "action", "fetch", "resource", "ai", "result", "ok", "provider", name, "model", p.model, "task", opts.Task, "duration_ms", elapsed.Milliseconds(), "reply_len", len(reply))
	return reply, nil
}
