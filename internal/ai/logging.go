package ai

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type contextKey string

const purposeKey contextKey = "ai_purpose"

// WithPurpose attaches a purpose label ("snap_solve", "snap_followups",
// "tutor") to the context for request logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider records every model call with latency and token counts.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
	}
	if resp != nil {
		fields = append(fields,
			zap.Int("tokens_in", resp.Usage.InputTokens),
			zap.Int("tokens_out", resp.Usage.OutputTokens))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		l.log.Warn("model call failed", fields...)
		return nil, err
	}
	l.log.Debug("model call", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
