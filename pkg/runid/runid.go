// Package runid tags one CLI invocation with an identifier that is carried in
// the context and added to every log record written for it.
package runid

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/strvalid/pkg/logger"
)

type contextKey struct{}

// New returns a fresh random identifier.
func New() string {
	return uuid.NewString()
}

// WithContext stores id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identifier stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds a run_id attribute to records logged with a context
// that carries an identifier.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RunID(id), true
		}
		return slog.Attr{}, false
	}
}
