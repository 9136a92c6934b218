// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors with consistent keys for validation events.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// handler in a LogHandlerDecorator, which adds attributes pulled from the
// context on every *Context call:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "strvalid"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "check finished",
//	    logger.Check("credit_card"),
//	    logger.Card(number),
//	    logger.Valid(info.Valid),
//	    logger.Reason(info.Reason),
//	)
//
// Card masks the number before it is logged. Error, Errors, Reason and RunID
// return an empty attribute for nil input, so they can be passed without a
// nil check.
package logger
