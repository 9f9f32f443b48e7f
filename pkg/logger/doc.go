// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes taken from context.Context.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered
// ContextExtractor on each log call:
//
//	log := logger.New(
//		logger.WithConfig(cfg),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "email validated",
//		logger.Email(addr),
//		logger.Reason(outcome.Reason),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty Attr for nil errors, so they can be passed unconditionally.
// Email masks the local part so addresses never reach the logs in full.
package logger
