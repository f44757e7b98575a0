// Package logger builds *slog.Logger values for dscv services.
//
// New takes functional options for level, format, output, static attributes and
// ContextExtractor callbacks. Extractors run on every record written with a
// context, which is how request and session identifiers end up on log lines
// without being threaded through every call:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "dscv"),
//	    logger.WithContextExtractors(requestid.LogExtractor, session.LogExtractor),
//	)
//	log.InfoContext(ctx, "user updated", logger.UserID(id))
//
// The attribute helpers in attr.go keep key names consistent. Error and UserID
// return an empty Attr for zero input, so they can be passed without a check.
package logger
