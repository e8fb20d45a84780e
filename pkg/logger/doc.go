// Package logger builds the service's *slog.Logger.
//
// New takes functional options selecting the output format (json or text), the
// minimum level and static attributes. Context extractors add request scoped
// values (the request id) from context.Context to every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "chatbridge-web"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "lead received", logger.LeadID(id), logger.Component("leads"))
//
// The attribute helpers in attr.go keep key names consistent across packages.
// Helpers that take an error or an optional value return an empty slog.Attr
// for nil input, which slog drops.
package logger
