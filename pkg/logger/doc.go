// Package logger is a thin factory around log/slog with functional options
// and a handful of attribute constructors that keep attribute names
// consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "signup-api"),
//		logger.WithComponent("validator"),
//	)
//	log.Debug("rule failed", logger.RuleKey("email"), logger.RuleType("email"))
//
// Pass the result to validator.WithLogger, i18n.WithLogger or
// guard.WithLogger. All of them default to a discard logger, see Discard.
//
// Request-scoped values reach records logged with a context through
// WithContextExtractors:
//
//	log := logger.New(logger.WithContextExtractors(i18n.LoggerExtractor()))
//	log.WarnContext(r.Context(), "request rejected") // carries "lang"
//
// WithFormat panics on unknown formats so that a misconfigured service fails
// at startup rather than logging nothing.
package logger
