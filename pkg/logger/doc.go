// Package logger builds *slog.Logger values with per-environment defaults
// and attributes pulled from the request context.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "eapd-api"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "login", logger.UserID(id), logger.Event("LOGIN_SUCCESS"))
//
// NewFromConfig reads APP_ENV, LOG_LEVEL and LOG_FORMAT through Config.
// Attribute helpers return an empty Attr for empty input, so callers can
// pass them unconditionally.
package logger
