// Package logger builds *slog.Logger instances for the notification client
// and its daemon, and provides attribute helpers so every component uses the
// same key names.
//
// New assembles a text or JSON handler, applies static attributes and wraps
// the result in a decorator that pulls extra attributes out of the
// context.Context passed to the *Context logging methods.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "notifyd"),
//	    logger.WithContextValue("session_id", sessionKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "notification stream failed",
//	    logger.Component("notifier"),
//	    logger.Attempt(3),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
