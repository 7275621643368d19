// Package api exposes a notification client to a local UI over HTTP.
//
// Routes:
//
//	GET    /notifications            history, unread count and connection state as JSON
//	POST   /notifications/read       mark all read
//	POST   /notifications/{id}/read  mark one read
//	DELETE /notifications            clear history
//	GET    /notifications/feed       datastar signal stream, one patch per change
//	GET    /health/live              liveness probe
//	GET    /health/ready             readiness probe, ready while the stream is connected
//
// The feed pushes the signals notifications, unreadCount, canConnect and
// state, so a datastar page can bind them directly.
package api
