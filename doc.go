// Package notifystream is a real-time notification client for the carbon
// credit marketplace.
//
// A Client keeps a live subscription to the marketplace notification stream
// and exposes the surface a UI needs:
//
//	c := notifystream.New(cfg,
//	    notifystream.WithManagerOptions(notifier.WithResolver(resolver)),
//	)
//	c.Start(ctx)
//	defer c.Close()
//
//	for _, n := range c.Notifications() {
//	    fmt.Println(n.Message, n.IsUnread)
//	}
//	c.MarkAllAsRead()
//
// The client never returns runtime errors. Transport failures are retried in
// the background and logged; a missing credential only makes CanConnect
// report false.
//
// The notification history survives reconnects and Restart, and is cleared by
// Logout. Subpackages hold the parts: credential (token lookup), payload
// (normalization), inbox (bounded history), sse (transport) and notifier
// (connection lifecycle).
package notifystream
