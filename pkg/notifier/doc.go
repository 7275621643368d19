// Package notifier owns the lifecycle of one notification stream
// subscription: credential lookup, connect, event dispatch, reconnect and
// teardown.
//
// A Manager composes a credential.Resolver, an sse.Transport and an
// inbox.Store. Start resolves a token and, when one is found, opens the
// stream in the background. Every "notification" event is normalized and
// inserted into the store; "init" events are logged. When the stream fails
// the manager closes it and schedules one reconnect after the configured
// delay (five seconds by default), repeating until Stop.
//
//	store := inbox.NewStore()
//	m := notifier.New(store,
//	    notifier.WithResolver(resolver),
//	    notifier.WithOnNotification(func(n inbox.Notification) { ... }),
//	)
//	m.Start(ctx, notifier.Config{BaseURL: "https://market.example.com"})
//	defer m.Stop()
//
// Start and Stop never fail and are idempotent. A missing credential leaves
// the manager idle with CanConnect reporting false; calling Start again later
// repeats the lookup. Stop is final: a stopped manager cannot be restarted,
// create a new one instead.
//
// Each Start captures a generation number. Timers and stream callbacks check
// it before acting, so a reconnect scheduled before Stop never installs a
// new stream afterwards.
package notifier
