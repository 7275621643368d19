// Package broadcast fans values out from one producer to many in-process
// subscribers without ever blocking the producer.
//
// MemoryBroadcaster keeps at most one undelivered message per subscriber.
// When a subscriber falls behind, the pending message is replaced by the
// newer one, so a slow reader always catches up to the latest state instead
// of working through a backlog. This suits state snapshots, where only the
// most recent value matters.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[Snapshot]()
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[Snapshot]{Data: snap})
//
//	for msg := range sub.Receive(ctx) {
//		render(msg.Data)
//	}
//
// Subscriptions end when their context is cancelled, when Close is called on
// the subscriber, or when the broadcaster is closed.
package broadcast
