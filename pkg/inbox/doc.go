// Package inbox holds the bounded, newest-first list of received
// notifications together with their read state.
//
// The Store is an in-memory state machine. Every mutation builds a new slice
// and swaps it in whole, so a reader holding a previous List result never
// sees a half-applied change. The unread count is always computed from the
// live list rather than tracked separately.
//
// Invariants kept by Store:
//
//   - entries are ordered newest first
//   - the list never holds more than the configured capacity (DefaultCapacity)
//   - ids are unique; inserting an id that is already present replaces the
//     older entry
//
// # Usage
//
//	store := inbox.NewStore()
//	n := store.Insert(payload.Normalize(raw), "")
//	store.MarkRead(n.ID)
//	fmt.Println(store.UnreadCount())
//
// Subscribe returns a feed of Snapshot values published after each mutation.
package inbox
