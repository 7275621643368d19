// Package payload turns whatever a server pushes as a notification event into
// a stable shape: an optional title, a message that is always present, and
// the decoded object when there was one.
//
// Normalize never fails. Unknown shapes degrade to text through a fixed
// fallback chain:
//
//   - nil or empty input: DefaultMessage
//   - a string holding a JSON object: handled as an object
//   - any other string: used verbatim as the message
//   - an object: title from "title" then "subject"; message from "message",
//     "content", "body", "description", else the object's JSON text as received
//   - anything else: its string form
//
// # Usage
//
//	n := payload.Normalize(`{"title":"Order filled","content":"5 credits sold"}`)
//	// n.Title   -> "Order filled"
//	// n.Message -> "5 credits sold"
package payload
