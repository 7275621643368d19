// Package credential finds the bearer token used to open the notification
// stream.
//
// A Resolver checks, in order:
//
//  1. an explicit TokenSource handed to Resolve;
//  2. a list of flat keys (DefaultKeys) in the session tier, then the same
//     keys in the persistent tier;
//  3. a structured auth record (key "auth") in the session tier, then the
//     persistent tier, reading its embedded token field.
//
// Values such as "", "null" and "undefined" are placeholders and count as
// absent. A Resolver only reads; it never writes tokens back.
//
// Finding nothing is not an error: Resolve reports ok == false and the caller
// treats the feature as disabled.
//
// # Storage
//
// Tiers are backed by any Storage. The package ships MemoryStorage,
// EnvStorage (process environment), FileStorage (.env, YAML or JSON files)
// and RedisStorage.
//
//	r := credential.NewResolver(
//	    credential.WithSessionStorage(credential.NewEnvStorage("NOTIFY_")),
//	    credential.WithPersistentStorage(credential.NewFileStorage("~/.config/market/credentials.yaml")),
//	)
//	token, ok := r.Resolve(ctx, nil)
package credential
