// Package redis connects to the Redis server that backs the persistent
// credential tier.
//
// Connect retries the initial ping according to Config, and Healthcheck
// adapts the client to the readiness probes used by the HTTP bridge:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	storage := credential.NewRedisStorage(client, cfg.KeyPrefix)
//	ready := redis.Healthcheck(client)
//
// Errors are sentinel values joined with the driver error via errors.Join, so
// errors.Is works against both.
package redis
