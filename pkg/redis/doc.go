// Package redis connects to Redis through go-redis and provides existence
// checkers backed by Redis sets and keys for use with validation.Exists.
//
//	client, err := redis.Connect(ctx, cfg)
//	currencies := redis.NewSetChecker[string](client, cfg.KeyPrefix, "currencies")
//	validation.Property(v, "Currency", getCurrency).Exists(currencies)
package redis
