// Package fcntcache holds the last-accepted frame counter per DevAddr in
// Redis, giving a network-server deployment of this library the replay
// check spec §1 names as an external collaborator's job (session-state
// storage) rather than something the codec itself tracks.
package fcntcache

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/loraframe/lorawan"
)

// Cache tracks the highest accepted frame counter per DevAddr.
type Cache struct {
	redisClient redis.UniversalClient
}

// New returns a Cache backed by redisClient.
func New(redisClient redis.UniversalClient) *Cache {
	return &Cache{redisClient: redisClient}
}

func key(addr lorawan.DevAddr) string {
	return "lorawan/fcnt/" + addr.String()
}

// Accept reports whether fcnt is acceptable for addr (strictly greater
// than the last accepted value, or there is no prior value), and if so
// records it as the new high-water mark.
func (c *Cache) Accept(ctx context.Context, addr lorawan.DevAddr, fcnt uint32) (bool, error) {
	last, err := c.redisClient.Get(ctx, key(addr)).Result()
	if err != nil && err != redis.Nil {
		return false, errors.Wrap(err, "get error")
	}

	if err == nil {
		lastFCnt, parseErr := strconv.ParseUint(last, 10, 32)
		if parseErr != nil {
			return false, errors.Wrap(parseErr, "parse cached fcnt error")
		}
		if uint32(lastFCnt) >= fcnt {
			return false, nil
		}
	}

	if err := c.redisClient.Set(ctx, key(addr), fcnt, 0).Err(); err != nil {
		return false, errors.Wrap(err, "set error")
	}
	return true, nil
}
