package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AquaPirot/pirotskevesti/utils"
)

// ListCache is an optional read-through cache for full-collection list
// responses. The dashboard refetches whole lists after every mutation, so
// caching the serialized list per collection and dropping it on
// create/delete keeps the hot GETs off the database. A nil *ListCache is
// valid and disables caching.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache connects to Redis and returns a ready cache.
func NewListCache(redisURL string, ttl time.Duration) (*ListCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ListCache{client: client, ttl: ttl}, nil
}

func listKey(collection string) string {
	return fmt.Sprintf("list:%s", collection)
}

// Get loads the cached list for a collection into dest. It returns false on
// a miss or any cache failure; a broken cache must never fail a read.
func (lc *ListCache) Get(ctx context.Context, collection string, dest interface{}) bool {
	if lc == nil {
		return false
	}

	data, err := lc.client.Get(ctx, listKey(collection)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("list cache get failed for %s: %v", collection, err)
		}
		utils.TrackCacheLookup(collection, "miss")
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("list cache decode failed for %s: %v", collection, err)
		utils.TrackCacheLookup(collection, "miss")
		return false
	}

	utils.TrackCacheLookup(collection, "hit")
	return true
}

// Set stores the list for a collection. Failures are logged and swallowed.
func (lc *ListCache) Set(ctx context.Context, collection string, value interface{}) {
	if lc == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("list cache encode failed for %s: %v", collection, err)
		return
	}

	if err := lc.client.Set(ctx, listKey(collection), data, lc.ttl).Err(); err != nil {
		log.Printf("list cache set failed for %s: %v", collection, err)
	}
}

// Invalidate drops the cached list for a collection after a mutation.
func (lc *ListCache) Invalidate(ctx context.Context, collection string) {
	if lc == nil {
		return
	}

	if err := lc.client.Del(ctx, listKey(collection)).Err(); err != nil {
		log.Printf("list cache invalidate failed for %s: %v", collection, err)
	}
}
