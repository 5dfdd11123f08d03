// Package cache keeps the name-ordered artist list in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"showbook/internal/models"
)

// ArtistListKey holds the JSON-encoded artist list.
const ArtistListKey = "showbook:artists:list"

type ArtistCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewArtistCache(client *redis.Client, ttl time.Duration) *ArtistCache {
	return &ArtistCache{client: client, ttl: ttl}
}

func (c *ArtistCache) Get(ctx context.Context) ([]models.ArtistSummary, bool, error) {
	raw, err := c.client.Get(ctx, ArtistListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get artist list: %w", err)
	}

	var artists []models.ArtistSummary
	if err := json.Unmarshal(raw, &artists); err != nil {
		// A corrupt entry is a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return artists, true, nil
}

func (c *ArtistCache) Set(ctx context.Context, artists []models.ArtistSummary) error {
	raw, err := json.Marshal(artists)
	if err != nil {
		return fmt.Errorf("encode artist list: %w", err)
	}
	if err := c.client.Set(ctx, ArtistListKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set artist list: %w", err)
	}
	return nil
}

func (c *ArtistCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, ArtistListKey).Err(); err != nil {
		return fmt.Errorf("invalidate artist list: %w", err)
	}
	return nil
}
