package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "flow:"

var _ model.FlowStore = (*Redis)(nil)

// Redis is a FlowStore backed by redis keys with native expiry.
// It lets several server instances share pending flows.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a store on top of an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) key(id string) string {
	return redisKeyPrefix + id
}

// Put stores record as JSON with an EX of ttl.
func (r *Redis) Put(ctx context.Context, record model.FlowRecord, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = model.FlowTTL
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode flow record: %w", err)
	}

	if err := r.client.Set(ctx, r.key(record.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store flow record: %w", err)
	}
	return nil
}

// Get returns the record for id without removing it.
func (r *Redis) Get(ctx context.Context, id string) (model.FlowRecord, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	return r.decode(data, err)
}

// Consume atomically reads and deletes the record for id with GETDEL.
func (r *Redis) Consume(ctx context.Context, id string) (model.FlowRecord, error) {
	data, err := r.client.GetDel(ctx, r.key(id)).Bytes()
	return r.decode(data, err)
}

// Delete removes id if present.
func (r *Redis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete flow record: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) decode(data []byte, err error) (model.FlowRecord, error) {
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.FlowRecord{}, model.ErrNotFound
		}
		return model.FlowRecord{}, fmt.Errorf("failed to load flow record: %w", err)
	}

	var record model.FlowRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.FlowRecord{}, fmt.Errorf("failed to decode flow record: %w", err)
	}
	return record, nil
}
