package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"newpunch-journalist/internal/fanout"
	"newpunch-journalist/internal/model"

	"github.com/redis/go-redis/v9"
)

// DefaultBatchSize caps the items sent in one delete or write request.
const DefaultBatchSize = 25

// StoreError reports a failed table operation.
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// RedisStore keeps one table per category as a Redis hash keyed by headline.
// Writing a headline that already exists replaces the earlier record.
type RedisStore struct {
	rdb       *redis.Client
	prefix    string
	batchSize int
}

func NewRedisStore(rdb *redis.Client, prefix string, batchSize int) *RedisStore {
	if prefix == "" {
		prefix = "newpunch"
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &RedisStore{rdb: rdb, prefix: prefix, batchSize: batchSize}
}

func (s *RedisStore) tableKey(table string) string {
	return fmt.Sprintf("%s:table:%s", s.prefix, table)
}

// Ping checks that the backing Redis server answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	return nil
}

// Count returns the number of records in the table.
func (s *RedisStore) Count(ctx context.Context, table string) (int64, error) {
	n, err := s.rdb.HLen(ctx, s.tableKey(table)).Result()
	if err != nil {
		return 0, &StoreError{Op: "count", Table: table, Err: err}
	}
	return n, nil
}

// Key returns the Redis key holding table.
func (s *RedisStore) Key(table string) string { return s.tableKey(table) }

// ScanAll returns every record in the table, in no particular order.
func (s *RedisStore) ScanAll(ctx context.Context, table string) ([]model.ThreadRecord, error) {
	raw, err := s.rdb.HGetAll(ctx, s.tableKey(table)).Result()
	if err != nil {
		return nil, &StoreError{Op: "scan", Table: table, Err: err}
	}
	out := make([]model.ThreadRecord, 0, len(raw))
	for headline, v := range raw {
		var rec model.ThreadRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, &StoreError{Op: "scan", Table: table, Err: fmt.Errorf("decode %q: %w", headline, err)}
		}
		out = append(out, rec)
	}
	return out, nil
}

// ClearAll deletes every record. Deletes are sent in concurrent batches of
// at most batchSize keys and all of them must succeed.
func (s *RedisStore) ClearAll(ctx context.Context, table string) error {
	key := s.tableKey(table)
	headlines, err := s.rdb.HKeys(ctx, key).Result()
	if err != nil {
		return &StoreError{Op: "clear", Table: table, Err: err}
	}
	batches := Chunk(headlines, s.batchSize)
	err = fanout.Each(ctx, len(batches), func(ctx context.Context, i int) error {
		return s.rdb.HDel(ctx, key, batches[i]...).Err()
	})
	if err != nil {
		return &StoreError{Op: "clear", Table: table, Err: err}
	}
	return nil
}

// PutAll writes records in concurrent batches of at most batchSize items.
// Batches complete in no particular order.
func (s *RedisStore) PutAll(ctx context.Context, table string, records []model.ThreadRecord) error {
	key := s.tableKey(table)
	batches := Chunk(records, s.batchSize)
	err := fanout.Each(ctx, len(batches), func(ctx context.Context, i int) error {
		values := make([]any, 0, 2*len(batches[i]))
		for _, rec := range batches[i] {
			b, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encode %q: %w", rec.Headline, err)
			}
			values = append(values, rec.Headline, b)
		}
		return s.rdb.HSet(ctx, key, values...).Err()
	})
	if err != nil {
		return &StoreError{Op: "put", Table: table, Err: err}
	}
	return nil
}

// Chunk splits items into consecutive slices of at most size elements,
// keeping the original order.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
