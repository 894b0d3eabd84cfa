// Package headlines answers ranked top-N queries over a category's current
// table snapshot.
package headlines

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"newpunch-journalist/internal/model"
)

// DefaultCount is used when a query carries no positive count.
const DefaultCount = 3

// Query is the JSON invocation payload.
type Query struct {
	Type    string `json:"type"`
	Count   int    `json:"count"`
	SortKey string `json:"sortKey"`
}

// Scanner reads a full table snapshot.
type Scanner interface {
	ScanAll(ctx context.Context, table string) ([]model.ThreadRecord, error)
}

// Service ranks table snapshots.
type Service struct {
	store  Scanner
	tables map[model.Category]string
}

// NewService creates a query service over the given category tables.
func NewService(store Scanner, tables map[model.Category]string) *Service {
	return &Service{store: store, tables: tables}
}

// Top returns at most q.Count records of the requested category ordered
// descending by the sort key. Unknown categories read the sensationalist
// table; ties keep scan order.
func (s *Service) Top(ctx context.Context, q Query) ([]model.ThreadRecord, error) {
	cat := model.ParseCategory(q.Type)
	key := model.ParseSortKey(q.SortKey)
	count := q.Count
	if count <= 0 {
		count = DefaultCount
	}

	table, ok := s.tables[cat]
	if !ok {
		return nil, fmt.Errorf("headlines: no table configured for %s", cat)
	}
	recs, err := s.store.ScanAll(ctx, table)
	if err != nil {
		return nil, err
	}
	slog.Debug("headlines: ranking", "category", cat, "table", table, "sortKey", key, "scanned", len(recs))

	sort.SliceStable(recs, func(i, j int) bool {
		return key.Greater(recs[i], recs[j])
	})
	if len(recs) > count {
		recs = recs[:count]
	}
	return recs, nil
}

// Invoke decodes a JSON Query, runs it and encodes the ranked records as a
// JSON array. An empty payload queries with defaults.
func (s *Service) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	var q Query
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &q); err != nil {
			return nil, fmt.Errorf("headlines: decode query: %w", err)
		}
	}
	recs, err := s.Answer(ctx, q)
	if err != nil {
		return nil, err
	}
	return json.Marshal(recs)
}

// Answer runs q like Top and logs the query and the size of the result.
// Every external entry point goes through it.
func (s *Service) Answer(ctx context.Context, q Query) ([]model.ThreadRecord, error) {
	slog.Info("headlines: incoming query", "type", q.Type, "count", q.Count, "sortKey", q.SortKey)
	recs, err := s.Top(ctx, q)
	if err != nil {
		return nil, err
	}
	slog.Info("headlines: returning records", "count", len(recs))
	return recs, nil
}
