package headlines

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"newpunch-journalist/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tables map[string][]model.ThreadRecord
	err    error
}

func (f *fakeStore) ScanAll(_ context.Context, table string) ([]model.ThreadRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	// hand out a copy so sorting never mutates the fixture
	return append([]model.ThreadRecord(nil), f.tables[table]...), nil
}

var t0 = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

func fixture() *fakeStore {
	return &fakeStore{tables: map[string][]model.ThreadRecord{
		"sh": {
			{Headline: "a", Replies: 5, Views: 100, Subscribers: 2, Created: t0.Add(1 * time.Hour), LastPostTime: t0.Add(30 * time.Minute)},
			{Headline: "b", Replies: 9, Views: 50, Subscribers: 8, Created: t0.Add(3 * time.Hour), LastPostTime: t0.Add(10 * time.Minute)},
			{Headline: "c", Replies: 1, Views: 900, Subscribers: 0, Created: t0.Add(2 * time.Hour), LastPostTime: t0.Add(50 * time.Minute)},
			{Headline: "d", Replies: 7, Views: 10, Subscribers: 4, Created: t0, LastPostTime: t0.Add(40 * time.Minute)},
		},
		"pd": {
			{Headline: "policy", Replies: 3, LastPostTime: t0},
		},
	}}
}

func newTestService(store Scanner) *Service {
	return NewService(store, map[model.Category]string{
		model.Sensationalist: "sh",
		model.Polidicks:      "pd",
	})
}

func headlinesOf(recs []model.ThreadRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Headline)
	}
	return out
}

func TestTopSortsDescendingByKey(t *testing.T) {
	svc := newTestService(fixture())
	ctx := context.Background()
	cases := []struct {
		sortKey string
		want    []string
	}{
		{"lastPostTime", []string{"c", "d", "a"}},
		{"", []string{"c", "d", "a"}},
		{"bogus", []string{"c", "d", "a"}},
		{"replies", []string{"b", "d", "a"}},
		{"views", []string{"c", "a", "b"}},
		{"subscribers", []string{"b", "d", "a"}},
		{"created", []string{"b", "c", "a"}},
	}
	for _, tc := range cases {
		got, err := svc.Top(ctx, Query{Type: "sensationalist", Count: 3, SortKey: tc.sortKey})
		require.NoError(t, err)
		assert.Equal(t, tc.want, headlinesOf(got), "sortKey %q", tc.sortKey)
	}
}

func TestTopLengthIsMinOfCountAndTable(t *testing.T) {
	svc := newTestService(fixture())
	ctx := context.Background()

	got, err := svc.Top(ctx, Query{Type: "sensationalist", Count: 10})
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = svc.Top(ctx, Query{Type: "sensationalist", Count: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Top(ctx, Query{Type: "sensationalist"})
	require.NoError(t, err)
	assert.Len(t, got, DefaultCount)
}

func TestTopCategoryFallback(t *testing.T) {
	svc := newTestService(fixture())
	ctx := context.Background()

	got, err := svc.Top(ctx, Query{Type: "polidicks", Count: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"policy"}, headlinesOf(got))

	for _, typ := range []string{"", "gaming", "SENSATIONALIST"} {
		got, err := svc.Top(ctx, Query{Type: typ, Count: 10})
		require.NoError(t, err)
		assert.Len(t, got, 4, "type %q", typ)
	}
}

func TestTopKeepsScanOrderOnTies(t *testing.T) {
	store := &fakeStore{tables: map[string][]model.ThreadRecord{
		"sh": {{Headline: "x", Views: 1}, {Headline: "y", Views: 1}, {Headline: "z", Views: 2}},
	}}
	got, err := newTestService(store).Top(context.Background(), Query{Count: 3, SortKey: "views"})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "x", "y"}, headlinesOf(got))
}

func TestTopEmptyTable(t *testing.T) {
	store := &fakeStore{tables: map[string][]model.ThreadRecord{}}
	got, err := newTestService(store).Top(context.Background(), Query{Count: 3})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopPropagatesStoreError(t *testing.T) {
	boom := errors.New("scan failed")
	_, err := newTestService(&fakeStore{err: boom}).Top(context.Background(), Query{})
	assert.ErrorIs(t, err, boom)
}

func TestInvoke(t *testing.T) {
	svc := newTestService(fixture())
	out, err := svc.Invoke(context.Background(), []byte(`{"type":"sensationalist","count":2,"sortKey":"views"}`))
	require.NoError(t, err)

	var got []model.ThreadRecord
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, []string{"c", "a"}, headlinesOf(got))

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, float64(900), raw[0]["views"])
	assert.Contains(t, raw[0], "lastPostTime")
}

func TestInvokeDefaults(t *testing.T) {
	out, err := newTestService(fixture()).Invoke(context.Background(), nil)
	require.NoError(t, err)
	var got []model.ThreadRecord
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, []string{"c", "d", "a"}, headlinesOf(got))
}

func TestInvokeRejectsMalformedPayload(t *testing.T) {
	_, err := newTestService(fixture()).Invoke(context.Background(), []byte(`{"count":`))
	assert.Error(t, err)
}
