package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"sensationalist": Sensationalist,
		"polidicks":      Polidicks,
		"PoliDicks":      Polidicks,
		" polidicks ":    Polidicks,
		"":               Sensationalist,
		"gaming":         Sensationalist,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseCategory(in), "input %q", in)
	}
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByViews, ParseSortKey("views"))
	assert.Equal(t, SortByCreated, ParseSortKey("created"))
	assert.Equal(t, SortByLastPostTime, ParseSortKey(""))
	assert.Equal(t, SortByLastPostTime, ParseSortKey("headline"))
}

func TestSortKeyGreater(t *testing.T) {
	now := time.Now()
	a := ThreadRecord{Replies: 5, Views: 10, Subscribers: 1, Created: now, LastPostTime: now.Add(-time.Hour)}
	b := ThreadRecord{Replies: 2, Views: 20, Subscribers: 1, Created: now.Add(-time.Minute), LastPostTime: now}

	assert.True(t, SortByReplies.Greater(a, b))
	assert.False(t, SortByViews.Greater(a, b))
	assert.True(t, SortByCreated.Greater(a, b))
	assert.False(t, SortBySubscribers.Greater(a, b))
	assert.False(t, SortBySubscribers.Greater(b, a))
	assert.True(t, SortByLastPostTime.Greater(b, a))
}
