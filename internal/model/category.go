package model

import "strings"

// Category is one of the tracked forum sections.
type Category string

const (
	Sensationalist Category = "sensationalist"
	Polidicks      Category = "polidicks"
)

// Categories lists every category in refresh order.
var Categories = []Category{Sensationalist, Polidicks}

// ParseCategory maps a request value to a category. Empty or unknown values
// resolve to Sensationalist.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Polidicks:
		return Polidicks
	default:
		return Sensationalist
	}
}

// SortKey names the ThreadRecord field a ranked query orders by.
type SortKey string

const (
	SortByCreated      SortKey = "created"
	SortBySubscribers  SortKey = "subscribers"
	SortByViews        SortKey = "views"
	SortByReplies      SortKey = "replies"
	SortByLastPostTime SortKey = "lastPostTime"
)

// ParseSortKey returns the matching sort key, or SortByLastPostTime when s is
// absent or unknown.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortByCreated, SortBySubscribers, SortByViews, SortByReplies:
		return k
	default:
		return SortByLastPostTime
	}
}

// Greater reports whether a ranks strictly above b for the given key.
func (k SortKey) Greater(a, b ThreadRecord) bool {
	switch k {
	case SortByCreated:
		return a.Created.After(b.Created)
	case SortBySubscribers:
		return a.Subscribers > b.Subscribers
	case SortByViews:
		return a.Views > b.Views
	case SortByReplies:
		return a.Replies > b.Replies
	default:
		return a.LastPostTime.After(b.LastPostTime)
	}
}
