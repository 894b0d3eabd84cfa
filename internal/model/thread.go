package model

import "time"

// ThreadRecord is one forum thread snapshot as stored in a category table.
// Headline is the table's primary key.
type ThreadRecord struct {
	Headline     string    `json:"headline"`
	Link         string    `json:"link"`
	Created      time.Time `json:"created"`
	LastPostTime time.Time `json:"lastPostTime"`
	Replies      int       `json:"replies"`
	Views        int       `json:"views"`
	Subscribers  int       `json:"subscribers"`
}
