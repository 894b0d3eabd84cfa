// Package render prints thread lists for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"newpunch-journalist/internal/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// maxHeadlineWidth bounds the headline column in table output.
const maxHeadlineWidth = 72

type row struct {
	Rank         int    `json:"rank" yaml:"rank"`
	Headline     string `json:"headline" yaml:"headline"`
	Link         string `json:"link" yaml:"link"`
	Created      string `json:"created" yaml:"created"`
	LastPostTime string `json:"lastPostTime" yaml:"lastPostTime"`
	Replies      int    `json:"replies" yaml:"replies"`
	Views        int    `json:"views" yaml:"views"`
	Subscribers  int    `json:"subscribers" yaml:"subscribers"`
}

func rows(recs []model.ThreadRecord) []row {
	out := make([]row, 0, len(recs))
	for i, r := range recs {
		out = append(out, row{
			Rank:         i + 1,
			Headline:     r.Headline,
			Link:         r.Link,
			Created:      r.Created.UTC().Format(time.RFC3339),
			LastPostTime: r.LastPostTime.UTC().Format(time.RFC3339),
			Replies:      r.Replies,
			Views:        r.Views,
			Subscribers:  r.Subscribers,
		})
	}
	return out
}

// Threads writes recs to w in the given format.
func Threads(w io.Writer, format string, recs []model.ThreadRecord) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTable:
		writeTable(w, recs)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows(recs))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows(recs))
	default:
		return fmt.Errorf("render: unknown format %q (want table, json or yaml)", format)
	}
}

func writeTable(w io.Writer, recs []model.ThreadRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Headline", "Last post", "Created", "Replies", "Views", "Subs"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: maxHeadlineWidth},
	})
	for _, r := range rows(recs) {
		t.AppendRow(table.Row{r.Rank, r.Headline, r.LastPostTime, r.Created, r.Replies, r.Views, r.Subscribers})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d threads", len(recs))})
	t.Render()
}

// TableStat describes one category table in Redis.
type TableStat struct {
	Category string
	Table    string
	Key      string
	Records  int64
}

// Tables writes one row per category table.
func Tables(w io.Writer, stats []TableStat) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Table", "Key", "Records"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.Category, s.Table, s.Key, s.Records})
	}
	t.Render()
}
