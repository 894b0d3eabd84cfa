package facepunch

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"newpunch-journalist/internal/model"

	"github.com/PuerkitoBio/goquery"
)

var errMissing = errors.New("missing")

// ExtractError reports a thread block that lacks a field or carries one that
// cannot be parsed. Block is the 0-based index among non-sticky blocks.
type ExtractError struct {
	Block int
	Field string
	Err   error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("facepunch: extract block %d: %s: %v", e.Block, e.Field, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Extractor turns listing page markup into thread records.
//
// A block with any missing or malformed field fails the whole page; blocks
// are never skipped.
type Extractor struct {
	base *url.URL
}

// NewExtractor creates an extractor that resolves thread links against host.
func NewExtractor(host string) (*Extractor, error) {
	u, err := url.Parse(strings.TrimRight(host, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("facepunch: parse host %q: %w", host, err)
	}
	return &Extractor{base: u}, nil
}

// Extract parses one page body. Sticky blocks are excluded.
func (e *Extractor) Extract(body []byte) ([]model.ThreadRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("facepunch: parse html: %w", err)
	}
	blocks := doc.Find(".threadblock").Not(".is-sticky")
	out := make([]model.ThreadRecord, 0, blocks.Length())
	var extractErr error
	blocks.EachWithBreak(func(i int, s *goquery.Selection) bool {
		rec, err := e.extractBlock(i, s)
		if err != nil {
			extractErr = err
			return false
		}
		out = append(out, rec)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}
	return out, nil
}

// ExtractPages extracts every page and concatenates the results in page
// order, then in-page order.
func (e *Extractor) ExtractPages(bodies [][]byte) ([]model.ThreadRecord, error) {
	var out []model.ThreadRecord
	for i, body := range bodies {
		recs, err := e.Extract(body)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}

func (e *Extractor) extractBlock(i int, s *goquery.Selection) (model.ThreadRecord, error) {
	var rec model.ThreadRecord
	fail := func(field string, err error) (model.ThreadRecord, error) {
		return model.ThreadRecord{}, &ExtractError{Block: i, Field: field, Err: err}
	}

	href, ok := s.Find(".threadmain .bglink").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return fail("link", errMissing)
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return fail("link", err)
	}
	rec.Link = e.base.ResolveReference(ref).String()

	rec.Headline = strings.TrimSpace(s.Find(".threadtitle").First().Text())
	if rec.Headline == "" {
		return fail("headline", errMissing)
	}

	age, ok := s.Find(".threadage").First().Attr("title")
	if !ok {
		return fail("created", errMissing)
	}
	if rec.Created, err = parseDate(age); err != nil {
		return fail("created", err)
	}

	counts, ok := s.Find(".postcount").First().Attr("title")
	if !ok {
		return fail("counters", errMissing)
	}
	if rec.Replies, err = parseCounter(counts, repliesRe); err != nil {
		return fail("replies", err)
	}
	if rec.Views, err = parseCounter(counts, viewsRe); err != nil {
		return fail("views", err)
	}
	if rec.Subscribers, err = parseCounter(counts, subscribersRe); err != nil {
		return fail("subscribers", err)
	}

	src, ok := s.Find(".threadlastpost div timeago").First().Attr("src")
	if !ok {
		return fail("lastPostTime", errMissing)
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(src), 10, 64)
	if err != nil {
		return fail("lastPostTime", err)
	}
	rec.LastPostTime = time.Unix(secs, 0).UTC()

	return rec, nil
}

var (
	repliesRe     = regexp.MustCompile(`(\d[\d,]*)\s*Replies`)
	viewsRe       = regexp.MustCompile(`(\d[\d,]*)\s*Views`)
	subscribersRe = regexp.MustCompile(`(\d[\d,]*)\s*Subscribers`)
)

// parseCounter finds "<N> Label" anywhere in s. N may use comma thousands
// separators.
func parseCounter(s string, re *regexp.Regexp) (int, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w in %q", errMissing, s)
	}
	return strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
}

var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	"Monday, January 2, 2006 3:04:05 PM",
	"Monday, January 2, 2006 3:04 PM",
	"January 2, 2006 3:04:05 PM",
	"January 2, 2006 3:04 PM",
	"Jan 2, 2006 3:04 PM",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate accepts the human-readable date formats seen in listing title
// attributes. Zone-less values are taken as UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
