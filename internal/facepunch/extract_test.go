package facepunch

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor("https://forum.facepunch.com")
	require.NoError(t, err)
	return e
}

func TestExtractListing(t *testing.T) {
	body, err := os.ReadFile("testdata/listing.html")
	require.NoError(t, err)

	recs, err := newTestExtractor(t).Extract(body)
	require.NoError(t, err)
	require.Len(t, recs, 2, "sticky block must be excluded")

	first := recs[0]
	assert.Equal(t, "Scientists discover thing", first.Headline)
	assert.Equal(t, "https://forum.facepunch.com/f/sh/btqhk/Scientists-discover-thing/1/", first.Link)
	assert.Equal(t, time.Date(2018, 1, 9, 12, 34, 56, 0, time.UTC), first.Created)
	assert.Equal(t, time.Unix(1515600000, 0).UTC(), first.LastPostTime)
	assert.Equal(t, 42, first.Replies)
	assert.Equal(t, 1337, first.Views)
	assert.Equal(t, 7, first.Subscribers)

	second := recs[1]
	assert.Equal(t, "Local man does stuff", second.Headline)
	assert.Equal(t, "https://forum.facepunch.com/f/sh/btqhm/Local-man-does-stuff/1/", second.Link)
	assert.Equal(t, time.Date(2018, 1, 10, 8, 0, 0, 0, time.UTC), second.Created)
	assert.Equal(t, 12, second.Replies)
	assert.Equal(t, 0, second.Views)
	assert.Equal(t, 3, second.Subscribers)
}

func TestExtractEmptyPage(t *testing.T) {
	recs, err := newTestExtractor(t).Extract([]byte("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestExtractMissingFieldFailsPage(t *testing.T) {
	body, err := os.ReadFile("testdata/listing.html")
	require.NoError(t, err)
	broken := strings.Replace(string(body), `<timeago src="1515700000"></timeago>`, "", 1)

	_, err = newTestExtractor(t).Extract([]byte(broken))
	require.Error(t, err)
	var xe *ExtractError
	require.True(t, errors.As(err, &xe))
	assert.Equal(t, 1, xe.Block)
	assert.Equal(t, "lastPostTime", xe.Field)
}

func TestExtractMissingCounterFailsPage(t *testing.T) {
	body, err := os.ReadFile("testdata/listing.html")
	require.NoError(t, err)
	broken := strings.Replace(string(body), "42 Replies, ", "", 1)

	_, err = newTestExtractor(t).Extract([]byte(broken))
	var xe *ExtractError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, 0, xe.Block)
	assert.Equal(t, "replies", xe.Field)
}

func TestExtractPagesKeepsOrder(t *testing.T) {
	body, err := os.ReadFile("testdata/listing.html")
	require.NoError(t, err)
	page2 := strings.NewReplacer(
		"Scientists discover thing", "Page two first",
		"Local man does stuff", "Page two second",
	).Replace(string(body))

	recs, err := newTestExtractor(t).ExtractPages([][]byte{body, []byte(page2)})
	require.NoError(t, err)
	var got []string
	for _, r := range recs {
		got = append(got, r.Headline)
	}
	assert.Equal(t, []string{
		"Scientists discover thing",
		"Local man does stuff",
		"Page two first",
		"Page two second",
	}, got)
}

func TestParseCounter(t *testing.T) {
	counts := "42 Replies, 1,337 Views, 7 Subscribers"
	n, err := parseCounter(counts, repliesRe)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	n, err = parseCounter(counts, viewsRe)
	require.NoError(t, err)
	assert.Equal(t, 1337, n)
	n, err = parseCounter(counts, subscribersRe)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = parseCounter("Subscribers: none, 12,345,678   Views", viewsRe)
	require.NoError(t, err)
	assert.Equal(t, 12345678, n)

	_, err = parseCounter("no numbers", repliesRe)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2018, 1, 9, 12, 34, 56, 0, time.UTC)
	for _, in := range []string{
		"Tue, 09 Jan 2018 12:34:56 GMT",
		"2018-01-09T12:34:56Z",
		"2018-01-09 12:34:56",
		"January 9, 2018 12:34:56 PM",
		"Tue Jan 9 2018 12:34:56 GMT+0000",
	} {
		got, err := parseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q parsed as %v", in, got)
	}
	_, err := parseDate("three days ago")
	assert.Error(t, err)
}
