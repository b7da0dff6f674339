package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <item>
      <title>First story</title>
      <link>https://example.com/first</link>
      <guid>first-guid</guid>
      <description>A short summary</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
      <enclosure url="https://example.com/first.jpg" type="image/jpeg"/>
    </item>
    <item>
      <title>No link item</title>
      <description>should be dropped</description>
    </item>
    <item>
      <title>Second story</title>
      <link>https://example.com/second</link>
    </item>
  </channel>
</rss>`

const validAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Blog</title>
  <entry>
    <title>Atom entry</title>
    <link rel="alternate" href="https://example.com/atom-entry"/>
    <id>urn:entry:1</id>
    <summary>Entry summary</summary>
    <published>2024-05-01T10:00:00Z</published>
  </entry>
</feed>`

// Broken markup that the strict decoder rejects but string scanning handles
const brokenRSS = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Broken & Co</title>
    <item>
      <title><![CDATA[Story with & ampersand]]></title>
      <link>https://example.com/broken-one</link>
      <pubDate>Tue, 03 Jan 2006 10:00:00 +0000</pubDate>
    </item>
  </channel>`

func serveBody(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchValidRSS(t *testing.T) {
	srv := serveBody(t, validRSS)
	fetcher := NewFetcher(5*time.Second, "test-agent")

	feed, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Example News", feed.Title)
	require.Len(t, feed.Items, 2, "item without a link must be dropped")

	first := feed.Items[0]
	assert.Equal(t, "First story", first.Title)
	assert.Equal(t, "https://example.com/first", first.Link)
	assert.Equal(t, "first-guid", first.GUID)
	assert.Equal(t, "A short summary", first.Description)
	assert.Equal(t, "https://example.com/first.jpg", first.ImageURL)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, 2006, first.PublishedAt.Year())

	assert.Nil(t, feed.Items[1].PublishedAt)
}

func TestFetchValidAtom(t *testing.T) {
	srv := serveBody(t, validAtom)
	fetcher := NewFetcher(5*time.Second, "test-agent")

	feed, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Example Blog", feed.Title)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "https://example.com/atom-entry", feed.Items[0].Link)
	assert.Equal(t, "urn:entry:1", feed.Items[0].GUID)
	require.NotNil(t, feed.Items[0].PublishedAt)
}

func TestFetchFallsBackOnMalformedXML(t *testing.T) {
	srv := serveBody(t, brokenRSS)
	fetcher := NewFetcher(5*time.Second, "test-agent")

	feed, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Story with & ampersand", feed.Items[0].Title)
	assert.Equal(t, "https://example.com/broken-one", feed.Items[0].Link)
	require.NotNil(t, feed.Items[0].PublishedAt)
}

func TestFetchFallbackRedownloadsFeed(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(brokenRSS))
	}))
	t.Cleanup(srv.Close)

	fetcher := NewFetcher(5*time.Second, "test-agent")
	feed, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	// first response failed, the fallback pass issued a second request
	assert.Equal(t, 2, calls)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "https://example.com/broken-one", feed.Items[0].Link)
}

func TestFetchBothParsersFail(t *testing.T) {
	srv := serveBody(t, "this is not a feed at all")
	fetcher := NewFetcher(5*time.Second, "test-agent")

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	// the fallback's message wins when both strategies fail
	assert.Contains(t, err.Error(), "no feed items found")
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	fetcher := NewFetcher(5*time.Second, "test-agent")
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	fetcher := NewFetcher(50*time.Millisecond, "test-agent")
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestResolveDatePrefersISO(t *testing.T) {
	got := resolveDate("2024-05-01T10:00:00Z", "Mon, 02 Jan 2006 15:04:05 -0700")
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())

	got = resolveDate("", "Mon, 02 Jan 2006 15:04:05 -0700")
	require.NotNil(t, got)
	assert.Equal(t, 2006, got.Year())

	assert.Nil(t, resolveDate("", ""))
	assert.Nil(t, resolveDate("garbage", "also garbage"))
}
