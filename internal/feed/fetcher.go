// Package feed retrieves and parses remote syndication feeds into a
// normalized item list. A strict XML decode is attempted first; on any
// failure a lenient string-mode pass over the raw body is used as fallback.
package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/feed_mocks.go -package=mocks

// FetcherInterface abstracts feed retrieval for the sync service
type FetcherInterface interface {
	Fetch(ctx context.Context, url string) (*Feed, error)
}

// Fetcher retrieves syndication feeds over HTTP with a bounded timeout
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Ensure Fetcher implements FetcherInterface
var _ FetcherInterface = (*Fetcher)(nil)

// NewFetcher creates a fetcher. An unresponsive remote feed is treated as
// a fetch failure after the timeout rather than hanging indefinitely.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads and parses the feed at url. The strict pass downloads
// and decodes in one go; any failure triggers a second download whose
// body goes through the lenient string-mode parser. Transient upstream
// hiccups on the first request get a fresh response instead of a re-read
// of the failed body. When both passes fail, the fallback's error is
// preferred.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Feed, error) {
	feed, strictErr := f.fetchStrict(ctx, url)
	if strictErr == nil {
		return feed, nil
	}

	body, err := f.download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	feed, fallbackErr := parseFallback(body)
	if fallbackErr == nil {
		return feed, nil
	}

	return nil, fmt.Errorf("parse feed: %w", fallbackErr)
}

func (f *Fetcher) fetchStrict(ctx context.Context, url string) (*Feed, error) {
	body, err := f.download(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseStrict(body)
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// parseStrict decodes the body as RSS 2.0, then as Atom 1.0
func parseStrict(body []byte) (*Feed, error) {
	var rss rssDocument
	if err := xml.NewDecoder(bytes.NewReader(body)).Decode(&rss); err == nil && len(rss.Channel.Items) > 0 {
		return fromRSS(&rss), nil
	}

	var atom atomDocument
	if err := xml.NewDecoder(bytes.NewReader(body)).Decode(&atom); err != nil {
		return nil, fmt.Errorf("decode feed xml: %w", err)
	}
	if len(atom.Entries) == 0 {
		return nil, fmt.Errorf("feed contains no items")
	}
	return fromAtom(&atom), nil
}

func fromRSS(doc *rssDocument) *Feed {
	feed := &Feed{Title: strings.TrimSpace(doc.Channel.Title)}
	for _, it := range doc.Channel.Items {
		link := strings.TrimSpace(it.Link)
		if link == "" {
			continue
		}
		item := Item{
			Title:       strings.TrimSpace(it.Title),
			Link:        link,
			GUID:        strings.TrimSpace(it.GUID),
			Description: strings.TrimSpace(it.Description),
			Content:     strings.TrimSpace(it.Content),
			Author:      strings.TrimSpace(it.Author),
			PublishedAt: resolveDate(it.ISODate, it.PubDate),
		}
		if strings.HasPrefix(it.Enclosure.Type, "image/") || (it.Enclosure.Type == "" && it.Enclosure.URL != "") {
			item.ImageURL = it.Enclosure.URL
		}
		feed.Items = append(feed.Items, item)
	}
	return feed
}

func fromAtom(doc *atomDocument) *Feed {
	feed := &Feed{Title: strings.TrimSpace(doc.Title)}
	for _, entry := range doc.Entries {
		link := atomEntryLink(entry.Links)
		if link == "" {
			continue
		}
		feed.Items = append(feed.Items, Item{
			Title:       strings.TrimSpace(entry.Title),
			Link:        link,
			GUID:        strings.TrimSpace(entry.ID),
			Description: strings.TrimSpace(entry.Summary),
			Content:     strings.TrimSpace(entry.Content),
			Author:      strings.TrimSpace(entry.Author.Name),
			PublishedAt: resolveDate(entry.Published, entry.Updated),
		})
	}
	return feed
}

func atomEntryLink(links []atomLink) string {
	for _, l := range links {
		if l.Rel == "" || l.Rel == "alternate" {
			return strings.TrimSpace(l.Href)
		}
	}
	if len(links) > 0 {
		return strings.TrimSpace(links[0].Href)
	}
	return ""
}

// Fallback string-mode parsing for feeds the strict decoder rejects
// (unescaped ampersands, broken encodings, stray markup).

var (
	itemBlockRe   = regexp.MustCompile(`(?is)<(?:item|entry)[\s>].*?</(?:item|entry)>`)
	feedTitleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	linkTagRe     = regexp.MustCompile(`(?is)<link[^>]*>(.*?)</link>`)
	linkHrefRe    = regexp.MustCompile(`(?is)<link[^>]*href=["']([^"']+)["']`)
	guidRe        = regexp.MustCompile(`(?is)<(?:guid|id)[^>]*>(.*?)</(?:guid|id)>`)
	descriptionRe = regexp.MustCompile(`(?is)<(?:description|summary)[^>]*>(.*?)</(?:description|summary)>`)
	pubDateRe     = regexp.MustCompile(`(?is)<(?:pubDate|published|updated|dc:date)[^>]*>(.*?)</(?:pubDate|published|updated|dc:date)>`)
	cdataRe       = regexp.MustCompile(`(?s)^\s*<!\[CDATA\[(.*?)\]\]>\s*$`)
)

func parseFallback(body []byte) (*Feed, error) {
	text := string(body)
	blocks := itemBlockRe.FindAllString(text, -1)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("no feed items found in response body")
	}

	feed := &Feed{}
	if m := feedTitleRe.FindStringSubmatch(text); m != nil {
		feed.Title = cleanText(m[1])
	}

	for _, block := range blocks {
		item := Item{
			Title:       matchText(feedTitleRe, block),
			Link:        matchText(linkTagRe, block),
			GUID:        matchText(guidRe, block),
			Description: matchText(descriptionRe, block),
		}
		if item.Link == "" {
			if m := linkHrefRe.FindStringSubmatch(block); m != nil {
				item.Link = strings.TrimSpace(m[1])
			}
		}
		if item.Link == "" {
			continue
		}
		if raw := matchText(pubDateRe, block); raw != "" {
			item.PublishedAt = parseDate(raw)
		}
		feed.Items = append(feed.Items, item)
	}

	if len(feed.Items) == 0 {
		return nil, fmt.Errorf("no usable feed items found in response body")
	}
	return feed, nil
}

func matchText(re *regexp.Regexp, block string) string {
	if m := re.FindStringSubmatch(block); m != nil {
		return cleanText(m[1])
	}
	return ""
}

func cleanText(s string) string {
	if m := cdataRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	return strings.TrimSpace(s)
}

// resolveDate prefers the ISO-format field, then the RFC-822-style publish
// date. Undated items stay nil.
func resolveDate(isoDate, pubDate string) *time.Time {
	if t := parseDate(isoDate); t != nil {
		return t
	}
	return parseDate(pubDate)
}

var dateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
