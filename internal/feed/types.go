package feed

import "time"

// Item is one normalized feed entry. Entries without a link are unusable
// for deduplication and are dropped before they leave this package.
type Item struct {
	Title       string
	Link        string
	GUID        string
	Description string
	Content     string
	ImageURL    string
	Author      string
	PublishedAt *time.Time
}

// Feed is the normalized result of fetching a syndication feed
type Feed struct {
	Title string
	Items []Item
}

// rssDocument mirrors the RSS 2.0 wire format
type rssDocument struct {
	Channel struct {
		Title string    `xml:"title"`
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string       `xml:"title"`
	Link        string       `xml:"link"`
	GUID        string       `xml:"guid"`
	Description string       `xml:"description"`
	Content     string       `xml:"encoded"`
	Author      string       `xml:"creator"`
	PubDate     string       `xml:"pubDate"`
	ISODate     string       `xml:"date"`
	Enclosure   rssEnclosure `xml:"enclosure"`
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// atomDocument mirrors the Atom 1.0 wire format
type atomDocument struct {
	Title   string      `xml:"title"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	ID        string     `xml:"id"`
	Summary   string     `xml:"summary"`
	Content   string     `xml:"content"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
	Author    struct {
		Name string `xml:"name"`
	} `xml:"author"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}
