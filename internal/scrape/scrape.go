// Package scrape extracts meeting-recording download links from the
// city secretary's meeting listing pages.
package scrape

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const (
	// DefaultBaseURL is the meeting listing page; %d is the year.
	DefaultBaseURL = "https://dallascityhall.com/government/citysecretary/Pages/CCMeetings_%d.aspx"

	mp3Marker = "download.asp"
)

// Scraper fetches meeting pages and pulls out audio links.
type Scraper struct {
	BaseURL string
	Client  *http.Client
}

// New creates a Scraper against the default listing pages.
func New() *Scraper {
	return &Scraper{
		BaseURL: DefaultBaseURL,
		Client:  http.DefaultClient,
	}
}

// MeetingURLs fetches the listing page for a year and returns every
// mp3 download link on it, in document order.
func (s *Scraper) MeetingURLs(year int) ([]string, error) {
	url := fmt.Sprintf(s.BaseURL, year)

	resp, err := s.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return ExtractAudioLinks(doc), nil
}

// ExtractAudioLinks walks the DOM and collects hrefs that look like mp3
// download links.
func ExtractAudioLinks(doc *html.Node) []string {
	var urls []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if isAudioLink(attr.Val) {
					urls = append(urls, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return urls
}

func isAudioLink(href string) bool {
	lower := strings.ToLower(href)
	return strings.Contains(lower, mp3Marker) && strings.Contains(lower, ".mp3")
}
