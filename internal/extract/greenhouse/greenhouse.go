package greenhouse

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
)

// Extractor reads a hosted Greenhouse board page. Boards group postings
// under div.opening with an anchor to /<slug>/jobs/<id> and a sibling
// .location span; anything else is covered by a raw anchor scan.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Name() string { return "greenhouse" }

func (e *Extractor) ExtractListings(page *fetch.Page) ([]domain.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("greenhouse parse board html: %w", err)
	}

	seen := map[string]bool{}
	var out []domain.RawListing

	doc.Find("div.opening").Each(func(_ int, s *goquery.Selection) {
		a := s.Find("a[href]").First()
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		l, ok := listingFromAnchor(href, cleanText(a.Text()))
		if !ok || seen[l.SourceID] {
			return
		}
		l.LocationRaw = cleanText(s.Find(".location").First().Text())
		seen[l.SourceID] = true
		out = append(out, l)
	})

	// Some boards skip the .opening wrapper; fall back to every anchor that
	// still looks like a posting link.
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		l, ok := listingFromAnchor(href, cleanText(a.Text()))
		if !ok || seen[l.SourceID] {
			return
		}
		seen[l.SourceID] = true
		out = append(out, l)
	})

	return out, nil
}

func listingFromAnchor(href, title string) (domain.RawListing, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return domain.RawListing{}, false
	}

	abs := href
	if strings.HasPrefix(href, "/") {
		abs = "https://boards.greenhouse.io" + href
	}
	low := strings.ToLower(abs)
	if !strings.Contains(low, "greenhouse.io") || !strings.Contains(low, "/jobs/") {
		return domain.RawListing{}, false
	}

	jobID := digitsAfter(abs, "/jobs/")
	if jobID == "" {
		return domain.RawListing{}, false
	}
	if title == "" || looksLikeJunkTitle(title) {
		return domain.RawListing{}, false
	}

	return domain.RawListing{
		Title:    title,
		URL:      abs,
		SourceID: "greenhouse:" + jobID,
	}, true
}

func digitsAfter(u, sep string) string {
	parts := strings.Split(u, sep)
	if len(parts) < 2 {
		return ""
	}
	id := ""
	for _, r := range parts[1] {
		if r < '0' || r > '9' {
			break
		}
		id += string(r)
	}
	return id
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

func looksLikeJunkTitle(t string) bool {
	l := strings.ToLower(t)
	return l == "view job" || l == "apply" || l == "apply now" || strings.HasPrefix(l, "view all")
}
