package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
)

// Generic is the keyword-anchored fallback for custom/unknown pages: it
// keeps every anchor whose text reads like a job title. Best effort only.
type Generic struct{}

func NewGeneric() *Generic { return &Generic{} }

func (g *Generic) Name() string { return "generic" }

var titleKeywordRe = regexp.MustCompile(`(?i)\b(engineer|developer|programmer|architect|designer|analyst|scientist|manager|director|lead|intern(ship)?|specialist|consultant|administrator|devops|sre|qa|recruiter|writer)\b`)

const maxGenericListings = 200

func (g *Generic) ExtractListings(page *fetch.Page) ([]domain.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("generic parse html: %w", err)
	}

	base, _ := url.Parse(page.FinalURL)

	seen := map[string]bool{}
	var out []domain.RawListing

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := cleanText(a.Text())
		if title == "" || len(title) > 120 || !titleKeywordRe.MatchString(title) {
			return true
		}

		href, _ := a.Attr("href")
		abs := resolve(base, href)
		if abs == "" || seen[abs] {
			return true
		}
		seen[abs] = true

		out = append(out, domain.RawListing{
			Title:       title,
			URL:         abs,
			LocationRaw: nearbyLocation(a),
			SourceID:    "generic:" + abs,
		})
		return len(out) < maxGenericListings
	})

	return out, nil
}

// nearbyLocation checks the anchor's parent block for a location-ish node.
func nearbyLocation(a *goquery.Selection) string {
	parent := a.Parent()
	for i := 0; i < 2 && parent.Length() > 0; i++ {
		for _, sel := range []string{".location", ".job-location", "[data-location]", "[class*='location']"} {
			if t := cleanText(parent.Find(sel).First().Text()); t != "" {
				return t
			}
		}
		parent = parent.Parent()
	}
	return ""
}

func resolve(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(strings.ToLower(href), "javascript:") ||
		strings.HasPrefix(strings.ToLower(href), "mailto:") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if ref.Scheme != "http" && ref.Scheme != "https" {
		return ""
	}
	return ref.String()
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
