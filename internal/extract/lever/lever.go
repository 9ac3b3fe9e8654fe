package lever

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
)

// Extractor handles Lever in both shapes: the JSON postings feed
// (api.lever.co/v0/postings/<slug>?mode=json) and the hosted HTML board
// (jobs.lever.co/<slug>).
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Name() string { return "lever" }

type posting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	CreatedAt  int64  `json:"createdAt"` // ms epoch
	Categories struct {
		Location string `json:"location"`
		Team     string `json:"team"`
	} `json:"categories"`
	SalaryRange struct {
		Min int `json:"min"`
		Max int `json:"max"`
	} `json:"salaryRange"`
	Description string `json:"description"` // html
}

func (e *Extractor) ExtractListings(page *fetch.Page) ([]domain.RawListing, error) {
	body := strings.TrimSpace(page.Body)
	if strings.HasPrefix(body, "[") {
		return fromJSON(body)
	}
	return fromBoardHTML(page.Body)
}

func fromJSON(body string) ([]domain.RawListing, error) {
	var postings []posting
	if err := json.Unmarshal([]byte(body), &postings); err != nil {
		return nil, fmt.Errorf("lever decode postings: %w", err)
	}

	out := make([]domain.RawListing, 0, len(postings))
	for _, p := range postings {
		if p.ID == "" || p.HostedURL == "" || strings.TrimSpace(p.Text) == "" {
			continue
		}
		l := domain.RawListing{
			Title:       strings.TrimSpace(p.Text),
			URL:         p.HostedURL,
			LocationRaw: p.Categories.Location,
			Description: p.Description,
			SourceID:    "lever:" + p.ID,
		}
		if p.CreatedAt > 0 {
			l.PostedRaw = strconv.FormatInt(p.CreatedAt, 10)
		}
		if p.SalaryRange.Max > 0 {
			l.SalaryRaw = fmt.Sprintf("%d - %d", p.SalaryRange.Min, p.SalaryRange.Max)
		}
		out = append(out, l)
	}
	return out, nil
}

func fromBoardHTML(body string) ([]domain.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("lever parse board html: %w", err)
	}

	var out []domain.RawListing
	doc.Find(".posting").Each(func(_ int, s *goquery.Selection) {
		a := s.Find("a.posting-title").First()
		href, ok := a.Attr("href")
		if !ok {
			a = s.Find("a[href]").First()
			href, ok = a.Attr("href")
			if !ok {
				return
			}
		}
		title := cleanText(s.Find("h5").First().Text())
		if title == "" {
			title = cleanText(a.Text())
		}
		if title == "" || !strings.Contains(href, "lever.co") {
			return
		}
		out = append(out, domain.RawListing{
			Title:       title,
			URL:         strings.TrimSpace(href),
			LocationRaw: cleanText(s.Find(".posting-categories .sort-by-location, .posting-categories .location").First().Text()),
			SourceID:    "lever:" + strings.TrimSpace(href),
		})
	})
	return out, nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
