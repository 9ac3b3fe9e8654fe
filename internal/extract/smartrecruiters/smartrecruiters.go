package smartrecruiters

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
)

// Extractor reads the SmartRecruiters public postings API
// (api.smartrecruiters.com/v1/companies/<slug>/postings). The company slug
// for building hosted URLs comes out of the fetched URL path.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Name() string { return "smartrecruiters" }

type postingsResponse struct {
	Content    []posting `json:"content"`
	TotalFound int       `json:"totalFound"`
}

type posting struct {
	ID           string    `json:"id"`
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	ReleasedDate time.Time `json:"releasedDate"`
	Ref          string    `json:"ref"`
	Location     struct {
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country"`
		Remote  bool   `json:"remote"`
	} `json:"location"`
}

func (e *Extractor) ExtractListings(page *fetch.Page) ([]domain.RawListing, error) {
	var pr postingsResponse
	if err := json.Unmarshal([]byte(page.Body), &pr); err != nil {
		return nil, fmt.Errorf("smartrecruiters decode postings: %w", err)
	}

	slug := companySlug(page.FinalURL)

	out := make([]domain.RawListing, 0, len(pr.Content))
	for _, p := range pr.Content {
		title := strings.TrimSpace(p.Name)
		id := strings.TrimSpace(firstNonEmpty(p.ID, p.UUID, p.Ref))
		if title == "" || id == "" {
			continue
		}

		jobURL := strings.TrimSpace(p.Ref)
		if !strings.HasPrefix(jobURL, "http") {
			if slug == "" {
				continue
			}
			jobURL = fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", slug, id)
		}

		loc := strings.Join(nonEmpty(p.Location.City, p.Location.Region, p.Location.Country), ", ")
		if p.Location.Remote {
			loc = strings.TrimSuffix("Remote, "+loc, ", ")
		}

		l := domain.RawListing{
			Title:       title,
			URL:         jobURL,
			LocationRaw: loc,
			SourceID:    "smartrecruiters:" + id,
		}
		if !p.ReleasedDate.IsZero() {
			l.PostedRaw = p.ReleasedDate.Format(time.RFC3339)
		}
		out = append(out, l)
	}
	return out, nil
}

// companySlug pulls <slug> from .../v1/companies/<slug>/postings or a hosted
// jobs.smartrecruiters.com/<slug> URL.
func companySlug(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, s := range segs {
		if s == "companies" && i+1 < len(segs) {
			return segs[i+1]
		}
	}
	if strings.Contains(u.Host, "jobs.smartrecruiters.com") && len(segs) > 0 && segs[0] != "" {
		return segs[0]
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(vals ...string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
