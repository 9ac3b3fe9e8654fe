package workday

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
)

// Extractor reads the Workday cxs jobs payload
// (<tenant>.wdN.myworkdayjobs.com/wday/cxs/<tenant>/<site>/jobs). Relative
// externalPath values resolve against the fetched host.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Name() string { return "workday" }

type jobsResponse struct {
	Total       int       `json:"total"`
	JobPostings []wposting `json:"jobPostings"`
}

type wposting struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ExternalPath     string `json:"externalPath"`
	ExternalURL      string `json:"externalUrl"`
	LocationsText    string `json:"locationsText"`
	Location         string `json:"location"`
	PostedOnDate     string `json:"postedOnDate"`
	JobReqID         string `json:"jobRequisitionId"`
	JobRequisitionID string `json:"jobRequisitionID"`
}

func (e *Extractor) ExtractListings(page *fetch.Page) ([]domain.RawListing, error) {
	var jr jobsResponse
	if err := json.Unmarshal([]byte(page.Body), &jr); err != nil {
		return nil, fmt.Errorf("workday decode jobs: %w", err)
	}

	base, _ := url.Parse(page.FinalURL)

	out := make([]domain.RawListing, 0, len(jr.JobPostings))
	for _, p := range jr.JobPostings {
		title := strings.TrimSpace(p.Title)
		jobURL := absoluteJobURL(base, p)
		if title == "" || jobURL == "" {
			continue
		}

		jobID := strings.TrimSpace(firstNonEmpty(p.JobReqID, p.JobRequisitionID, p.ID))
		if jobID == "" {
			jobID = jobURL
		}

		out = append(out, domain.RawListing{
			Title:       title,
			URL:         jobURL,
			LocationRaw: strings.TrimSpace(firstNonEmpty(p.LocationsText, p.Location)),
			PostedRaw:   strings.TrimSpace(p.PostedOnDate),
			SourceID:    "workday:" + jobID,
		})
	}
	return out, nil
}

func absoluteJobURL(base *url.URL, p wposting) string {
	if v := strings.TrimSpace(p.ExternalURL); v != "" {
		return v
	}
	path := strings.TrimSpace(p.ExternalPath)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if base == nil || base.Host == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("%s://%s%s", base.Scheme, base.Host, path)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
