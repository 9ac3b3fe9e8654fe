package domain

import (
	"strings"
	"time"
)

// RemotePolicy classifies how flexible a posting is about location.
type RemotePolicy string

const (
	RemoteFully    RemotePolicy = "fully_remote"
	RemoteHybrid   RemotePolicy = "hybrid"
	RemoteOnSite   RemotePolicy = "on_site"
	RemoteFriendly RemotePolicy = "remote_friendly"
	RemoteUnknown  RemotePolicy = "unknown"
)

// RawListing is what an extractor pulls off a page before normalization.
// Fields are free text exactly as found; the normalizer owns interpretation.
type RawListing struct {
	Title       string
	URL         string
	LocationRaw string
	Description string
	SalaryRaw   string
	PostedRaw   string
	SourceID    string
}

// JobPosting is the canonical posting schema. Immutable once created.
// Salary bounds are independently nullable; a missing bound is nil, never 0.
type JobPosting struct {
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	URL             string       `json:"url"`
	Country         string       `json:"country"`
	RemotePolicy    RemotePolicy `json:"remotePolicy"`
	RequiredSkills  []string     `json:"requiredSkills"`
	PreferredSkills []string     `json:"preferredSkills"`
	SalaryMin       *int         `json:"salaryMin,omitempty"`
	SalaryMax       *int         `json:"salaryMax,omitempty"`
	PostedDate      *time.Time   `json:"postedDate,omitempty"`
	SourcePlatform  string       `json:"sourcePlatform"`
}

// Key is the dedup identity: case-folded, trimmed (company, title, url).
func (p JobPosting) Key() string {
	fold := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return fold(p.Company) + "|" + fold(p.Title) + "|" + fold(p.URL)
}
