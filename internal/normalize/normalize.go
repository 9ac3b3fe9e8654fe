// Package normalize maps raw extracted listings into the canonical posting
// schema: location text to country + remote policy, descriptions to skill
// lists, salary and date fragments to typed optionals.
package normalize

import (
	"regexp"
	"strings"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

type Normalizer struct {
	skills Dictionary
}

// New builds a normalizer; a nil/empty dictionary falls back to the default.
func New(skills Dictionary) *Normalizer {
	if len(skills) == 0 {
		skills = DefaultDictionary()
	}
	return &Normalizer{skills: skills}
}

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

var salaryLineRe = regexp.MustCompile(`(?i)(?:salary|compensation|pay)[^.\n]{0,120}`)

// Normalize maps one raw listing into a JobPosting stamped with the company
// name and source platform. It never fails; fields that cannot be
// interpreted stay at their zero/nil values.
func (n *Normalizer) Normalize(raw domain.RawListing, company, sourcePlatform string) domain.JobPosting {
	title := CleanText(raw.Title)
	loc := NormalizeLocation(raw.LocationRaw)
	desc := CleanText(htmlTagRe.ReplaceAllString(raw.Description, " "))

	required, preferred := SplitSections(title + " " + desc)
	p := domain.JobPosting{
		Title:           title,
		Company:         CleanText(company),
		URL:             strings.TrimSpace(raw.URL),
		Country:         CountryFromLocation(loc),
		RemotePolicy:    InferRemotePolicy(loc, title, desc),
		RequiredSkills:  n.skills.Scan(required),
		PreferredSkills: n.skills.Scan(preferred),
		SourcePlatform:  sourcePlatform,
		PostedDate:      ParsePostedDate(raw.PostedRaw),
	}

	salaryText := raw.SalaryRaw
	if salaryText == "" {
		// some boards only mention pay inline in the description
		salaryText = salaryLineRe.FindString(desc)
	}
	p.SalaryMin, p.SalaryMax = ParseSalary(salaryText)

	return p
}
