package aggregate

import (
	"sort"
	"strings"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/boards"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

// filterByStack keeps postings where a requested stack keyword appears in
// the title (whole string, so multi-word keywords match) or in a skill
// token, case-insensitive. An empty request passes everything.
func filterByStack(in []domain.JobPosting, stacks []string) []domain.JobPosting {
	if len(stacks) == 0 {
		return in
	}
	out := in[:0:0]
	for _, p := range in {
		if stackMatches(p, stacks) {
			out = append(out, p)
		}
	}
	return out
}

func stackMatches(p domain.JobPosting, stacks []string) bool {
	title := strings.ToLower(p.Title)
	tokens := strings.Fields(title)
	for _, s := range p.RequiredSkills {
		tokens = append(tokens, strings.ToLower(s))
	}
	for _, s := range p.PreferredSkills {
		tokens = append(tokens, strings.ToLower(s))
	}

	for _, stack := range stacks {
		needle := strings.ToLower(strings.TrimSpace(stack))
		if needle == "" {
			continue
		}
		// multi-word keywords span token boundaries
		if strings.Contains(title, needle) {
			return true
		}
		for _, tok := range tokens {
			if tok == needle || strings.Contains(tok, needle) {
				return true
			}
		}
	}
	return false
}

// filterByLocation keeps postings whose country intersects the requested
// locations; worldwide or remote-friendly postings match everything.
func filterByLocation(in []domain.JobPosting, locations []string) []domain.JobPosting {
	if len(locations) == 0 {
		return in
	}
	out := in[:0:0]
	for _, p := range in {
		if locationMatches(p, locations) {
			out = append(out, p)
		}
	}
	return out
}

func locationMatches(p domain.JobPosting, locations []string) bool {
	if p.RemotePolicy == domain.RemoteFully || p.RemotePolicy == domain.RemoteFriendly {
		return true
	}
	country := strings.ToLower(strings.TrimSpace(p.Country))
	if country == "worldwide" {
		return true
	}
	if country == "" {
		return false
	}
	for _, loc := range locations {
		l := strings.ToLower(strings.TrimSpace(loc))
		if l == "" {
			continue
		}
		if l == country || strings.Contains(country, l) || strings.Contains(l, country) {
			return true
		}
	}
	return false
}

// filterBySalary drops a posting only when its stated maximum is below the
// floor. Missing salary data never excludes.
func filterBySalary(in []domain.JobPosting, minSalary int) []domain.JobPosting {
	if minSalary <= 0 {
		return in
	}
	out := in[:0:0]
	for _, p := range in {
		if p.SalaryMax == nil || *p.SalaryMax >= minSalary {
			out = append(out, p)
		}
	}
	return out
}

// dedupe collapses postings sharing the normalized (company, title, url)
// key, keeping the first occurrence encountered.
func dedupe(in []domain.JobPosting) []domain.JobPosting {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, p := range in {
		k := p.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// sortByRelevance orders by board relevance (registry priority of the
// source), then recency. Stable, for presentation.
func sortByRelevance(postings []domain.JobPosting, registry *boards.Registry) {
	sort.SliceStable(postings, func(i, j int) bool {
		pi := registry.PriorityOf(postings[i].SourcePlatform)
		pj := registry.PriorityOf(postings[j].SourcePlatform)
		if pi != pj {
			return pi > pj
		}
		ti, tj := postings[i].PostedDate, postings[j].PostedDate
		switch {
		case ti == nil && tj == nil:
			return false
		case tj == nil:
			return true
		case ti == nil:
			return false
		default:
			return ti.After(*tj)
		}
	})
}
