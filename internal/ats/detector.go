package ats

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

// signature is one ordered classification rule. A rule matches when any of
// its URL patterns hits the source URL or any of its markers hits the page
// body. Lower priority value wins; evaluation order is priority, not
// declaration order.
type signature struct {
	atsType  domain.ATSType
	priority int
	urlHints []string
	markers  []string
	identify func(sourceURL, body string) string
}

var (
	greenhouseSlugRe     = regexp.MustCompile(`(?i)(?:boards|job-boards)\.greenhouse\.io/(?:embed/job_board\?for=)?([a-z0-9_-]+)`)
	leverSlugRe          = regexp.MustCompile(`(?i)(?:jobs\.lever\.co|api\.lever\.co/v0/postings)/([a-z0-9_-]+)`)
	workdayTenantRe      = regexp.MustCompile(`(?i)([a-z0-9-]+)\.wd\d+\.myworkdayjobs\.com`)
	smartrecruitersSlugRe = regexp.MustCompile(`(?i)(?:jobs|careers)\.smartrecruiters\.com/([A-Za-z0-9_-]+)|api\.smartrecruiters\.com/v1/companies/([A-Za-z0-9_-]+)`)
)

var signatures = []signature{
	{
		atsType:  domain.ATSGreenhouse,
		priority: 10,
		urlHints: []string{"greenhouse.io"},
		markers:  []string{"boards.greenhouse.io", "greenhouse.io/embed/job_board", "gh_jid=", `data-source="greenhouse"`},
		identify: func(sourceURL, body string) string {
			if m := greenhouseSlugRe.FindStringSubmatch(sourceURL); m != nil {
				return strings.ToLower(m[1])
			}
			if m := greenhouseSlugRe.FindStringSubmatch(body); m != nil {
				return strings.ToLower(m[1])
			}
			return ""
		},
	},
	{
		atsType:  domain.ATSLever,
		priority: 20,
		urlHints: []string{"jobs.lever.co", "api.lever.co"},
		markers:  []string{"jobs.lever.co", "lever-jobs-embed", `class="lever`, "api.lever.co/v0/postings"},
		identify: func(sourceURL, body string) string {
			if m := leverSlugRe.FindStringSubmatch(sourceURL); m != nil {
				return strings.ToLower(m[1])
			}
			if m := leverSlugRe.FindStringSubmatch(body); m != nil {
				return strings.ToLower(m[1])
			}
			return ""
		},
	},
	{
		atsType:  domain.ATSWorkday,
		priority: 30,
		urlHints: []string{"myworkdayjobs.com", "myworkdaysite.com"},
		markers:  []string{"myworkdayjobs.com", "wday/cxs", "workday-logo", "calypso_csrf_token"},
		identify: func(sourceURL, body string) string {
			if m := workdayTenantRe.FindStringSubmatch(sourceURL); m != nil {
				return strings.ToLower(m[1])
			}
			if m := workdayTenantRe.FindStringSubmatch(body); m != nil {
				return strings.ToLower(m[1])
			}
			return ""
		},
	},
	{
		atsType:  domain.ATSSmartRecruiters,
		priority: 40,
		urlHints: []string{"smartrecruiters.com"},
		markers:  []string{"jobs.smartrecruiters.com", "api.smartrecruiters.com", "smartrecruiters-widget"},
		identify: func(sourceURL, body string) string {
			for _, s := range []string{sourceURL, body} {
				if m := smartrecruitersSlugRe.FindStringSubmatch(s); m != nil {
					if m[1] != "" {
						return strings.ToLower(m[1])
					}
					return strings.ToLower(m[2])
				}
			}
			return ""
		},
	},
	{
		// Generic job-board markup with no vendor fingerprint. Identifier is
		// the site host, which is the best stand-in for a company slug.
		atsType:  domain.ATSCustom,
		priority: 90,
		markers: []string{
			"open positions", "open roles", "current openings", "we're hiring",
			"we are hiring", "job openings", "join our team", "careers at",
			"apply now",
		},
		identify: func(sourceURL, _ string) string {
			u, err := url.Parse(sourceURL)
			if err != nil || u.Host == "" {
				return ""
			}
			return strings.ToLower(strings.TrimPrefix(u.Host, "www."))
		},
	},
}

func init() {
	sort.SliceStable(signatures, func(i, j int) bool {
		return signatures[i].priority < signatures[j].priority
	})
}

// Classify maps page content plus its source URL to exactly one ATS type.
// It never fails: no signature match means {unknown, ""}.
func Classify(body, sourceURL string) domain.Classification {
	lowURL := strings.ToLower(sourceURL)
	lowBody := strings.ToLower(body)

	for _, sig := range signatures {
		if !sig.matches(lowURL, lowBody) {
			continue
		}
		id := ""
		if sig.identify != nil {
			id = sig.identify(sourceURL, body)
		}
		return domain.Classification{Type: sig.atsType, Identifier: id}
	}
	return domain.Classification{Type: domain.ATSUnknown}
}

func (s signature) matches(lowURL, lowBody string) bool {
	for _, h := range s.urlHints {
		if strings.Contains(lowURL, h) {
			return true
		}
	}
	for _, m := range s.markers {
		if strings.Contains(lowBody, m) {
			return true
		}
	}
	return false
}
