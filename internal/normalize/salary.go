package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var amountRe = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s*(k)?`)

// benefitRe matches retirement-plan mentions ("401k", "401(k)") that would
// otherwise read as a 401,000 salary.
var benefitRe = regexp.MustCompile(`(?i)\b401\s*\(?k\)?\b`)

const (
	minPlausibleSalary = 10_000
	maxPlausibleSalary = 2_000_000
)

// ParseSalary pulls independent min/max bounds out of free text like
// "$120k–$150k" or "120,000 - 150,000 USD". Bounds it cannot parse stay
// nil; nothing is ever defaulted to zero.
func ParseSalary(raw string) (min, max *int) {
	raw = CleanText(benefitRe.ReplaceAllString(raw, ""))
	if raw == "" {
		return nil, nil
	}

	matches := amountRe.FindAllStringSubmatch(raw, -1)
	anyK := false
	for _, m := range matches {
		if m[2] != "" {
			anyK = true
			break
		}
	}

	var amounts []int
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		if m[2] != "" || (anyK && v < 1000) {
			// "120-150k" spells the k only once
			v *= 1000
		}
		n := int(v)
		if n < minPlausibleSalary || n > maxPlausibleSalary {
			continue
		}
		amounts = append(amounts, n)
	}

	switch len(amounts) {
	case 0:
		return nil, nil
	case 1:
		low := strings.ToLower(raw)
		if strings.Contains(low, "up to") || strings.Contains(low, "max") {
			return nil, &amounts[0]
		}
		if strings.Contains(low, "from") || strings.Contains(low, "min") ||
			strings.HasSuffix(strings.TrimSpace(low), "+") {
			return &amounts[0], nil
		}
		return &amounts[0], &amounts[0]
	default:
		lo, hi := amounts[0], amounts[0]
		for _, a := range amounts[1:] {
			if a < lo {
				lo = a
			}
			if a > hi {
				hi = a
			}
		}
		return &lo, &hi
	}
}
