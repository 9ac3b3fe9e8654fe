package normalize

import (
	"strings"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

// countryTokens maps lowercase location fragments to a canonical country.
// City names only where they are unambiguous enough to be worth it.
var countryTokens = []struct {
	token   string
	country string
}{
	{"united states", "United States"}, {"usa", "United States"}, {"u.s.", "United States"},
	{"new york", "United States"}, {"san francisco", "United States"}, {"austin", "United States"},
	{"seattle", "United States"}, {"boston", "United States"},
	{"united kingdom", "United Kingdom"}, {"uk", "United Kingdom"}, {"london", "United Kingdom"},
	{"germany", "Germany"}, {"berlin", "Germany"}, {"munich", "Germany"},
	{"canada", "Canada"}, {"toronto", "Canada"}, {"vancouver", "Canada"},
	{"netherlands", "Netherlands"}, {"amsterdam", "Netherlands"},
	{"france", "France"}, {"paris", "France"},
	{"spain", "Spain"}, {"madrid", "Spain"}, {"barcelona", "Spain"},
	{"portugal", "Portugal"}, {"lisbon", "Portugal"},
	{"poland", "Poland"}, {"warsaw", "Poland"}, {"krakow", "Poland"},
	{"ukraine", "Ukraine"}, {"kyiv", "Ukraine"},
	{"ireland", "Ireland"}, {"dublin", "Ireland"},
	{"india", "India"}, {"bangalore", "India"}, {"bengaluru", "India"},
	{"singapore", "Singapore"},
	{"australia", "Australia"}, {"sydney", "Australia"},
	{"brazil", "Brazil"}, {"sao paulo", "Brazil"},
	{"japan", "Japan"}, {"tokyo", "Japan"},
	{"worldwide", "Worldwide"}, {"anywhere", "Worldwide"}, {"global", "Worldwide"},
	{"emea", "Europe"}, {"europe", "Europe"},
}

// CountryFromLocation resolves free-text location to a country/region name,
// empty when nothing matches. A bare "Remote" with no geography counts as
// Worldwide.
func CountryFromLocation(loc string) string {
	low := strings.ToLower(CleanText(loc))
	if low == "" {
		return ""
	}
	for _, ct := range countryTokens {
		if containsToken(low, ct.token) {
			return ct.country
		}
	}
	if strings.Contains(low, "remote") {
		return "Worldwide"
	}
	return ""
}

// InferRemotePolicy classifies location flexibility from location, title and
// description text. Specific phrasings are checked before the bare "remote".
func InferRemotePolicy(location, title, desc string) domain.RemotePolicy {
	blob := strings.ToLower(strings.Join([]string{location, title, desc}, " "))

	switch {
	case strings.Contains(blob, "remote friendly") || strings.Contains(blob, "remote-friendly") ||
		strings.Contains(blob, "remote ok") || strings.Contains(blob, "remote optional") ||
		strings.Contains(blob, "remote possible"):
		return domain.RemoteFriendly
	case strings.Contains(blob, "hybrid"):
		return domain.RemoteHybrid
	case strings.Contains(blob, "on-site") || strings.Contains(blob, "onsite") ||
		strings.Contains(blob, "on site") || strings.Contains(blob, "in office") ||
		strings.Contains(blob, "in-office"):
		return domain.RemoteOnSite
	case strings.Contains(blob, "remote"):
		return domain.RemoteFully
	default:
		return domain.RemoteUnknown
	}
}

// containsToken is a word-boundary substring check so "uk" doesn't light up
// inside "ukraine".
func containsToken(haystack, token string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], token)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(token)
		leftOK := start == 0 || !isWordByte(haystack[start-1])
		rightOK := end == len(haystack) || !isWordByte(haystack[end])
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
