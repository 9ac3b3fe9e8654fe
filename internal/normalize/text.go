package normalize

import "strings"

// invisible and exotic whitespace that job boards embed in listing text
var textSanitizer = strings.NewReplacer(
	" ", " ", // nbsp
	"​", "", // zero-width space
	" ", " ", // line separator
	"\uFEFF", "",
)

// CleanText scrubs invisible characters and collapses whitespace runs into
// single spaces.
func CleanText(s string) string {
	return strings.Join(strings.Fields(textSanitizer.Replace(s)), " ")
}

var locationLabels = []string{"location:", "locations:", "based in:"}

// NormalizeLocation strips label prefixes and collapses duplicate
// comma-separated segments, keeping first-seen casing and order.
func NormalizeLocation(loc string) string {
	loc = CleanText(loc)
	low := strings.ToLower(loc)
	for _, label := range locationLabels {
		if strings.HasPrefix(low, label) {
			loc = strings.TrimSpace(loc[len(label):])
			break
		}
	}

	seen := make(map[string]bool)
	var segs []string
	for _, seg := range strings.Split(loc, ",") {
		seg = CleanText(seg)
		if seg == "" {
			continue
		}
		key := strings.ToLower(seg)
		if seen[key] {
			continue
		}
		seen[key] = true
		segs = append(segs, seg)
	}
	return strings.Join(segs, ", ")
}
