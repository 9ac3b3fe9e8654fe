package normalize

import "strings"

// SkillEntry is one canonical skill plus the spellings that count as a hit.
type SkillEntry struct {
	Name    string
	Aliases []string
}

// Dictionary keeps declaration order so extracted skill lists are stable.
type Dictionary []SkillEntry

// DefaultDictionary covers the stacks the boards in the catalog trade in.
// Callers can extend it from config.
func DefaultDictionary() Dictionary {
	return Dictionary{
		{Name: "Go", Aliases: []string{"golang", "go"}},
		{Name: "Python", Aliases: []string{"python"}},
		{Name: "Java", Aliases: []string{"java"}},
		{Name: "C#", Aliases: []string{"c#", ".net", "dotnet"}},
		{Name: "JavaScript", Aliases: []string{"javascript", "js"}},
		{Name: "TypeScript", Aliases: []string{"typescript", "ts"}},
		{Name: "React", Aliases: []string{"react", "reactjs"}},
		{Name: "Angular", Aliases: []string{"angular"}},
		{Name: "Vue", Aliases: []string{"vue", "vuejs"}},
		{Name: "Node.js", Aliases: []string{"node.js", "nodejs", "node"}},
		{Name: "Rust", Aliases: []string{"rust"}},
		{Name: "Ruby", Aliases: []string{"ruby", "rails"}},
		{Name: "PHP", Aliases: []string{"php", "laravel"}},
		{Name: "Kotlin", Aliases: []string{"kotlin"}},
		{Name: "Swift", Aliases: []string{"swift"}},
		{Name: "Scala", Aliases: []string{"scala"}},
		{Name: "Elixir", Aliases: []string{"elixir"}},
		{Name: "SQL", Aliases: []string{"sql"}},
		{Name: "PostgreSQL", Aliases: []string{"postgresql", "postgres"}},
		{Name: "MySQL", Aliases: []string{"mysql"}},
		{Name: "MongoDB", Aliases: []string{"mongodb", "mongo"}},
		{Name: "Redis", Aliases: []string{"redis"}},
		{Name: "Kafka", Aliases: []string{"kafka"}},
		{Name: "RabbitMQ", Aliases: []string{"rabbitmq"}},
		{Name: "gRPC", Aliases: []string{"grpc"}},
		{Name: "GraphQL", Aliases: []string{"graphql"}},
		{Name: "Docker", Aliases: []string{"docker"}},
		{Name: "Kubernetes", Aliases: []string{"kubernetes", "k8s"}},
		{Name: "Terraform", Aliases: []string{"terraform"}},
		{Name: "AWS", Aliases: []string{"aws", "amazon web services"}},
		{Name: "GCP", Aliases: []string{"gcp", "google cloud"}},
		{Name: "Azure", Aliases: []string{"azure"}},
		{Name: "Linux", Aliases: []string{"linux"}},
		{Name: "CI/CD", Aliases: []string{"ci/cd", "cicd"}},
	}
}

// Scan returns the skills present in text, in dictionary order.
func (d Dictionary) Scan(text string) []string {
	low := strings.ToLower(text)
	var out []string
	for _, e := range d {
		for _, a := range e.Aliases {
			if matchAlias(low, a) {
				out = append(out, e.Name)
				break
			}
		}
	}
	return out
}

var preferredMarkers = []string{
	"nice to have", "nice-to-have", "preferred", "bonus points", "a plus",
	"good to have", "would be a plus", "desirable",
}

// SplitSections splits a description into the required part and the
// preferred/nice-to-have tail. No marker means everything is required.
func SplitSections(desc string) (required, preferred string) {
	low := strings.ToLower(desc)
	cut := -1
	for _, m := range preferredMarkers {
		if i := strings.Index(low, m); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return desc, ""
	}
	return desc[:cut], desc[cut:]
}

// matchAlias requires word boundaries for plain-word aliases so "go" never
// fires inside "mongodb"; aliases with punctuation fall back to substring.
func matchAlias(low, alias string) bool {
	alias = strings.ToLower(alias)
	for i := 0; i < len(alias); i++ {
		if !isWordByte(alias[i]) && alias[i] != ' ' {
			return strings.Contains(low, alias)
		}
	}
	return containsToken(low, alias)
}
