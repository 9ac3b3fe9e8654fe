// Package boards holds the static catalog of known remote-job boards and a
// simple weighted recommendation over it. The registry is immutable; tests
// substitute their own via NewRegistry.
package boards

import (
	"sort"
	"strings"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

const (
	RegionWorldwide    = "worldwide"
	RegionNorthAmerica = "north-america"
	RegionEurope       = "europe"
	RegionAsiaPacific  = "asia-pacific"
	RegionLatinAmerica = "latin-america"
)

type Registry struct {
	boards []domain.BoardDescriptor
}

func NewRegistry(boards ...domain.BoardDescriptor) *Registry {
	cp := make([]domain.BoardDescriptor, len(boards))
	copy(cp, boards)
	return &Registry{boards: cp}
}

// Default is the built-in catalog. Priorities and regional friendliness are
// editorial, on a 1..10 scale.
func Default() *Registry {
	return NewRegistry(
		domain.BoardDescriptor{
			Name:     "RemoteOK",
			URL:      "https://remoteok.com/remote-dev-jobs",
			Priority: 9,
			RegionalFriendliness: map[string]int{
				RegionWorldwide: 9, RegionEurope: 8, RegionNorthAmerica: 8, RegionAsiaPacific: 7,
			},
			Tags:        []string{"tech", "startup", "worldwide"},
			Description: "Large general remote board with a strong dev section.",
		},
		domain.BoardDescriptor{
			Name:     "We Work Remotely",
			URL:      "https://weworkremotely.com/categories/remote-programming-jobs",
			Priority: 9,
			RegionalFriendliness: map[string]int{
				RegionWorldwide: 8, RegionNorthAmerica: 9, RegionEurope: 7,
			},
			Tags:        []string{"tech", "programming", "design"},
			Description: "One of the oldest remote-only boards; US-leaning.",
		},
		domain.BoardDescriptor{
			Name:     "Remotive",
			URL:      "https://remotive.com/remote-jobs/software-dev",
			Priority: 8,
			RegionalFriendliness: map[string]int{
				RegionWorldwide: 8, RegionEurope: 9, RegionNorthAmerica: 7,
			},
			Tags:        []string{"tech", "community", "europe"},
			Description: "Curated remote listings with good European coverage.",
		},
		domain.BoardDescriptor{
			Name:     "Working Nomads",
			URL:      "https://www.workingnomads.com/jobs",
			Priority: 7,
			RegionalFriendliness: map[string]int{
				RegionWorldwide: 8, RegionEurope: 7, RegionAsiaPacific: 7,
			},
			Tags:        []string{"digest", "worldwide"},
			Description: "Aggregated remote positions, daily digest style.",
		},
		domain.BoardDescriptor{
			Name:     "Himalayas",
			URL:      "https://himalayas.app/jobs",
			Priority: 7,
			RegionalFriendliness: map[string]int{
				RegionWorldwide: 8, RegionNorthAmerica: 8, RegionEurope: 8,
			},
			Tags:        []string{"tech", "profiles"},
			Description: "Remote-first board with structured company profiles.",
		},
		domain.BoardDescriptor{
			Name:     "Jobspresso",
			URL:      "https://jobspresso.co/remote-work",
			Priority: 6,
			RegionalFriendliness: map[string]int{
				RegionWorldwide: 7, RegionNorthAmerica: 8,
			},
			Tags:        []string{"curated", "tech", "marketing"},
			Description: "Hand-curated remote jobs, smaller volume.",
		},
		domain.BoardDescriptor{
			Name:     "EU Remote Jobs",
			URL:      "https://euremotejobs.com/jobs",
			Priority: 6,
			RegionalFriendliness: map[string]int{
				RegionEurope: 10, RegionWorldwide: 5,
			},
			Tags:        []string{"europe", "timezone"},
			Description: "EU-timezone-restricted remote roles.",
		},
		domain.BoardDescriptor{
			Name:     "NoDesk",
			URL:      "https://nodesk.co/remote-jobs",
			Priority: 5,
			RegionalFriendliness: map[string]int{
				RegionWorldwide: 7, RegionAsiaPacific: 6,
			},
			Tags:        []string{"digest", "community"},
			Description: "Remote work directory and job list.",
		},
	)
}

// All returns a copy; callers cannot mutate the catalog.
func (r *Registry) All() []domain.BoardDescriptor {
	cp := make([]domain.BoardDescriptor, len(r.boards))
	copy(cp, r.boards)
	return cp
}

func (r *Registry) Len() int { return len(r.boards) }

// PriorityOf is the relevance score the aggregator sorts filtered postings
// by; unknown sources rank last.
func (r *Registry) PriorityOf(sourceName string) int {
	for _, b := range r.boards {
		if strings.EqualFold(b.Name, sourceName) {
			return b.Priority
		}
	}
	return 0
}

// Recommend ranks boards for the requested locations and stacks by a
// weighted mix of priority and the best matching regional friendliness,
// with a small tag bonus. Ties break by name so output is deterministic.
func (r *Registry) Recommend(locations, stacks []string) []domain.BoardDescriptor {
	type scored struct {
		b     domain.BoardDescriptor
		score int
	}

	regions := regionsFor(locations)

	ranked := make([]scored, 0, len(r.boards))
	for _, b := range r.boards {
		s := b.Priority * 2

		best := 0
		for _, reg := range regions {
			if f := b.RegionalFriendliness[reg]; f > best {
				best = f
			}
		}
		if len(regions) == 0 {
			best = b.RegionalFriendliness[RegionWorldwide]
		}
		s += best * 3

		for _, stack := range stacks {
			if hasTag(b.Tags, stack) {
				s += 2
				break
			}
		}
		ranked = append(ranked, scored{b: b, score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].b.Name < ranked[j].b.Name
	})

	out := make([]domain.BoardDescriptor, len(ranked))
	for i, s := range ranked {
		out[i] = s.b
	}
	return out
}

var regionByToken = map[string]string{
	"worldwide": RegionWorldwide, "anywhere": RegionWorldwide, "global": RegionWorldwide,
	"united states": RegionNorthAmerica, "usa": RegionNorthAmerica, "canada": RegionNorthAmerica,
	"north america": RegionNorthAmerica, "mexico": RegionNorthAmerica,
	"europe": RegionEurope, "united kingdom": RegionEurope, "uk": RegionEurope,
	"germany": RegionEurope, "france": RegionEurope, "spain": RegionEurope,
	"netherlands": RegionEurope, "poland": RegionEurope, "portugal": RegionEurope,
	"ukraine": RegionEurope, "ireland": RegionEurope,
	"india": RegionAsiaPacific, "singapore": RegionAsiaPacific, "australia": RegionAsiaPacific,
	"japan": RegionAsiaPacific, "asia": RegionAsiaPacific,
	"brazil": RegionLatinAmerica, "argentina": RegionLatinAmerica, "latin america": RegionLatinAmerica,
}

func regionsFor(locations []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, loc := range locations {
		if reg, ok := regionByToken[strings.ToLower(strings.TrimSpace(loc))]; ok && !seen[reg] {
			seen[reg] = true
			out = append(out, reg)
		}
	}
	return out
}

func hasTag(tags []string, stack string) bool {
	stack = strings.ToLower(strings.TrimSpace(stack))
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), stack) || strings.Contains(stack, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
