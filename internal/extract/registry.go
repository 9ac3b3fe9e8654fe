package extract

import (
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/extract/greenhouse"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/extract/lever"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/extract/smartrecruiters"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/extract/workday"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
)

// Extractor is the one capability every vendor strategy implements.
// Extraction is best effort: malformed fragments are skipped, and only an
// unusable whole page produces an error.
type Extractor interface {
	Name() string
	ExtractListings(page *fetch.Page) ([]domain.RawListing, error)
}

// Registry dispatches by ATS type. Adding a vendor means adding one map
// entry; custom/unknown pages fall through to the generic heuristic.
type Registry struct {
	byType   map[domain.ATSType]Extractor
	fallback Extractor
}

func NewRegistry() *Registry {
	return &Registry{
		byType: map[domain.ATSType]Extractor{
			domain.ATSGreenhouse:      greenhouse.New(),
			domain.ATSLever:           lever.New(),
			domain.ATSWorkday:         workday.New(),
			domain.ATSSmartRecruiters: smartrecruiters.New(),
		},
		fallback: NewGeneric(),
	}
}

func (r *Registry) ForType(t domain.ATSType) Extractor {
	if ex, ok := r.byType[t]; ok {
		return ex
	}
	return r.fallback
}
