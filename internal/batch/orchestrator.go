// Package batch runs the company scraper over a caller-supplied target list.
// Unlike board aggregation this path is deliberately serialized, with a
// courtesy pause between calls, since each target is usually a different
// third-party site.
package batch

import (
	"context"
	"log"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

// CompanyScraper is what the orchestrator drives; satisfied by
// scrape.Scraper and by test fakes.
type CompanyScraper interface {
	ScrapeCompany(ctx context.Context, name, careersURL string) domain.CompanyScrapeResult
}

// Summary is the end-of-batch rollup.
type Summary struct {
	Targets       int                    `json:"targets"`
	Succeeded     int                    `json:"succeeded"`
	Failed        int                    `json:"failed"`
	TotalPostings int                    `json:"totalPostings"`
	ByATSType     map[domain.ATSType]int `json:"byAtsType"`
}

type Orchestrator struct {
	Scraper CompanyScraper
	Pacer   Pacer
	Limit   int // max targets per run; <=0 means all
}

// Run iterates at most Limit targets sequentially, pacing between calls and
// continuing past per-target failures. Cancelling ctx stops iteration;
// results already collected are still returned.
func (o *Orchestrator) Run(ctx context.Context, targets []domain.ScrapeTarget) ([]domain.CompanyScrapeResult, Summary) {
	limit := o.Limit
	if limit <= 0 || limit > len(targets) {
		limit = len(targets)
	}

	summary := Summary{ByATSType: make(map[domain.ATSType]int)}
	results := make([]domain.CompanyScrapeResult, 0, limit)

	for i, t := range targets[:limit] {
		if ctx.Err() != nil {
			break
		}
		if i > 0 && o.Pacer != nil {
			if err := o.Pacer.Pause(ctx); err != nil {
				break
			}
		}

		res := o.Scraper.ScrapeCompany(ctx, t.Name, t.CareersURL)
		results = append(results, res)

		if res.Success {
			log.Printf("[batch] company=%q ats=%s postings=%d", t.Name, res.Classification.Type, len(res.Postings))
		} else {
			log.Printf("[batch] company=%q failed: %s", t.Name, res.Error)
		}
	}

	summary.Targets = len(results)
	for _, res := range results {
		summary.ByATSType[res.Classification.Type]++
		if res.Success {
			summary.Succeeded++
			summary.TotalPostings += len(res.Postings)
		} else {
			summary.Failed++
		}
	}
	return results, summary
}
