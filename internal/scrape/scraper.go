// Package scrape orchestrates one company: fetch, classify, extract,
// normalize. The result is always returned as data; expected failures never
// escape as panics or errors.
package scrape

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/ats"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/extract"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/normalize"
)

var validate = validator.New()

// Scraper is stateless and safe to use from many goroutines; all mutable
// state lives in the per-call result.
type Scraper struct {
	fc         *fetch.Client
	registry   *extract.Registry
	norm       *normalize.Normalizer
	detectOnly bool
}

type Option func(*Scraper)

// WithDetectOnly stops after classification and skips extraction.
func WithDetectOnly() Option {
	return func(s *Scraper) { s.detectOnly = true }
}

// WithSkills swaps in an extended skill dictionary.
func WithSkills(d normalize.Dictionary) Option {
	return func(s *Scraper) { s.norm = normalize.New(d) }
}

func New(fc *fetch.Client, opts ...Option) *Scraper {
	s := &Scraper{
		fc:       fc,
		registry: extract.NewRegistry(),
		norm:     normalize.New(nil),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ScrapeCompany always returns a result. Network failures and precondition
// violations terminate in StageFailed with Success=false; a page that could
// not be parsed yields a warning and an empty posting list, not a failure.
func (s *Scraper) ScrapeCompany(ctx context.Context, name, careersURL string) domain.CompanyScrapeResult {
	target := domain.ScrapeTarget{Name: name, CareersURL: careersURL}
	res := domain.CompanyScrapeResult{
		Target:         target,
		Classification: domain.Classification{Type: domain.ATSUnknown},
		Stage:          domain.StageNotFetched,
	}

	if err := validate.Struct(target); err != nil {
		res.Stage = domain.StageFailed
		res.Error = fmt.Sprintf("precondition: %v", err)
		return res
	}

	page, err := s.fc.Get(ctx, careersURL)
	if err != nil {
		res.Stage = domain.StageFailed
		res.Error = err.Error()
		return res
	}
	res.Stage = domain.StageFetched

	res.Classification = ats.Classify(page.Body, page.FinalURL)
	res.Stage = domain.StageClassified

	if s.detectOnly {
		res.Success = true
		res.Stage = domain.StageDone
		return res
	}

	ex := s.registry.ForType(res.Classification.Type)
	raws, err := ex.ExtractListings(page)
	if err != nil {
		// unusable page, not a failed scrape
		log.Printf("[scrape:%s] extract warning company=%q url=%q err=%v", ex.Name(), name, careersURL, err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("extract (%s): %v", ex.Name(), err))
		raws = nil
	}
	res.Stage = domain.StageExtracted

	postings := make([]domain.JobPosting, 0, len(raws))
	for _, raw := range raws {
		postings = append(postings, s.norm.Normalize(raw, name, string(res.Classification.Type)))
	}

	res.Postings = postings
	res.Success = true
	res.Stage = domain.StageDone
	return res
}
