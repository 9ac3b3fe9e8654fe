// Package aggregate fans one scrape task out per registered board under a
// bounded concurrency cap, then merges results in a single-threaded join.
// One bad board never blocks or fails the rest.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/boards"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/scrape"
)

// BoardScraper runs the company-scraper pipeline against one board source.
type BoardScraper interface {
	ScrapeBoard(ctx context.Context, board domain.BoardDescriptor) ([]domain.JobPosting, error)
}

type Config struct {
	MaxConcurrent int           // cap on in-flight board scrapes; default 6
	BoardTimeout  time.Duration // per-board deadline; default 30s
}

func (c Config) withDefaults() Config {
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 6
	}
	if c.BoardTimeout <= 0 {
		c.BoardTimeout = 30 * time.Second
	}
	return c
}

type Aggregator struct {
	scraper BoardScraper
	cfg     Config
}

func New(scraper BoardScraper, cfg Config) *Aggregator {
	return &Aggregator{scraper: scraper, cfg: cfg.withDefaults()}
}

// guidance is surfaced instead of an error when filtering leaves nothing.
const guidance = "no postings matched the filters; try broadening stacks or locations, or lowering the salary floor"

// Aggregate dispatches one task per board, joins, then applies the fixed
// pipeline: flatten, stack filter, location filter, salary filter, dedup,
// relevance sort. Per-board failures land in FailedSources. Results that
// completed before a caller cancellation are retained.
func (a *Aggregator) Aggregate(ctx context.Context, req domain.AggregationRequest, registry *boards.Registry) domain.AggregationResult {
	boardList := registry.All()

	type slot struct {
		postings []domain.JobPosting
		err      error
		done     bool
	}
	slots := make([]slot, len(boardList))

	var g errgroup.Group
	g.SetLimit(a.cfg.MaxConcurrent)

	for i, b := range boardList {
		i, b := i, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[i] = slot{err: err, done: true}
				return nil
			}

			bctx, cancel := context.WithTimeout(ctx, a.cfg.BoardTimeout)
			defer cancel()

			log.Printf("[board:%s] scraping %s", b.Name, b.URL)
			ps, err := a.scraper.ScrapeBoard(bctx, b)
			if err != nil {
				log.Printf("[board:%s] error: %v", b.Name, err)
			}
			slots[i] = slot{postings: ps, err: err, done: true}
			return nil // best effort; never cancel siblings
		})
	}
	_ = g.Wait()

	// single-threaded join
	res := domain.AggregationResult{
		PostingsBySource: make(map[string]int),
		FailedSources:    make(map[string]string),
	}
	for i, b := range boardList {
		s := slots[i]
		switch {
		case !s.done:
			res.FailedSources[b.Name] = context.Canceled.Error()
		case s.err != nil:
			res.FailedSources[b.Name] = s.err.Error()
		default:
			res.PostingsBySource[b.Name] = len(s.postings)
			res.AllPostings = append(res.AllPostings, s.postings...)
		}
	}

	filtered := filterByStack(res.AllPostings, req.Stacks)
	filtered = filterByLocation(filtered, req.Locations)
	filtered = filterBySalary(filtered, req.MinSalary)
	filtered = dedupe(filtered)
	sortByRelevance(filtered, registry)

	res.FilteredPostings = filtered
	if len(filtered) == 0 {
		res.Guidance = guidance
	}
	return res
}

// CompanyBoardScraper adapts the single-company scraper to board sources:
// each board is fetched, classified (usually custom/unknown), and run
// through extraction + normalization, then stamped with the board name.
type CompanyBoardScraper struct {
	Scraper *scrape.Scraper
}

func (c *CompanyBoardScraper) ScrapeBoard(ctx context.Context, board domain.BoardDescriptor) ([]domain.JobPosting, error) {
	res := c.Scraper.ScrapeCompany(ctx, board.Name, board.URL)
	if !res.Success {
		if res.Error != "" {
			return nil, errors.New(res.Error)
		}
		return nil, fmt.Errorf("board %s: scrape failed", board.Name)
	}
	for i := range res.Postings {
		res.Postings[i].SourcePlatform = board.Name
	}
	return res.Postings, nil
}
