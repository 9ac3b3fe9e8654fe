package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/aggregate"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/batch"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/boards"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/config"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/normalize"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/scrape"
)

// Thin wiring only: flags, rendering, and persistence belong to external
// collaborators. Everything here is env-driven.
//
//	CAREERINTEL_CONFIG   path to config.yml (optional)
//	CAREERINTEL_MODE     "aggregate" (default) or "batch"
//	CAREERINTEL_TARGETS  CSV or JSON target list, batch mode only
func main() {
	_ = godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("CAREERINTEL_CONFIG"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			log.Fatalf("config load failed (%s): %v", path, err)
		}
	}

	fc := fetch.NewClient(fetch.Config{
		Timeout:      cfg.FetchTimeout(),
		RetryWait:    cfg.RetryWait(),
		PerHostRate:  cfg.Fetch.PerHostRate,
		PerHostBurst: cfg.Fetch.PerHostBurst,
		UserAgent:    cfg.Fetch.UserAgent,
	})

	skills := normalize.DefaultDictionary()
	for _, s := range cfg.Skills {
		skills = append(skills, normalize.SkillEntry{Name: s.Name, Aliases: s.Any})
	}
	scraper := scrape.New(fc, scrape.WithSkills(skills))

	ctx := context.Background()

	var out any
	switch mode := os.Getenv("CAREERINTEL_MODE"); mode {
	case "", "aggregate":
		agg := aggregate.New(
			&aggregate.CompanyBoardScraper{Scraper: scraper},
			aggregate.Config{
				MaxConcurrent: cfg.Aggregation.MaxConcurrent,
				BoardTimeout:  cfg.BoardTimeout(),
			},
		)
		req := domain.AggregationRequest{
			Stacks:    cfg.Filters.Stacks,
			Locations: cfg.Filters.Locations,
			MinSalary: cfg.Filters.MinSalary,
		}
		out = agg.Aggregate(ctx, req, boards.Default())

	case "batch":
		targets := loadTargets(os.Getenv("CAREERINTEL_TARGETS"))
		o := &batch.Orchestrator{
			Scraper: scraper,
			Pacer:   batch.FixedDelay{Interval: cfg.Pacing(), Jitter: cfg.PacingJitter()},
			Limit:   cfg.Batch.Limit,
		}
		results, summary := o.Run(ctx, targets)
		out = map[string]any{"results": results, "summary": summary}

	default:
		log.Fatalf("unknown CAREERINTEL_MODE %q", mode)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

func loadTargets(path string) []domain.ScrapeTarget {
	if path == "" {
		log.Fatal("batch mode needs CAREERINTEL_TARGETS")
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var targets []domain.ScrapeTarget
	if strings.EqualFold(filepath.Ext(path), ".json") {
		targets, err = batch.ParseTargetsJSON(f)
	} else {
		targets, err = batch.ParseTargetsCSV(f)
	}
	if err != nil {
		log.Fatalf("load targets %s: %v", path, err)
	}
	return targets
}
