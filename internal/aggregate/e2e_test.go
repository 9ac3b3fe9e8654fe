package aggregate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/boards"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/scrape"
)

const boardPage = `<html><body>
<h1>Open positions</h1>
<a href="/jobs/1">Go Backend Engineer (Remote)</a>
<a href="/jobs/2">Platform Engineer (Remote)</a>
</body></html>`

func TestAggregateEndToEnd(t *testing.T) {
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(boardPage))
	}))
	defer okSrv.Close()

	okSrv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(boardPage))
	}))
	defer okSrv2.Close()

	downSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := downSrv.URL
	downSrv.Close() // board ranked 7 dies during fetch

	reg := boards.NewRegistry(
		domain.BoardDescriptor{Name: "primary", URL: okSrv.URL, Priority: 9},
		domain.BoardDescriptor{Name: "flaky", URL: downURL, Priority: 7},
		domain.BoardDescriptor{Name: "secondary", URL: okSrv2.URL, Priority: 5},
	)

	fc := fetch.NewClient(fetch.Config{
		RetryWait:    5 * time.Millisecond,
		PerHostRate:  1000,
		PerHostBurst: 1000,
	})
	agg := New(&CompanyBoardScraper{Scraper: scrape.New(fc)}, Config{MaxConcurrent: 3})

	res := agg.Aggregate(context.Background(), domain.AggregationRequest{Stacks: []string{"engineer"}}, reg)

	assert.Len(t, res.PostingsBySource, 2)
	require.Contains(t, res.FailedSources, "flaky")
	assert.NotContains(t, res.PostingsBySource, "flaky")

	require.NotEmpty(t, res.FilteredPostings)
	for _, p := range res.FilteredPostings {
		assert.NotEqual(t, "flaky", p.SourcePlatform)
	}

	// relevance sort: primary (priority 9) postings come first
	assert.Equal(t, "primary", res.FilteredPostings[0].SourcePlatform)
}
