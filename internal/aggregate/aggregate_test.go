package aggregate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/boards"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

type fakeScraper struct {
	postings map[string][]domain.JobPosting
	fail     map[string]error
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	delay    time.Duration
}

func (f *fakeScraper) ScrapeBoard(ctx context.Context, b domain.BoardDescriptor) ([]domain.JobPosting, error) {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		old := f.maxSeen.Load()
		if cur <= old || f.maxSeen.CompareAndSwap(old, cur) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if err := f.fail[b.Name]; err != nil {
		return nil, err
	}
	return f.postings[b.Name], nil
}

func posting(company, title, url, source string) domain.JobPosting {
	return domain.JobPosting{
		Company: company, Title: title, URL: url, SourcePlatform: source,
		RemotePolicy: domain.RemoteFully,
	}
}

func threeBoards() *boards.Registry {
	return boards.NewRegistry(
		domain.BoardDescriptor{Name: "alpha", Priority: 9},
		domain.BoardDescriptor{Name: "beta", Priority: 7},
		domain.BoardDescriptor{Name: "gamma", Priority: 5},
	)
}

func TestAggregatePartialFailureIsolated(t *testing.T) {
	fs := &fakeScraper{
		postings: map[string][]domain.JobPosting{
			"alpha": {posting("Acme", "Go Engineer", "https://a/1", "alpha")},
			"gamma": {posting("Globex", "Go Developer", "https://g/1", "gamma")},
		},
		fail: map[string]error{"beta": errors.New("fetch blew up")},
	}

	res := New(fs, Config{}).Aggregate(context.Background(), domain.AggregationRequest{}, threeBoards())

	assert.Len(t, res.PostingsBySource, 2) // N-K succeeding sources
	assert.Len(t, res.FailedSources, 1)    // K failures
	assert.Contains(t, res.FailedSources, "beta")
	assert.Contains(t, res.FailedSources["beta"], "fetch blew up")
	assert.Len(t, res.AllPostings, 2)

	for _, p := range res.FilteredPostings {
		assert.NotEqual(t, "beta", p.SourcePlatform)
	}
}

func TestAggregateHonorsConcurrencyCap(t *testing.T) {
	reg := boards.NewRegistry(
		domain.BoardDescriptor{Name: "b1"}, domain.BoardDescriptor{Name: "b2"},
		domain.BoardDescriptor{Name: "b3"}, domain.BoardDescriptor{Name: "b4"},
		domain.BoardDescriptor{Name: "b5"}, domain.BoardDescriptor{Name: "b6"},
	)
	fs := &fakeScraper{delay: 20 * time.Millisecond}

	New(fs, Config{MaxConcurrent: 2}).Aggregate(context.Background(), domain.AggregationRequest{}, reg)

	assert.LessOrEqual(t, fs.maxSeen.Load(), int32(2))
}

func TestAggregateEmptyResultGuidance(t *testing.T) {
	fs := &fakeScraper{}
	res := New(fs, Config{}).Aggregate(context.Background(),
		domain.AggregationRequest{Stacks: []string{"cobol"}}, threeBoards())

	assert.Empty(t, res.FilteredPostings)
	assert.NotEmpty(t, res.Guidance)
	assert.Empty(t, res.FailedSources)
}

func TestStackFilter(t *testing.T) {
	p := domain.JobPosting{Title: "Backend Engineer", RequiredSkills: []string{"Go", "Kubernetes"}}

	assert.True(t, stackMatches(p, []string{"go"}))
	assert.True(t, stackMatches(p, []string{"kube"}))
	assert.False(t, stackMatches(p, []string{"Rust"}))
}

func TestStackFilterMatchesMultiWordKeyword(t *testing.T) {
	ml := domain.JobPosting{Title: "Machine Learning Engineer"}
	be := domain.JobPosting{Title: "Backend Engineer"}

	assert.True(t, stackMatches(ml, []string{"machine learning"}))
	assert.False(t, stackMatches(be, []string{"machine learning"}))

	out := filterByStack([]domain.JobPosting{ml, be}, []string{"Machine Learning"})
	require.Len(t, out, 1)
	assert.Equal(t, "Machine Learning Engineer", out[0].Title)
}

func TestSalaryFilter(t *testing.T) {
	max90 := 90000
	withMax := domain.JobPosting{Title: "A", SalaryMax: &max90}
	noMax := domain.JobPosting{Title: "B"}

	out := filterBySalary([]domain.JobPosting{withMax, noMax}, 100000)
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Title) // missing data never excludes

	out = filterBySalary([]domain.JobPosting{withMax, noMax}, 0)
	assert.Len(t, out, 2)

	out = filterBySalary([]domain.JobPosting{withMax}, 90000)
	assert.Len(t, out, 1)
}

func TestLocationFilter(t *testing.T) {
	de := domain.JobPosting{Country: "Germany", RemotePolicy: domain.RemoteOnSite}
	remote := domain.JobPosting{Country: "", RemotePolicy: domain.RemoteFully}
	friendly := domain.JobPosting{Country: "Japan", RemotePolicy: domain.RemoteFriendly}
	us := domain.JobPosting{Country: "United States", RemotePolicy: domain.RemoteOnSite}

	out := filterByLocation([]domain.JobPosting{de, remote, friendly, us}, []string{"Germany"})
	assert.Len(t, out, 3) // remote + friendly are match-all; US dropped
}

func TestDedupKeepsFirst(t *testing.T) {
	a := posting("Acme", "Backend Engineer", "https://acme.com/jobs/1", "alpha")
	b := posting("acme", "backend engineer", "https://ACME.com/jobs/1", "gamma")
	b.Country = "marker"

	out := dedupe([]domain.JobPosting{a, b})
	require.Len(t, out, 1)
	assert.Equal(t, "alpha", out[0].SourcePlatform)
	assert.NotEqual(t, "marker", out[0].Country)
}

func TestSortByRelevance(t *testing.T) {
	reg := threeBoards()
	now := time.Now()
	older := now.Add(-48 * time.Hour)

	a := posting("A", "x", "https://1", "gamma")
	b := posting("B", "y", "https://2", "alpha")
	b.PostedDate = &older
	c := posting("C", "z", "https://3", "alpha")
	c.PostedDate = &now

	got := []domain.JobPosting{a, b, c}
	sortByRelevance(got, reg)

	assert.Equal(t, "C", got[0].Company) // alpha board, newest
	assert.Equal(t, "B", got[1].Company) // alpha board, older
	assert.Equal(t, "A", got[2].Company) // gamma board
}

func TestAggregateCancellationRetainsCompleted(t *testing.T) {
	reg := boards.NewRegistry(
		domain.BoardDescriptor{Name: "fast"},
		domain.BoardDescriptor{Name: "slow"},
	)
	fs := &fakeScraper{
		postings: map[string][]domain.JobPosting{
			"fast": {posting("Acme", "Go Engineer", "https://a/1", "fast")},
		},
	}
	// slow board blocks on ctx; fast board returns immediately
	slow := &slowScraper{inner: fs}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res := New(slow, Config{}).Aggregate(ctx, domain.AggregationRequest{}, reg)

	assert.Contains(t, res.PostingsBySource, "fast")
	assert.Contains(t, res.FailedSources, "slow")
	assert.Len(t, res.AllPostings, 1)
}

type slowScraper struct{ inner *fakeScraper }

func (s *slowScraper) ScrapeBoard(ctx context.Context, b domain.BoardDescriptor) ([]domain.JobPosting, error) {
	if b.Name == "slow" {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.inner.ScrapeBoard(ctx, b)
}
