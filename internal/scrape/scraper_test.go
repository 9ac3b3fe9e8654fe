package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/fetch"
)

const greenhouseBoard = `<html><body>
<script src="https://boards.greenhouse.io/embed/job_board?for=acme"></script>
<div class="opening">
  <a href="https://boards.greenhouse.io/acme/jobs/4001234">Backend Engineer</a>
  <span class="location">Berlin, Germany</span>
</div>
</body></html>`

func fastClient() *fetch.Client {
	return fetch.NewClient(fetch.Config{
		RetryWait:    5 * time.Millisecond,
		PerHostRate:  1000,
		PerHostBurst: 1000,
	})
}

func TestScrapeCompanyGreenhouse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(greenhouseBoard))
	}))
	defer srv.Close()

	res := New(fastClient()).ScrapeCompany(context.Background(), "Acme", srv.URL)

	assert.True(t, res.Success)
	assert.Equal(t, domain.StageDone, res.Stage)
	assert.Equal(t, domain.ATSGreenhouse, res.Classification.Type)
	assert.Equal(t, "acme", res.Classification.Identifier)
	require.Len(t, res.Postings, 1)
	assert.Equal(t, "Acme", res.Postings[0].Company)
	assert.Equal(t, "Backend Engineer", res.Postings[0].Title)
	assert.Equal(t, "Germany", res.Postings[0].Country)
	assert.Empty(t, res.Error)
}

func TestScrapeCompanyUnreachableNeverPanics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := srv.URL
	srv.Close()

	var res domain.CompanyScrapeResult
	assert.NotPanics(t, func() {
		res = New(fastClient()).ScrapeCompany(context.Background(), "Gone", dead)
	})
	assert.False(t, res.Success)
	assert.Equal(t, domain.StageFailed, res.Stage)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Postings)
}

func TestScrapeCompanyMalformedURL(t *testing.T) {
	res := New(fastClient()).ScrapeCompany(context.Background(), "Acme", "not a url at all")
	assert.False(t, res.Success)
	assert.Equal(t, domain.StageFailed, res.Stage)
	assert.NotEmpty(t, res.Error)
}

func TestScrapeCompanyEmptyNameFailsFast(t *testing.T) {
	res := New(fastClient()).ScrapeCompany(context.Background(), "", "https://example.com")
	assert.False(t, res.Success)
	assert.Equal(t, domain.StageFailed, res.Stage)
	assert.Contains(t, res.Error, "precondition")
}

func TestScrapeCompanyZeroPostingsIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>We'll post jobs soon.</body></html>"))
	}))
	defer srv.Close()

	res := New(fastClient()).ScrapeCompany(context.Background(), "Quiet", srv.URL)
	assert.True(t, res.Success)
	assert.Empty(t, res.Postings)
	assert.Empty(t, res.Error)
}

func TestScrapeCompanyDetectOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(greenhouseBoard))
	}))
	defer srv.Close()

	res := New(fastClient(), WithDetectOnly()).ScrapeCompany(context.Background(), "Acme", srv.URL)
	assert.True(t, res.Success)
	assert.Equal(t, domain.ATSGreenhouse, res.Classification.Type)
	assert.Empty(t, res.Postings)
	assert.Equal(t, domain.StageDone, res.Stage)
}

func TestScrapeCompanyLeverJSONFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"x1","text":"Go Developer","hostedUrl":"https://jobs.lever.co/acme/x1","categories":{"location":"Remote"}}]`))
	}))
	defer srv.Close()

	// detector keys off the body marker; the feed itself mentions lever URLs
	res := New(fastClient()).ScrapeCompany(context.Background(), "Acme", srv.URL)
	assert.True(t, res.Success)
	assert.Equal(t, domain.ATSLever, res.Classification.Type)
	require.Len(t, res.Postings, 1)
	assert.Equal(t, domain.RemoteFully, res.Postings[0].RemotePolicy)
}
