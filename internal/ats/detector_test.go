package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

func TestClassifyKnownVendors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		url    string
		want   domain.ATSType
		wantID string
	}{
		{
			name:   "greenhouse board url",
			body:   "<html><body>Openings</body></html>",
			url:    "https://boards.greenhouse.io/acmeco",
			want:   domain.ATSGreenhouse,
			wantID: "acmeco",
		},
		{
			name:   "greenhouse embed in page body",
			body:   `<script src="https://boards.greenhouse.io/embed/job_board?for=stripe"></script>`,
			url:    "https://stripe.com/jobs",
			want:   domain.ATSGreenhouse,
			wantID: "stripe",
		},
		{
			name:   "lever hosted board",
			body:   `<div class="lever-jobs-embed"></div>`,
			url:    "https://jobs.lever.co/netflix",
			want:   domain.ATSLever,
			wantID: "netflix",
		},
		{
			name:   "workday tenant host",
			body:   "<html></html>",
			url:    "https://acme.wd5.myworkdayjobs.com/en-US/External",
			want:   domain.ATSWorkday,
			wantID: "acme",
		},
		{
			name:   "smartrecruiters board",
			body:   "postings",
			url:    "https://jobs.smartrecruiters.com/Bosch",
			want:   domain.ATSSmartRecruiters,
			wantID: "bosch",
		},
		{
			name:   "custom careers page",
			body:   "<h1>We're hiring</h1><p>Open positions below</p>",
			url:    "https://www.acme.dev/careers",
			want:   domain.ATSCustom,
			wantID: "acme.dev",
		},
		{
			name: "no signature at all",
			body: "<html><body>nothing to see</body></html>",
			url:  "https://example.com",
			want: domain.ATSUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.body, tt.url)
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, tt.wantID, got.Identifier)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	body := `<script src="https://boards.greenhouse.io/embed/job_board?for=acme"></script>`
	url := "https://acme.com/careers"
	first := Classify(body, url)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Classify(body, url))
	}
}

func TestClassifyPriorityBeatsScanOrder(t *testing.T) {
	// Page carries both generic job-board markers and a vendor fingerprint;
	// the vendor rule has the stronger priority and must win.
	body := `<h1>We're hiring</h1><p>Open positions</p>
<iframe src="https://jobs.lever.co/acme"></iframe>`
	got := Classify(body, "https://acme.io/careers")
	assert.Equal(t, domain.ATSLever, got.Type)
	assert.Equal(t, "acme", got.Identifier)
}

func TestClassifyNeverPanicsOnGarbage(t *testing.T) {
	inputs := []struct{ body, url string }{
		{"", ""},
		{"\x00\xff\xfe", "::not a url::"},
		{"<html", "http://%41:8080/"},
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Classify(in.body, in.url) })
		assert.Equal(t, domain.ATSUnknown, Classify(in.body, in.url).Type)
	}
}
