package domain

// ATSType identifies the vendor pattern a career page matched.
type ATSType string

const (
	ATSGreenhouse      ATSType = "greenhouse"
	ATSLever           ATSType = "lever"
	ATSWorkday         ATSType = "workday"
	ATSSmartRecruiters ATSType = "smartrecruiters"
	ATSCustom          ATSType = "custom"
	ATSUnknown         ATSType = "unknown"
)

// Classification is total: every page resolves to exactly one ATSType,
// defaulting to ATSUnknown. Identifier is the vendor slug/tenant when one
// could be pulled from the URL or page metadata, otherwise empty.
type Classification struct {
	Type       ATSType `json:"type"`
	Identifier string  `json:"identifier,omitempty"`
}

// ScrapeTarget identifies one company to scrape. Created by the caller.
type ScrapeTarget struct {
	Name       string `json:"name" validate:"required"`
	CareersURL string `json:"careersUrl" validate:"required,url"`
}

// Stage is the per-scrape state machine. Failed is terminal and reachable
// from any non-terminal stage; it always carries a captured error and is
// returned as data, never thrown.
type Stage string

const (
	StageNotFetched Stage = "not_fetched"
	StageFetched    Stage = "fetched"
	StageClassified Stage = "classified"
	StageExtracted  Stage = "extracted"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// CompanyScrapeResult is always returned, never thrown. Success is false only
// for recoverable fetch failures (and precondition violations); a page that
// parsed to zero postings is still a success.
type CompanyScrapeResult struct {
	Target         ScrapeTarget   `json:"target"`
	Classification Classification `json:"classification"`
	Stage          Stage          `json:"stage"`
	Success        bool           `json:"success"`
	Postings       []JobPosting   `json:"postings"`
	Error          string         `json:"error,omitempty"`
	Warnings       []string       `json:"warnings,omitempty"`
}
