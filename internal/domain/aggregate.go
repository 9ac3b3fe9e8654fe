package domain

// AggregationRequest narrows a multi-board aggregation. Empty sets mean
// "no constraint"; MinSalary 0 disables the salary floor.
type AggregationRequest struct {
	Stacks    []string `json:"stacks"`
	Locations []string `json:"locations"`
	MinSalary int      `json:"minSalary"`
}

// AggregationResult carries everything a presentation collaborator needs:
// the raw fan-in, per-source counts, the filtered/deduped set, and every
// per-board failure isolated into FailedSources.
type AggregationResult struct {
	AllPostings      []JobPosting      `json:"allPostings"`
	PostingsBySource map[string]int    `json:"postingsBySource"`
	FilteredPostings []JobPosting      `json:"filteredPostings"`
	FailedSources    map[string]string `json:"failedSources"`
	Guidance         string            `json:"guidance,omitempty"`
}
