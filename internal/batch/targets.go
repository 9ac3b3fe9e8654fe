package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AlexOliinyk1/dotnet-career-intel-sub003/internal/domain"
)

// ParseTargetsCSV reads `Name,CareersUrl` rows. The header row is always
// skipped, and any line with fewer than two comma-separated fields is
// silently skipped rather than aborting the batch.
func ParseTargetsCSV(r io.Reader) ([]domain.ScrapeTarget, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read targets csv: %w", err)
	}

	var out []domain.ScrapeTarget
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < 2 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		url := strings.TrimSpace(rec[1])
		if name == "" || url == "" {
			continue
		}
		out = append(out, domain.ScrapeTarget{Name: name, CareersURL: url})
	}
	return out, nil
}

// ParseTargetsJSON reads a JSON array of {Name, CareersUrl} objects.
func ParseTargetsJSON(r io.Reader) ([]domain.ScrapeTarget, error) {
	var raw []struct {
		Name       string `json:"Name"`
		CareersURL string `json:"CareersUrl"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode targets json: %w", err)
	}

	out := make([]domain.ScrapeTarget, 0, len(raw))
	for _, t := range raw {
		name := strings.TrimSpace(t.Name)
		url := strings.TrimSpace(t.CareersURL)
		if name == "" || url == "" {
			continue
		}
		out = append(out, domain.ScrapeTarget{Name: name, CareersURL: url})
	}
	return out, nil
}
