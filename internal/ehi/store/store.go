// Package store persists score records as a flat JSON array on disk.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

// Load reads all score records from path. A missing file is an empty history,
// not an error; a malformed file is an error.
func Load(path string) ([]schema.ScoreRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []schema.ScoreRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// Append adds a record to the history at path, creating the file and parent
// directories on first use. Existing records are preserved. The history is
// written to a temp file and renamed into place, so a crash mid-write never
// leaves a truncated history behind.
func Append(path string, rec *schema.ScoreRecord) error {
	records, err := Load(path)
	if err != nil {
		return err
	}
	records = append(records, *rec)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// LatestPerCompany returns the most recent record for each company, sorted by
// company name.
func LatestPerCompany(records []schema.ScoreRecord) []schema.ScoreRecord {
	latest := make(map[string]schema.ScoreRecord)
	for _, r := range records {
		if existing, ok := latest[r.CompanyName]; !ok || r.CalculatedAt.After(existing.CalculatedAt) {
			latest[r.CompanyName] = r
		}
	}

	result := make([]schema.ScoreRecord, 0, len(latest))
	for _, r := range latest {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CompanyName < result[j].CompanyName
	})
	return result
}

// Latest returns the most recent record for a company, or nil if none exists.
// An empty company matches any record.
func Latest(records []schema.ScoreRecord, company string) *schema.ScoreRecord {
	var latest *schema.ScoreRecord
	for i := range records {
		r := &records[i]
		if company != "" && r.CompanyName != company {
			continue
		}
		if latest == nil || r.CalculatedAt.After(latest.CalculatedAt) {
			latest = r
		}
	}
	return latest
}
