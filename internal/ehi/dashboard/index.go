// Package dashboard provides a web UI over persisted EHI score records.
package dashboard

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
	"github.com/ecosystem-labs/ehi/internal/ehi/store"
)

// IndexEntry is a denormalized record summary for fast listing.
type IndexEntry struct {
	Company    string
	Grade      string
	TotalScore int
	Dimensions map[string]int
	Timestamp  time.Time
}

// Key identifies the entry in detail URLs: company plus unix timestamp.
func (e IndexEntry) Key() string { return strconv.FormatInt(e.Timestamp.Unix(), 10) }

// ListOptions controls filtering and sorting of score listings.
type ListOptions struct {
	Company   string // filter by company name substring (case-insensitive)
	Grade     string // filter by letter grade
	SortField string // "timestamp", "company", "score"
	SortDesc  bool
}

// Index is an in-memory view over the score history file.
type Index struct {
	mu      sync.RWMutex
	entries []IndexEntry
	records []schema.ScoreRecord
	path    string
	modTime time.Time
	size    int64
}

// NewIndex creates an index backed by a score history file.
func NewIndex(path string) *Index {
	return &Index{path: path}
}

// Load reads the score history from disk into the index. A missing file
// yields an empty index.
func (idx *Index) Load() error {
	var modTime time.Time
	var size int64
	if fi, err := os.Stat(idx.path); err == nil {
		modTime = fi.ModTime()
		size = fi.Size()
	}

	records, err := store.Load(idx.path)
	if err != nil {
		return fmt.Errorf("loading score history: %w", err)
	}

	entries := make([]IndexEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, IndexEntry{
			Company:    r.CompanyName,
			Grade:      r.Grade,
			TotalScore: r.TotalScore,
			Dimensions: r.Dimensions,
			Timestamp:  r.CalculatedAt,
		})
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = entries
	idx.records = records
	idx.modTime = modTime
	idx.size = size
	return nil
}

// ReloadIfStale re-reads the history file when its mtime or size has moved
// since the last load, so records appended after startup become visible.
func (idx *Index) ReloadIfStale() error {
	fi, err := os.Stat(idx.path)
	if err != nil {
		return nil
	}

	idx.mu.RLock()
	fresh := fi.Size() == idx.size && !fi.ModTime().After(idx.modTime)
	idx.mu.RUnlock()
	if fresh {
		return nil
	}
	return idx.Load()
}

// List returns entries matching the given options.
func (idx *Index) List(opts ListOptions) []IndexEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var filtered []IndexEntry
	for _, e := range idx.entries {
		if opts.Company != "" && !strings.Contains(strings.ToLower(e.Company), strings.ToLower(opts.Company)) {
			continue
		}
		if opts.Grade != "" && e.Grade != opts.Grade {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEntries(filtered, opts.SortField, opts.SortDesc)
	return filtered
}

// Get returns the full record for a company at a given unix timestamp key.
func (idx *Index) Get(company, key string) (*schema.ScoreRecord, error) {
	ts, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid record key %q", key)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	for i := range idx.records {
		r := &idx.records[i]
		if r.CompanyName == company && r.CalculatedAt.Unix() == ts {
			rec := *r
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("score record not found: %s@%s", company, key)
}

// LatestPerCompany returns the most recent entry for each company.
func (idx *Index) LatestPerCompany() []IndexEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	latest := make(map[string]IndexEntry)
	for _, e := range idx.entries {
		if existing, ok := latest[e.Company]; !ok || e.Timestamp.After(existing.Timestamp) {
			latest[e.Company] = e
		}
	}

	result := make([]IndexEntry, 0, len(latest))
	for _, e := range latest {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Company < result[j].Company
	})
	return result
}

// Count returns the total number of indexed records.
func (idx *Index) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

func sortEntries(entries []IndexEntry, field string, desc bool) {
	sort.Slice(entries, func(i, j int) bool {
		var less bool
		switch field {
		case "company":
			less = entries[i].Company < entries[j].Company
		case "score":
			less = entries[i].TotalScore < entries[j].TotalScore
		default: // "timestamp" or empty
			less = entries[i].Timestamp.Before(entries[j].Timestamp)
		}
		if desc {
			return !less
		}
		return less
	})
}
