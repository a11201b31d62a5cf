package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

func record(company string, total int, at time.Time) *schema.ScoreRecord {
	return &schema.ScoreRecord{
		CompanyName: company,
		Dimensions: map[string]int{
			schema.DimTrustReliability:  total / 5,
			schema.DimEngagement:        total / 5,
			schema.DimReach:             total / 5,
			schema.DimEnablement:        total / 5,
			schema.DimEcosystemStrategy: total - 4*(total/5),
		},
		TotalScore:   total,
		Grade:        "C",
		CalculatedAt: at,
	}
}

func TestLoadMissingFile(t *testing.T) {
	records, err := Load(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestAppendPreservesHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ehi_scores.json")
	now := time.Now().UTC()

	require.NoError(t, Append(path, record("acme", 70, now.Add(-time.Hour))))
	require.NoError(t, Append(path, record("acme", 75, now)))
	require.NoError(t, Append(path, record("globex", 55, now)))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "acme", records[0].CompanyName)
	assert.Equal(t, 70, records[0].TotalScore)
	assert.Equal(t, 75, records[1].TotalScore)
	assert.Equal(t, "globex", records[2].CompanyName)
}

func TestAppendLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ehi_scores.json")

	require.NoError(t, Append(path, record("acme", 70, time.Now().UTC())))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ehi_scores.json", entries[0].Name())
}

func TestLatest(t *testing.T) {
	now := time.Now().UTC()
	records := []schema.ScoreRecord{
		*record("acme", 70, now.Add(-2*time.Hour)),
		*record("acme", 75, now),
		*record("globex", 55, now.Add(-time.Hour)),
	}

	got := Latest(records, "acme")
	require.NotNil(t, got)
	assert.Equal(t, 75, got.TotalScore)

	any := Latest(records, "")
	require.NotNil(t, any)
	assert.Equal(t, 75, any.TotalScore)

	assert.Nil(t, Latest(records, "initech"))
}

func TestLatestPerCompany(t *testing.T) {
	now := time.Now().UTC()
	records := []schema.ScoreRecord{
		*record("globex", 55, now),
		*record("acme", 70, now.Add(-2*time.Hour)),
		*record("acme", 75, now),
	}

	got := LatestPerCompany(records)
	require.Len(t, got, 2)
	assert.Equal(t, "acme", got[0].CompanyName)
	assert.Equal(t, 75, got[0].TotalScore)
	assert.Equal(t, "globex", got[1].CompanyName)
}
