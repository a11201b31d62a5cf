package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ehi.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
company: acme
metrics:
  documentation_score: 3
  partner_program_score: 2
  has_status_page: true
`)

	a, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", a.Company)
	require.NotNil(t, a.Metrics.DocumentationScore)
	assert.Equal(t, 3.0, *a.Metrics.DocumentationScore)
	require.NotNil(t, a.Metrics.PartnerProgramScore)
	assert.Equal(t, 2.0, *a.Metrics.PartnerProgramScore)
	require.NotNil(t, a.Metrics.HasStatusPage)
	assert.True(t, *a.Metrics.HasStatusPage)
	assert.Nil(t, a.Metrics.APIQualityScore)
}

func TestLoadUnknownKeyFails(t *testing.T) {
	path := writeFile(t, `
metrics:
  documantation_score: 3
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
