package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-careerscout-automation/internal/discovery"
)

func TestReadCompanies(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []discovery.Company
	}{
		{
			name: "company/website headers",
			csv:  "company,website\nAcme,https://acme.com\n",
			want: []discovery.Company{{Name: "Acme", Website: "https://acme.com"}},
		},
		{
			name: "name/url headers",
			csv:  "name,url\nAcme,acme.com\n",
			want: []discovery.Company{{Name: "Acme", Website: "https://acme.com"}},
		},
		{
			name: "scheme coercion",
			csv:  "company,website\nAcme,www.acme.com\nBeta,http://beta.io\n",
			want: []discovery.Company{
				{Name: "Acme", Website: "https://www.acme.com"},
				{Name: "Beta", Website: "http://beta.io"},
			},
		},
		{
			name: "BOM tolerated and blanks skipped",
			csv:  "\ufeffcompany,website\nAcme,acme.com\n,missing.com\nNoSite,\n",
			want: []discovery.Company{{Name: "Acme", Website: "https://acme.com"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.csv), 0644))

			got, err := ReadCompanies(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCompaniesBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("foo,bar\nx,y\n"), 0644))

	_, err := ReadCompanies(path)
	assert.Error(t, err)
}

func TestRecorderAppendsWithHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rec := NewRecorder(path)

	ts := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	require.NoError(t, rec.Record(discovery.Outcome{
		Company:   discovery.Company{Name: "Acme", Website: "https://acme.com"},
		FoundURL:  "https://acme.com/careers",
		Strategy:  "direct-url",
		Timestamp: ts,
	}))
	require.NoError(t, rec.Record(discovery.Outcome{
		Company:   discovery.Company{Name: "Ghost Co", Website: "https://ghost.io"},
		Timestamp: ts,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"company,website,career_url,timestamp\n"+
			"Acme,https://acme.com,https://acme.com/careers,2026-08-31 12:00:00\n"+
			"Ghost Co,https://ghost.io,,2026-08-31 12:00:00\n",
		string(data))
}

func TestLoadProcessedSkipsEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	csv := "company,website,career_url,timestamp\n" +
		"Acme,https://acme.com,https://acme.com/careers,2026-08-31 12:00:00\n" +
		"Ghost Co,https://ghost.io,,2026-08-31 12:00:00\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	processed, err := LoadProcessed(path)
	require.NoError(t, err)
	assert.True(t, processed.Contains("Acme"))
	assert.False(t, processed.Contains("Ghost Co"), "empty career_url stays reprocessable")
	assert.Equal(t, 1, processed.Cardinality())
}

func TestLoadProcessedMissingFile(t *testing.T) {
	processed, err := LoadProcessed(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, processed.Cardinality())
}
