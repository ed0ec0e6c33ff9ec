package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scraper_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
headless: true
user_agent: "Mozilla/5.0"
suppliers:
  - supplier: "TestSupplier"
    base_url: "https://www.example.com"
    categories:
      - name: "Test Category"
        url: "https://www.example.com/category"
        selectors:
          card: ".product-card"
        paging:
          mode: "pagination"
          next_button: ".next-page"
          max_pages: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Headless)
	assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
	require.Len(t, cfg.Suppliers, 1)

	sup := cfg.Suppliers[0]
	assert.Equal(t, "TestSupplier", sup.Supplier)
	assert.Equal(t, "https://www.example.com", sup.BaseURL)
	require.Len(t, sup.Categories, 1)

	cat := sup.Categories[0]
	assert.Equal(t, ".product-card", cat.Selectors.Card)
	assert.Equal(t, ModePagination, cat.Paging.Mode)
	assert.Equal(t, ".next-page", cat.Paging.NextButton)
	assert.Equal(t, 5, cat.Paging.MaxPages)
	// Untouched knobs fall back to defaults.
	assert.Equal(t, DefaultScrollSteps, cat.Paging.ScrollSteps)
	assert.Equal(t, DefaultScrollWaitMS, cat.Paging.ScrollWaitMS)

	assert.Equal(t, 1, cfg.TotalCategories())
}

func TestLoadDefaultsPagingMode(t *testing.T) {
	path := writeConfig(t, `
suppliers:
  - supplier: "S"
    base_url: "https://s.com"
    categories:
      - name: "C"
        url: "https://s.com/c"
        selectors:
          card: ".card"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeNone, cfg.Suppliers[0].Categories[0].Paging.Mode)
	assert.Equal(t, DefaultMaxPages, cfg.Suppliers[0].Categories[0].Paging.MaxPages)
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "No suppliers",
			content: `headless: true`,
			wantErr: "no suppliers",
		},
		{
			name: "Missing base URL",
			content: `
suppliers:
  - supplier: "S"
    categories:
      - name: "C"
        url: "https://s.com/c"
        selectors:
          card: ".card"
`,
			wantErr: "base_url",
		},
		{
			name: "Missing card selector",
			content: `
suppliers:
  - supplier: "S"
    base_url: "https://s.com"
    categories:
      - name: "C"
        url: "https://s.com/c"
`,
			wantErr: "selectors.card",
		},
		{
			name: "Unknown paging mode",
			content: `
suppliers:
  - supplier: "S"
    base_url: "https://s.com"
    categories:
      - name: "C"
        url: "https://s.com/c"
        selectors:
          card: ".card"
        paging:
          mode: "teleport"
`,
			wantErr: "unknown paging mode",
		},
		{
			name: "Pagination without next button",
			content: `
suppliers:
  - supplier: "S"
    base_url: "https://s.com"
    categories:
      - name: "C"
        url: "https://s.com/c"
        selectors:
          card: ".card"
        paging:
          mode: "pagination"
`,
			wantErr: "next_button",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
