package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-landing/errs"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, 180*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 180*time.Second, cfg.WriteTimeout())
	assert.Equal(t, 180*time.Second, cfg.IdleTimeout())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "dist", cfg.ExportDir)
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("READ_TIMEOUT_SECONDS", "5")
	t.Setenv("ACCEPTED_ORIGINS", "https://studio.com, ,https://www.studio.com")
	t.Setenv("CATALOG_PATH", "/etc/studio/projects.yaml")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout())
	assert.Equal(t, []string{"https://studio.com", "https://www.studio.com"}, cfg.Origins())
	assert.Equal(t, "/etc/studio/projects.yaml", cfg.CatalogPath)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestNewRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"READ_TIMEOUT_SECONDS": "0",
		"IDLE_TIMEOUT_SECONDS": "abc",
		"LOG_LEVEL":            "loud",
		"LOG_FORMAT":           "xml",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv("PORT", "8080")
			t.Setenv(key, value)
			_, err := New()
			require.Error(t, err)
			assert.True(t, errs.IsConfigError(err))
		})
	}
}

func TestSiteOverrides(t *testing.T) {
	cfg := Config{SiteName: "Northwind", ContactEmail: "hi@northwind.io"}
	site := cfg.Site()

	assert.Equal(t, "Northwind", site.Name)
	assert.Equal(t, "mailto:hi@northwind.io", site.MailtoHref())
	assert.Equal(t, "+1 (555) 555-1234", site.ContactPhone)
	assert.Contains(t, site.CopyrightLine(), "Northwind")
}
