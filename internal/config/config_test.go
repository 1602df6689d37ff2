// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 90, cfg.Report.DefaultPeriodDays)
	assert.Equal(t, "pt", cfg.I18n.DefaultLocale)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestAutoMigrateDisabled(t *testing.T) {
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestValidateRejectsNonPositivePeriod(t *testing.T) {
	t.Setenv("REPORT_DEFAULT_PERIOD_DAYS", "0")

	_, err := Load()
	assert.Error(t, err)
}
