package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TOKEN", "bot-token")
	t.Setenv("CHANNEL_ID", "123456789012345678")
	for _, k := range []string{
		"GUILD_ID", "SETTINGS_PATH", "DATABASE_URL", "MIGRATIONS_PATH", "LOG_LEVEL",
		"LOCALE", "REFRESH_SCHEDULE", "PRESENCE_SCHEDULE", "ACTIVITY_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bot-token", cfg.Token)
	assert.Equal(t, "settings.toml", cfg.SettingsPath)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "@every 1m", cfg.RefreshSchedule)
	assert.Equal(t, "@every 5m", cfg.PresenceSchedule)
	assert.Equal(t, "Once Human", cfg.ActivityName)
	assert.False(t, cfg.UsesDatabase())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GUILD_ID", "42")
	t.Setenv("DATABASE_URL", "postgres://bot@db:5432/h37?sslmode=disable")
	t.Setenv("REFRESH_SCHEDULE", "*/2 * * * *")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "42", cfg.GuildID)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, "*/2 * * * *", cfg.RefreshSchedule)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "missing token", key: "TOKEN", value: " ", wantErr: "TOKEN"},
		{name: "missing channel", key: "CHANNEL_ID", value: "", wantErr: "CHANNEL_ID"},
		{name: "channel not numeric", key: "CHANNEL_ID", value: "#general", wantErr: "CHANNEL_ID"},
		{name: "guild not numeric", key: "GUILD_ID", value: "abc", wantErr: "GUILD_ID"},
		{name: "database without host", key: "DATABASE_URL", value: "postgres:///nohost", wantErr: "DATABASE_URL"},
		{name: "bad refresh schedule", key: "REFRESH_SCHEDULE", value: "every minute", wantErr: "REFRESH_SCHEDULE"},
		{name: "bad presence schedule", key: "PRESENCE_SCHEDULE", value: "@sometimes", wantErr: "PRESENCE_SCHEDULE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
