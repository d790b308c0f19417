package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	defaultSettingsPath     = "settings.toml"
	defaultMigrationsPath   = "migrations"
	defaultLocale           = "en"
	defaultLogLevel         = "info"
	defaultRefreshSchedule  = "@every 1m"
	defaultPresenceSchedule = "@every 5m"
	defaultActivityName     = "Once Human"
)

type Config struct {
	Token            string
	ChannelID        string
	GuildID          string // empty = global command registration
	SettingsPath     string
	DatabaseURL      string // empty = settings file store
	MigrationsPath   string
	LogLevel         string
	Locale           string
	RefreshSchedule  string
	PresenceSchedule string
	ActivityName     string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, systemd, CI).
	}

	cfg := &Config{
		Token:            os.Getenv("TOKEN"),
		ChannelID:        os.Getenv("CHANNEL_ID"),
		GuildID:          os.Getenv("GUILD_ID"),
		SettingsPath:     os.Getenv("SETTINGS_PATH"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   os.Getenv("MIGRATIONS_PATH"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		Locale:           os.Getenv("LOCALE"),
		RefreshSchedule:  os.Getenv("REFRESH_SCHEDULE"),
		PresenceSchedule: os.Getenv("PRESENCE_SCHEDULE"),
		ActivityName:     os.Getenv("ACTIVITY_NAME"),
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UsesDatabase reports whether settings live in PostgreSQL instead of the settings file.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

func (c *Config) applyDefaults() {
	setDefault(&c.SettingsPath, defaultSettingsPath)
	setDefault(&c.MigrationsPath, defaultMigrationsPath)
	setDefault(&c.Locale, defaultLocale)
	setDefault(&c.LogLevel, defaultLogLevel)
	setDefault(&c.RefreshSchedule, defaultRefreshSchedule)
	setDefault(&c.PresenceSchedule, defaultPresenceSchedule)
	setDefault(&c.ActivityName, defaultActivityName)
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
}

func setDefault(v *string, def string) {
	*v = strings.TrimSpace(*v)
	if *v == "" {
		*v = def
	}
}

// validate applies every rule to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required")
	}

	if strings.TrimSpace(c.ChannelID) == "" {
		return fmt.Errorf("config: CHANNEL_ID is required")
	}
	if !isSnowflake(c.ChannelID) {
		return fmt.Errorf("config: CHANNEL_ID must be a Discord channel ID (digits only)")
	}
	if c.GuildID != "" && !isSnowflake(c.GuildID) {
		return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	if _, err := cron.ParseStandard(c.RefreshSchedule); err != nil {
		return fmt.Errorf("config: invalid REFRESH_SCHEDULE (%q): %w", c.RefreshSchedule, err)
	}
	if _, err := cron.ParseStandard(c.PresenceSchedule); err != nil {
		return fmt.Errorf("config: invalid PRESENCE_SCHEDULE (%q): %w", c.PresenceSchedule, err)
	}

	return nil
}

func isSnowflake(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
