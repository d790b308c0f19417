package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"h37bot/internal/adapters/discord"
	"h37bot/internal/application"
	"h37bot/internal/config"
	"h37bot/internal/infrastructure/database"
	"h37bot/internal/infrastructure/i18n"
	"h37bot/internal/infrastructure/logging"
	"h37bot/internal/infrastructure/settingsfile"
	"h37bot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", os.Stderr)
		log.Fatal().Err(err).Msg("❌ Invalid configuration")
	}
	logging.Setup(cfg.LogLevel, os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		repo  output.SettingsRepository
		store *settingsfile.Store
	)
	if cfg.UsesDatabase() {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("❌ Database migration failed")
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Database initialisation failed")
		}
		defer pool.Close()
		repo = database.NewSettingsRepository(pool)
	} else {
		store = settingsfile.NewStore(cfg.SettingsPath)
		repo = store
	}

	settings := application.NewSettingsService(repo)
	if err := settings.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("❌ Settings could not be loaded")
	}

	bot, err := discord.NewBot(cfg, settings, i18n.NewTranslator(cfg.Locale))
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Bot initialisation failed")
	}

	if store != nil {
		go watchSettings(ctx, store, settings, bot)
	}

	if err := bot.Start(); err != nil {
		log.Error().Err(err).Msg("❌ Bot failed to start")
		cancel()
		os.Exit(1)
	}
}

// watchSettings reloads the settings when the file is edited by hand. A file
// that fails validation is logged and the previous snapshot stays active.
func watchSettings(ctx context.Context, store *settingsfile.Store, settings *application.SettingsService, bot *discord.Bot) {
	err := store.Watch(ctx, func() {
		if err := settings.Reload(ctx); err != nil {
			log.Warn().Err(err).Str("path", store.Path()).Msg("⚠️ Settings file rejected, keeping previous settings")
			return
		}
		log.Info().Str("path", store.Path()).Msg("✅ Settings reloaded")
		bot.RefreshNow()
	})
	if err != nil {
		log.Error().Err(err).Msg("❌ Settings watcher stopped")
	}
}
