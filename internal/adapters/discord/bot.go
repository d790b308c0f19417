package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"h37bot/internal/application"
	"h37bot/internal/config"
	"h37bot/internal/ports/output"
	"h37bot/pkg/tz"
)

// Bot is the Discord adapter.
type Bot struct {
	session   *discordgo.Session
	config    *config.Config
	handler   *Handler
	scheduler *Scheduler
	presence  *presenceKeeper
}

// NewBot creates a Bot and wires ports: settings owner -> use cases -> handler -> scheduler.
func NewBot(cfg *config.Config, settings *application.SettingsService, translator output.T) (*Bot, error) {
	timerUC := application.NewTimerService(settings)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	handler := NewHandler(settings, timerUC, translator, cfg.ChannelID)

	bot := &Bot{
		session:  s,
		config:   cfg,
		handler:  handler,
		presence: newPresenceKeeper(s, cfg.ActivityName),
	}

	loc, err := tz.Load(settings.Current().Timezone)
	if err != nil {
		return nil, err
	}
	scheduler, err := NewScheduler(loc, cfg.RefreshSchedule, cfg.PresenceSchedule, bot.refresh, bot.presence.ensure)
	if err != nil {
		return nil, err
	}
	bot.scheduler = scheduler
	handler.SetRefreshTrigger(func() { scheduler.RefreshSoon() })

	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.onDisconnect)
}

func (b *Bot) refresh() {
	b.handler.refreshAndLog(b.session)
}

// RefreshNow triggers a throttled timer refresh, e.g. after the settings file was edited.
func (b *Bot) RefreshNow() {
	b.scheduler.RefreshSoon()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.String()).Msg("✅ Logged in")
	b.presence.apply()
	b.refresh()
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	log.Warn().Msg("⚠️ Gateway disconnected")
	b.presence.forget()
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionApplicationCommand {
		b.handler.HandleCommand(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open Discord session: %w", err)
	}
	defer b.session.Close()

	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands()); err != nil {
		log.Warn().Err(err).Msg("⚠️ Slash command registration failed")
	}

	b.scheduler.Start()
	defer b.scheduler.Stop()

	log.Info().Msg("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Shutting down")
	return nil
}
