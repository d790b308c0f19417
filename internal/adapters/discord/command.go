package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"h37bot/internal/domain"
	"h37bot/internal/domain/entities"
	pkgdiscord "h37bot/pkg/discord"
	"h37bot/pkg/tz"
)

const (
	cmdSetPhase        = "ohsetphase"
	cmdCreateTimerPost = "ohcreatetimerpost"
	cmdSetHalLocation  = "ohsethallocation"

	optDatetime = "datetime"
	optLocation = "location"
)

var adminPermission int64 = discordgo.PermissionManageServer

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     cmdSetPhase,
			Description:              "Set the next phase reset date and time.",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optDatetime,
				Description: "The next phase date and time in MM/DD/YYYY HH:MMAM/PM format",
				Required:    true,
			}},
		},
		{
			Name:                     cmdCreateTimerPost,
			Description:              "Create the timer post and update config with its ID.",
			DefaultMemberPermissions: &adminPermission,
		},
		{
			Name:                     cmdSetHalLocation,
			Description:              "Set the location for Hal's Moving House.",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optLocation,
				Description: "Enter the new location for Hal's Moving House.",
				Required:    true,
				MaxLength:   entities.MaxLocationLength,
			}},
		},
	}
}

// HandleCommand dispatches slash commands by name.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.Name {
	case cmdSetPhase:
		h.HandleSetPhase(s, i, stringOption(data, optDatetime))
	case cmdCreateTimerPost:
		h.HandleCreateTimerPost(s, i)
	case cmdSetHalLocation:
		h.HandleSetHalLocation(s, i, stringOption(data, optLocation))
	}
}

func (h *Handler) HandleSetPhase(s *discordgo.Session, i *discordgo.InteractionCreate, raw string) {
	ctx := context.Background()
	locale := interactionLocale(i)

	at, err := h.setNextPhase(ctx, raw)
	if err != nil {
		if domain.Code(err) == "" {
			log.Error().Err(err).Str("input", raw).Msg("❌ Next phase update failed")
		}
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	when := pkgdiscord.FormatPhaseDateTime(at)
	log.Info().Str("next_phase", when).Msg("✅ Next phase reset updated")
	respond(s, i.Interaction, h.translator.T(locale, "cmd.setphase.done", map[string]any{"When": when}))
}

// setNextPhase parses raw in the configured timezone, stores it and asks for
// a refresh. It returns the parsed instant.
func (h *Handler) setNextPhase(ctx context.Context, raw string) (time.Time, error) {
	loc, err := tz.Load(h.settingsUseCase.Current().Timezone)
	if err != nil {
		return time.Time{}, err
	}
	at, err := pkgdiscord.ParsePhaseDateTime(raw, loc, h.now().In(loc))
	if err != nil {
		return time.Time{}, err
	}
	if err := h.settingsUseCase.SetNextPhase(ctx, at); err != nil {
		return time.Time{}, err
	}
	h.refreshSoon()
	return at, nil
}

func (h *Handler) HandleCreateTimerPost(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := interactionLocale(i)

	messageID, err := h.createTimerPost(ctx, s)
	if err != nil {
		log.Error().Err(err).Str("channel", h.channelID).Msg("❌ Timer post creation failed")
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	log.Info().Str("message", messageID).Msg("✅ Timer post created")
	respond(s, i.Interaction, h.translator.T(locale, "cmd.createpost.done", map[string]any{"MessageID": messageID}))
	h.refreshSoon()
}

func (h *Handler) HandleSetHalLocation(s *discordgo.Session, i *discordgo.InteractionCreate, location string) {
	ctx := context.Background()
	locale := interactionLocale(i)

	if err := h.settingsUseCase.SetHalLocation(ctx, location); err != nil {
		if domain.Code(err) == "" {
			log.Error().Err(err).Msg("❌ Hal location update failed")
		}
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	current := h.settingsUseCase.Current().HalLocation
	log.Info().Str("location", current).Msg("✅ Hal's Moving House location updated")
	respond(s, i.Interaction, h.translator.T(locale, "cmd.sethallocation.done", map[string]any{"Location": current}))
	h.refreshSoon()
}
