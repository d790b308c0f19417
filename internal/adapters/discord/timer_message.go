package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"h37bot/internal/domain"
	pkgdiscord "h37bot/pkg/discord"
)

// timerChannel is the part of *discordgo.Session used to post and edit the timer message.
type timerChannel interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func (h *Handler) createTimerPost(ctx context.Context, ch timerChannel) (string, error) {
	appearance := h.settingsUseCase.Current().Embed
	msg, err := ch.ChannelMessageSendEmbed(h.channelID, pkgdiscord.BuildPlaceholderEmbed(appearance))
	if err != nil {
		return "", fmt.Errorf("%w: send timer post: %v", domain.ErrChannelNotFound, err)
	}
	if err := h.settingsUseCase.SetMessageID(ctx, msg.ID); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// RefreshTimerMessage recomputes every reset and edits the timer post.
func (h *Handler) RefreshTimerMessage(ch timerChannel) error {
	messageID := h.settingsUseCase.Current().MessageID
	if messageID == "" {
		return domain.ErrMessageNotSet
	}
	board, err := h.timerUseCase.Board(h.now())
	if err != nil {
		return fmt.Errorf("compute resets: %w", err)
	}
	if _, err := ch.ChannelMessageEditEmbed(h.channelID, messageID, pkgdiscord.BuildTimerEmbed(board)); err != nil {
		return fmt.Errorf("edit timer message %s: %w", messageID, err)
	}
	return nil
}

// refreshAndLog is the scheduled job body; failures are logged and the next run retries.
func (h *Handler) refreshAndLog(ch timerChannel) {
	err := h.RefreshTimerMessage(ch)
	switch {
	case err == nil:
		log.Debug().Str("channel", h.channelID).Msg("Timer message edited")
	case errors.Is(err, domain.ErrMessageNotSet):
		log.Warn().Msg("⚠️ Message ID not found. Please type /ohcreatetimerpost to create a new timer post.")
	default:
		log.Error().Err(err).Msg("❌ Error updating message")
	}
}
