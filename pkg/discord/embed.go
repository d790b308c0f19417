package discord

import (
	"fmt"
	"time"

	"h37bot/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const detailText = "*Loot resets every 4 hours, you must re-log in order to loot.\n" +
	"Vendor, Commission, and Purifiers reset weekly.\n" +
	"Hal's Moving House moves between 4 spots each week.*"

// Discord timestamp styles.
const (
	styleShortTime = "t"
	styleFull      = "F"
	styleRelative  = "R"
)

func timestamp(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}

func shortAndRelative(t time.Time) string {
	return timestamp(t, styleShortTime) + ", " + timestamp(t, styleRelative)
}

func fullAndRelative(t time.Time) string {
	return timestamp(t, styleFull) + ", " + timestamp(t, styleRelative)
}

// BuildTimerEmbed renders the board as the timer post embed.
func BuildTimerEmbed(board *entities.Board) *discordgo.MessageEmbed {
	embed := baseEmbed(board.Embed)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "📦 Loot", Value: shortAndRelative(board.Loot)},
		{Name: "🐈 Town Securement Unit", Value: shortAndRelative(board.TownSecurement)},
		{Name: "✅ Vendors and Commissions", Value: fullAndRelative(board.Combined)},
		{Name: "🏠 Hal's Moving House", Value: fullAndRelative(board.HalMove) + "\nLast Seen: " + board.HalLocation},
		{Name: "😈 Next Phase", Value: fullAndRelative(board.NextPhase)},
		{Name: "Detail", Value: detailText},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: "Last Update: " + board.GeneratedAt.Format("3:04 PM MST"),
	}
	return embed
}

// BuildPlaceholderEmbed is posted by the create command before the first refresh.
func BuildPlaceholderEmbed(appearance entities.Embed) *discordgo.MessageEmbed {
	embed := baseEmbed(appearance)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Placeholder", Value: "This is a new timer post."},
	}
	return embed
}

func baseEmbed(appearance entities.Embed) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: appearance.Title,
		Color: appearance.Color,
	}
	if appearance.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: appearance.ThumbnailURL}
	}
	return embed
}
