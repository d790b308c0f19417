package discord

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h37bot/internal/domain/entities"
)

func TestBuildTimerEmbed(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	at := func(day, hour int) time.Time { return time.Date(2024, 6, day, hour, 0, 0, 0, loc) }

	board := &entities.Board{
		Loot:           at(10, 14),
		TownSecurement: at(10, 19),
		Combined:       at(17, 19),
		HalMove:        at(17, 19),
		NextPhase:      at(25, 8),
		HalLocation:    "NE of Chalk Peak",
		Embed:          entities.Embed{Title: "Timers", Color: 0xFF0000, ThumbnailURL: "https://example.com/t.png"},
		GeneratedAt:    time.Date(2024, 6, 10, 13, 5, 0, 0, loc),
	}

	embed := BuildTimerEmbed(board)

	assert.Equal(t, "Timers", embed.Title)
	assert.Equal(t, 0xFF0000, embed.Color)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://example.com/t.png", embed.Thumbnail.URL)
	require.Len(t, embed.Fields, 6)

	loot := at(10, 14).Unix()
	assert.Equal(t, "📦 Loot", embed.Fields[0].Name)
	assert.Equal(t, "<t:"+itoa(loot)+":t>, <t:"+itoa(loot)+":R>", embed.Fields[0].Value)
	assert.Contains(t, embed.Fields[2].Value, ":F>")
	assert.Contains(t, embed.Fields[3].Value, "Last Seen: NE of Chalk Peak")
	assert.Contains(t, embed.Fields[4].Value, "<t:"+itoa(at(25, 8).Unix())+":F>")
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Last Update: 1:05 PM CDT", embed.Footer.Text)
}

func TestBuildPlaceholderEmbed_WithoutThumbnail(t *testing.T) {
	embed := BuildPlaceholderEmbed(entities.Embed{Title: "Timers"})

	assert.Nil(t, embed.Thumbnail)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Placeholder", embed.Fields[0].Name)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
