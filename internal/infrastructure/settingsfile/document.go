package settingsfile

import (
	"time"

	"h37bot/internal/domain/entities"
	"h37bot/internal/domain/reset"
)

type clockDoc struct {
	Hour   int `toml:"hour"`
	Minute int `toml:"minute"`
}

type weeklyDoc struct {
	Day    int `toml:"day"` // 0 = Sunday
	Hour   int `toml:"hour"`
	Minute int `toml:"minute"`
}

type overrideDoc struct {
	Day    int `toml:"day"`
	Hour   int `toml:"hour"`
	Minute int `toml:"minute"`
}

type embedDoc struct {
	Title        string `toml:"title"`
	Color        int    `toml:"color"`
	ThumbnailURL string `toml:"thumbnail_url"`
}

type document struct {
	Timezone       string      `toml:"timezone"`
	MessageID      string      `toml:"message_id"`
	HalLocation    string      `toml:"hal_location"`
	LootResetTimes []clockDoc  `toml:"loot_reset_times"`
	TownSecurement clockDoc    `toml:"town_securement"`
	CombinedReset  weeklyDoc   `toml:"combined_reset"`
	NextPhase      overrideDoc `toml:"next_phase"`
	Embed          embedDoc    `toml:"embed"`
}

func toDocument(s entities.Settings) document {
	loot := make([]clockDoc, len(s.LootResetTimes))
	for i, t := range s.LootResetTimes {
		loot[i] = clockDoc{Hour: t.Hour, Minute: t.Minute}
	}
	return document{
		Timezone:       s.Timezone,
		MessageID:      s.MessageID,
		HalLocation:    s.HalLocation,
		LootResetTimes: loot,
		TownSecurement: clockDoc{Hour: s.TownSecurement.Hour, Minute: s.TownSecurement.Minute},
		CombinedReset:  weeklyDoc{Day: int(s.CombinedReset.Day), Hour: s.CombinedReset.Hour, Minute: s.CombinedReset.Minute},
		NextPhase:      overrideDoc{Day: s.NextPhase.Day, Hour: s.NextPhase.Hour, Minute: s.NextPhase.Minute},
		Embed:          embedDoc{Title: s.Embed.Title, Color: s.Embed.Color, ThumbnailURL: s.Embed.ThumbnailURL},
	}
}

func (d document) toDomain() entities.Settings {
	loot := make([]reset.TimeOfDay, len(d.LootResetTimes))
	for i, t := range d.LootResetTimes {
		loot[i] = reset.TimeOfDay{Hour: t.Hour, Minute: t.Minute}
	}
	return entities.Settings{
		Timezone:       d.Timezone,
		MessageID:      d.MessageID,
		HalLocation:    d.HalLocation,
		LootResetTimes: loot,
		TownSecurement: reset.TimeOfDay{Hour: d.TownSecurement.Hour, Minute: d.TownSecurement.Minute},
		CombinedReset:  reset.WeeklyRule{Day: time.Weekday(d.CombinedReset.Day), Hour: d.CombinedReset.Hour, Minute: d.CombinedReset.Minute},
		NextPhase:      reset.OverrideRule{Day: d.NextPhase.Day, Hour: d.NextPhase.Hour, Minute: d.NextPhase.Minute},
		Embed:          entities.Embed{Title: d.Embed.Title, Color: d.Embed.Color, ThumbnailURL: d.Embed.ThumbnailURL},
	}
}
