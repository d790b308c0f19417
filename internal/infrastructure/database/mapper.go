package database

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"h37bot/internal/domain/entities"
	"h37bot/internal/domain/reset"
)

// Keys of the settings table.
const (
	keyTimezone            = "TIMEZONE"
	keyMessageID           = "MESSAGE_ID"
	keyHalLocation         = "HAL_LOCATION"
	keyLootResetTimes      = "LOOT_RESET_TIMES"
	keyTownSecurementTime  = "TOWN_SECUREMENT_TIME"
	keyCombinedResetDay    = "COMBINED_RESET_DAY"
	keyCombinedResetHour   = "COMBINED_RESET_HOUR"
	keyCombinedResetMinute = "COMBINED_RESET_MINUTE"
	keyNextPhaseDay        = "NEXT_PHASE_DAY"
	keyNextPhaseHour       = "NEXT_PHASE_HOUR"
	keyNextPhaseMinute     = "NEXT_PHASE_MINUTE"
	keyEmbedTitle          = "EMBED_TITLE"
	keyEmbedColor          = "EMBED_COLOR"
	keyThumbnailURL        = "THUMBNAIL_URL"
)

func formatClock(t reset.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func parseClock(s string) (reset.TimeOfDay, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return reset.TimeOfDay{}, fmt.Errorf("clock %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return reset.TimeOfDay{}, fmt.Errorf("clock %q: %w", s, err)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return reset.TimeOfDay{}, fmt.Errorf("clock %q: %w", s, err)
	}
	return reset.TimeOfDay{Hour: hour, Minute: minute}, nil
}

func settingsToKV(s entities.Settings) map[string]string {
	loot := make([]string, len(s.LootResetTimes))
	for i, t := range s.LootResetTimes {
		loot[i] = formatClock(t)
	}
	return map[string]string{
		keyTimezone:            s.Timezone,
		keyMessageID:           s.MessageID,
		keyHalLocation:         s.HalLocation,
		keyLootResetTimes:      strings.Join(loot, ","),
		keyTownSecurementTime:  formatClock(s.TownSecurement),
		keyCombinedResetDay:    strconv.Itoa(int(s.CombinedReset.Day)),
		keyCombinedResetHour:   strconv.Itoa(s.CombinedReset.Hour),
		keyCombinedResetMinute: strconv.Itoa(s.CombinedReset.Minute),
		keyNextPhaseDay:        strconv.Itoa(s.NextPhase.Day),
		keyNextPhaseHour:       strconv.Itoa(s.NextPhase.Hour),
		keyNextPhaseMinute:     strconv.Itoa(s.NextPhase.Minute),
		keyEmbedTitle:          s.Embed.Title,
		keyEmbedColor:          strconv.Itoa(s.Embed.Color),
		keyThumbnailURL:        s.Embed.ThumbnailURL,
	}
}

// settingsFromKV overlays stored rows on the defaults. Unknown keys are ignored.
func settingsFromKV(kv map[string]string) (entities.Settings, error) {
	s := entities.DefaultSettings()

	str := func(key string, dst *string) {
		if v, ok := kv[key]; ok {
			*dst = v
		}
	}
	var firstErr error
	num := func(key string, dst *int) {
		v, ok := kv[key]
		if !ok || firstErr != nil {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			firstErr = fmt.Errorf("setting %s: %w", key, err)
			return
		}
		*dst = n
	}

	str(keyTimezone, &s.Timezone)
	str(keyMessageID, &s.MessageID)
	str(keyHalLocation, &s.HalLocation)
	str(keyEmbedTitle, &s.Embed.Title)
	str(keyThumbnailURL, &s.Embed.ThumbnailURL)

	day := int(s.CombinedReset.Day)
	num(keyCombinedResetDay, &day)
	s.CombinedReset.Day = time.Weekday(day)
	num(keyCombinedResetHour, &s.CombinedReset.Hour)
	num(keyCombinedResetMinute, &s.CombinedReset.Minute)
	num(keyNextPhaseDay, &s.NextPhase.Day)
	num(keyNextPhaseHour, &s.NextPhase.Hour)
	num(keyNextPhaseMinute, &s.NextPhase.Minute)
	num(keyEmbedColor, &s.Embed.Color)
	if firstErr != nil {
		return entities.Settings{}, firstErr
	}

	if v, ok := kv[keyTownSecurementTime]; ok {
		t, err := parseClock(v)
		if err != nil {
			return entities.Settings{}, fmt.Errorf("setting %s: %w", keyTownSecurementTime, err)
		}
		s.TownSecurement = t
	}
	if v, ok := kv[keyLootResetTimes]; ok {
		s.LootResetTimes = nil
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			t, err := parseClock(part)
			if err != nil {
				return entities.Settings{}, fmt.Errorf("setting %s: %w", keyLootResetTimes, err)
			}
			s.LootResetTimes = append(s.LootResetTimes, t)
		}
	}
	return s, nil
}
