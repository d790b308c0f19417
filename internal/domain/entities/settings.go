package entities

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"h37bot/internal/domain"
	"h37bot/internal/domain/reset"
	"h37bot/pkg/tz"
)

const (
	DefaultHalLocation = "NW of Deadsville"
	MaxLocationLength  = 255
)

// Embed holds the timer post appearance.
type Embed struct {
	Title        string
	Color        int
	ThumbnailURL string
}

// Settings is the persisted rule snapshot. Treat values as immutable: use
// Clone before mutating a copy obtained from a shared owner.
type Settings struct {
	Timezone       string
	MessageID      string
	LootResetTimes []reset.TimeOfDay
	CombinedReset  reset.WeeklyRule
	NextPhase      reset.OverrideRule
	TownSecurement reset.TimeOfDay
	HalLocation    string
	Embed          Embed
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() Settings {
	return Settings{
		Timezone: tz.Default,
		LootResetTimes: []reset.TimeOfDay{
			{Hour: 2}, {Hour: 6}, {Hour: 10}, {Hour: 14}, {Hour: 18}, {Hour: 22},
		},
		CombinedReset:  reset.WeeklyRule{Day: time.Monday, Hour: 19},
		NextPhase:      reset.OverrideRule{Day: 1, Hour: 19},
		TownSecurement: reset.TimeOfDay{Hour: 19},
		HalLocation:    DefaultHalLocation,
		Embed: Embed{
			Title: "Once Human Reset Timers",
			Color: 0x5865F2,
		},
	}
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	out := s
	out.LootResetTimes = append([]reset.TimeOfDay(nil), s.LootResetTimes...)
	return out
}

// Validate checks every precondition the reset resolvers rely on.
func (s Settings) Validate() error {
	if _, err := tz.Load(s.Timezone); err != nil {
		return err
	}
	if len(s.LootResetTimes) == 0 {
		return fmt.Errorf("%w: loot reset times must not be empty", domain.ErrInvalidSettings)
	}
	for i, t := range s.LootResetTimes {
		if err := validateClock(t.Hour, t.Minute); err != nil {
			return fmt.Errorf("%w: loot reset time #%d: %v", domain.ErrInvalidSettings, i+1, err)
		}
	}
	if s.CombinedReset.Day < time.Sunday || s.CombinedReset.Day > time.Saturday {
		return fmt.Errorf("%w: combined reset day %d out of range 0-6", domain.ErrInvalidSettings, s.CombinedReset.Day)
	}
	if err := validateClock(s.CombinedReset.Hour, s.CombinedReset.Minute); err != nil {
		return fmt.Errorf("%w: combined reset: %v", domain.ErrInvalidSettings, err)
	}
	if s.NextPhase.Day < 1 || s.NextPhase.Day > 31 {
		return fmt.Errorf("%w: next phase day %d out of range 1-31", domain.ErrInvalidSettings, s.NextPhase.Day)
	}
	if err := validateClock(s.NextPhase.Hour, s.NextPhase.Minute); err != nil {
		return fmt.Errorf("%w: next phase: %v", domain.ErrInvalidSettings, err)
	}
	if err := validateClock(s.TownSecurement.Hour, s.TownSecurement.Minute); err != nil {
		return fmt.Errorf("%w: town securement: %v", domain.ErrInvalidSettings, err)
	}
	if err := ValidateLocation(s.HalLocation); err != nil {
		return err
	}
	return nil
}

// ValidateLocation checks a Hal's Moving House label.
func ValidateLocation(location string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(location))
	if n == 0 || n > MaxLocationLength {
		return domain.ErrInvalidLocation
	}
	return nil
}

func validateClock(hour, minute int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("minute %d out of range 0-59", minute)
	}
	return nil
}
