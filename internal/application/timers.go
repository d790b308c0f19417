package application

import (
	"time"

	"h37bot/internal/domain/entities"
	"h37bot/internal/domain/reset"
	"h37bot/pkg/tz"
)

// SettingsSnapshot hands out the current settings.
type SettingsSnapshot interface {
	Current() entities.Settings
}

type TimerService struct {
	settings SettingsSnapshot
}

func NewTimerService(settings SettingsSnapshot) *TimerService {
	return &TimerService{settings: settings}
}

// Board computes every next reset relative to now, in the configured timezone.
func (s *TimerService) Board(now time.Time) (*entities.Board, error) {
	cfg := s.settings.Current()
	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	now = now.In(loc)
	combined := reset.NextWeekly(now, cfg.CombinedReset)
	return &entities.Board{
		Loot:           reset.NextDaily(now, cfg.LootResetTimes),
		TownSecurement: reset.NextDailyAt(now, cfg.TownSecurement),
		Combined:       combined,
		HalMove:        combined,
		NextPhase:      reset.Override(now, cfg.NextPhase),
		HalLocation:    cfg.HalLocation,
		Embed:          cfg.Embed,
		GeneratedAt:    now,
	}, nil
}
