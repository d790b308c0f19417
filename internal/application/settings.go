package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"h37bot/internal/domain"
	"h37bot/internal/domain/entities"
	"h37bot/internal/domain/reset"
	"h37bot/internal/ports/output"
	"h37bot/pkg/tz"
)

// SettingsService owns the current settings snapshot. Every change is applied
// to a clone, validated, persisted, then swapped in.
type SettingsService struct {
	repo output.SettingsRepository

	updateMu sync.Mutex // serializes read-modify-save cycles

	mu      sync.RWMutex
	current entities.Settings
}

func NewSettingsService(repo output.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo:    repo,
		current: entities.DefaultSettings(),
	}
}

// Reload replaces the snapshot with what the repository holds. Invalid
// stored settings are rejected and the previous snapshot is kept.
func (s *SettingsService) Reload(ctx context.Context) error {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	s.swap(loaded)
	return nil
}

// Current returns a copy of the snapshot.
func (s *SettingsService) Current() entities.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// SetNextPhase stores at's day/hour/minute, read in the configured timezone.
func (s *SettingsService) SetNextPhase(ctx context.Context, at time.Time) error {
	return s.update(ctx, func(next *entities.Settings) error {
		loc, err := tz.Load(next.Timezone)
		if err != nil {
			return err
		}
		local := at.In(loc)
		next.NextPhase = reset.OverrideRule{Day: local.Day(), Hour: local.Hour(), Minute: local.Minute()}
		return nil
	})
}

func (s *SettingsService) SetHalLocation(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if err := entities.ValidateLocation(location); err != nil {
		return err
	}
	return s.update(ctx, func(next *entities.Settings) error {
		next.HalLocation = location
		return nil
	})
}

func (s *SettingsService) SetMessageID(ctx context.Context, messageID string) error {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return domain.ErrMessageNotSet
	}
	return s.update(ctx, func(next *entities.Settings) error {
		next.MessageID = messageID
		return nil
	})
}

func (s *SettingsService) update(ctx context.Context, apply func(next *entities.Settings) error) error {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	next := s.Current()
	if err := apply(&next); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.swap(next)
	return nil
}

func (s *SettingsService) swap(next entities.Settings) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}
