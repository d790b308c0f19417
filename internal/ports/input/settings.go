package input

import (
	"context"
	"time"

	"h37bot/internal/domain/entities"
)

type SettingsUseCase interface {
	Current() entities.Settings
	Reload(ctx context.Context) error
	SetNextPhase(ctx context.Context, at time.Time) error
	SetHalLocation(ctx context.Context, location string) error
	SetMessageID(ctx context.Context, messageID string) error
}
