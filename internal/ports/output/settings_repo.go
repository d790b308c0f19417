package output

import (
	"context"

	"h37bot/internal/domain/entities"
)

// SettingsRepository persists the whole settings snapshot. Save always rewrites every value.
type SettingsRepository interface {
	Load(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, settings entities.Settings) error
}
