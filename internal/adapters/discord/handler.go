package discord

import (
	"time"

	"h37bot/internal/ports/input"
	"h37bot/internal/ports/output"
)

// Handler handles Discord interactions and timer refreshes using use cases.
type Handler struct {
	settingsUseCase input.SettingsUseCase
	timerUseCase    input.TimerUseCase
	translator      output.T
	channelID       string
	now             func() time.Time
	refreshSoon     func()
}

// NewHandler creates a Handler.
func NewHandler(
	settingsUseCase input.SettingsUseCase,
	timerUseCase input.TimerUseCase,
	translator output.T,
	channelID string,
) *Handler {
	return &Handler{
		settingsUseCase: settingsUseCase,
		timerUseCase:    timerUseCase,
		translator:      translator,
		channelID:       channelID,
		now:             time.Now,
		refreshSoon:     func() {},
	}
}

// SetRefreshTrigger installs the callback used after admin changes.
func (h *Handler) SetRefreshTrigger(fn func()) {
	h.refreshSoon = fn
}
