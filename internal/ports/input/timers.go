package input

import (
	"time"

	"h37bot/internal/domain/entities"
)

type TimerUseCase interface {
	Board(now time.Time) (*entities.Board, error)
}
