package repository

import (
	"errors"
	"fmt"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

var (
	ErrUnknownDriver       = errors.New("unknown store driver")
	ErrInvalidReminderData = errors.New("invalid reminder data")
)

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}
