package ledger

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the ledger. Match with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("Insufficient balance")
	ErrRoomUnavailable   = errors.New("not available")
)

// InsufficientFundsError carries the amounts involved in a rejected booking.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient balance. Required: %d, Available: %d", e.Required, e.Available)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
