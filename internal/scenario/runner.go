package scenario

import (
	"errors"
	"fmt"
	"time"

	"hotel-reservation-go/internal/ledger"
	"hotel-reservation-go/internal/models"

	"go.uber.org/zap"
)

// Ledger is the write side of the reservation ledger used by scenarios.
type Ledger interface {
	UpsertRoom(roomNumber int, roomType models.RoomType, pricePerNight int64) (models.Room, error)
	UpsertUser(userId int, balance int64) (models.User, error)
	BookRoom(userId, roomNumber int, checkIn, checkOut time.Time) (models.Booking, error)
}

// Result is the outcome of a single step.
type Result struct {
	Index   int
	Label   string
	Booking *models.Booking
	Err     error
}

// Outcome classifies the step result by ledger error kind.
func (r Result) Outcome() string {
	switch {
	case r.Err == nil:
		return "SUCCESS"
	case errors.Is(r.Err, ledger.ErrNotFound):
		return "NOT FOUND"
	case errors.Is(r.Err, ledger.ErrInvalidArgument):
		return "INVALID"
	case errors.Is(r.Err, ledger.ErrInsufficientFunds):
		return "INSUFFICIENT FUNDS"
	case errors.Is(r.Err, ledger.ErrRoomUnavailable):
		return "UNAVAILABLE"
	default:
		return "ERROR"
	}
}

func (r Result) String() string {
	if r.Err == nil {
		return fmt.Sprintf("%s: %s", r.Label, r.Outcome())
	}
	return fmt.Sprintf("%s: %s - %v", r.Label, r.Outcome(), r.Err)
}

// Run executes every step in order. A failing step does not stop the run.
func Run(l Ledger, sc *Scenario) []Result {
	zap.L().Info("Running scenario", zap.String("name", sc.Name), zap.Int("steps", len(sc.Steps)))

	results := make([]Result, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		result := Result{Index: i, Label: step.Label}
		if result.Label == "" {
			result.Label = fmt.Sprintf("step %d", i+1)
		}

		switch {
		case step.SetRoom != nil:
			_, result.Err = l.UpsertRoom(step.SetRoom.Number, step.SetRoom.Type, step.SetRoom.Price)
		case step.SetUser != nil:
			_, result.Err = l.UpsertUser(step.SetUser.Id, step.SetUser.Balance)
		case step.Book != nil:
			result.Booking, result.Err = book(l, step.Book)
		default:
			result.Err = fmt.Errorf("step has no action")
		}

		if result.Err != nil {
			zap.L().Info("Scenario step failed",
				zap.Int("index", i),
				zap.String("label", result.Label),
				zap.String("outcome", result.Outcome()),
				zap.Error(result.Err))
		}
		results = append(results, result)
	}
	return results
}

func book(l Ledger, step *BookStep) (*models.Booking, error) {
	in, out, err := step.Dates()
	if err != nil {
		return nil, err
	}
	booking, err := l.BookRoom(step.User, step.Room, in, out)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
