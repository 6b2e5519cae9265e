package store

import (
	"errors"
	"time"

	"hotel-reservation-go/internal/models"
)

// ErrRecordNotFound is returned by every backend when a keyed record is absent.
var ErrRecordNotFound = errors.New("record not found")

// RoomParams contains the mutable fields of a room keyed by its number.
type RoomParams struct {
	Number        int
	Type          models.RoomType
	PricePerNight int64
}

// UserParams contains the mutable fields of a user keyed by its id.
type UserParams struct {
	Id      int
	Balance int64
}

// RecordStore defines keyed upsert-or-insert storage for rooms and users.
// Implementations are not required to be safe for concurrent use; callers
// serialize access. Returned pointers reference the live record.
type RecordStore interface {
	// --- Rooms ---
	GetRoom(number int) (*models.Room, error)
	// UpsertRoom mutates the existing room in place or inserts a new one
	// stamped with now. created reports which happened.
	UpsertRoom(params RoomParams, now time.Time) (room *models.Room, created bool)
	// Rooms returns all rooms in insertion order.
	Rooms() []*models.Room

	// --- Users ---
	GetUser(id int) (*models.User, error)
	UpsertUser(params UserParams, now time.Time) (user *models.User, created bool)
	Users() []*models.User
}
