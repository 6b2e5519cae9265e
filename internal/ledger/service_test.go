package ledger

import (
	"errors"
	"testing"
	"time"

	"hotel-reservation-go/internal/models"
	"hotel-reservation-go/internal/store"
)

var baseDay = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseDay.AddDate(0, 0, n)
}

// setupLedger returns a ledger whose clock advances one second per call.
func setupLedger(t *testing.T) *Service {
	t.Helper()
	svc := NewService(store.NewMemoryStore())
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc
}

func mustRoom(t *testing.T, svc *Service, number int, roomType models.RoomType, price int64) {
	t.Helper()
	if _, err := svc.UpsertRoom(number, roomType, price); err != nil {
		t.Fatalf("UpsertRoom(%d) failed: %v", number, err)
	}
}

func mustUser(t *testing.T, svc *Service, id int, balance int64) {
	t.Helper()
	if _, err := svc.UpsertUser(id, balance); err != nil {
		t.Fatalf("UpsertUser(%d) failed: %v", id, err)
	}
}

func TestUpsertRoom_UpdatesExistingRoom(t *testing.T) {
	svc := setupLedger(t)

	created, err := svc.UpsertRoom(1, models.RoomTypeStandard, 1000)
	if err != nil {
		t.Fatalf("UpsertRoom failed: %v", err)
	}
	updated, err := svc.UpsertRoom(1, models.RoomTypeJunior, 2500)
	if err != nil {
		t.Fatalf("UpsertRoom update failed: %v", err)
	}

	rooms := svc.Rooms()
	if len(rooms) != 1 {
		t.Fatalf("Expected exactly 1 room, got %d", len(rooms))
	}
	if rooms[0].Type != models.RoomTypeJunior || rooms[0].PricePerNight != 2500 {
		t.Errorf("Expected JUNIOR/2500, got %s/%d", rooms[0].Type, rooms[0].PricePerNight)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Expected CreatedAt %v to be kept, got %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpsertRoom_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		number   int
		roomType models.RoomType
		price    int64
	}{
		{"zero room number", 0, models.RoomTypeStandard, 100},
		{"negative room number", -4, models.RoomTypeStandard, 100},
		{"negative price", 1, models.RoomTypeStandard, -1},
		{"missing type", 1, "", 100},
		{"unknown type", 1, "PENTHOUSE", 100},
	}
	for _, tt := range tests {
		svc := setupLedger(t)
		_, err := svc.UpsertRoom(tt.number, tt.roomType, tt.price)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", tt.name, err)
		}
		if len(svc.Rooms()) != 0 {
			t.Errorf("%s: expected no room to be stored", tt.name)
		}
	}
}

func TestUpsertRoom_FreePriceAllowed(t *testing.T) {
	svc := setupLedger(t)
	mustRoom(t, svc, 9, models.RoomTypeStandard, 0)
	mustUser(t, svc, 1, 0)

	booking, err := svc.BookRoom(1, 9, day(0), day(3))
	if err != nil {
		t.Fatalf("BookRoom failed: %v", err)
	}
	if booking.TotalPrice != 0 {
		t.Errorf("Expected total 0, got %d", booking.TotalPrice)
	}
}

func TestUpsertUser(t *testing.T) {
	svc := setupLedger(t)

	first, err := svc.UpsertUser(1, 5000)
	if err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	second, err := svc.UpsertUser(1, 700)
	if err != nil {
		t.Fatalf("UpsertUser update failed: %v", err)
	}

	if second.Balance != 700 {
		t.Errorf("Expected balance 700, got %d", second.Balance)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("Expected CreatedAt to be kept")
	}
	if len(svc.Users()) != 1 {
		t.Errorf("Expected 1 user, got %d", len(svc.Users()))
	}

	for _, tt := range []struct {
		id      int
		balance int64
	}{{0, 10}, {-1, 10}, {2, -5}} {
		if _, err := svc.UpsertUser(tt.id, tt.balance); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("UpsertUser(%d, %d): expected ErrInvalidArgument, got %v", tt.id, tt.balance, err)
		}
	}
}

func TestLookups_NotFound(t *testing.T) {
	svc := setupLedger(t)

	if _, err := svc.Room(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Room: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.User(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("User: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Booking(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Booking: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UserBookings(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("UserBookings: expected ErrNotFound, got %v", err)
	}
}

func TestListings_NewestFirst(t *testing.T) {
	svc := setupLedger(t)
	mustRoom(t, svc, 1, models.RoomTypeStandard, 1000)
	mustRoom(t, svc, 2, models.RoomTypeJunior, 2000)
	mustRoom(t, svc, 3, models.RoomTypeSuite, 3000)
	mustRoom(t, svc, 1, models.RoomTypeSuite, 10000) // update keeps position
	mustUser(t, svc, 1, 50000)
	mustUser(t, svc, 2, 50000)

	// Stay dates deliberately run opposite to creation order.
	if _, err := svc.BookRoom(1, 1, day(20), day(21)); err != nil {
		t.Fatalf("BookRoom failed: %v", err)
	}
	if _, err := svc.BookRoom(2, 2, day(1), day(2)); err != nil {
		t.Fatalf("BookRoom failed: %v", err)
	}

	rooms := svc.Rooms()
	wantRooms := []int{3, 2, 1}
	for i, r := range rooms {
		if r.Number != wantRooms[i] {
			t.Errorf("rooms[%d]: expected %d, got %d", i, wantRooms[i], r.Number)
		}
	}

	users := svc.Users()
	if users[0].Id != 2 || users[1].Id != 1 {
		t.Errorf("Expected users [2 1], got [%d %d]", users[0].Id, users[1].Id)
	}

	bookings := svc.Bookings()
	if bookings[0].Id != 2 || bookings[1].Id != 1 {
		t.Errorf("Expected bookings [2 1], got [%d %d]", bookings[0].Id, bookings[1].Id)
	}
}

func TestListings_EqualTimestampsUseInsertionOrder(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	for _, n := range []int{5, 3, 4} {
		mustRoom(t, svc, n, models.RoomTypeStandard, 10)
	}

	rooms := svc.Rooms()
	want := []int{4, 3, 5}
	for i, r := range rooms {
		if r.Number != want[i] {
			t.Errorf("rooms[%d]: expected %d, got %d", i, want[i], r.Number)
		}
	}
}

func TestListings_ReturnCopies(t *testing.T) {
	svc := setupLedger(t)
	mustRoom(t, svc, 1, models.RoomTypeStandard, 1000)

	rooms := svc.Rooms()
	rooms[0].PricePerNight = 1

	room, err := svc.Room(1)
	if err != nil {
		t.Fatalf("Room failed: %v", err)
	}
	if room.PricePerNight != 1000 {
		t.Errorf("Expected ledger state to be unaffected, got price %d", room.PricePerNight)
	}
}
