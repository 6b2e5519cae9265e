package store

import (
	"errors"
	"testing"
	"time"

	"hotel-reservation-go/internal/models"
)

func TestMemoryStore_GetRoom_Missing(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.GetRoom(1); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("Expected ErrRecordNotFound, got %v", err)
	}
	if _, err := s.GetUser(1); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestMemoryStore_UpsertRoom_UpdatesInPlace(t *testing.T) {
	s := NewMemoryStore()
	first := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	room, created := s.UpsertRoom(RoomParams{Number: 1, Type: models.RoomTypeStandard, PricePerNight: 1000}, first)
	if !created {
		t.Fatal("Expected room to be created")
	}

	updated, created := s.UpsertRoom(RoomParams{Number: 1, Type: models.RoomTypeSuite, PricePerNight: 5000}, later)
	if created {
		t.Fatal("Expected existing room to be updated, not created")
	}
	if updated != room {
		t.Error("Expected update to return the same record")
	}
	if updated.Type != models.RoomTypeSuite || updated.PricePerNight != 5000 {
		t.Errorf("Expected SUITE/5000, got %s/%d", updated.Type, updated.PricePerNight)
	}
	if !updated.CreatedAt.Equal(first) {
		t.Errorf("Expected CreatedAt %v to be kept, got %v", first, updated.CreatedAt)
	}
	if len(s.Rooms()) != 1 {
		t.Errorf("Expected 1 room, got %d", len(s.Rooms()))
	}
}

func TestMemoryStore_InsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()

	for _, id := range []int{3, 1, 2} {
		s.UpsertUser(UserParams{Id: id, Balance: 100}, now)
	}
	s.UpsertUser(UserParams{Id: 1, Balance: 50}, now)

	users := s.Users()
	if len(users) != 3 {
		t.Fatalf("Expected 3 users, got %d", len(users))
	}
	want := []int{3, 1, 2}
	for i, u := range users {
		if u.Id != want[i] {
			t.Errorf("users[%d]: expected id %d, got %d", i, want[i], u.Id)
		}
		if i > 0 && u.Seq <= users[i-1].Seq {
			t.Errorf("users[%d]: expected increasing Seq, got %d after %d", i, u.Seq, users[i-1].Seq)
		}
	}
	if users[1].Balance != 50 {
		t.Errorf("Expected user 1 balance 50, got %d", users[1].Balance)
	}
}
