package store

import (
	"time"

	"hotel-reservation-go/internal/models"
)

// Compile-time check: *MemoryStore must satisfy RecordStore.
var _ RecordStore = (*MemoryStore)(nil)

// MemoryStore keeps records in maps with a separate slice preserving
// insertion order.
type MemoryStore struct {
	rooms     map[int]*models.Room
	roomOrder []*models.Room
	users     map[int]*models.User
	userOrder []*models.User
	seq       int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: make(map[int]*models.Room),
		users: make(map[int]*models.User),
	}
}

func (s *MemoryStore) GetRoom(number int) (*models.Room, error) {
	room, ok := s.rooms[number]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return room, nil
}

func (s *MemoryStore) UpsertRoom(params RoomParams, now time.Time) (*models.Room, bool) {
	if room, ok := s.rooms[params.Number]; ok {
		room.Type = params.Type
		room.PricePerNight = params.PricePerNight
		return room, false
	}

	s.seq++
	room := &models.Room{
		Number:        params.Number,
		Type:          params.Type,
		PricePerNight: params.PricePerNight,
		CreatedAt:     now,
		Seq:           s.seq,
	}
	s.rooms[room.Number] = room
	s.roomOrder = append(s.roomOrder, room)
	return room, true
}

func (s *MemoryStore) Rooms() []*models.Room {
	rooms := make([]*models.Room, len(s.roomOrder))
	copy(rooms, s.roomOrder)
	return rooms
}

func (s *MemoryStore) GetUser(id int) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return user, nil
}

func (s *MemoryStore) UpsertUser(params UserParams, now time.Time) (*models.User, bool) {
	if user, ok := s.users[params.Id]; ok {
		user.Balance = params.Balance
		return user, false
	}

	s.seq++
	user := &models.User{
		Id:        params.Id,
		Balance:   params.Balance,
		CreatedAt: now,
		Seq:       s.seq,
	}
	s.users[user.Id] = user
	s.userOrder = append(s.userOrder, user)
	return user, true
}

func (s *MemoryStore) Users() []*models.User {
	users := make([]*models.User, len(s.userOrder))
	copy(users, s.userOrder)
	return users
}
