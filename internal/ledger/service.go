/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"hotel-reservation-go/internal/models"
	"hotel-reservation-go/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the reservation ledger. It is the only writer of rooms, users,
// bookings and the balance journal; a single lock covers all of them and
// the booking id counter.
type Service struct {
	mu           sync.RWMutex
	records      store.RecordStore
	bookings     []models.Booking
	roomBookings map[int][]int // room number -> indexes into bookings
	journal      []models.JournalEntry
	nextId       int64
	now          func() time.Time
}

func NewService(records store.RecordStore) *Service {
	return &Service{
		records:      records,
		roomBookings: make(map[int][]int),
		nextId:       1,
		now:          time.Now,
	}
}

// UpsertRoom creates the room or updates its type and price in place.
// Existing bookings keep their snapshots.
func (s *Service) UpsertRoom(roomNumber int, roomType models.RoomType, pricePerNight int64) (models.Room, error) {
	if roomNumber <= 0 {
		return models.Room{}, invalidArgument("room number must be positive, got %d", roomNumber)
	}
	if pricePerNight < 0 {
		return models.Room{}, invalidArgument("price cannot be negative, got %d", pricePerNight)
	}
	if !roomType.Valid() {
		return models.Room{}, invalidArgument("room type %q is not valid", roomType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, created := s.records.UpsertRoom(store.RoomParams{
		Number:        roomNumber,
		Type:          roomType,
		PricePerNight: pricePerNight,
	}, s.now())

	zap.L().Info("Room saved",
		zap.Int("room_number", room.Number),
		zap.String("room_type", string(room.Type)),
		zap.Int64("price_per_night", room.PricePerNight),
		zap.Bool("created", created))
	return *room, nil
}

// UpsertUser creates the user or replaces its balance. The change is
// recorded in the journal as a delta.
func (s *Service) UpsertUser(userId int, balance int64) (models.User, error) {
	if userId <= 0 {
		return models.User{}, invalidArgument("user id must be positive, got %d", userId)
	}
	if balance < 0 {
		return models.User{}, invalidArgument("balance cannot be negative, got %d", balance)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var before int64
	if existing, err := s.records.GetUser(userId); err == nil {
		before = existing.Balance
	}

	now := s.now()
	user, created := s.records.UpsertUser(store.UserParams{Id: userId, Balance: balance}, now)
	s.appendJournal(models.JournalEntry{
		UserId:        user.Id,
		Type:          models.JournalBalanceSet,
		Amount:        balance - before,
		BalanceBefore: before,
		BalanceAfter:  balance,
		CreatedAt:     now,
	})

	zap.L().Info("User saved",
		zap.Int("user_id", user.Id),
		zap.Int64("balance", user.Balance),
		zap.Bool("created", created))
	return *user, nil
}

// Room returns a copy of a single room.
func (s *Service) Room(roomNumber int) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, err := s.findRoom(roomNumber)
	if err != nil {
		return models.Room{}, err
	}
	return *room, nil
}

// User returns a copy of a single user.
func (s *Service) User(userId int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.findUser(userId)
	if err != nil {
		return models.User{}, err
	}
	return *user, nil
}

// Booking returns the booking with the given id.
func (s *Service) Booking(bookingId int64) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// ids are dense and start at 1
	if bookingId < 1 || bookingId > int64(len(s.bookings)) {
		return models.Booking{}, fmt.Errorf("booking %d %w", bookingId, ErrNotFound)
	}
	return s.bookings[bookingId-1], nil
}

// Rooms returns all rooms, most recently created first.
func (s *Service) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.records.Rooms()
	rooms := make([]models.Room, len(stored))
	for i, r := range stored {
		rooms[i] = *r
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return newerFirst(rooms[i].CreatedAt, rooms[i].Seq, rooms[j].CreatedAt, rooms[j].Seq)
	})

	zap.L().Debug("Listed rooms", zap.Int("count", len(rooms)))
	return rooms
}

// Users returns all users, most recently created first.
func (s *Service) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.records.Users()
	users := make([]models.User, len(stored))
	for i, u := range stored {
		users[i] = *u
	}
	sort.SliceStable(users, func(i, j int) bool {
		return newerFirst(users[i].CreatedAt, users[i].Seq, users[j].CreatedAt, users[j].Seq)
	})

	zap.L().Debug("Listed users", zap.Int("count", len(users)))
	return users
}

// Bookings returns all bookings in creation order, newest first. This is
// not ordered by stay dates.
func (s *Service) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	sortBookings(bookings)

	zap.L().Debug("Listed bookings", zap.Int("count", len(bookings)))
	return bookings
}

// UserBookings returns the bookings made by one user, newest first.
func (s *Service) UserBookings(userId int) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findUser(userId); err != nil {
		return nil, err
	}

	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.UserId == userId {
			bookings = append(bookings, b)
		}
	}
	sortBookings(bookings)
	return bookings, nil
}

func (s *Service) findRoom(roomNumber int) (*models.Room, error) {
	room, err := s.records.GetRoom(roomNumber)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d %w", roomNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("unable to load room %d: %w", roomNumber, err)
	}
	return room, nil
}

func (s *Service) findUser(userId int) (*models.User, error) {
	user, err := s.records.GetUser(userId)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d %w", userId, ErrNotFound)
		}
		return nil, fmt.Errorf("unable to load user %d: %w", userId, err)
	}
	return user, nil
}

func (s *Service) appendJournal(entry models.JournalEntry) {
	entry.Id = uuid.New().String()
	s.journal = append(s.journal, entry)
}

func sortBookings(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return newerFirst(bookings[i].CreatedAt, bookings[i].Id, bookings[j].CreatedAt, bookings[j].Id)
	})
}

// newerFirst orders by creation time descending, falling back to the
// insertion sequence when timestamps are equal.
func newerFirst(aAt time.Time, aSeq int64, bAt time.Time, bSeq int64) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aSeq > bSeq
}
