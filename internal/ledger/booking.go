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
	"fmt"
	"math"
	"time"

	"hotel-reservation-go/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookRoom reserves a room for [checkIn, checkOut) and debits the user.
// Checks run in a fixed order: user, room, dates, funds, availability.
// Nothing changes unless every check passes.
func (s *Service) BookRoom(userId, roomNumber int, checkIn, checkOut time.Time) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookRoom(userId, roomNumber, checkIn, checkOut)
	if err != nil {
		zap.L().Warn("Booking rejected",
			zap.Int("user_id", userId),
			zap.Int("room_number", roomNumber),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
			zap.Error(err))
		return models.Booking{}, err
	}

	zap.L().Info("Booking created",
		zap.Int64("booking_id", booking.Id),
		zap.String("reference", booking.Reference),
		zap.Int("user_id", booking.UserId),
		zap.Int("room_number", booking.RoomNumber),
		zap.Int("nights", booking.Nights),
		zap.Int64("total_price", booking.TotalPrice),
		zap.Int64("balance_after", booking.UserBalanceSnapshot-booking.TotalPrice))
	return booking, nil
}

// bookRoom must be called with the write lock held.
func (s *Service) bookRoom(userId, roomNumber int, checkIn, checkOut time.Time) (models.Booking, error) {
	user, err := s.findUser(userId)
	if err != nil {
		return models.Booking{}, err
	}

	room, err := s.findRoom(roomNumber)
	if err != nil {
		return models.Booking{}, err
	}

	in, out, err := normalizeRange(checkIn, checkOut)
	if err != nil {
		return models.Booking{}, err
	}

	nights, totalPrice, err := price(in, out, room.PricePerNight)
	if err != nil {
		return models.Booking{}, err
	}

	if user.Balance < totalPrice {
		return models.Booking{}, &InsufficientFundsError{Required: totalPrice, Available: user.Balance}
	}

	if !s.available(roomNumber, in, out) {
		return models.Booking{}, fmt.Errorf("room %d is %w for the selected period", roomNumber, ErrRoomUnavailable)
	}

	now := s.now()
	booking := models.Booking{
		Id:                  s.nextId,
		Reference:           uuid.New().String(),
		UserId:              userId,
		RoomNumber:          roomNumber,
		CheckIn:             in,
		CheckOut:            out,
		Nights:              nights,
		TotalPrice:          totalPrice,
		CreatedAt:           now,
		RoomTypeSnapshot:    room.Type,
		RoomPriceSnapshot:   room.PricePerNight,
		UserBalanceSnapshot: user.Balance,
	}
	s.nextId++

	s.roomBookings[roomNumber] = append(s.roomBookings[roomNumber], len(s.bookings))
	s.bookings = append(s.bookings, booking)

	before := user.Balance
	user.Balance -= totalPrice
	s.appendJournal(models.JournalEntry{
		UserId:        userId,
		Type:          models.JournalBookingDebit,
		Amount:        -totalPrice,
		BalanceBefore: before,
		BalanceAfter:  user.Balance,
		BookingId:     booking.Id,
		CreatedAt:     now,
	})

	return booking, nil
}

// IsRoomAvailable reports whether the room has no booking overlapping
// [checkIn, checkOut).
func (s *Service) IsRoomAvailable(roomNumber int, checkIn, checkOut time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findRoom(roomNumber); err != nil {
		return false, err
	}
	in, out, err := normalizeRange(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return s.available(roomNumber, in, out), nil
}

// Quote prices a stay at the room's current rate without booking it.
func (s *Service) Quote(roomNumber int, checkIn, checkOut time.Time) (int, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, err := s.findRoom(roomNumber)
	if err != nil {
		return 0, 0, err
	}
	in, out, err := normalizeRange(checkIn, checkOut)
	if err != nil {
		return 0, 0, err
	}
	return price(in, out, room.PricePerNight)
}

func (s *Service) available(roomNumber int, in, out time.Time) bool {
	for _, idx := range s.roomBookings[roomNumber] {
		existing := s.bookings[idx]
		if overlaps(in, out, existing.CheckIn, existing.CheckOut) {
			return false
		}
	}
	return true
}

func normalizeRange(checkIn, checkOut time.Time) (time.Time, time.Time, error) {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)
	if !out.After(in) {
		return time.Time{}, time.Time{}, invalidArgument("check-out date must be after check-in date (date range invalid: %s to %s)",
			in.Format(time.DateOnly), out.Format(time.DateOnly))
	}
	return in, out, nil
}

func price(in, out time.Time, pricePerNight int64) (int, int64, error) {
	nights := nightsBetween(in, out)
	if pricePerNight > 0 && nights > math.MaxInt64/pricePerNight {
		return 0, 0, invalidArgument("stay of %d nights at %d per night overflows", nights, pricePerNight)
	}
	return int(nights), nights * pricePerNight, nil
}
