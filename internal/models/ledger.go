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

package models

import (
	"fmt"
	"strings"
	"time"
)

// RoomType is the category a room is sold as
type RoomType string

const (
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeJunior   RoomType = "JUNIOR"
	RoomTypeSuite    RoomType = "SUITE"
)

// Valid reports whether t is one of the known room categories
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeJunior, RoomTypeSuite:
		return true
	}
	return false
}

// ParseRoomType converts a case-insensitive category name into a RoomType
func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown room type %q", s)
	}
	return t, nil
}

// Room represents a bookable room. Number and CreatedAt never change once set.
type Room struct {
	Number        int       `json:"number"`
	Type          RoomType  `json:"type"`
	PricePerNight int64     `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
	Seq           int64     `json:"-"` // insertion order, tiebreak for CreatedAt
}

// User represents a guest with a prepaid balance
type User struct {
	Id        int       `json:"id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	Seq       int64     `json:"-"`
}

// Booking is an immutable reservation record. The snapshot fields hold the
// room and user state as it was when the booking was made.
type Booking struct {
	Id                  int64     `json:"id"`
	Reference           string    `json:"reference"`
	UserId              int       `json:"user_id"`
	RoomNumber          int       `json:"room_number"`
	CheckIn             time.Time `json:"check_in"`
	CheckOut            time.Time `json:"check_out"`
	Nights              int       `json:"nights"`
	TotalPrice          int64     `json:"total_price"`
	CreatedAt           time.Time `json:"created_at"`
	RoomTypeSnapshot    RoomType  `json:"room_type_snapshot"`
	RoomPriceSnapshot   int64     `json:"room_price_snapshot"`
	UserBalanceSnapshot int64     `json:"user_balance_snapshot"` // balance before the debit
}

// Journal entry types
const (
	JournalBalanceSet   = "balance_set"
	JournalBookingDebit = "booking_debit"
)

// JournalEntry is an immutable record of a single balance change
type JournalEntry struct {
	Id            string    `json:"id"`
	UserId        int       `json:"user_id"`
	Type          string    `json:"type"`
	Amount        int64     `json:"amount"` // signed delta
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"`
	BookingId     int64     `json:"booking_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
